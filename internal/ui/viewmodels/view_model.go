package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/ui/services/navigation"
	"multiselect/internal/ui/services/selection"
	"multiselect/internal/ui/views"
)

// ViewModel transforms prompt state into view-ready data
type ViewModel struct {
	state      *selection.State
	navigator  *navigation.Service
	config     *config.Config
	message    string
	width      int
	help       help.Model
	keys       help.KeyMap
	errMessage string
	overlay    string
	outcome    domain.Outcome
}

// NewViewModel creates a new view model
func NewViewModel(state *selection.State, navigator *navigation.Service, cfg *config.Config, message string) *ViewModel {
	return &ViewModel{
		state:     state,
		navigator: navigator,
		config:    cfg,
		message:   message,
		outcome:   domain.OutcomePending,
	}
}

// SetWidth sets the current terminal width
func (vm *ViewModel) SetWidth(width int) {
	vm.width = width
}

// SetHelp sets the help model and the bindings it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetError sets the validation message shown under the list
func (vm *ViewModel) SetError(msg string) {
	vm.errMessage = msg
}

// SetOverlay sets the help overlay; empty shows the option list
func (vm *ViewModel) SetOverlay(content string) {
	vm.overlay = content
}

// SetOutcome records how the prompt ended
func (vm *ViewModel) SetOutcome(outcome domain.Outcome) {
	vm.outcome = outcome
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	labels := vm.state.Labels()
	vs := views.ViewState{
		Width:       vm.width,
		Message:     vm.message,
		ShowSummary: vm.config.UISettings.ShowSummary,
		Summary:     labels,
		Error:       vm.errMessage,
		Overlay:     vm.overlay,
		Done:        vm.outcome == domain.OutcomeAccepted,
		Cancelled:   vm.outcome == domain.OutcomeCancelled,
		Answer:      labels,
	}

	if vs.Overlay != "" || vs.Done || vs.Cancelled {
		return vs
	}

	options := vm.state.Options()
	window := vm.navigator.Window()
	vs.MoreAbove = window.MoreAbove()
	vs.MoreBelow = vm.navigator.MoreBelow()
	vs.Rows = make([]views.Row, 0, window.Len())
	for i := window.Start; i < window.End; i++ {
		opt := options.At(i)
		vs.Rows = append(vs.Rows, views.Row{
			Label:       opt.Label,
			Highlighted: vm.state.IsHighlighted(opt.Key),
			Selected:    vm.state.IsSelected(opt.Key),
		})
	}

	if vm.config.UISettings.ShowHelp && vm.keys != nil {
		vs.Footer = vm.help.View(vm.keys)
	}

	return vs
}
