package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/catalog"
	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/input"
	inputtypes "multiselect/internal/ui/input/types"
	"multiselect/internal/ui/services/navigation"
	"multiselect/internal/ui/services/selection"
	"multiselect/internal/ui/viewmodels"
	"multiselect/internal/ui/views"
)

// chromeLines is the number of rows the prompt draws around the option list:
// title, two scroll hints, summary, error and the footer with its spacer
const chromeLines = 7

// Prompt describes one multi-select question
type Prompt struct {
	Message  string
	Options  *catalog.Catalog
	Defaults []string
	Validate selection.Validator
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	session domain.Session
	state   *selection.State
	outcome domain.Outcome

	// UI-specific state
	width       int
	height      int
	help        help.Model
	errMessage  string
	helpScroll  int
	inPagerMode bool // tracks if we're currently in pager mode

	navigator    *navigation.Service
	viewModel    *viewmodels.ViewModel // view model for rendering
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model for prompt
func NewModel(bus eventbus.EventBus, cfg *config.Config, prompt Prompt) (*Model, error) {
	state, err := selection.New(prompt.Options, prompt.Defaults, prompt.Validate)
	if err != nil {
		return nil, err
	}
	if bus != nil {
		state.SetBus(bus)
	}

	styles := views.NewStyles(cfg.Colors)
	keys := input.DefaultKeyMap()

	navigator := navigation.NewService(prompt.Options.Len(), cfg.UISettings.MaxVisible)

	m := &Model{
		bus:          bus,
		config:       cfg,
		session:      domain.NewSession(prompt.Message),
		state:        state,
		outcome:      domain.OutcomePending,
		help:         help.New(),
		navigator:    navigator,
		viewModel:    viewmodels.NewViewModel(state, navigator, cfg, prompt.Message),
		helpRenderer: NewHelpRenderer(styles, keys),
		inputHandler: input.New(keys, cfg.UISettings.UsePager),
		helpOps:      NewHelpOps(nil),
		renderer: views.NewRenderer(styles, views.Symbols{
			Pointer:   cfg.UISettings.Pointer,
			Checked:   cfg.UISettings.Checked,
			Unchecked: cfg.UISettings.Unchecked,
		}),
	}

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Session returns the prompt session
func (m *Model) Session() domain.Session {
	return m.session
}

// Outcome reports how the prompt ended
func (m *Model) Outcome() domain.Outcome {
	return m.outcome
}

// Accepted reports whether the selection was submitted and passed validation
func (m *Model) Accepted() bool {
	return m.outcome == domain.OutcomeAccepted
}

// Cancelled reports whether the prompt was abandoned
func (m *Model) Cancelled() bool {
	return m.outcome == domain.OutcomeCancelled
}

// Result returns the selected keys in selection order
func (m *Model) Result() []string {
	return m.state.Value()
}

// Labels returns the labels of the selected options in catalog order
func (m *Model) Labels() []string {
	return m.state.Labels()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.publish(eventbus.PromptStartedEvent{
		Session:  m.session,
		Options:  m.state.Options().Len(),
		Defaults: m.state.Value(),
	})
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()

	case tea.KeyMsg:
		if m.outcome != domain.OutcomePending {
			return m, nil
		}

		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if m.inputHandler.Mode() != inputtypes.ModeHelp {
			m.helpScroll = 0
		}
		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; the prompt keeps running
			log.Printf("Help pager failed: %v", msg.err)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.KeyAction:
		m.state.HandleKey(a.Key)
		m.errMessage = ""
		m.navigator.Follow(m.state.Highlighted())

	case inputtypes.SubmitAction:
		return m.submit()

	case inputtypes.CancelAction:
		m.outcome = domain.OutcomeCancelled
		m.publish(eventbus.PromptCancelledEvent{Session: m.session})
		return tea.Quit

	case inputtypes.OpenPagerAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.ScrollHelpAction:
		m.helpScroll += a.Delta
		if maxScroll := m.helpRenderer.MaxScroll(m.height); m.helpScroll > maxScroll {
			m.helpScroll = maxScroll
		}
		if m.helpScroll < 0 {
			m.helpScroll = 0
		}
	}
	return nil
}

// submit runs the validator and either accepts the selection or shows why
// it was rejected
func (m *Model) submit() tea.Cmd {
	values := m.state.Value()

	if validate := m.state.Validator(); validate != nil {
		if err := validate(values); err != nil {
			m.errMessage = err.Error()
			m.publish(eventbus.ValidationFailedEvent{
				Session: m.session,
				Values:  values,
				Err:     err,
			})
			return nil
		}
	}

	m.errMessage = ""
	m.outcome = domain.OutcomeAccepted
	m.publish(eventbus.PromptSubmittedEvent{Session: m.session, Values: values})
	return tea.Quit
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// updateViewportHeight fits the option list to the terminal unless the
// config pins the number of rows
func (m *Model) updateViewportHeight() {
	if m.config.UISettings.MaxVisible > 0 {
		m.navigator.SetHeight(m.config.UISettings.MaxVisible)
	} else {
		height := m.height - chromeLines
		if height < 1 {
			height = 1
		}
		m.navigator.SetHeight(height)
	}
	m.navigator.Follow(m.state.Highlighted())
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	// Update view model with current UI state
	m.viewModel.SetWidth(m.width)
	m.viewModel.SetHelp(m.help, m.inputHandler.Keys())
	m.viewModel.SetError(m.errMessage)
	m.viewModel.SetOutcome(m.outcome)
	if m.inputHandler.Mode() == inputtypes.ModeHelp {
		m.viewModel.SetOverlay(m.helpRenderer.renderHelpContent(m.height, m.helpScroll))
	} else {
		m.viewModel.SetOverlay("")
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}
