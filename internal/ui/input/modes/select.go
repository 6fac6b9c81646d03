package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/types"
	"multiselect/internal/ui/services/selection"
)

// Bindings are the lifecycle keys the select mode intercepts
type Bindings struct {
	Submit key.Binding
	Cancel key.Binding
	Help   key.Binding
}

type SelectMode struct {
	bindings Bindings
	usePager bool
}

func NewSelectMode(bindings Bindings, usePager bool) *SelectMode {
	return &SelectMode{bindings: bindings, usePager: usePager}
}

func (m *SelectMode) Name() string {
	return "select"
}

// HandleKey intercepts submit, cancel and help. Everything else goes to the
// selection state, which ignores keys it does not know.
func (m *SelectMode) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.bindings.Submit):
		return []types.Action{types.SubmitAction{}}, true

	case key.Matches(msg, m.bindings.Cancel):
		return []types.Action{types.CancelAction{}}, true

	case key.Matches(msg, m.bindings.Help):
		if m.usePager {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	}

	k := selection.ParseKey(msg.String())
	if k == selection.KeyOther {
		return nil, false
	}
	return []types.Action{types.KeyAction{Key: k}}, true
}
