package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/types"
)

// HelpMode is active while the help overlay is open
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.CancelAction{}}, true
	case "?", "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSelect}}, true
	case "up", "k":
		return []types.Action{types.ScrollHelpAction{Delta: -1}}, true
	case "down", "j":
		return []types.Action{types.ScrollHelpAction{Delta: 1}}, true
	case "pgup":
		return []types.Action{types.ScrollHelpAction{Delta: -10}}, true
	case "pgdown":
		return []types.Action{types.ScrollHelpAction{Delta: 10}}, true
	}
	// Swallow everything else so it cannot reach the selection
	return nil, true
}
