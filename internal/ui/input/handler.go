package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/modes"
	"multiselect/internal/ui/input/types"
)

// Handler turns key messages into actions for the current mode
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        KeyMap
}

// New creates a handler with the select and help modes registered
func New(keys KeyMap, usePager bool) *Handler {
	h := &Handler{
		currentMode: types.ModeSelect,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeSelect] = modes.NewSelectMode(modes.Bindings{
		Submit: keys.Submit,
		Cancel: keys.Cancel,
		Help:   keys.Help,
	}, usePager)
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	return h
}

// HandleKey routes msg to the current mode. Mode changes are applied here
// and not returned; the remaining actions are for the model to execute.
func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg)
	if !consumed {
		return nil
	}

	var out []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			h.currentMode = changeMode.Mode
			continue
		}
		out = append(out, action)
	}
	return out
}

// Mode returns the current input mode
func (h *Handler) Mode() types.Mode {
	if h == nil {
		return types.ModeSelect
	}
	return h.currentMode
}

// Keys returns the key map the handler was built with
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// RegisterMode replaces the handler for mode
func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// Reset returns to select mode
func (h *Handler) Reset() {
	h.currentMode = types.ModeSelect
}
