package types

import "multiselect/internal/ui/services/selection"

// KeyAction forwards a classified key to the selection state
type KeyAction struct {
	Key selection.Key
}

func (a KeyAction) Type() string { return "key" }

// SubmitAction asks the prompt to validate and accept the selection
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// CancelAction abandons the prompt
type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

// ChangeModeAction switches the input mode
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// OpenPagerAction shows the help text in an external pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// ScrollHelpAction scrolls the help overlay by Delta lines
type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }
