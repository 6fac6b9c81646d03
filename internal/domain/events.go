package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventHighlightMoved   EventType = "HighlightMoved"
	EventSelectionChanged EventType = "SelectionChanged"
	EventPromptStarted    EventType = "PromptStarted"
	EventPromptSubmitted  EventType = "PromptSubmitted"
	EventPromptCancelled  EventType = "PromptCancelled"
	EventValidationFailed EventType = "ValidationFailed"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// HighlightMovedEvent is emitted when the cursor moves to another option
type HighlightMovedEvent struct {
	OldIndex int
	NewIndex int
	Key      string // key of the newly highlighted option
}

func (e HighlightMovedEvent) Type() EventType { return EventHighlightMoved }

// SelectionChangedEvent is emitted when an option is toggled
type SelectionChangedEvent struct {
	Key      string
	Selected bool // true when the key was added
	Total    int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// PromptStartedEvent is emitted when a prompt session begins
type PromptStartedEvent struct {
	Session  Session
	Options  int
	Defaults []string
}

func (e PromptStartedEvent) Type() EventType { return EventPromptStarted }

// PromptSubmittedEvent is emitted when the user accepts a valid selection
type PromptSubmittedEvent struct {
	Session Session
	Values  []string
}

func (e PromptSubmittedEvent) Type() EventType { return EventPromptSubmitted }

// PromptCancelledEvent is emitted when the user abandons the prompt
type PromptCancelledEvent struct {
	Session Session
}

func (e PromptCancelledEvent) Type() EventType { return EventPromptCancelled }

// ValidationFailedEvent is emitted when the validator rejects a submission
type ValidationFailedEvent struct {
	Session Session
	Values  []string
	Err     error
}

func (e ValidationFailedEvent) Type() EventType { return EventValidationFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
