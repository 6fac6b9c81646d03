package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is how a prompt session ended
type Outcome string

const (
	OutcomePending   Outcome = "pending"
	OutcomeAccepted  Outcome = "accepted"
	OutcomeCancelled Outcome = "cancelled"
)

// Session identifies one prompt invocation. A new session is created for
// every prompt so log lines from the same interaction can be correlated.
type Session struct {
	ID        string
	Message   string
	StartedAt time.Time
}

// NewSession creates a session with a fresh id
func NewSession(message string) Session {
	return Session{
		ID:        uuid.NewString(),
		Message:   message,
		StartedAt: time.Now(),
	}
}

// Elapsed returns the time since the session started
func (s Session) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}
