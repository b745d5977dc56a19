// internal/insights/session.go
package insights

import (
	stderrors "errors"
	"sync"

	"github.com/google/uuid"
)

// State is the dialog lifecycle position. Transitions:
// Idle -> Submitting -> {Success, Failed} -> Idle (on reset).
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

var (
	// ErrSubmissionPending is returned when a submit arrives while one is
	// already in flight; the attempt is a no-op.
	ErrSubmissionPending = stderrors.New("SUBMISSION_PENDING")

	// ErrNotIdle is returned when a submit arrives in a terminal display
	// state; the dialog must be reset (back to form) first.
	ErrNotIdle = stderrors.New("DIALOG_NOT_IDLE")
)

// Session is the explicit state value object owned by one dialog instance.
// It holds at most one outstanding request; replies are matched by token so
// a late reply arriving after reset is discarded, never displayed.
type Session struct {
	mu       sync.Mutex
	state    State
	inFlight uuid.UUID
	result   *SubmitResult
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

// Begin moves Idle -> Submitting and issues the token the eventual reply
// must present. Validation must have passed before Begin is called.
func (s *Session) Begin() (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateSubmitting:
		return uuid.Nil, ErrSubmissionPending
	case StateSuccess, StateFailed:
		return uuid.Nil, ErrNotIdle
	}

	s.inFlight = uuid.New()
	s.state = StateSubmitting
	s.result = nil
	return s.inFlight, nil
}

// Complete applies a reply to the session. It reports false, changing
// nothing, when the token is stale or the session already left Submitting.
func (s *Session) Complete(token uuid.UUID, result *SubmitResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSubmitting || token != s.inFlight {
		return false
	}

	s.result = result
	s.inFlight = uuid.Nil
	if result.Success {
		s.state = StateSuccess
	} else {
		s.state = StateFailed
	}
	return true
}

// Reset returns the dialog to the form. An in-flight request is not
// aborted; its reply will fail the token check and be discarded.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	s.inFlight = uuid.Nil
	s.result = nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the terminal outcome, or nil outside Success/Failed.
func (s *Session) Result() *SubmitResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}
