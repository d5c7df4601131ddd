package session

import "errors"

// State is the lifecycle phase of an interview session.
type State int

const (
	StateNotStarted State = iota // No profile yet
	StateInProgress              // Questions are being asked
	StateCompleted               // Terminal until Reset
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

var (
	// ErrNotStarted is returned by operations that need a started session.
	ErrNotStarted = errors.New("interview has not started")

	// ErrAlreadyStarted is returned by Start on a session that is not fresh.
	ErrAlreadyStarted = errors.New("interview already started")

	// ErrCompleted is returned when answering a completed interview.
	ErrCompleted = errors.New("interview is completed")

	// ErrNotCompleted is returned by Report before the interview ends.
	ErrNotCompleted = errors.New("interview is not completed")
)
