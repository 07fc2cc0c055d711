package pyramid

import "errors"

var (
	// ErrInvalidLevel is returned when a session is created without a
	// resolvable proficiency level.
	ErrInvalidLevel = errors.New("invalid proficiency level")

	// ErrInvalidSelection is returned for an out-of-range option index
	// or a selection targeting a step that doesn't exist yet.
	ErrInvalidSelection = errors.New("invalid option selection")

	// ErrAlreadyCompleted is returned when mutating a completed session.
	ErrAlreadyCompleted = errors.New("session already completed")

	// ErrSequenceExhausted is returned when appending past the last
	// scheduled step.
	ErrSequenceExhausted = errors.New("step sequence exhausted")

	// ErrTypeMismatch is returned when an appended step's kind disagrees
	// with the scheduled kind for that position.
	ErrTypeMismatch = errors.New("step kind mismatch")

	// ErrContentUnavailable is returned when generation exhausted its
	// retries. The session is unchanged; the caller may retry later.
	ErrContentUnavailable = errors.New("content unavailable")

	// ErrConflict is returned when a concurrent writer superseded the
	// state this operation was based on.
	ErrConflict = errors.New("session modified concurrently")

	// ErrNotFound is returned for an unknown session ID or one owned by
	// a different user.
	ErrNotFound = errors.New("session not found")
)
