package scoring

import "fmt"

// ValidationError reports a malformed or missing event field. It is always
// raised before any mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid delivery event: %s: %s", e.Field, e.Reason)
}

// StateError rejects an operation that is not valid in the current match or
// innings state. Rejections happen before any mutation.
type StateError struct {
	Code    string
	Message string
}

func (e *StateError) Error() string { return e.Message }

var (
	ErrInningsAlreadyCompleted = &StateError{Code: "innings_already_completed", Message: "innings already completed"}
	ErrOversExhausted          = &StateError{Code: "overs_exhausted", Message: "overs limit reached"}
	ErrInvalidDeliveryCategory = &StateError{Code: "invalid_delivery_category", Message: "unknown delivery category"}
	ErrMatchNotLive            = &StateError{Code: "match_not_live", Message: "match is not live"}
	ErrMatchAlreadyStarted     = &StateError{Code: "match_already_started", Message: "match already started"}
)

// InvariantViolation means the engine detected a state that must never occur
// (striker equals non-striker, more than 10 wickets). The affected innings
// refuses all further processing once one is raised.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "scoring invariant violated: " + e.Reason
}
