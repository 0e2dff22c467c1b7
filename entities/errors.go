package entities

// ValidationError marks malformed caller input. Its message is written
// for end users and is safe to surface verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError wraps a user-facing message as a ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}
