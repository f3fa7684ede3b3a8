package service

// ValidationError marks a request rejected for missing or invalid input.
// Handlers translate it to a 400 with the message enumerating what was wrong.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError creates a ValidationError with the given client-facing message.
func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}
