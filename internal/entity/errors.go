package entity

// ValidationError is the single recoverable domain error kind. It is raised
// by form submissions (login, registration, profile) and by cart quantity
// checks, and is surfaced to the client as a human-readable message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
