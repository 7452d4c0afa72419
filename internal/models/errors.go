package models

import "errors"

// ValidationError is a client-input rejection. It is reported before
// any store interaction and surfaces as a 400 with its message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a user-facing message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// MsgEmptyComment is shown when a comment is empty or contains only
// whitespace/punctuation. The one user-facing bilingual string.
const MsgEmptyComment = "write something to submit a comment / escribe algo para enviar un comentario"

// ErrInvalidCredentials is returned by login when the password does not
// match the configured hash
var ErrInvalidCredentials = errors.New("invalid credentials")
