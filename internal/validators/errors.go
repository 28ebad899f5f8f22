package validators

import "errors"

var (
	// ErrValidation is the root of every validation failure returned by this
	// package. Use errors.Is to detect it and errors.As with
	// *ValidationError to get the user-facing message.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Messages shown to API clients.
const (
	MsgMissingCredentials = "Missing username or password"
	MsgShortCredentials   = "Both username and password must be at least 3 characters long"
	MsgPasswordTooLong    = "password must be at most 72 bytes long"
	MsgMissingBlogFields  = "title and url are required"
	MsgNegativeLikes      = "likes must be a non-negative integer"
)

// ValidationError carries a message that is safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}
