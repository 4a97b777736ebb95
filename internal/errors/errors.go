package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeAPI        = "API_ERROR"
	ErrCodeNetwork    = "NETWORK_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// AppError represents an application error with an error code and, when the
// error came from the backend, the HTTP status of the failed response.
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Message string // Human-readable error message, shown to the user
	Status  int    // HTTP status of the backend response, 0 when local
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a VALIDATION_ERROR raised before any request is
// sent. The message is already user-facing.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// NewAPIError creates an API_ERROR from a non-2xx backend response. The
// message is the backend's own error text when present, otherwise a generic
// fallback supplied by the caller.
func NewAPIError(status int, message string) *AppError {
	code := ErrCodeAPI
	if status == 404 {
		code = ErrCodeNotFound
	}
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// NewNetworkError wraps a transport-level failure behind a generic message.
func NewNetworkError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "error interno",
		Err:     err,
	}
}

// UserMessage extracts the displayable message from any error. AppErrors
// carry their own message; anything else falls back to the given generic
// string, matching how every failure path surfaces a single string and
// returns the user to a prior interactive state.
func UserMessage(err error, fallback string) string {
	if appErr, ok := err.(*AppError); ok && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// IsNotFound reports whether the error is a backend 404.
func IsNotFound(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == ErrCodeNotFound
}
