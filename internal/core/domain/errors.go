package domain

import "net/http"

// Envelope status categories
const (
	CategorySuccess = "success"
	CategoryFail    = "fail"
	CategoryError   = "error"
)

// AppError is a structured error carrying the HTTP status code and the
// envelope category it must be rendered with. It is the only error type
// the boundary error handler understands; anything else renders as a
// generic 500.
type AppError struct {
	Message string
	Code    int
	Status  string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates an AppError. The category is derived from the code:
// 5xx renders as "error", everything else as "fail".
func NewAppError(message string, code int) *AppError {
	status := CategoryFail
	if code >= http.StatusInternalServerError {
		status = CategoryError
	}
	return &AppError{Message: message, Code: code, Status: status}
}

// BadRequest creates a 400 AppError.
func BadRequest(message string) *AppError {
	return NewAppError(message, http.StatusBadRequest)
}

// Unauthorized creates a 401 AppError.
func Unauthorized(message string) *AppError {
	return NewAppError(message, http.StatusUnauthorized)
}

// Forbidden creates a 403 AppError.
func Forbidden(message string) *AppError {
	return NewAppError(message, http.StatusForbidden)
}

// NotFound creates a 404 AppError.
func NotFound(message string) *AppError {
	return NewAppError(message, http.StatusNotFound)
}

// Internal creates a 500 AppError.
func Internal(message string) *AppError {
	return NewAppError(message, http.StatusInternalServerError)
}
