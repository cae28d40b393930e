package apperr

import "net/http" // HTTP status codes

// ResponseError is a domain error carrying the HTTP status it maps to.
// Services return these; the error middleware renders them.
type ResponseError struct {
	Status  int    // HTTP status code
	Message string // Message exposed to the client
}

// Error implements the error interface
func (e *ResponseError) Error() string {
	return e.Message
}

// New creates a ResponseError with an explicit status
func New(status int, message string) *ResponseError {
	return &ResponseError{Status: status, Message: message}
}

// BadRequest creates a 400 error
func BadRequest(message string) *ResponseError {
	return New(http.StatusBadRequest, message)
}

// Unauthorized creates a 401 error with the single generic message used
// for every credential failure
func Unauthorized(message string) *ResponseError {
	return New(http.StatusUnauthorized, message)
}

// NotFound creates a 404 error
func NotFound(message string) *ResponseError {
	return New(http.StatusNotFound, message)
}
