package apperror

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// GenerationFailed wraps any model-call error, timeout, or schema violation.
// The raw error stays server-side; the message is safe for clients.
func GenerationFailed(capability string, err error) *AppError {
	return New(http.StatusBadGateway,
		fmt.Sprintf("The AI %s request could not be completed. Please try again.", capability),
		err)
}

// GenerationTimeout signals that a long-running generation exceeded its
// polling deadline.
func GenerationTimeout(capability string) *AppError {
	return New(http.StatusGatewayTimeout,
		fmt.Sprintf("The AI %s request timed out. Please try again.", capability),
		nil)
}

// StoreUnavailable signals a failed write to the document store.
func StoreUnavailable(err error) *AppError {
	return New(http.StatusServiceUnavailable, "Profile store is temporarily unavailable.", err)
}
