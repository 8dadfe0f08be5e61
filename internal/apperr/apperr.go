package apperr

import (
	"fmt"
	"net/http"
)

// Error is the single failure type the error responder understands.
// Key selects a localized message; Message, when set, is used verbatim.
// Context tags the failing operation for the log line.
type Error struct {
	Status  int
	Key     string
	Message string
	Details []string
	Context string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Context != "":
		return fmt.Sprintf("[%s] %v", e.Context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return e.Message
	default:
		return e.Key
	}
}

func (e *Error) Unwrap() error { return e.Err }

func Unauthorized(key string) *Error {
	return &Error{Status: http.StatusUnauthorized, Key: key}
}

func Forbidden(key string) *Error {
	return &Error{Status: http.StatusForbidden, Key: key}
}

func NotFound(key string) *Error {
	return &Error{Status: http.StatusNotFound, Key: key}
}

func Conflict(key string) *Error {
	return &Error{Status: http.StatusConflict, Key: key}
}

// Validation reports every violation found in one request location.
func Validation(location string, details []string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: "Validation error in " + location,
		Details: details,
	}
}

func Internal(context string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Context: context, Err: err}
}
