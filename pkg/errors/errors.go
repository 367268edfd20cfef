package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error with HTTP awareness. All scheduling failures
// are deterministic and non-retryable; recovery is only via input correction.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// The generation error taxonomy.
var (
	ErrMalformedInput    = New("MALFORMED_INPUT", http.StatusBadRequest, "required tables are absent, empty, or unparseable")
	ErrUnresolvedTeacher = New("UNRESOLVED_TEACHER", http.StatusUnprocessableEntity, "subject has no matching teacher entry")
	ErrInfeasible        = New("INFEASIBLE", http.StatusConflict, "could not place every session within the week")
	ErrNotFound          = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrInternal          = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Is reports whether err carries the same code as target.
func Is(err error, target *Error) bool {
	e := FromError(err)
	return e != nil && target != nil && e.Code == target.Code
}
