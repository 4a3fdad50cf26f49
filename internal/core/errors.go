package core

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a coded failure. Status is the HTTP status it maps to when it
// reaches a handler; zero means 500.
type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	msg := "[" + e.Code + "] " + e.Message
	if e.Cause == nil {
		return msg
	}
	return msg + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error with the same code, so wrapped copies still match
// the sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WrapError copies base and attaches cause.
func WrapError(base *Error, cause error) *Error {
	wrapped := *base
	wrapped.Cause = cause
	return &wrapped
}

// Wrapf is WrapError with a formatted cause.
func Wrapf(base *Error, format string, args ...any) *Error {
	return WrapError(base, fmt.Errorf(format, args...))
}

// StatusCode returns the HTTP status carried by the first *Error in err's
// chain, or 500.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

var (
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid", Status: http.StatusBadRequest}
	ErrConfigMissing = &Error{Code: "CONFIG_MISSING", Message: "required configuration missing", Status: http.StatusBadRequest}

	ErrTemplateNotFound = &Error{Code: "TEMPLATE_NOT_FOUND", Message: "template not found"}
	ErrRenderFailed     = &Error{Code: "RENDER_FAILED", Message: "page render failed"}

	ErrNotFound = &Error{Code: "NOT_FOUND", Message: "resource not found", Status: http.StatusNotFound}

	ErrInvalidTransition = &Error{Code: "INVALID_TRANSITION", Message: "state transition not allowed", Status: http.StatusConflict}
)
