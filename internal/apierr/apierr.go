package apierr

import (
	"errors"
	"net/http"
)

// Kind classifies a request failure. Permission failures and state
// failures are distinct kinds so callers can tell "you may not" apart
// from "not from this state".
type Kind int

const (
	KindAuthentication Kind = iota
	KindAuthorization
	KindNotFound
	KindStateConflict
	KindValidation
	KindInternal
)

// Error is the single error type surfaced by handlers. The message is
// returned verbatim to the client; Errs carries field-level detail.
type Error struct {
	Kind    Kind
	Message string
	Errs    []string
}

func (e *Error) Error() string {
	return e.Message
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindStateConflict, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func StateConflict(message string) *Error {
	return &Error{Kind: KindStateConflict, Message: message}
}

func Validation(message string, errs ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Errs: errs}
}

// As extracts an *Error from err, if it is one.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
