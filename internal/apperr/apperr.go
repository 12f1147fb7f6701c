// Package apperr defines the closed set of failure kinds returned by the
// server services. Transports translate a Kind into their own status codes in
// exactly one place; services never decide HTTP details.
package apperr

import (
	"errors"
	"fmt"
)

// Kind tags an Error with its failure class.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// InternalMessage is the only text a client ever sees for KindInternal.
const InternalMessage = "Server error"

// FieldError describes one rejected input field.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
	Value    any    `json:"value,omitempty"`
}

// Error is the service-level error type.
type Error struct {
	Kind    Kind
	Message string       // client-safe message
	Fields  []FieldError // set for KindValidation
	Cause   error        // internal detail, logged but never rendered
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by kind, so errors.Is(err, &Error{Kind: KindAuth})
// works regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Validation builds a KindValidation error from field issues.
func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// Field is a shorthand for a body field error.
func Field(param, msg string, value any) FieldError {
	return FieldError{Msg: msg, Param: param, Location: "body", Value: value}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Internal hides cause behind the generic message.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: InternalMessage, Cause: cause}
}

// KindOf reports the Kind of err. Anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// From returns err as an *Error, wrapping foreign errors as internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
