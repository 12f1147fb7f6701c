package api

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
)

// Error is a non-2xx response. Message carries the server's msg, or the
// joined validation messages.
type Error struct {
	Status  int
	Message string
	kind    error
}

// NewError builds the Error for a response status.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message, kind: kindForStatus(status)}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.kind }

type errorBody struct {
	Msg    string `json:"msg"`
	Errors []struct {
		Msg   string `json:"msg"`
		Param string `json:"param"`
	} `json:"errors"`
}

func (b errorBody) message() string {
	if b.Msg != "" {
		return b.Msg
	}
	msgs := make([]string, 0, len(b.Errors))
	for _, e := range b.Errors {
		msgs = append(msgs, e.Msg)
	}
	return strings.Join(msgs, "; ")
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 500:
		return ErrServer
	default:
		return ErrBadRequest
	}
}
