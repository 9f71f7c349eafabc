package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrNotPermitted    = errors.New("operation not permitted")
	ErrAlreadyBorrowed = errors.New("already borrowed")
	ErrInvalidInput    = errors.New("invalid input")
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeNotPermitted    = "NOT_PERMITTED"
	CodeAlreadyBorrowed = "ALREADY_BORROWED"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInternal        = "INTERNAL"
)

// Error carries a human-readable message for one of the sentinel kinds.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func NotPermitted(msg string) error {
	return &Error{Kind: ErrNotPermitted, Msg: msg}
}

func AlreadyBorrowed(msg string) error {
	return &Error{Kind: ErrAlreadyBorrowed, Msg: msg}
}

func InvalidInput(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HTTPStatus classifies err into a status code and an error code.
func HTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, ErrNotPermitted):
		return http.StatusForbidden, CodeNotPermitted
	case errors.Is(err, ErrAlreadyBorrowed):
		return http.StatusConflict, CodeAlreadyBorrowed
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidInput
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
