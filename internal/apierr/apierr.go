package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Outward-facing failure codes. Store and generator failures stay separate so
// an operator can tell "our database is down" from "the upstream AI service is
// down".
const (
	CodeNotFound         = "NOT_FOUND"
	CodeStoreFailure     = "STORE_FAILURE"
	CodeGeneratorFailure = "GENERATOR_FAILURE"
	CodeFormatError      = "FORMAT_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeConflict         = "CONFLICT"
	CodeUnauthorized     = "UNAUTHORIZED"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(err error) *Error {
	return New(http.StatusNotFound, CodeNotFound, err)
}

func Store(err error) *Error {
	return New(http.StatusInternalServerError, CodeStoreFailure, err)
}

func Generator(err error) *Error {
	return New(http.StatusBadGateway, CodeGeneratorFailure, err)
}

func Format(err error) *Error {
	return New(http.StatusBadGateway, CodeFormatError, err)
}

func InvalidInput(err error) *Error {
	return New(http.StatusBadRequest, CodeInvalidInput, err)
}

func Conflict(err error) *Error {
	return New(http.StatusBadRequest, CodeConflict, err)
}

func Unauthorized(err error) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, err)
}

// IsCode reports whether err carries the given outward code.
func IsCode(err error, code string) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
