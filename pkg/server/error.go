package server

import (
	"errors"
	"fmt"
)

// Error membawa pesan untuk client, error asli, dan code yang dipetakan ke http status oleh rest handler.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is supaya errors.Is(err, ErrInvalidCoordinate) juga match ke code.
func (e *Error) Is(target error) bool {
	return e.code == target
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrInvalidCoordinate latitude/longitude di luar domain projection (|lat| >= 90 atau NaN/Inf)
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrDegenerateBound geo bound / canvas bound yang lebar atau tingginya nol
	ErrDegenerateBound = errors.New("degenerate bound")
)

var MessageInternalServerError string = "internal server error"
