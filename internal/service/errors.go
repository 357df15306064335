package service

import (
	"errors"
	"fmt"
)

// Code is a machine-readable failure kind. The transport layer maps codes
// to HTTP statuses.
type Code string

const (
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeNoCardsAvailable Code = "NO_CARDS_AVAILABLE"
	CodeInternal         Code = "INTERNAL"
)

// Error is a typed service failure.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// CodeOf extracts the failure code from err, or CodeInternal for errors
// that did not originate in this package.
func CodeOf(err error) Code {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternal
}

func invalidArgumentf(format string, args ...any) error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func alreadyExistsf(format string, args ...any) error {
	return &Error{Code: CodeAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

func noCardsAvailable() error {
	return &Error{Code: CodeNoCardsAvailable, Message: "no more cards available in the game deck"}
}
