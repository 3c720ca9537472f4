package argparse

import (
	"fmt"
	"strings"
)

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode represents an error code for a specific error type.
type ErrorCode int

const (
	// ErrShowHelp is returned after the help text has been written. It wraps [flag.ErrHelp].
	ErrShowHelp ErrorCode = iota + 1
	// ErrDuplicateArgument is returned when an argument name is registered twice.
	ErrDuplicateArgument
	// ErrInvalidArgument is returned when a nil argument or an argument without a name is
	// registered.
	ErrInvalidArgument
	// ErrMissingRequired is returned when one or more required arguments were not provided. It
	// wraps a [*MissingArgumentsError].
	ErrMissingRequired
	// ErrInvalidFlag is returned by [Parser.ParseFlags] when the flag grammar rejects the input.
	ErrInvalidFlag
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrShowHelp:
		return "show help"
	case ErrDuplicateArgument:
		return "duplicate argument"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrMissingRequired:
		return "missing required argument"
	case ErrInvalidFlag:
		return "invalid flag"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error.
type Error struct {
	code ErrorCode
	err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	return e.err.Error()
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	if e == nil {
		return 0
	}
	return e.code
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// MissingArgumentsError lists the required arguments that were not provided during parsing, in
// registration order.
type MissingArgumentsError struct {
	Names []string

	// Suggestions maps a missing name to unrecognized names seen in the input that look like a
	// misspelling of it.
	Suggestions map[string][]string
}

func (e *MissingArgumentsError) Error() string {
	var b strings.Builder
	for i, name := range e.Names {
		if i > 0 {
			b.WriteRune('\n')
		}
		fmt.Fprintf(&b, "required argument %q was not provided", name)
		if similar := e.Suggestions[name]; len(similar) > 0 {
			b.WriteString(". Did you mean one of these?\n\t")
			b.WriteString(strings.Join(similar, "\n\t"))
		}
	}
	return b.String()
}
