// Package apperr defines the error kinds shared across the build pipeline and
// the process exit codes they map to.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrParse    = errors.New("parse error")
	ErrInvalid  = errors.New("invalid record")
	ErrNotFound = errors.New("not found")
	ErrConfig   = errors.New("invalid config")
)

// Exit codes, borrowed from sysexits(3).
const (
	CodeFailure = 1
	CodeData    = 65
	CodeNoInput = 66
	CodeConfig  = 78
)

// Error wraps a cause with the exit code the process should terminate with.
type Error struct {
	Kind error
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Parse wraps err as a fatal document parse failure.
func Parse(err error) error {
	return &Error{Kind: ErrParse, Code: CodeData, Err: err}
}

// Invalid wraps err as a record validation failure.
func Invalid(err error) error {
	return &Error{Kind: ErrInvalid, Code: CodeData, Err: err}
}

// NotFound wraps err as a missing input.
func NotFound(err error) error {
	return &Error{Kind: ErrNotFound, Code: CodeNoInput, Err: err}
}

// Config wraps err as a configuration failure.
func Config(err error) error {
	return &Error{Kind: ErrConfig, Code: CodeConfig, Err: err}
}

// Code returns the exit code associated with err, or CodeFailure when the
// chain carries none. A nil error maps to 0.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var ae *Error
	if errors.As(err, &ae) && ae.Code != 0 {
		return ae.Code
	}
	return CodeFailure
}
