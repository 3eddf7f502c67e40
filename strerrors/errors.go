package strerrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument indicates that an argument is outside its permitted set.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes an argument that a function cannot accept.
type InvalidArgumentError struct {
	// Argument is the name of the offending parameter or option
	Argument string
	// Value is the rejected value (may be nil)
	Value any
	// Allowed lists the permissible values, if the set is closed
	Allowed []string
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidArgumentError) Error() string {
	msg := "invalid argument"
	if e.Argument != "" {
		msg += " " + e.Argument
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" %q", fmt.Sprint(e.Value))
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Allowed) > 0 {
		quoted := make([]string, len(e.Allowed))
		for i, v := range e.Allowed {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		msg += ". Permissible values are: " + strings.Join(quoted, ", ")
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidArgumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
