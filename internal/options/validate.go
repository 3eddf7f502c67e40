// Package options provides shared utilities for option validation across packages.
package options

import "github.com/arturdoruch/stringutil/strerrors"

// ValidatePositive ensures n is greater than zero.
// option names the option in the returned error.
func ValidatePositive(option string, n int) error {
	if n <= 0 {
		return &strerrors.InvalidArgumentError{
			Argument: option,
			Value:    n,
			Message:  "must be a positive integer",
		}
	}
	return nil
}

// ValidateOneOf ensures value is one of allowed.
// option names the option in the returned error.
func ValidateOneOf(option, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &strerrors.InvalidArgumentError{
		Argument: option,
		Value:    value,
		Allowed:  allowed,
	}
}
