// Package errs holds the error kinds shared by the helper packages.
// Packages wrap these with %w so callers can test the kind with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidArgument is returned when an argument is outside the accepted domain,
	// such as a negative scale or a birthday in the future.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned by decimal division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)
