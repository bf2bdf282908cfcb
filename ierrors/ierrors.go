// Package ierrors wraps the "errors" package of the standard library and adds the wrapping helpers that are used
// throughout the module to annotate sentinel errors with context.
//
//nolint:goerr113
package ierrors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error.
func Errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Wrap prepends an error with a message and wraps it into a new error.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf prepends an error with a message format specifier and arguments
// and wraps it into a new error.
func Wrapf(err error, format string, args ...any) error {
	// check if the passed args also contain an error
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			return fmt.Errorf("%w: %w", fmt.Errorf(format, args...), err)
		}
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WithMessagef appends a message format specifier and arguments to the error
// and wraps it into a new error.
func WithMessagef(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}
