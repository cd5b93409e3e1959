// SPDX-License-Identifier: MPL-2.0

// Package types holds small value types shared by the command line and the
// build pipeline.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitOK is the status of a run that packed every category.
	ExitOK ExitCode = 0
	// ExitFailure is the status of any failed run, including usage errors.
	ExitFailure ExitCode = 1
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is a process exit status in the POSIX range 0-255.
	ExitCode int

	// InvalidExitCodeError is returned for an ExitCode outside 0-255.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode for errors.Is() compatibility.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside 0-255.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess reports whether the code is ExitOK.
func (c ExitCode) IsSuccess() bool { return c == ExitOK }

// Int returns the code as passed to os.Exit. Out-of-range codes collapse to
// ExitFailure so a bad value never reports success.
func (c ExitCode) Int() int {
	if c.Validate() != nil {
		return int(ExitFailure)
	}
	return int(c)
}

// String returns the decimal form of the code.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
