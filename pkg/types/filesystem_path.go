// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath is a directory argument of the command line, such as the
	// input pack or the output resource pack. It must not be blank.
	FilesystemPath string

	// InvalidFilesystemPathError is returned for a blank FilesystemPath.
	InvalidFilesystemPathError struct {
		// Name is the argument name shown to the user, e.g. "input".
		Name  string
		Value FilesystemPath
	}
)

// String returns the path.
func (p FilesystemPath) String() string { return string(p) }

// IsValid reports whether the path is non-blank. name labels the argument
// in the returned error.
func (p FilesystemPath) IsValid(name string) (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidFilesystemPathError{Name: name, Value: p}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("%s directory %q: must be non-empty", e.Name, e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
