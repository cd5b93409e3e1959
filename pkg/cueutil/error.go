// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrSchema is the sentinel error wrapped by SchemaError.
	ErrSchema = errors.New("schema validation failed")
	// ErrFileTooLarge is returned when input exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file too large")
)

type (
	// FieldError is one CUE error located at a field of the user document.
	FieldError struct {
		// Path is the JSON path of the field, e.g. "smileys.emojis.grin.names[0]".
		// Empty for document-level errors such as syntax errors.
		Path string
		// Message is the CUE error message without the path.
		Message string
	}

	// SchemaError reports every CUE error raised while compiling, unifying
	// or validating one file.
	SchemaError struct {
		FilePath string
		Fields   []FieldError
		cause    error
	}
)

// String renders the field error as "<path>: <message>".
func (f FieldError) String() string {
	if f.Path == "" {
		return f.Message
	}
	return f.Path + ": " + f.Message
}

// Error returns "<file>: <path>: <message>" for a single field error and a
// multi-line listing otherwise.
func (e *SchemaError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("%s: %s", e.FilePath, e.Fields[0])
	}
	lines := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		lines[i] = f.String()
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.FilePath, strings.Join(lines, "\n  "))
}

// Unwrap returns ErrSchema and the original CUE error.
func (e *SchemaError) Unwrap() []error {
	return []error{ErrSchema, e.cause}
}

// FormatError converts a CUE error into a *SchemaError whose fields carry
// JSON paths into the user document:
//
//	emojis.toml: smileys.emojis.grin.frames.count: invalid value 0 (out of bound >0)
//	emojipack.cue: png.compression: conflicting values "fast" and "speed"
//
// Errors that are not CUE errors are only prefixed with filePath.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	schemaErr := &SchemaError{FilePath: filePath, cause: err}
	for _, e := range list {
		schemaErr.Fields = append(schemaErr.Fields, newFieldError(e))
	}
	return schemaErr
}

func newFieldError(e cueerrors.Error) FieldError {
	path := jsonPath(cueerrors.Path(e))
	msg := e.Error()
	// Some CUE messages repeat the path.
	if rest, ok := strings.CutPrefix(msg, path); ok && path != "" {
		msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	return FieldError{Path: path, Message: msg}
}

// jsonPath joins CUE path selectors with dots; purely numeric selectors
// after the first are list indices and render as [n].
func jsonPath(selectors []string) string {
	var b strings.Builder
	for i, sel := range selectors {
		switch {
		case i > 0 && isListIndex(sel):
			fmt.Fprintf(&b, "[%s]", sel)
		case i > 0:
			b.WriteString(".")
			b.WriteString(sel)
		default:
			b.WriteString(sel)
		}
	}
	return b.String()
}

func isListIndex(sel string) bool {
	return sel != "" && strings.Trim(sel, "0123456789") == ""
}

// CheckFileSize rejects data larger than maxSize bytes before it reaches
// the CUE compiler.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: %w: %d bytes, limit is %d", filename, ErrFileTooLarge, size, maxSize)
	}
	return nil
}
