// SPDX-License-Identifier: MPL-2.0

// Package manifest parses and validates emojis.toml, the declarative
// description of every emoji category in a pack.
//
// The manifest is the single source of ordering for the whole build: the
// order in which categories and emoji keys are declared fixes atlas tile
// positions and codepoint assignment, so it is kept as ordered slices.
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emojipack/emojipack/pkg/atlas"
)

// MaxEmojisPerCategory is the number of private use codepoints one category
// can be assigned.
const MaxEmojisPerCategory = atlas.MaxCodepoints

var (
	// ErrInvalidManifest is the sentinel error wrapped by InvalidManifestError.
	ErrInvalidManifest = errors.New("invalid manifest")
	// ErrInvalidCategoryName is the sentinel error wrapped by InvalidCategoryNameError.
	ErrInvalidCategoryName = errors.New("invalid category name")
	// ErrInvalidEmojiKey is the sentinel error wrapped by InvalidEmojiKeyError.
	ErrInvalidEmojiKey = errors.New("invalid emoji key")
)

type (
	// CategoryName names a category. It doubles as a file stem for the
	// category's atlas, font and metadata files.
	CategoryName string

	// EmojiKey identifies an emoji within its category. It is the stem of
	// the source image file.
	EmojiKey string

	// Animation describes an animated emoji laid out as frames.
	Animation struct {
		// FrameCount is the number of frames (> 0).
		FrameCount int
		// FrameTime is the duration of one frame in ticks (> 0).
		FrameTime int
	}

	// Entry is one packable emoji in its canonical shape. Bare-list and
	// object forms of the manifest both normalize to Entry.
	Entry struct {
		Key         EmojiKey
		Names       []string
		Shortcuts   []string
		Blacklisted bool
		// Animation is nil for still emojis.
		Animation *Animation
	}

	// Category is a named group of emojis sharing one atlas and one font.
	Category struct {
		Name    CategoryName
		Entries []Entry
	}

	// Manifest is the validated content of emojis.toml.
	Manifest struct {
		// FilePath is the file the manifest was parsed from, if any.
		FilePath string
		// Categories in declaration order.
		Categories []Category
	}

	// InvalidCategoryNameError is returned when a category name cannot be
	// used as a single path segment.
	InvalidCategoryNameError struct {
		Value CategoryName
	}

	// InvalidEmojiKeyError is returned when an emoji key cannot be used as a
	// single path segment.
	InvalidEmojiKeyError struct {
		Category CategoryName
		Value    EmojiKey
	}

	// InvalidManifestError collects the Go-side validation failures of a
	// manifest that the schema cannot express.
	InvalidManifestError struct {
		FilePath    string
		FieldErrors []error
	}
)

// String returns the category name.
func (n CategoryName) String() string { return string(n) }

// IsValid reports whether the name can be used as a file stem.
func (n CategoryName) IsValid() (bool, []error) {
	if !isPathSegment(string(n)) {
		return false, []error{&InvalidCategoryNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidCategoryNameError) Error() string {
	return fmt.Sprintf("invalid category name %q: must be a non-empty file name without path separators", e.Value)
}

// Unwrap returns ErrInvalidCategoryName for errors.Is() compatibility.
func (e *InvalidCategoryNameError) Unwrap() error { return ErrInvalidCategoryName }

// String returns the emoji key.
func (k EmojiKey) String() string { return string(k) }

// Error implements the error interface.
func (e *InvalidEmojiKeyError) Error() string {
	return fmt.Sprintf("%s.emojis: invalid emoji key %q: must be a non-empty file name without path separators", e.Category, e.Value)
}

// Unwrap returns ErrInvalidEmojiKey for errors.Is() compatibility.
func (e *InvalidEmojiKeyError) Unwrap() error { return ErrInvalidEmojiKey }

// Error implements the error interface.
func (e *InvalidManifestError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	if len(msgs) == 1 {
		return fmt.Sprintf("%s: %s", e.FilePath, msgs[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.FilePath, strings.Join(msgs, "\n  "))
}

// Unwrap returns ErrInvalidManifest and the field errors so errors.Is()
// matches both the manifest sentinel and the field-level sentinels.
func (e *InvalidManifestError) Unwrap() []error {
	return append([]error{ErrInvalidManifest}, e.FieldErrors...)
}

// IsAnimated reports whether the entry declares an animation.
func (e Entry) IsAnimated() bool { return e.Animation != nil }

// Keys returns the emoji keys of the category in declaration order.
func (c Category) Keys() []EmojiKey {
	keys := make([]EmojiKey, len(c.Entries))
	for i, e := range c.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Category returns the category with the given name.
func (m *Manifest) Category(name CategoryName) (Category, bool) {
	for _, c := range m.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// EmojiCount returns the total number of emojis across all categories.
func (m *Manifest) EmojiCount() int {
	n := 0
	for _, c := range m.Categories {
		n += len(c.Entries)
	}
	return n
}

// validate checks the constraints the schema cannot express: non-empty
// categories, the private use area capacity, and names that are safe to
// use as path segments.
func (m *Manifest) validate() error {
	var errs []error
	for _, c := range m.Categories {
		if valid, fieldErrs := c.Name.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
		switch n := len(c.Entries); {
		case n == 0:
			errs = append(errs, fmt.Errorf("%s.emojis: category %q declares no emojis", c.Name, c.Name))
		case n > MaxEmojisPerCategory:
			errs = append(errs, fmt.Errorf("%s.emojis: category %q declares %d emojis, at most %d fit in the private use area",
				c.Name, c.Name, n, MaxEmojisPerCategory))
		}
		for _, e := range c.Entries {
			if !isPathSegment(string(e.Key)) {
				errs = append(errs, &InvalidEmojiKeyError{Category: c.Name, Value: e.Key})
			}
		}
	}
	if len(errs) > 0 {
		return &InvalidManifestError{FilePath: m.FilePath, FieldErrors: errs}
	}
	return nil
}

func isPathSegment(s string) bool {
	if strings.TrimSpace(s) == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`)
}
