// SPDX-License-Identifier: MPL-2.0

package imageload

import (
	"errors"
	"fmt"
	"image"

	"github.com/emojipack/emojipack/pkg/manifest"
)

var (
	// ErrDimensionMismatch is the sentinel error wrapped by DimensionMismatchError.
	ErrDimensionMismatch = errors.New("emoji dimensions differ")
	// ErrMissingDimensions is returned when the reference image of a category
	// has no usable size.
	ErrMissingDimensions = errors.New("could not get emoji dimensions")
)

// DimensionMismatchError is returned when an image of a category differs in
// size from the category's first image.
type DimensionMismatchError struct {
	Category manifest.CategoryName
	Key      manifest.EmojiKey
	Got      image.Point
	// Reference is the size of ReferenceKey, the first declared emoji.
	ReferenceKey manifest.EmojiKey
	Reference    image.Point
}

// Error implements the error interface.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("not all emojis in %s have the same dimensions: %s is %dx%d, %s is %dx%d",
		e.Category, e.Key, e.Got.X, e.Got.Y, e.ReferenceKey, e.Reference.X, e.Reference.Y)
}

// Unwrap returns ErrDimensionMismatch for errors.Is() compatibility.
func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// ValidateDimensions checks that all images share the size of the first one
// and returns that size.
func ValidateDimensions(category manifest.CategoryName, images []*Image) (image.Point, error) {
	if len(images) == 0 || images[0] == nil {
		return image.Point{}, fmt.Errorf("%w: category %s has no reference image", ErrMissingDimensions, category)
	}

	ref := images[0]
	size := ref.Size()
	if size.X <= 0 || size.Y <= 0 {
		return image.Point{}, fmt.Errorf("%w of %s in %s", ErrMissingDimensions, ref.Key, category)
	}

	for _, img := range images[1:] {
		if img.Size() != size {
			return image.Point{}, &DimensionMismatchError{
				Category:     category,
				Key:          img.Key,
				Got:          img.Size(),
				ReferenceKey: ref.Key,
				Reference:    size,
			}
		}
	}
	return size, nil
}
