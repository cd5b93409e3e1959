// SPDX-License-Identifier: MPL-2.0

package imageload

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/emojipack/emojipack/pkg/manifest"

	"golang.org/x/sync/errgroup"
)

// SourceDir is the directory under the input root holding one sub-directory
// of images per category.
const SourceDir = "emojis"

// ErrLoadImage is the sentinel error wrapped by LoadError.
var ErrLoadImage = errors.New("failed to load image")

type (
	// Image is a decoded source image.
	Image struct {
		Key    manifest.EmojiKey
		Path   string
		Width  int
		Height int
		Pixels image.Image
	}

	// LoadError is returned when an image file is missing or cannot be
	// decoded as PNG.
	LoadError struct {
		Path string
		Err  error
	}

	// Loader loads the images of a category.
	Loader struct {
		// MaxParallel bounds the number of concurrent loads; 0 means one
		// goroutine per image.
		MaxParallel int
	}
)

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load image %s: %v", e.Path, e.Err)
}

// Unwrap returns ErrLoadImage and the underlying cause.
func (e *LoadError) Unwrap() []error { return []error{ErrLoadImage, e.Err} }

// Size returns the image dimensions.
func (img *Image) Size() image.Point {
	return image.Pt(img.Width, img.Height)
}

// ImagePath returns <inputDir>/emojis/<category>/<key>.png.
func ImagePath(inputDir string, category manifest.CategoryName, key manifest.EmojiKey) string {
	return filepath.Join(inputDir, SourceDir, string(category), string(key)+".png")
}

// Load decodes the PNG file at path.
func Load(path string, key manifest.EmojiKey) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	pixels, err := png.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	size := pixels.Bounds().Size()
	return &Image{
		Key:    key,
		Path:   path,
		Width:  size.X,
		Height: size.Y,
		Pixels: pixels,
	}, nil
}

// LoadCategory loads every image of the category concurrently and waits for
// all of them. The result is in declaration order. The first failure cancels
// loads that have not started yet and is returned.
func (l *Loader) LoadCategory(ctx context.Context, inputDir string, category manifest.Category) ([]*Image, error) {
	images := make([]*Image, len(category.Entries))

	g, gctx := errgroup.WithContext(ctx)
	if l != nil && l.MaxParallel > 0 {
		g.SetLimit(l.MaxParallel)
	}

	for i, entry := range category.Entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := Load(ImagePath(inputDir, category.Name, entry.Key), entry.Key)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}
