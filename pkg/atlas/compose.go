// SPDX-License-Identifier: MPL-2.0

package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

var (
	// ErrTileCount is returned when the number of tiles does not match the grid.
	ErrTileCount = errors.New("tile count does not match grid")
	// ErrTileSizeMismatch is the sentinel error wrapped by TileSizeMismatchError.
	ErrTileSizeMismatch = errors.New("tile size does not match grid")
)

// TileSizeMismatchError is returned by Compose when a tile differs from the
// grid's tile size.
type TileSizeMismatchError struct {
	Index int
	Got   image.Point
	Want  image.Point
}

// Error implements the error interface.
func (e *TileSizeMismatchError) Error() string {
	return fmt.Sprintf("tile %d is %dx%d, grid expects %dx%d", e.Index, e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}

// Unwrap returns ErrTileSizeMismatch for errors.Is() compatibility.
func (e *TileSizeMismatchError) Unwrap() error { return ErrTileSizeMismatch }

// Compose draws tiles onto a fully transparent canvas of g.Size(), tile i at
// g.Offset(i). Tiles are copied as-is (draw.Src) with no padding between
// cells; unused trailing cells stay transparent.
func Compose(g Grid, tiles []image.Image) (*image.NRGBA, error) {
	if len(tiles) != g.Count {
		return nil, fmt.Errorf("%w: got %d tiles for a grid of %d", ErrTileCount, len(tiles), g.Count)
	}

	canvas := image.NewNRGBA(g.Bounds())
	for i, tile := range tiles {
		b := tile.Bounds()
		if b.Size() != g.Tile {
			return nil, &TileSizeMismatchError{Index: i, Got: b.Size(), Want: g.Tile}
		}
		draw.Draw(canvas, g.Cell(i), tile, b.Min, draw.Src)
	}
	return canvas, nil
}

// alphaImage reports itself as never opaque so the PNG encoder keeps the
// alpha channel even when every pixel happens to be opaque.
type alphaImage struct{ image.Image }

// Opaque implements the encoder's opacity check.
func (alphaImage) Opaque() bool { return false }

// Encode writes img as an 8-bit RGBA PNG with the given compression level.
// The alpha channel is always written, whatever the pixel content.
func Encode(w io.Writer, img image.Image, level png.CompressionLevel) error {
	enc := &png.Encoder{CompressionLevel: level}
	if err := enc.Encode(w, alphaImage{img}); err != nil {
		return fmt.Errorf("encode atlas: %w", err)
	}
	return nil
}
