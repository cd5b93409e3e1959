// SPDX-License-Identifier: MPL-2.0

// Package atlas lays same-sized tiles out on a square grid, composes them
// into one texture and assigns each tile a private use codepoint.
//
// Tile i always sits at column i mod cols and row i / cols, and carries
// codepoint U+E000+i, so the texture, the font charmap and anything keyed by
// codepoint agree as long as they are built from the same ordered input.
package atlas

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrEmptyGrid is returned when a grid is requested for zero tiles.
	ErrEmptyGrid = errors.New("grid needs at least one tile")
	// ErrInvalidTileSize is the sentinel error wrapped by InvalidTileSizeError.
	ErrInvalidTileSize = errors.New("invalid tile size")
)

type (
	// Grid is the square layout of n tiles of one size.
	// Rows and Cols are both ceil(sqrt(n)); trailing cells may be empty.
	Grid struct {
		// Count is the number of tiles placed on the grid.
		Count int
		// Rows and Cols are the grid dimensions in cells.
		Rows, Cols int
		// Tile is the size of one cell in pixels.
		Tile image.Point
	}

	// InvalidTileSizeError is returned when a tile has a non-positive
	// width or height.
	InvalidTileSizeError struct {
		Size image.Point
	}
)

// Error implements the error interface.
func (e *InvalidTileSizeError) Error() string {
	return fmt.Sprintf("invalid tile size %dx%d: width and height must be positive", e.Size.X, e.Size.Y)
}

// Unwrap returns ErrInvalidTileSize for errors.Is() compatibility.
func (e *InvalidTileSizeError) Unwrap() error { return ErrInvalidTileSize }

// NewGrid returns the smallest square grid holding n tiles of the given size.
func NewGrid(n int, tile image.Point) (Grid, error) {
	if n <= 0 {
		return Grid{}, ErrEmptyGrid
	}
	if tile.X <= 0 || tile.Y <= 0 {
		return Grid{}, &InvalidTileSizeError{Size: tile}
	}
	side := ceilSqrt(n)
	return Grid{Count: n, Rows: side, Cols: side, Tile: tile}, nil
}

// Size returns the canvas size in pixels: (Cols*tileW, Rows*tileH).
func (g Grid) Size() image.Point {
	return image.Pt(g.Cols*g.Tile.X, g.Rows*g.Tile.Y)
}

// Bounds returns the canvas rectangle anchored at the origin.
func (g Grid) Bounds() image.Rectangle {
	return image.Rectangle{Max: g.Size()}
}

// Offset returns the top-left pixel of tile i.
func (g Grid) Offset(i int) image.Point {
	return image.Pt((i%g.Cols)*g.Tile.X, (i/g.Cols)*g.Tile.Y)
}

// Cell returns the pixel rectangle covered by tile i.
func (g Grid) Cell(i int) image.Rectangle {
	origin := g.Offset(i)
	return image.Rectangle{Min: origin, Max: origin.Add(g.Tile)}
}

// OccupiedRows returns the number of rows holding at least one tile,
// ceil(Count/Cols).
func (g Grid) OccupiedRows() int {
	return (g.Count + g.Cols - 1) / g.Cols
}

// String returns the grid as "ROWSxCOLS of WxH tiles".
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d of %dx%d tiles", g.Rows, g.Cols, g.Tile.X, g.Tile.Y)
}

// ceilSqrt returns the smallest s with s*s >= n, for n > 0.
func ceilSqrt(n int) int {
	s := 1
	for s*s < n {
		s++
	}
	return s
}
