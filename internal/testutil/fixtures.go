// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

type (
	// Tile describes one generated source image.
	Tile struct {
		Width, Height int
		Color         color.NRGBA
	}

	// PackImage places a generated image at emojis/<Category>/<Key>.png.
	PackImage struct {
		Category string
		Key      string
		Tile     Tile
	}
)

// SolidImage returns a w x h image filled with c.
func SolidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// EncodePNG returns the PNG encoding of a solid tile.
func EncodePNG(t testing.TB, tile Tile) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, SolidImage(tile.Width, tile.Height, tile.Color)); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

// WritePNG writes a solid tile as PNG to path, creating parent directories.
func WritePNG(t testing.TB, path string, tile Tile) {
	t.Helper()
	MustWriteFile(t, path, EncodePNG(t, tile))
}

// WritePack lays out an input directory under dir: the manifest as
// emojis.toml and every image under emojis/<category>/<key>.png.
func WritePack(t testing.TB, dir, manifest string, images ...PackImage) {
	t.Helper()
	MustWriteFile(t, filepath.Join(dir, "emojis.toml"), []byte(manifest))
	for _, img := range images {
		WritePNG(t, filepath.Join(dir, "emojis", img.Category, img.Key+".png"), img.Tile)
	}
}

// Square returns an opaque size x size tile of colour c.
func Square(size int, c color.NRGBA) Tile {
	return Tile{Width: size, Height: size, Color: c}
}
