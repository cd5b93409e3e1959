// SPDX-License-Identifier: MPL-2.0

package build

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/emojipack/emojipack/internal/imageload"
	"github.com/emojipack/emojipack/pkg/atlas"
	"github.com/emojipack/emojipack/pkg/manifest"
	"github.com/emojipack/emojipack/pkg/resourcepack"
)

// Artifacts are the three outputs of one category, built in memory.
type Artifacts struct {
	Category   manifest.CategoryName
	Grid       atlas.Grid
	Atlas      *image.NRGBA
	Codepoints []rune
	Font       *resourcepack.FontDescriptor
	Metadata   *resourcepack.Metadata
}

// BuildCategory packs the images of a category, given in declaration order,
// and derives its font and metadata descriptors. It writes nothing.
func BuildCategory(namespace string, category manifest.Category, images []*imageload.Image) (*Artifacts, error) {
	if len(images) != len(category.Entries) {
		return nil, fmt.Errorf("category %s: %d images for %d emojis", category.Name, len(images), len(category.Entries))
	}
	if err := atlas.CheckCapacity(len(images)); err != nil {
		return nil, fmt.Errorf("category %s: %w", category.Name, err)
	}

	tile, err := imageload.ValidateDimensions(category.Name, images)
	if err != nil {
		return nil, err
	}

	grid, err := atlas.NewGrid(len(images), tile)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", category.Name, err)
	}

	tiles := make([]image.Image, len(images))
	for i, img := range images {
		tiles[i] = img.Pixels
	}
	canvas, err := atlas.Compose(grid, tiles)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", category.Name, err)
	}

	codepoints := atlas.Codepoints(len(images))
	metadata, err := resourcepack.NewMetadata(category.Entries, codepoints)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", category.Name, err)
	}

	return &Artifacts{
		Category:   category.Name,
		Grid:       grid,
		Atlas:      canvas,
		Codepoints: codepoints,
		Font:       resourcepack.NewFontDescriptor(namespace, category.Name, tile.Y, atlas.Charmap(codepoints, grid.Cols)),
		Metadata:   metadata,
	}, nil
}

// Write encodes the atlas and writes the texture, font and metadata files.
// Everything is encoded before the first file is written.
func (a *Artifacts) Write(layout resourcepack.Layout, level png.CompressionLevel) error {
	var texture bytes.Buffer
	if err := atlas.Encode(&texture, a.Atlas, level); err != nil {
		return fmt.Errorf("category %s: %w", a.Category, err)
	}
	font, err := resourcepack.Marshal(a.Font)
	if err != nil {
		return fmt.Errorf("category %s: encode font: %w", a.Category, err)
	}
	metadata, err := resourcepack.Marshal(a.Metadata)
	if err != nil {
		return fmt.Errorf("category %s: encode metadata: %w", a.Category, err)
	}

	if err := resourcepack.WriteFile(layout.TexturePath(a.Category), texture.Bytes()); err != nil {
		return err
	}
	if err := resourcepack.WriteFile(layout.FontPath(a.Category), font); err != nil {
		return err
	}
	return resourcepack.WriteFile(layout.MetadataPath(a.Category), metadata)
}

// Files returns the paths Write creates under layout.
func (a *Artifacts) Files(layout resourcepack.Layout) []string {
	return []string{
		layout.TexturePath(a.Category),
		layout.FontPath(a.Category),
		layout.MetadataPath(a.Category),
	}
}
