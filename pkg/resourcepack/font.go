// SPDX-License-Identifier: MPL-2.0

package resourcepack

import "github.com/emojipack/emojipack/pkg/manifest"

// BitmapProviderType is the provider type of an atlas-backed font.
const BitmapProviderType = "bitmap"

type (
	// FontDescriptor is the content of font/<category>.json.
	FontDescriptor struct {
		Providers []FontProvider `json:"providers"`
	}

	// FontProvider maps the characters of Chars, row by row, onto the grid
	// cells of the texture at File.
	FontProvider struct {
		Type   string   `json:"type"`
		File   string   `json:"file"`
		Ascent int      `json:"ascent"`
		Chars  []string `json:"chars"`
	}
)

// NewFontDescriptor returns a descriptor with a single bitmap provider
// pointing at the category's atlas. ascent is the tile height; chars holds
// one string per occupied grid row.
func NewFontDescriptor(namespace string, category manifest.CategoryName, ascent int, chars []string) *FontDescriptor {
	if chars == nil {
		chars = []string{}
	}
	return &FontDescriptor{
		Providers: []FontProvider{{
			Type:   BitmapProviderType,
			File:   TextureLocation(namespace, category),
			Ascent: ascent,
			Chars:  chars,
		}},
	}
}
