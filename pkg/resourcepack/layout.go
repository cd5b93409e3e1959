// SPDX-License-Identifier: MPL-2.0

// Package resourcepack describes the files an emoji pack is made of and
// writes them: one atlas texture, one bitmap font descriptor and one emoji
// metadata descriptor per category.
package resourcepack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emojipack/emojipack/pkg/manifest"
)

const (
	// TextureDir holds the atlas textures, relative to the output root.
	TextureDir = "textures/font/emojis"
	// FontDir holds the bitmap font descriptors, relative to the output root.
	FontDir = "font"
	// MetadataDir holds the emoji metadata descriptors, relative to the output root.
	MetadataDir = "emojis"
)

// Layout maps categories to file paths under an output root.
type Layout struct {
	Root string
}

// NewLayout returns the layout rooted at dir.
func NewLayout(dir string) Layout {
	return Layout{Root: dir}
}

// TexturePath returns <root>/textures/font/emojis/<category>.png.
func (l Layout) TexturePath(category manifest.CategoryName) string {
	return filepath.Join(l.Root, filepath.FromSlash(TextureDir), string(category)+".png")
}

// FontPath returns <root>/font/<category>.json.
func (l Layout) FontPath(category manifest.CategoryName) string {
	return filepath.Join(l.Root, FontDir, string(category)+".json")
}

// MetadataPath returns <root>/emojis/<category>.json.
func (l Layout) MetadataPath(category manifest.CategoryName) string {
	return filepath.Join(l.Root, MetadataDir, string(category)+".json")
}

// Dirs returns the three output directories.
func (l Layout) Dirs() []string {
	return []string{
		filepath.Join(l.Root, filepath.FromSlash(TextureDir)),
		filepath.Join(l.Root, MetadataDir),
		filepath.Join(l.Root, FontDir),
	}
}

// EnsureDirs creates the output directories if they do not exist yet.
func (l Layout) EnsureDirs() error {
	for _, dir := range l.Dirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return nil
}

// TextureLocation returns the namespaced resource location a font provider
// uses to reference the category's atlas, e.g. "figura:font/emojis/smileys.png".
func TextureLocation(namespace string, category manifest.CategoryName) string {
	return fmt.Sprintf("%s:font/emojis/%s.png", namespace, category)
}
