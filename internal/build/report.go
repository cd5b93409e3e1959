// SPDX-License-Identifier: MPL-2.0

package build

import (
	"fmt"
	"image"
	"strings"

	"github.com/emojipack/emojipack/pkg/manifest"
)

type (
	// Report summarizes a run.
	Report struct {
		InputDir  string
		OutputDir string
		Namespace string
		// Written is false for check-only runs.
		Written    bool
		Categories []CategoryReport
	}

	// CategoryReport describes one packed category.
	CategoryReport struct {
		Name        manifest.CategoryName
		Emojis      int
		Rows, Cols  int
		Tile        image.Point
		Atlas       image.Point
		Blacklisted int
		Animated    int
		// Files is empty for check-only runs.
		Files []string
	}
)

func newCategoryReport(category manifest.Category, a *Artifacts) CategoryReport {
	r := CategoryReport{
		Name:   category.Name,
		Emojis: len(category.Entries),
		Rows:   a.Grid.Rows,
		Cols:   a.Grid.Cols,
		Tile:   a.Grid.Tile,
		Atlas:  a.Grid.Size(),
	}
	for _, e := range category.Entries {
		if e.Blacklisted {
			r.Blacklisted++
		}
		if e.IsAnimated() {
			r.Animated++
		}
	}
	return r
}

// EmojiCount returns the number of emojis over all reported categories.
func (r *Report) EmojiCount() int {
	n := 0
	for _, c := range r.Categories {
		n += c.Emojis
	}
	return n
}

// Markdown renders the report as a markdown document with one table row
// per category.
func (r *Report) Markdown() string {
	var sb strings.Builder

	sb.WriteString("# Emoji pack\n\n")
	if len(r.Categories) == 0 {
		sb.WriteString("No categories were packed.\n")
		return sb.String()
	}

	sb.WriteString("| Category | Emojis | Grid | Tile | Atlas | Blacklisted | Animated |\n")
	sb.WriteString("|---|---:|---|---|---|---:|---:|\n")
	for _, c := range r.Categories {
		fmt.Fprintf(&sb, "| %s | %d | %dx%d | %dx%d | %dx%d | %d | %d |\n",
			c.Name, c.Emojis, c.Rows, c.Cols, c.Tile.X, c.Tile.Y, c.Atlas.X, c.Atlas.Y, c.Blacklisted, c.Animated)
	}

	sb.WriteString("\n")
	categories := "categories"
	if len(r.Categories) == 1 {
		categories = "category"
	}
	if r.Written {
		fmt.Fprintf(&sb, "**%d emojis** in %d %s written to `%s` (namespace `%s`).\n",
			r.EmojiCount(), len(r.Categories), categories, r.OutputDir, r.Namespace)
	} else {
		fmt.Fprintf(&sb, "**%d emojis** in %d %s checked, nothing written.\n",
			r.EmojiCount(), len(r.Categories), categories)
	}
	return sb.String()
}
