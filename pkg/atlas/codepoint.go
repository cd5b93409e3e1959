// SPDX-License-Identifier: MPL-2.0

package atlas

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FirstCodepoint is the codepoint of tile 0, the start of the BMP
	// Private Use Area.
	FirstCodepoint rune = 0xE000
	// LastCodepoint is the last codepoint of the BMP Private Use Area.
	LastCodepoint rune = 0xF8FF
	// MaxCodepoints is the number of tiles one category can address.
	MaxCodepoints = int(LastCodepoint-FirstCodepoint) + 1
)

// ErrTooManyTiles is returned when more tiles are requested than there are
// private use codepoints.
var ErrTooManyTiles = errors.New("too many tiles for the private use area")

// CheckCapacity returns ErrTooManyTiles when n tiles cannot all be given a
// distinct codepoint.
func CheckCapacity(n int) error {
	if n > MaxCodepoints {
		return fmt.Errorf("%w: %d tiles, at most %d", ErrTooManyTiles, n, MaxCodepoints)
	}
	return nil
}

// Codepoint returns the codepoint assigned to tile i.
func Codepoint(i int) rune {
	return FirstCodepoint + rune(i)
}

// Codepoints returns the codepoints of tiles 0..n-1 in order.
func Codepoints(n int) []rune {
	cps := make([]rune, n)
	for i := range cps {
		cps[i] = Codepoint(i)
	}
	return cps
}

// Charmap slices codepoints into rows of cols characters, matching the
// row-major tile layout. Only rows holding at least one codepoint are
// returned, so the last row may be shorter than cols.
func Charmap(codepoints []rune, cols int) []string {
	if cols <= 0 || len(codepoints) == 0 {
		return []string{}
	}
	rows := make([]string, 0, (len(codepoints)+cols-1)/cols)
	for start := 0; start < len(codepoints); start += cols {
		end := min(start+cols, len(codepoints))
		var sb strings.Builder
		for _, cp := range codepoints[start:end] {
			sb.WriteRune(cp)
		}
		rows = append(rows, sb.String())
	}
	return rows
}
