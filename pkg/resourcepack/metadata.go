// SPDX-License-Identifier: MPL-2.0

package resourcepack

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emojipack/emojipack/pkg/manifest"
)

// ErrCodepointCount is returned when entries and codepoints differ in length.
var ErrCodepointCount = errors.New("entry and codepoint counts differ")

type (
	// Metadata is the content of emojis/<category>.json.
	Metadata struct {
		// Blacklist holds the codepoints of blacklisted emojis in ordinal order.
		Blacklist []string `json:"blacklist"`
		// Emojis is keyed by codepoint in ordinal order.
		Emojis EmojiTable `json:"emojis"`
	}

	// EmojiTable is an ordered codepoint to record mapping. It serializes as
	// a JSON object whose keys keep slice order.
	EmojiTable []EmojiRecord

	// EmojiRecord describes the emoji rendered by one codepoint.
	EmojiRecord struct {
		Codepoint rune
		Names     []string
		Shortcuts []string
		// Frames and FrameTime are zero for still emojis.
		Frames    int
		FrameTime int
	}

	// recordDoc is the JSON shape of one EmojiRecord value.
	recordDoc struct {
		Names     []string `json:"names"`
		Shortcuts []string `json:"shortcuts"`
		Frames    int      `json:"frames,omitempty"`
		FrameTime int      `json:"frametime,omitempty"`
	}
)

// NewMetadata pairs entries with their codepoints by ordinal. The two slices
// must have the same length.
func NewMetadata(entries []manifest.Entry, codepoints []rune) (*Metadata, error) {
	if len(entries) != len(codepoints) {
		return nil, fmt.Errorf("%w: %d entries, %d codepoints", ErrCodepointCount, len(entries), len(codepoints))
	}

	md := &Metadata{
		Blacklist: []string{},
		Emojis:    make(EmojiTable, 0, len(entries)),
	}
	for i, e := range entries {
		cp := codepoints[i]
		if e.Blacklisted {
			md.Blacklist = append(md.Blacklist, string(cp))
		}

		rec := EmojiRecord{
			Codepoint: cp,
			Names:     e.Names,
			Shortcuts: e.Shortcuts,
		}
		if rec.Shortcuts == nil {
			rec.Shortcuts = []string{}
		}
		if e.Animation != nil {
			rec.Frames = e.Animation.FrameCount
			rec.FrameTime = e.Animation.FrameTime
		}
		md.Emojis = append(md.Emojis, rec)
	}
	return md, nil
}

// MarshalJSON writes the table as an object keyed by the literal codepoint
// character, in slice order.
func (t EmojiTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rec := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := Marshal(string(rec.Codepoint))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := Marshal(recordDoc{
			Names:     rec.Names,
			Shortcuts: rec.Shortcuts,
			Frames:    rec.Frames,
			FrameTime: rec.FrameTime,
		})
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
