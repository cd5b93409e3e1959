// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/emojipack/emojipack/pkg/cueutil"

	"cuelang.org/go/cue"
)

// FileName is the manifest file name inside an input directory.
const FileName = "emojis.toml"

//go:embed manifest_schema.cue
var manifestSchema string

type (
	// entryDoc mirrors the object form of an emoji after schema defaults
	// have been applied.
	entryDoc struct {
		Names       []string   `json:"names"`
		Shortcuts   []string   `json:"shortcuts"`
		Blacklisted bool       `json:"blacklisted"`
		Frames      *framesDoc `json:"frames,omitempty"`
	}

	framesDoc struct {
		Count int `json:"count"`
		Time  int `json:"time"`
	}
)

// Load reads and parses a manifest from the given path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse validates TOML manifest content against the embedded schema and
// normalizes every emoji to the canonical Entry shape.
//
// Categories and emoji keys keep their declaration order: they are read by
// iterating the unified CUE value, whose field order follows the source.
func Parse(data []byte, filename string) (*Manifest, error) {
	if filename == "" {
		filename = FileName
	}

	unified, err := cueutil.Parse(
		[]byte(manifestSchema),
		data,
		"#Manifest",
		cueutil.WithFilename(filename),
		cueutil.WithFormat(cueutil.FormatTOML),
	)
	if err != nil {
		return nil, err
	}

	m := &Manifest{FilePath: filename}

	categories, err := unified.Fields()
	if err != nil {
		return nil, cueutil.FormatError(err, filename)
	}
	for categories.Next() {
		name := CategoryName(categories.Selector().Unquoted())
		entries, err := decodeEntries(categories.Value().LookupPath(cue.ParsePath("emojis")))
		if err != nil {
			return nil, cueutil.FormatError(err, filename)
		}
		m.Categories = append(m.Categories, Category{Name: name, Entries: entries})
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// decodeEntries walks one category's emojis table in declaration order.
func decodeEntries(emojis cue.Value) ([]Entry, error) {
	iter, err := emojis.Fields()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for iter.Next() {
		entry, err := decodeEntry(EmojiKey(iter.Selector().Unquoted()), iter.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// decodeEntry normalizes either legal shape of an emoji into an Entry.
func decodeEntry(key EmojiKey, v cue.Value) (Entry, error) {
	if def, ok := v.Default(); ok {
		v = def
	}

	switch v.Kind() {
	case cue.ListKind:
		var names []string
		if err := v.Decode(&names); err != nil {
			return Entry{}, err
		}
		return Entry{Key: key, Names: names, Shortcuts: []string{}}, nil
	case cue.StructKind:
		var doc entryDoc
		if err := v.Decode(&doc); err != nil {
			return Entry{}, err
		}
		entry := Entry{
			Key:         key,
			Names:       doc.Names,
			Shortcuts:   doc.Shortcuts,
			Blacklisted: doc.Blacklisted,
		}
		if entry.Shortcuts == nil {
			entry.Shortcuts = []string{}
		}
		if doc.Frames != nil {
			entry.Animation = &Animation{FrameCount: doc.Frames.Count, FrameTime: doc.Frames.Time}
		}
		return entry, nil
	default:
		return Entry{}, fmt.Errorf("emoji %q: expected a list of names or an object, got %v", key, v.Kind())
	}
}
