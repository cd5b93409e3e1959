// SPDX-License-Identifier: MPL-2.0

package resourcepack

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/emojipack/emojipack/pkg/manifest"
)

// lookupRecord returns the record for a codepoint.
func lookupRecord(table EmojiTable, cp rune) (EmojiRecord, bool) {
	for _, rec := range table {
		if rec.Codepoint == cp {
			return rec, true
		}
	}
	return EmojiRecord{}, false
}

func TestNewMetadata(t *testing.T) {
	t.Parallel()

	entries := []manifest.Entry{
		{Key: "a", Names: []string{"alpha"}, Shortcuts: []string{}},
		{Key: "b", Names: []string{"beta", "b"}, Shortcuts: []string{":b:"}, Blacklisted: true},
		{Key: "c", Names: []string{"gamma"}, Shortcuts: []string{}, Animation: &manifest.Animation{FrameCount: 4, FrameTime: 2}},
		{Key: "d", Names: []string{"delta"}, Blacklisted: true},
	}
	cps := []rune{0xE000, 0xE001, 0xE002, 0xE003}

	md, err := NewMetadata(entries, cps)
	if err != nil {
		t.Fatalf("NewMetadata() error = %v", err)
	}

	data, err := Marshal(md)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "{\"blacklist\":[\"\uE001\",\"\uE003\"],\"emojis\":{" +
		"\"\uE000\":{\"names\":[\"alpha\"],\"shortcuts\":[]}," +
		"\"\uE001\":{\"names\":[\"beta\",\"b\"],\"shortcuts\":[\":b:\"]}," +
		"\"\uE002\":{\"names\":[\"gamma\"],\"shortcuts\":[],\"frames\":4,\"frametime\":2}," +
		"\"\uE003\":{\"names\":[\"delta\"],\"shortcuts\":[]}}}"
	if string(data) != want {
		t.Errorf("metadata JSON =\n %s\nwant\n %s", data, want)
	}

	if strings.Contains(string(data), `\u`) {
		t.Error("codepoints should be written as literal characters")
	}
}

func TestMetadataKeysFollowOrdinalOrder(t *testing.T) {
	t.Parallel()

	// More entries than a Go map would keep in insertion order by chance.
	n := 40
	entries := make([]manifest.Entry, n)
	cps := make([]rune, n)
	for i := range n {
		entries[i] = manifest.Entry{Names: []string{"e"}, Shortcuts: []string{}}
		cps[i] = 0xE000 + rune(i)
	}
	md, err := NewMetadata(entries, cps)
	if err != nil {
		t.Fatal(err)
	}
	data, err := Marshal(md)
	if err != nil {
		t.Fatal(err)
	}

	dec := json.NewDecoder(strings.NewReader(string(data)))
	var keys []rune
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch v := tok.(type) {
		case json.Delim:
			if v == '{' || v == '[' {
				depth++
			} else {
				depth--
			}
		case string:
			// Object keys of the emojis table sit at depth 2.
			if depth == 2 && len([]rune(v)) == 1 && []rune(v)[0] >= 0xE000 {
				keys = append(keys, []rune(v)[0])
			}
		}
	}

	if len(keys) != n {
		t.Fatalf("found %d codepoint keys, want %d", len(keys), n)
	}
	for i, k := range keys {
		if k != cps[i] {
			t.Fatalf("key %d = %U, want %U", i, k, cps[i])
		}
	}
}

func TestMetadataDoesNotEscapeHTML(t *testing.T) {
	t.Parallel()

	md, err := NewMetadata([]manifest.Entry{
		{Names: []string{"<3"}, Shortcuts: []string{"&heart>"}},
	}, []rune{0xE000})
	if err != nil {
		t.Fatal(err)
	}
	data, err := Marshal(md)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"names":["<3"],"shortcuts":["&heart>"]`) {
		t.Errorf("HTML characters should be kept literal, got %s", data)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	t.Parallel()

	md, err := NewMetadata([]manifest.Entry{
		{Names: []string{"x"}, Blacklisted: true, Animation: &manifest.Animation{FrameCount: 2, FrameTime: 5}},
	}, []rune{0xE000})
	if err != nil {
		t.Fatal(err)
	}
	data, err := Marshal(md)
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Blacklist []string `json:"blacklist"`
		Emojis    map[string]struct {
			Names     []string `json:"names"`
			Shortcuts []string `json:"shortcuts"`
			Frames    int      `json:"frames"`
			FrameTime int      `json:"frametime"`
		} `json:"emojis"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	rec, ok := doc.Emojis["\uE000"]
	if !ok {
		t.Fatalf("emojis has no U+E000 key: %s", data)
	}
	if rec.Frames != 2 || rec.FrameTime != 5 {
		t.Errorf("animation = %d/%d, want 2/5", rec.Frames, rec.FrameTime)
	}
	if rec.Shortcuts == nil {
		t.Error("shortcuts should be present as an empty list")
	}
	if len(doc.Blacklist) != 1 || doc.Blacklist[0] != "\uE000" {
		t.Errorf("blacklist = %q", doc.Blacklist)
	}

	if got, ok := lookupRecord(md.Emojis, 0xE000); !ok || got.Frames != 2 {
		t.Errorf("record U+E000 = %+v, %v", got, ok)
	}
	if _, ok := lookupRecord(md.Emojis, 0xE001); ok {
		t.Error("record U+E001 should be absent")
	}
}

func TestNewMetadataCountMismatch(t *testing.T) {
	t.Parallel()

	_, err := NewMetadata([]manifest.Entry{{Names: []string{"a"}}}, nil)
	if !errors.Is(err, ErrCodepointCount) {
		t.Errorf("NewMetadata() error = %v, want ErrCodepointCount", err)
	}
}

func TestEmptyMetadata(t *testing.T) {
	t.Parallel()

	md, err := NewMetadata(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := Marshal(md)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"blacklist":[],"emojis":{}}` {
		t.Errorf("empty metadata JSON = %s", data)
	}
}
