// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/emojipack/emojipack/pkg/atlas"
)

const sampleManifest = `
[smileys.emojis]
grin = ["grin", "grinning"]
wink = { names = ["wink"], shortcuts = [";)"] }
blush = { names = ["blush"], blacklisted = true }

[animals.emojis]
cat = { names = ["cat"], frames = { count = 4, time = 2 } }
"red-panda" = ["red panda"]
ant = ["ant"]
`

func TestParse(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte(sampleManifest), "emojis.toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := len(m.Categories); got != 2 {
		t.Fatalf("len(Categories) = %d, want 2", got)
	}
	if m.Categories[0].Name != "smileys" || m.Categories[1].Name != "animals" {
		t.Errorf("category order = [%s %s], want [smileys animals]", m.Categories[0].Name, m.Categories[1].Name)
	}

	smileys := m.Categories[0]
	wantKeys := []EmojiKey{"grin", "wink", "blush"}
	if got := smileys.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("smileys keys = %v, want %v", got, wantKeys)
	}

	grin := smileys.Entries[0]
	if !reflect.DeepEqual(grin.Names, []string{"grin", "grinning"}) {
		t.Errorf("grin names = %v", grin.Names)
	}
	if grin.Shortcuts == nil || len(grin.Shortcuts) != 0 {
		t.Errorf("grin shortcuts = %#v, want empty non-nil slice", grin.Shortcuts)
	}
	if grin.Blacklisted || grin.IsAnimated() {
		t.Errorf("grin should default to not blacklisted and not animated: %+v", grin)
	}

	wink := smileys.Entries[1]
	if !reflect.DeepEqual(wink.Shortcuts, []string{";)"}) {
		t.Errorf("wink shortcuts = %v", wink.Shortcuts)
	}

	if !smileys.Entries[2].Blacklisted {
		t.Error("blush should be blacklisted")
	}

	animals := m.Categories[1]
	wantAnimalKeys := []EmojiKey{"cat", "red-panda", "ant"}
	if got := animals.Keys(); !reflect.DeepEqual(got, wantAnimalKeys) {
		t.Errorf("animals keys = %v, want %v", got, wantAnimalKeys)
	}
	cat := animals.Entries[0]
	if cat.Animation == nil {
		t.Fatal("cat should be animated")
	}
	if cat.Animation.FrameCount != 4 || cat.Animation.FrameTime != 2 {
		t.Errorf("cat animation = %+v, want {4 2}", *cat.Animation)
	}

	if got := m.EmojiCount(); got != 6 {
		t.Errorf("EmojiCount() = %d, want 6", got)
	}
}

func TestParseShorthandMatchesExplicitObject(t *testing.T) {
	t.Parallel()

	bare, err := Parse([]byte(`
[c.emojis]
a = ["alpha", "first"]
`), "bare.toml")
	if err != nil {
		t.Fatalf("Parse(bare) error = %v", err)
	}

	explicit, err := Parse([]byte(`
[c.emojis]
a = { names = ["alpha", "first"], shortcuts = [], blacklisted = false }
`), "explicit.toml")
	if err != nil {
		t.Fatalf("Parse(explicit) error = %v", err)
	}

	if !reflect.DeepEqual(bare.Categories, explicit.Categories) {
		t.Errorf("bare and explicit forms differ:\n bare     = %+v\n explicit = %+v", bare.Categories, explicit.Categories)
	}
}

func TestParseTableSyntax(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte(`
[flags.emojis.pirate]
names = ["pirate flag"]
shortcuts = [":pirate:"]

[flags.emojis.rainbow]
names = ["rainbow flag"]

[flags.emojis.rainbow.frames]
count = 8
time = 1
`), "")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.FilePath != FileName {
		t.Errorf("FilePath = %q, want default %q", m.FilePath, FileName)
	}

	flags, ok := m.Category("flags")
	if !ok {
		t.Fatal("Category(flags) not found")
	}
	if got := flags.Keys(); !reflect.DeepEqual(got, []EmojiKey{"pirate", "rainbow"}) {
		t.Errorf("keys = %v", got)
	}
	if a := flags.Entries[1].Animation; a == nil || a.FrameCount != 8 || a.FrameTime != 1 {
		t.Errorf("rainbow animation = %+v", a)
	}

	if _, ok := m.Category("missing"); ok {
		t.Error("Category(missing) should not be found")
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		wantErr  string
		sentinel error
	}{
		{
			name:    "malformed TOML",
			data:    "[smileys.emojis\n",
			wantErr: "emojis.toml",
		},
		{
			name:    "empty names list",
			data:    "[c.emojis]\na = []\n",
			wantErr: "c.emojis.a",
		},
		{
			name:    "object without names",
			data:    "[c.emojis]\na = { shortcuts = [\"x\"] }\n",
			wantErr: "c.emojis.a",
		},
		{
			name:    "zero frame count",
			data:    "[c.emojis]\na = { names = [\"a\"], frames = { count = 0, time = 1 } }\n",
			wantErr: "c.emojis.a",
		},
		{
			name:    "negative frame time",
			data:    "[c.emojis]\na = { names = [\"a\"], frames = { count = 1, time = -2 } }\n",
			wantErr: "c.emojis.a",
		},
		{
			name:    "unknown entry field",
			data:    "[c.emojis]\na = { names = [\"a\"], colour = \"red\" }\n",
			wantErr: "c.emojis.a",
		},
		{
			name:    "unknown category field",
			data:    "[c]\nicon = \"a\"\n[c.emojis]\na = [\"a\"]\n",
			wantErr: "c.icon",
		},
		{
			name:    "blacklisted not a bool",
			data:    "[c.emojis]\na = { names = [\"a\"], blacklisted = \"yes\" }\n",
			wantErr: "c.emojis.a",
		},
		{
			name:     "category without emojis",
			data:     "[c.emojis]\n",
			wantErr:  "declares no emojis",
			sentinel: ErrInvalidManifest,
		},
		{
			name:     "category without emojis table",
			data:     "[c]\n",
			wantErr:  "declares no emojis",
			sentinel: ErrInvalidManifest,
		},
		{
			name:     "emoji key with path separator",
			data:     "[c.emojis]\n\"../escape\" = [\"a\"]\n",
			wantErr:  "invalid emoji key",
			sentinel: ErrInvalidEmojiKey,
		},
		{
			name:     "category name with path separator",
			data:     "[\"a/b\".emojis]\nx = [\"x\"]\n",
			wantErr:  "invalid category name",
			sentinel: ErrInvalidCategoryName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), "emojis.toml")
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("error should wrap %v, got %v", tt.sentinel, err)
			}
		})
	}
}

func TestParseTooManyEmojis(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("[big.emojis]\n")
	for i := range MaxEmojisPerCategory + 1 {
		fmt.Fprintf(&sb, "e%d = [\"e%d\"]\n", i, i)
	}

	_, err := Parse([]byte(sb.String()), "emojis.toml")
	if err == nil {
		t.Fatal("Parse() expected error for oversized category")
	}
	if !errors.Is(err, ErrInvalidManifest) {
		t.Errorf("error should wrap ErrInvalidManifest, got %v", err)
	}
	if !strings.Contains(err.Error(), "private use area") {
		t.Errorf("error should mention the private use area, got %v", err)
	}
}

func TestMaxEmojisFillsPrivateUseArea(t *testing.T) {
	t.Parallel()

	if MaxEmojisPerCategory != atlas.MaxCodepoints {
		t.Errorf("MaxEmojisPerCategory = %d, want atlas.MaxCodepoints %d", MaxEmojisPerCategory, atlas.MaxCodepoints)
	}
	if err := atlas.CheckCapacity(MaxEmojisPerCategory); err != nil {
		t.Errorf("the largest legal category must fit the packer: %v", err)
	}
	if got := atlas.Codepoint(MaxEmojisPerCategory - 1); got != atlas.LastCodepoint {
		t.Errorf("last emoji codepoint = %U, want %U", got, atlas.LastCodepoint)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(sampleManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.FilePath != path {
		t.Errorf("FilePath = %q, want %q", m.FilePath, path)
	}

	if _, err := Load(filepath.Join(dir, "absent.toml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestCategoryNameIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  CategoryName
		valid bool
	}{
		{"smileys", true},
		{"people-and-body", true},
		{"", false},
		{"   ", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{`a\b`, false},
	}

	for _, tt := range tests {
		valid, errs := tt.name.IsValid()
		if valid != tt.valid {
			t.Errorf("CategoryName(%q).IsValid() = %v, want %v", tt.name, valid, tt.valid)
		}
		if !valid && (len(errs) != 1 || !errors.Is(errs[0], ErrInvalidCategoryName)) {
			t.Errorf("CategoryName(%q).IsValid() errors = %v", tt.name, errs)
		}
	}
}
