// SPDX-License-Identifier: MPL-2.0

package build

import (
	"errors"
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/emojipack/emojipack/internal/imageload"
	"github.com/emojipack/emojipack/internal/testutil"
	"github.com/emojipack/emojipack/pkg/manifest"
	"github.com/emojipack/emojipack/pkg/resourcepack"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func loaded(key string, w, h int, c color.NRGBA) *imageload.Image {
	return &imageload.Image{
		Key:    manifest.EmojiKey(key),
		Width:  w,
		Height: h,
		Pixels: testutil.SolidImage(w, h, c),
	}
}

func smileys() manifest.Category {
	return manifest.Category{
		Name: "smileys",
		Entries: []manifest.Entry{
			{Key: "a", Names: []string{"a"}, Shortcuts: []string{}},
			{Key: "b", Names: []string{"b"}, Shortcuts: []string{}, Blacklisted: true},
			{Key: "c", Names: []string{"c"}, Shortcuts: []string{}, Animation: &manifest.Animation{FrameCount: 2, FrameTime: 3}},
		},
	}
}

func TestBuildCategorySmileys(t *testing.T) {
	t.Parallel()

	images := []*imageload.Image{loaded("a", 16, 16, red), loaded("b", 16, 16, green), loaded("c", 16, 16, blue)}
	art, err := BuildCategory("figura", smileys(), images)
	if err != nil {
		t.Fatalf("BuildCategory() error = %v", err)
	}

	if art.Grid.Rows != 2 || art.Grid.Cols != 2 {
		t.Errorf("grid = %s, want 2x2", art.Grid)
	}
	if got := art.Atlas.Bounds().Size(); got != image.Pt(32, 32) {
		t.Errorf("atlas size = %v, want 32x32", got)
	}
	if got := art.Atlas.NRGBAAt(16, 16); got.A != 0 {
		t.Errorf("empty cell pixel = %v, want transparent", got)
	}
	if got := art.Atlas.NRGBAAt(0, 16); got != blue {
		t.Errorf("tile c pixel = %v, want %v", got, blue)
	}

	provider := art.Font.Providers[0]
	if provider.File != "figura:font/emojis/smileys.png" || provider.Ascent != 16 {
		t.Errorf("provider = %+v", provider)
	}
	if want := []string{"\uE000\uE001", "\uE002"}; !reflect.DeepEqual(provider.Chars, want) {
		t.Errorf("chars = %q, want %q", provider.Chars, want)
	}

	if want := []string{"\uE001"}; !reflect.DeepEqual(art.Metadata.Blacklist, want) {
		t.Errorf("blacklist = %q, want %q", art.Metadata.Blacklist, want)
	}
	if len(art.Metadata.Emojis) != 3 {
		t.Fatalf("metadata has %d emojis, want 3", len(art.Metadata.Emojis))
	}
	for i, rec := range art.Metadata.Emojis {
		if rec.Codepoint != art.Codepoints[i] {
			t.Errorf("metadata key %d = %U, want %U", i, rec.Codepoint, art.Codepoints[i])
		}
	}
	if rec := art.Metadata.Emojis[2]; rec.Frames != 2 || rec.FrameTime != 3 {
		t.Errorf("c animation = %d/%d", rec.Frames, rec.FrameTime)
	}
}

// The chars rows, read row-major, must spell the codepoint sequence for any
// emoji count.
func TestBuildCategoryCharmapMatchesCodepoints(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 5, 10, 17} {
		category := manifest.Category{Name: "c"}
		images := make([]*imageload.Image, n)
		for i := range n {
			category.Entries = append(category.Entries, manifest.Entry{Key: manifest.EmojiKey(rune('a' + i)), Names: []string{"x"}, Shortcuts: []string{}})
			images[i] = loaded(string(rune('a'+i)), 2, 3, red)
		}

		art, err := BuildCategory("ns", category, images)
		if err != nil {
			t.Fatalf("n=%d: BuildCategory() error = %v", n, err)
		}

		chars := art.Font.Providers[0].Chars
		if len(chars) != art.Grid.OccupiedRows() {
			t.Errorf("n=%d: %d chars rows, want %d", n, len(chars), art.Grid.OccupiedRows())
		}
		var flat []rune
		for _, row := range chars {
			flat = append(flat, []rune(row)...)
		}
		if !reflect.DeepEqual(flat, art.Codepoints) {
			t.Errorf("n=%d: chars = %q, want codepoints %q", n, flat, art.Codepoints)
		}
		if art.Font.Providers[0].Ascent != 3 {
			t.Errorf("n=%d: ascent = %d, want tile height 3", n, art.Font.Providers[0].Ascent)
		}
	}
}

func TestBuildCategoryShorthandAndExplicitAgree(t *testing.T) {
	t.Parallel()

	bare, err := manifest.Parse([]byte("[c.emojis]\na = [\"alpha\"]\nb = [\"beta\"]\n"), "bare.toml")
	if err != nil {
		t.Fatal(err)
	}
	explicit, err := manifest.Parse([]byte("[c.emojis]\na = { names = [\"alpha\"] }\nb = { names = [\"beta\"], shortcuts = [], blacklisted = false }\n"), "explicit.toml")
	if err != nil {
		t.Fatal(err)
	}

	images := []*imageload.Image{loaded("a", 8, 8, red), loaded("b", 8, 8, green)}
	artBare, err := BuildCategory("figura", bare.Categories[0], images)
	if err != nil {
		t.Fatal(err)
	}
	artExplicit, err := BuildCategory("figura", explicit.Categories[0], images)
	if err != nil {
		t.Fatal(err)
	}

	for _, pair := range [][2]any{
		{artBare.Font, artExplicit.Font},
		{artBare.Metadata, artExplicit.Metadata},
	} {
		a, err := resourcepack.Marshal(pair[0])
		if err != nil {
			t.Fatal(err)
		}
		b, err := resourcepack.Marshal(pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("descriptors differ:\n bare     %s\n explicit %s", a, b)
		}
	}
}

func TestBuildCategoryErrors(t *testing.T) {
	t.Parallel()

	_, err := BuildCategory("figura", smileys(), []*imageload.Image{
		loaded("a", 16, 16, red), loaded("b", 16, 16, green), loaded("c", 16, 17, blue),
	})
	if !errors.Is(err, imageload.ErrDimensionMismatch) {
		t.Errorf("mismatch error = %v, want ErrDimensionMismatch", err)
	}

	_, err = BuildCategory("figura", smileys(), []*imageload.Image{loaded("a", 16, 16, red)})
	if err == nil {
		t.Error("BuildCategory() with missing images should fail")
	}
}
