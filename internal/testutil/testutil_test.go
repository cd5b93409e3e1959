// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	red := color.NRGBA{R: 255, A: 255}
	WritePack(t, dir, "[c.emojis]\na = [\"a\"]\n",
		PackImage{Category: "c", Key: "a", Tile: Tile{Width: 3, Height: 2, Color: red}},
	)

	if got := string(MustReadFile(t, filepath.Join(dir, "emojis.toml"))); got != "[c.emojis]\na = [\"a\"]\n" {
		t.Errorf("manifest = %q", got)
	}

	img, err := png.Decode(bytes.NewReader(MustReadFile(t, filepath.Join(dir, "emojis", "c", "a.png"))))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got.X != 3 || got.Y != 2 {
		t.Errorf("image size = %v, want 3x2", got)
	}
	if got := color.NRGBAModel.Convert(img.At(2, 1)); got != red {
		t.Errorf("pixel = %v, want %v", got, red)
	}
}

func TestMustSetenv(t *testing.T) {
	const key = "EMOJIPACK_TESTUTIL_PROBE"
	restore := MustSetenv(t, key, "on")
	if got := os.Getenv(key); got != "on" {
		t.Errorf("%s = %q, want on", key, got)
	}
	restore()
	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s should be unset after restore", key)
	}
}
