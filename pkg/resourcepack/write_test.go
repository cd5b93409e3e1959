// SPDX-License-Identifier: MPL-2.0

package resourcepack

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSONOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "font.json")
	if err := os.WriteFile(path, []byte("stale content that is longer than the new one"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteJSON(path, map[string]int{"a": 1}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("file content = %q, want compact JSON without trailing newline", data)
	}
}

func TestWriteFileNamesPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "atlas.png")
	err := WriteFile(path, []byte{1})
	if err == nil {
		t.Fatal("WriteFile() into a missing directory should fail")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name %s", err, path)
	}
}

func TestWriteJSONEncodeError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := WriteJSON(path, func() {}); err == nil {
		t.Error("WriteJSON() of an unsupported value should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("nothing should be written when encoding fails")
	}
}
