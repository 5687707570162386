package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/matzehuels/thankyou/pkg/deps"
	"github.com/matzehuels/thankyou/pkg/errors"
)

func ptr(s string) *string { return &s }

func TestWriteJSON(t *testing.T) {
	records := []deps.Record{
		{Name: "left-pad", Version: "1.0.0", Description: ptr("pad"), HomePage: ptr("https://x"), License: ptr("MIT")},
		{Name: "bare", Version: "^2"},
	}

	var buf bytes.Buffer
	if err := WriteJSON(records, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	want := `[
  {
    "name": "left-pad",
    "version": "1.0.0",
    "description": "pad",
    "url": "https://x",
    "license": "MIT"
  },
  {
    "name": "bare",
    "version": "^2",
    "description": null,
    "url": null,
    "license": null
  }
]
`
	if got := buf.String(); got != want {
		t.Errorf("WriteJSON output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	for _, records := range [][]deps.Record{nil, {}} {
		var buf bytes.Buffer
		if err := WriteJSON(records, &buf); err != nil {
			t.Fatalf("WriteJSON: %v", err)
		}
		if got := buf.String(); got != "[]\n" {
			t.Errorf("WriteJSON(%v) = %q, want %q", records, got, "[]\n")
		}
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultOutputFile)

	first := []deps.Record{{Name: "a", Version: "1"}, {Name: "b", Version: "2"}, {Name: "c", Version: "3"}}
	if err := ExportJSON(first, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	second := []deps.Record{{Name: "z", Version: "9"}}
	if err := ExportJSON(second, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []deps.Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Name != "z" {
		t.Errorf("file not fully overwritten: %s", data)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the output file", len(entries))
	}
}

func TestExportJSON_MatchesWriteJSON(t *testing.T) {
	records := []deps.Record{{Name: "serde", Version: "1.0", License: ptr("MIT OR Apache-2.0")}}
	path := filepath.Join(t.TempDir(), "out.json")

	if err := ExportJSON(records, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(records, &buf); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if !bytes.Equal(data, buf.Bytes()) {
		t.Errorf("file content differs from WriteJSON output:\n%s\nvs\n%s", data, buf.Bytes())
	}
}

func TestExportJSON_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefaultOutputFile)

	err := ExportJSON(nil, path)
	if !errors.Is(err, errors.ErrCodeWriteFailed) {
		t.Errorf("ExportJSON() error = %v, want WRITE_FAILED", err)
	}
}

func TestExportJSON_KeepsExistingMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), DefaultOutputFile)
	if err := os.WriteFile(path, []byte("[]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := ExportJSON([]deps.Record{{Name: "a", Version: "1"}}, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("mode = %o, want 600", got)
	}
}

func TestExportJSON_NewFileHonorsUmask(t *testing.T) {
	dir := t.TempDir()

	// os.Create uses 0666 minus the umask, the same as any new file.
	ref, err := os.Create(filepath.Join(dir, "reference"))
	if err != nil {
		t.Fatal(err)
	}
	ref.Close()
	want, err := os.Stat(ref.Name())
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, DefaultOutputFile)
	if err := ExportJSON(nil, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mode().Perm() != want.Mode().Perm() {
		t.Errorf("mode = %o, want %o", got.Mode().Perm(), want.Mode().Perm())
	}
}

func TestExportJSON_FollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "attribution.json")
	if err := os.WriteFile(target, []byte("[]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, DefaultOutputFile)
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if err := ExportJSON([]deps.Record{{Name: "serde", Version: "1.0"}}, link); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("symlink was replaced by a regular file")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	var got []deps.Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("target is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Name != "serde" {
		t.Errorf("target content = %s", data)
	}
}
