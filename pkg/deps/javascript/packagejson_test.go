package javascript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/thankyou/pkg/deps"
	"github.com/matzehuels/thankyou/pkg/errors"
)

func TestPackageJSON_Parse(t *testing.T) {
	path := writeManifest(t, `{
  "name": "my-package",
  "version": "1.0.0",
  "dependencies": {
    "zod": "^3.22.0",
    "express": "^4.18.0",
    "lodash": "4.17.21",
    "local": {"path": "../local"}
  },
  "devDependencies": {
    "jest": "^29.0.0"
  }
}`)

	entries, err := (&PackageJSON{}).Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []deps.Dependency{
		{Name: "zod", Version: "^3.22.0"},
		{Name: "express", Version: "^4.18.0"},
		{Name: "lodash", Version: "4.17.21"},
		{Name: "local", Version: ""},
	}
	assertEntries(t, entries, want)
}

func TestPackageJSON_ParseDuplicateKeys(t *testing.T) {
	path := writeManifest(t, `{"dependencies": {"a": "1", "b": "2", "a": "3"}}`)

	entries, err := (&PackageJSON{}).Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	assertEntries(t, entries, []deps.Dependency{{Name: "a", Version: "3"}, {Name: "b", Version: "2"}})
}

func TestPackageJSON_ParseNoDependencies(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing section", `{"name": "empty"}`},
		{"null section", `{"dependencies": null}`},
		{"array section", `{"dependencies": ["left-pad"]}`},
		{"string section", `{"dependencies": "none"}`},
		{"empty object", `{"dependencies": {}}`},
		{"top-level array", `[1, 2, 3]`},
		{"numeric name", `{"name": 5, "version": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := (&PackageJSON{}).Parse(writeManifest(t, tt.content))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("got %d entries, want 0", len(entries))
			}
		})
	}
}

func TestPackageJSON_ParseInvalid(t *testing.T) {
	path := writeManifest(t, `{"dependencies": {"left-pad": "1.0.0",}`)

	_, err := (&PackageJSON{}).Parse(path)
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("Parse() error = %v, want INVALID_MANIFEST", err)
	}
}

func TestPackageJSON_ParseMissingFile(t *testing.T) {
	_, err := (&PackageJSON{}).Parse(filepath.Join(t.TempDir(), "package.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Parse() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestPackageJSON_Type(t *testing.T) {
	if got := (&PackageJSON{}).Type(); got != "package.json" {
		t.Errorf("Type() = %q, want %q", got, "package.json")
	}
}

func TestLanguage(t *testing.T) {
	if Language.Kind != deps.KindJSON {
		t.Errorf("Kind = %v, want json", Language.Kind)
	}
	if Language.ManifestFile != "package.json" {
		t.Errorf("ManifestFile = %q", Language.ManifestFile)
	}
	if got := Language.NewManifest().Type(); got != Language.ManifestFile {
		t.Errorf("NewManifest().Type() = %q, want %q", got, Language.ManifestFile)
	}
	if Language.NewFetcher(nil) == nil {
		t.Error("NewFetcher() returned nil")
	}
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertEntries(t *testing.T, got, want []deps.Dependency) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}
}
