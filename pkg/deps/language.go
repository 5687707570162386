package deps

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/thankyou/pkg/errors"
)

// Kind tags the manifest format a [Language] reads.
type Kind int

const (
	KindJSON Kind = iota // package.json
	KindTOML             // Cargo.toml
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Language ties a manifest format to the registry its dependencies live in.
// Adding an ecosystem means adding one Language value.
type Language struct {
	Name         string
	Kind         Kind
	Registry     string
	ManifestFile string
	NewManifest  func() ManifestParser
	NewFetcher   func(hc *http.Client) Fetcher
}

// ManifestPath returns the path of this language's manifest inside dir.
func (l *Language) ManifestPath(dir string) string {
	return filepath.Join(dir, l.ManifestFile)
}

// Locate returns the first language, in the given priority order, whose
// manifest file exists in dir, along with the manifest's full path. It only
// checks for existence; the manifest is not read.
func Locate(dir string, langs ...*Language) (*Language, string, error) {
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		path := l.ManifestPath(dir)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return l, path, nil
		}
		names = append(names, l.ManifestFile)
	}
	return nil, "", errors.New(errors.ErrCodeManifestNotFound,
		"no %s found in %s", strings.Join(names, " or "), dir)
}
