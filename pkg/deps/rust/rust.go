package rust

import (
	"context"
	"net/http"

	"github.com/matzehuels/thankyou/pkg/deps"
	"github.com/matzehuels/thankyou/pkg/integrations/crates"
)

// Language provides Rust attribution via crates.io.
// Supports Cargo.toml manifest files.
var Language = &deps.Language{
	Name:         "rust",
	Kind:         deps.KindTOML,
	Registry:     "crates.io",
	ManifestFile: "Cargo.toml",
	NewManifest:  func() deps.ManifestParser { return &CargoToml{} },
	NewFetcher:   newFetcher,
}

func newFetcher(hc *http.Client) deps.Fetcher {
	return fetcher{crates.NewClient(hc)}
}

type fetcher struct{ *crates.Client }

func (f fetcher) Fetch(ctx context.Context, name string) (*deps.Package, error) {
	m, err := f.FetchCrate(ctx, name)
	if err != nil {
		return nil, err
	}
	return &deps.Package{
		Name:        name,
		Description: m.Description,
		HomePage:    m.HomePage,
		License:     m.License,
	}, nil
}
