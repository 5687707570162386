package javascript

import (
	"context"
	"net/http"

	"github.com/matzehuels/thankyou/pkg/deps"
	"github.com/matzehuels/thankyou/pkg/integrations/npm"
)

// Language provides JavaScript/TypeScript attribution via npm.
// Supports package.json manifest files.
var Language = &deps.Language{
	Name:         "javascript",
	Kind:         deps.KindJSON,
	Registry:     "npm",
	ManifestFile: "package.json",
	NewManifest:  func() deps.ManifestParser { return &PackageJSON{} },
	NewFetcher:   newFetcher,
}

func newFetcher(hc *http.Client) deps.Fetcher {
	return fetcher{npm.NewClient(hc)}
}

type fetcher struct{ *npm.Client }

func (f fetcher) Fetch(ctx context.Context, name string) (*deps.Package, error) {
	m, err := f.FetchPackage(ctx, name)
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
