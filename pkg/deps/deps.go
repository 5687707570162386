package deps

import "context"

// Options configures how a dependency list is collected.
type Options struct {
	Logger   func(string, ...any)                  // Failure notices (optional)
	Progress func(current, total int, name string) // Called after each successful lookup (optional)
}

// WithDefaults returns a copy of Options with nil callbacks replaced by no-ops.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	if opts.Progress == nil {
		opts.Progress = func(int, int, string) {}
	}
	return opts
}

// Dependency is one name/version pair declared in a manifest.
// Version is the declared text; it is never validated or normalized.
type Dependency struct {
	Name    string
	Version string
}

// String returns a human-readable representation.
func (d Dependency) String() string {
	return d.Name + "@" + d.Version
}

// Package holds the attribution metadata a registry publishes for one package.
// Nil fields were not published.
type Package struct {
	Name        string
	Description *string
	HomePage    *string
	License     *string
}

// Fetcher retrieves package metadata from a registry.
type Fetcher interface {
	// Fetch performs a single registry lookup for name.
	Fetch(ctx context.Context, name string) (*Package, error)
}

// FetcherFunc adapts a function to the [Fetcher] interface.
type FetcherFunc func(ctx context.Context, name string) (*Package, error)

// Fetch calls f(ctx, name).
func (f FetcherFunc) Fetch(ctx context.Context, name string) (*Package, error) {
	return f(ctx, name)
}

// Record is one entry of the attribution list. Optional fields serialize as
// null when the registry did not publish them.
type Record struct {
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Description *string `json:"description"`
	HomePage    *string `json:"url"`
	License     *string `json:"license"`
}

// NewRecord combines a manifest entry with the metadata fetched for it.
func NewRecord(dep Dependency, pkg *Package) Record {
	r := Record{Name: dep.Name, Version: dep.Version}
	if pkg != nil {
		r.Description = pkg.Description
		r.HomePage = pkg.HomePage
		r.License = pkg.License
	}
	return r
}
