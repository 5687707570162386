// Package pkg provides the libraries behind the thankyou attribution tool.
//
// # Overview
//
// thankyou reads a project's manifest, looks up every direct dependency in
// its public registry and writes an attribution list. The pkg directory is
// organized into these areas:
//
//  1. [deps] - Manifest discovery, parsing and the lookup loop
//  2. [integrations] - Registry API clients (npm, crates.io)
//  3. [io] - JSON output
//  4. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Data Flow
//
//	Project directory
//	         ↓
//	[deps.Locate] → package.json or Cargo.toml
//	         ↓
//	[deps.ManifestParser] → []deps.Dependency (file order)
//	         ↓
//	[deps.Collect] → one registry request per dependency
//	         ↓
//	[io.WriteJSON] / [io.ExportJSON] → thankyoulist.json
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/thankyou/pkg/deps"
//	    "github.com/matzehuels/thankyou/pkg/deps/javascript"
//	    "github.com/matzehuels/thankyou/pkg/deps/rust"
//	    "github.com/matzehuels/thankyou/pkg/integrations"
//	    "github.com/matzehuels/thankyou/pkg/io"
//	)
//
//	lang, path, err := deps.Locate(".", javascript.Language, rust.Language)
//	if err != nil {
//	    return err
//	}
//	entries, err := lang.NewManifest().Parse(path)
//	if err != nil {
//	    return err
//	}
//	fetcher := lang.NewFetcher(integrations.NewHTTPClient())
//	records, err := deps.Collect(ctx, entries, fetcher, deps.Options{})
//	if err != nil {
//	    return err
//	}
//	return io.ExportJSON(records, io.DefaultOutputFile)
//
// # Adding an Ecosystem
//
// Each ecosystem is a [deps.Language] value: a manifest file name, a parser
// and a fetcher built on [integrations.Client]. See [deps/javascript] and
// [deps/rust] for the two shipped implementations.
//
// [deps]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/deps
// [deps/javascript]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/deps/javascript
// [deps/rust]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/deps/rust
// [integrations]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/integrations
// [io]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/buildinfo
// [deps.Locate]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/deps#Locate
// [deps.ManifestParser]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/deps#ManifestParser
// [deps.Collect]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/deps#Collect
// [deps.Language]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/deps#Language
// [io.WriteJSON]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/io#WriteJSON
// [io.ExportJSON]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/io#ExportJSON
// [integrations.Client]: https://pkg.go.dev/github.com/matzehuels/thankyou/pkg/integrations#Client
package pkg
