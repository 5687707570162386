// Package deps turns a project manifest into an attribution list.
//
// # Overview
//
// thankyou reads the direct dependencies of a project and asks the matching
// package registry who made them:
//
//   - Manifest files: package.json (npm), Cargo.toml (crates.io)
//   - Registries: one GET per dependency, no caching, no retries
//
// # Architecture
//
// The system has three layers:
//
//  1. Integrations ([integrations]): Low-level HTTP clients for each registry API
//  2. Language definitions (this package): Manifest/registry pairs
//  3. CLI ([internal/cli]): User-facing command and output
//
// # Locating a Manifest
//
// [Locate] checks a directory for each [Language]'s manifest in priority
// order and returns the first one present:
//
//	lang, path, err := deps.Locate(dir, javascript.Language, rust.Language)
//
// # Parsing
//
// Each Language provides a [ManifestParser] that returns the declared
// name/version pairs in file order. Only the top-level "dependencies"
// section is read.
//
// # Collecting
//
// [Collect] looks up each entry sequentially through a [Fetcher] and builds
// one [Record] per successful lookup. Failed lookups are logged and skipped.
//
//	hc := integrations.NewHTTPClient()
//	records, err := deps.Collect(ctx, entries, lang.NewFetcher(hc), deps.Options{
//	    Logger: logger.Warnf,
//	})
//
// # Supported Languages
//
//   - [javascript]: npm, package.json
//   - [rust]: crates.io, Cargo.toml
//
// [integrations]: github.com/matzehuels/thankyou/pkg/integrations
// [internal/cli]: github.com/matzehuels/thankyou/internal/cli
// [javascript]: github.com/matzehuels/thankyou/pkg/deps/javascript
// [rust]: github.com/matzehuels/thankyou/pkg/deps/rust
package deps
