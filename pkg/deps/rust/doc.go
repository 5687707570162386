// Package rust provides attribution for Rust crates.
//
// # Overview
//
// This package implements [deps.Language] for Rust, supporting:
//
//   - Cargo.toml manifest parsing
//   - crates.io lookups via the [crates] client
//
// # Manifest Parsing
//
//	parser := rust.Language.NewManifest()
//	entries, _ := parser.Parse("Cargo.toml")
//
// Only dependencies declared as a plain version string are listed:
//
//	[dependencies]
//	serde = "1.0"                                     # listed
//	tokio = { version = "1", features = ["full"] }    # skipped
//
// [crates]: github.com/matzehuels/thankyou/pkg/integrations/crates
// [deps.Language]: github.com/matzehuels/thankyou/pkg/deps.Language
package rust
