// Package javascript provides attribution for npm packages.
//
// # Overview
//
// This package implements [deps.Language] for JavaScript/Node.js, supporting:
//
//   - package.json manifest parsing
//   - npm registry lookups via the [npm] client
//
// # Manifest Parsing
//
//	parser := javascript.Language.NewManifest()
//	entries, _ := parser.Parse("package.json")
//
// Only the "dependencies" object is read. Versions are returned exactly as
// declared ("^4.18.0", "latest", "github:user/repo", ...).
//
// [npm]: github.com/matzehuels/thankyou/pkg/integrations/npm
// [deps.Language]: github.com/matzehuels/thankyou/pkg/deps.Language
package javascript
