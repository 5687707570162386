// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// This package contains low-level API clients for fetching attribution
// metadata (description, homepage, license) from package registries. Each
// registry has its own subpackage:
//
//   - [npm]: Node Package Manager
//   - [crates]: Rust crates.io
//
// # Client Pattern
//
// All registry clients follow a consistent pattern:
//
//	hc := integrations.NewHTTPClient()
//	client := npm.NewClient(hc)
//	meta, err := client.FetchPackage(ctx, "express")
//
// The [http.Client] is built once by the caller and shared by every
// registry client. Each fetch is a single GET: responses are not cached and
// failed requests are not retried.
//
// # Missing Fields
//
// All clients apply the same policy: a field that is missing or null in the
// registry response is reported as nil in [Metadata]. A lookup only fails on
// transport errors, non-2xx responses, or an undecodable body.
//
// # Adding a New Registry
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Implement a Client returning [Metadata]
//  4. Use [NewClient] for HTTP
//  5. Wire into [deps] as a new language
//
// [npm]: github.com/matzehuels/thankyou/pkg/integrations/npm
// [crates]: github.com/matzehuels/thankyou/pkg/integrations/crates
// [deps]: github.com/matzehuels/thankyou/pkg/deps
package integrations
