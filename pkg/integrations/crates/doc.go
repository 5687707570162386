// Package crates provides an HTTP client for the crates.io API.
//
// # Overview
//
// This package fetches crate metadata from crates.io (https://crates.io),
// the Rust community's package registry.
//
// # Usage
//
//	client := crates.NewClient(integrations.NewHTTPClient())
//
//	meta, err := client.FetchCrate(ctx, "serde")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Fields
//
// [Client.FetchCrate] reads "description", "homepage" and "license" from the
// "crate" object. crates.io reports licenses as SPDX expressions
// (e.g. "MIT OR Apache-2.0"), which are kept verbatim. Unlike the crates.io
// website, most crates publish no homepage, so HomePage is frequently nil.
//
// # User-Agent
//
// The client sends a fixed User-Agent header as requested by crates.io policy.
package crates
