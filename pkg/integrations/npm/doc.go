// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package fetches package documents from the npm registry
// (https://registry.npmjs.org) and extracts the attribution fields published
// at the top level of the document.
//
// # Usage
//
//	client := npm.NewClient(integrations.NewHTTPClient())
//
//	meta, err := client.FetchPackage(ctx, "express")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(*meta.Description)
//
// # Fields
//
// [Client.FetchPackage] reads "description", "homepage" and "license". A license
// given in the legacy object form ({"type": "MIT"}) is reduced to its type.
//
// Package names are appended to the registry URL without escaping, so scoped
// names such as "@types/node" are requested as-is.
package npm
