// Package crates provides an HTTP client for the crates.io API.
//
// # Overview
//
// This package fetches crate metadata from crates.io (https://crates.io),
// the Rust community's package registry, or from any registry serving the
// same API under a different base URL.
//
// # Usage
//
//	client := crates.NewClient(crates.Options{})
//
//	crate, err := client.FetchCrate(ctx, "serde")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	meta := crate.Metadata(client.BaseURL())
//	url, err := links.Resolve(meta, links.Repository)
//
// # CrateInfo
//
// [Client.FetchCrate] returns a [CrateInfo] containing:
//
//   - Name, Version: Crate identity (max_version from API)
//   - Description, License, Downloads: Summary data
//   - HomePage, Repository, Documentation: Author-supplied links (may be empty)
//
// # Requests
//
// Each fetch is a single GET to <base>/api/v1/crates/<name> with no retry
// and no cache. The client includes a User-Agent header as requested by
// crates.io policy.
package crates
