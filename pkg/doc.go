// Package pkg holds the reusable libraries behind cratelink.
//
// # Overview
//
// cratelink opens a crate's homepage, repository, documentation, or
// crates.io page. The pkg directory is organized into:
//
//  1. [integrations] - Registry HTTP plumbing and the crates.io client
//  2. [links] - Mapping link-kind tokens to URLs in crate metadata
//  3. [errors] - Coded errors shared by every layer
//  4. [buildinfo] - Version information injected at build time
//
// # Architecture
//
//	crate name, kind token
//	         ↓
//	    [links] ParseKind (fails fast on unknown tokens)
//	         ↓
//	    [integrations/crates] FetchCrate (one GET, no retry, no cache)
//	         ↓
//	    [links] Resolve
//	         ↓
//	    URL for the browser
//
// # Quick Start
//
//	kind, err := links.ParseKind("r")
//	client := crates.NewClient(crates.Options{})
//	info, err := client.FetchCrate(ctx, "serde")
//	url, err := links.Resolve(info.Metadata(client.BaseURL()), kind)
//
// [integrations]: github.com/matzehuels/cratelink/pkg/integrations
// [integrations/crates]: github.com/matzehuels/cratelink/pkg/integrations/crates
// [links]: github.com/matzehuels/cratelink/pkg/links
// [errors]: github.com/matzehuels/cratelink/pkg/errors
// [buildinfo]: github.com/matzehuels/cratelink/pkg/buildinfo
package pkg
