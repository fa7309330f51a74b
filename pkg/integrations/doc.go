// Package integrations provides the HTTP plumbing for package registry APIs.
//
// # Overview
//
// Registry clients live in subpackages and share the [Client] type defined
// here:
//
//   - [crates]: Rust crates.io
//
// # Client Pattern
//
//	client := crates.NewClient(crates.Options{})
//	info, err := client.FetchCrate(ctx, "serde")
//
// [Client] performs one GET per call, sets default headers, bounds the
// request with a fixed timeout, and decodes JSON. It never retries and never
// caches: a command-line invocation makes exactly one round trip.
//
// # Errors
//
// Failures are reported through three sentinels so callers can tell them
// apart with errors.Is:
//
//   - [ErrNotFound]: the registry answered 404
//   - [ErrNetwork]: transport failure, timeout, or any other non-200 status
//   - [ErrParse]: the body was not valid JSON for the target type
//
// [crates]: github.com/matzehuels/cratelink/pkg/integrations/crates
package integrations
