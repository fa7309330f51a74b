// Package links resolves a crate's outbound URLs from registry metadata.
//
// # Overview
//
// A crate may expose up to four pages: its homepage, source repository,
// documentation, and its page on the registry itself. Users name the page
// they want with a short token on the command line; this package turns that
// token into a [Kind] and picks the matching URL from a [Metadata] value.
//
// # Tokens
//
// The token table is closed and matched case-insensitively:
//
//	h, homepage       → Homepage
//	r, repository     → Repository
//	d, documentation  → Documentation
//	c, crate          → CratePage
//
// Anything else fails with [*UnknownKindError]. Near misses such as "repo"
// are rejected too; [Suggest] offers the closest valid token for the error
// message, but parsing never guesses.
//
// # Resolution
//
// [Resolve] reads one field. The crate page is built from the crate name by
// [CratePageURL] and is always present. Homepage, repository, and
// documentation come from the crate author; when one is missing, [Resolve]
// returns [*UnavailableError] instead of falling back to a different page.
//
// Both functions are pure: the same inputs always give the same result.
package links
