package links

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind identifies one of the outbound pages a crate can expose.
type Kind int

const (
	Homepage Kind = iota
	Repository
	Documentation
	CratePage
)

// Default is the kind used when no token is given.
const Default = Homepage

// kinds lists every Kind with its accepted tokens, short form first.
// The second token is the canonical name returned by [Kind.String].
var kinds = []struct {
	kind   Kind
	label  string
	tokens [2]string
}{
	{Homepage, "Homepage", [2]string{"h", "homepage"}},
	{Repository, "Repository", [2]string{"r", "repository"}},
	{Documentation, "Documentation", [2]string{"d", "documentation"}},
	{CratePage, "Crate page", [2]string{"c", "crate"}},
}

// String returns the canonical token for k (e.g. "homepage").
func (k Kind) String() string {
	for _, e := range kinds {
		if e.kind == k {
			return e.tokens[1]
		}
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Label returns a human-readable name for k (e.g. "Crate page").
func (k Kind) Label() string {
	for _, e := range kinds {
		if e.kind == k {
			return e.label
		}
	}
	return k.String()
}

// Kinds returns all link kinds in table order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i, e := range kinds {
		out[i] = e.kind
	}
	return out
}

// Tokens returns every accepted token in table order.
func Tokens() []string {
	out := make([]string, 0, 2*len(kinds))
	for _, e := range kinds {
		out = append(out, e.tokens[:]...)
	}
	return out
}

// ParseKind maps a user token to a Kind.
//
// Matching is case-insensitive and exact: only the tokens listed by
// [Tokens] are accepted, with no prefix matching. Any other input,
// including the empty string, yields an [*UnknownKindError].
func ParseKind(token string) (Kind, error) {
	lower := strings.ToLower(token)
	for _, e := range kinds {
		if lower == e.tokens[0] || lower == e.tokens[1] {
			return e.kind, nil
		}
	}
	return 0, &UnknownKindError{Token: token, Suggestions: Suggest(token)}
}

// Metadata is the set of links known for one crate.
// Empty link fields mean the crate author did not supply them.
type Metadata struct {
	Name          string
	Homepage      string
	Repository    string
	Documentation string
	CratePage     string // Registry page, always set (see [CratePageURL])
}

// CratePageURL builds the registry page URL for a crate on site,
// e.g. "https://crates.io/crates/serde".
func CratePageURL(site, name string) string {
	return strings.TrimRight(site, "/") + "/crates/" + url.PathEscape(name)
}

// Resolve returns the URL of the requested kind.
//
// CratePage always succeeds. The other kinds fail with an
// [*UnavailableError] when the field is empty; there is no fallback to
// another kind.
func Resolve(meta Metadata, kind Kind) (string, error) {
	var link string
	switch kind {
	case CratePage:
		return meta.CratePage, nil
	case Homepage:
		link = meta.Homepage
	case Repository:
		link = meta.Repository
	case Documentation:
		link = meta.Documentation
	default:
		return "", &UnknownKindError{Token: kind.String()}
	}
	if link == "" {
		return "", &UnavailableError{Kind: kind, Package: meta.Name}
	}
	return link, nil
}

// ResolveToken parses token and resolves it against meta.
func ResolveToken(meta Metadata, token string) (string, error) {
	kind, err := ParseKind(token)
	if err != nil {
		return "", err
	}
	return Resolve(meta, kind)
}

// Link is one available link with its kind.
type Link struct {
	Kind Kind
	URL  string
}

// Available returns the author-supplied links that are present, in the
// order homepage, documentation, repository. The crate page is omitted.
func (m Metadata) Available() []Link {
	var out []Link
	for _, k := range []Kind{Homepage, Documentation, Repository} {
		if u, err := Resolve(m, k); err == nil {
			out = append(out, Link{Kind: k, URL: u})
		}
	}
	return out
}

// String summarizes the crate and its links on one line, e.g.
// "Crate serde, Homepage: https://serde.rs, Repository: https://...".
func (m Metadata) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Crate %s", m.Name)
	avail := m.Available()
	for _, l := range avail {
		fmt.Fprintf(&b, ", %s: %s", l.Kind.Label(), l.URL)
	}
	if len(avail) == 0 {
		b.WriteString(", No links provided")
	}
	return b.String()
}
