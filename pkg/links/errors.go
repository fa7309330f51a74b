package links

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	errs "github.com/matzehuels/cratelink/pkg/errors"
)

// UnknownKindError is returned when a token matches no link kind.
type UnknownKindError struct {
	Token       string   // Token as given by the user
	Suggestions []string // Closest canonical tokens, best first (may be empty)
}

func (e *UnknownKindError) Error() string {
	msg := fmt.Sprintf("unknown link kind %q (valid: %s)", e.Token, strings.Join(Tokens(), ", "))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestions[0])
	}
	return msg
}

// Code returns [errs.ErrCodeUnknownLinkKind].
func (e *UnknownKindError) Code() errs.Code { return errs.ErrCodeUnknownLinkKind }

// UnavailableError is returned when a crate does not provide the
// requested link.
type UnavailableError struct {
	Kind    Kind
	Package string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("crate %q has no %s link", e.Package, e.Kind)
}

// Code returns [errs.ErrCodeLinkNotAvailable].
func (e *UnavailableError) Code() errs.Code { return errs.ErrCodeLinkNotAvailable }

const maxSuggestions = 2

// Suggest returns up to two canonical tokens that fuzzily match token,
// best first. It is used for error hints only and never affects parsing.
func Suggest(token string) []string {
	token = strings.ToLower(token)
	if token == "" {
		return nil
	}
	names := make([]string, len(kinds))
	for i, e := range kinds {
		names[i] = e.tokens[1]
	}
	matches := fuzzy.Find(token, names)
	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
