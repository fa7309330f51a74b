package cli

import (
	"errors"
	"strings"

	errs "github.com/matzehuels/cratelink/pkg/errors"
)

var errorKinds = map[errs.Code]string{
	errs.ErrCodePackageNotFound:  "not found",
	errs.ErrCodeNetwork:          "network error",
	errs.ErrCodeParse:            "parse error",
	errs.ErrCodeUnknownLinkKind:  "unknown link kind",
	errs.ErrCodeLinkNotAvailable: "link not available",
	errs.ErrCodeInvalidInput:     "invalid input",
	errs.ErrCodeInvalidConfig:    "invalid config",
	errs.ErrCodeBrowser:          "browser error",
}

// FormatError renders err for the terminal, naming the failure kind first,
// e.g. `✗ not found: crate "foo" not found on https://crates.io`.
func FormatError(err error) string {
	prefix := styleIconError.Render(iconError) + " "
	kind, ok := errorKinds[errs.GetCode(err)]
	if !ok {
		return prefix + err.Error()
	}

	msg := errs.UserMessage(err)
	var e *errs.Error
	if errors.As(err, &e) && e.Cause != nil {
		switch e.Code {
		case errs.ErrCodeNetwork, errs.ErrCodeBrowser:
			msg += " (" + e.Cause.Error() + ")"
		case errs.ErrCodeInvalidConfig:
			msg += ": " + errs.UserMessage(e.Cause)
		}
	}

	if strings.HasPrefix(msg, kind) {
		msg = strings.TrimPrefix(strings.TrimPrefix(msg, kind), " ")
	}
	return prefix + styleErrorKind.Render(kind) + ": " + msg
}
