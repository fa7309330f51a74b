package cli

import (
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/browser"

	errs "github.com/matzehuels/cratelink/pkg/errors"
)

// newOpener returns the function used to launch URLs. A non-empty command
// (from the config file) is run with the URL appended as its last argument;
// otherwise the system browser is used. Opener output goes to w.
func newOpener(command string, w io.Writer) func(string) error {
	if fields := strings.Fields(command); len(fields) > 0 {
		return func(rawURL string) error {
			cmd := exec.Command(fields[0], append(fields[1:], rawURL)...)
			cmd.Stdout = w
			cmd.Stderr = w
			return cmd.Start()
		}
	}
	browser.Stdout = w
	browser.Stderr = w
	return browser.OpenURL
}

// openURL validates rawURL and hands it to open. Only http and https URLs
// are launched.
func openURL(open func(string) error, rawURL string) error {
	if err := errs.ValidateURL(rawURL); err != nil {
		return errs.Wrap(errs.ErrCodeBrowser, err, "refusing to open %q", rawURL)
	}
	if err := open(rawURL); err != nil {
		return errs.Wrap(errs.ErrCodeBrowser, err, "could not open browser for %s", rawURL)
	}
	return nil
}
