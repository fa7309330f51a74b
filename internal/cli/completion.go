package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// completionHelp is appended to the --completion flag usage.
const completionHelp = `
To load completions:

Bash:
  $ source <(cratelink --completion bash)

Zsh:
  $ cratelink --completion zsh > "${fpath[1]}/_cratelink"

Fish:
  $ cratelink --completion fish | source

PowerShell:
  PS> cratelink --completion powershell | Out-String | Invoke-Expression
`

// writeCompletion writes the completion script for shell to w.
// Completion is a flag rather than a subcommand so that a crate named
// "completion" still resolves.
func writeCompletion(root *cobra.Command, w io.Writer, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unsupported shell %q (want bash, zsh, fish, or powershell)%s", shell, completionHelp)
}
