package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cratelink/internal/config"
	"github.com/matzehuels/cratelink/pkg/buildinfo"
	"github.com/matzehuels/cratelink/pkg/links"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completions.
const appName = "cratelink"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger

	// Out receives results (URLs, crate summaries); Err receives status
	// output and logs.
	Out io.Writer
	Err io.Writer

	// Open launches a URL. Nil selects the system browser.
	Open func(url string) error

	// Getenv reads environment variables. Nil selects os.Getenv.
	Getenv func(string) string

	opts options
}

// options holds parsed flag values.
type options struct {
	verbose    bool
	print      bool
	info       bool
	registry   string
	configPath string
	completion string
}

// New creates a new CLI instance writing results to out and logs to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		Out:    out,
		Err:    errOut,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func (c *CLI) getenv(key string) string {
	if c.Getenv != nil {
		return c.Getenv(key)
	}
	return os.Getenv(key)
}

// RootCommand creates the cratelink command.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " <crate> [kind]",
		Short: "Open a crate's homepage, repository, docs, or crates.io page",
		Long: `cratelink looks up a crate on crates.io and opens one of its links in your browser.

Kinds:
  h, homepage        Homepage (default)
  r, repository      Source repository
  d, documentation   Documentation
  c, crate           Page on crates.io

If the crate does not provide the requested link, cratelink reports it
instead of opening a different page.`,
		Example: `  cratelink serde             # open https://serde.rs
  cratelink serde r           # open the repository
  cratelink tokio docs        # error: unknown link kind
  cratelink rand c --print    # print the crates.io URL`,
		Version:           buildinfo.Version,
		Args:              c.validateArgs,
		ValidArgsFunction: completeKind,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.opts.completion != "" {
				return writeCompletion(cmd.Root(), c.Out, c.opts.completion)
			}
			return c.run(cmd.Context(), args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)

	flags := root.Flags()
	flags.BoolVarP(&c.opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&c.opts.verbose, "debug", false, "alias for --verbose")
	_ = flags.MarkHidden("debug")
	flags.BoolVarP(&c.opts.print, "print", "p", false, "print the URL instead of opening a browser")
	flags.BoolVarP(&c.opts.info, "info", "i", false, "print the crate's available links and exit")
	flags.StringVar(&c.opts.registry, "registry", "", "registry base URL (default https://crates.io, env "+config.EnvRegistry+")")
	flags.StringVar(&c.opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cratelink/config.toml)")
	flags.StringVar(&c.opts.completion, "completion", "", "print a shell completion script (bash|zsh|fish|powershell)")
	root.MarkFlagsMutuallyExclusive("print", "info")

	return root
}

func (c *CLI) validateArgs(cmd *cobra.Command, args []string) error {
	if c.opts.completion != "" {
		return cobra.NoArgs(cmd, args)
	}
	return cobra.RangeArgs(1, 2)(cmd, args)
}

func completeKind(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 1 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, k := range links.Kinds() {
		out = append(out, k.String()+"\t"+k.Label())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
