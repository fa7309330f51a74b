package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/cratelink/internal/config"
	errs "github.com/matzehuels/cratelink/pkg/errors"
	"github.com/matzehuels/cratelink/pkg/integrations/crates"
	"github.com/matzehuels/cratelink/pkg/links"
)

// settings are the effective values after merging flags, environment,
// config file, and defaults.
type settings struct {
	registry  string
	timeout   time.Duration
	userAgent string
	kind      links.Kind
	browser   string
}

// resolveSettings merges configuration sources. The kind token from args is
// parsed here, before any network call, so an unknown token fails fast.
func (c *CLI) resolveSettings(args []string) (*settings, error) {
	cfg, err := config.Load(c.opts.configPath)
	if err != nil {
		return nil, err
	}

	s := &settings{
		registry:  cfg.RegistryURL(c.opts.registry, c.getenv),
		timeout:   cfg.Timeout.Duration,
		userAgent: cfg.UserAgent,
		kind:      links.Default,
		browser:   cfg.Browser,
	}
	if s.registry == "" {
		s.registry = crates.DefaultBaseURL
	}
	if err := errs.ValidateURL(s.registry); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid registry URL %q", s.registry)
	}

	if len(args) > 1 {
		if s.kind, err = links.ParseKind(args[1]); err != nil {
			return nil, err
		}
	} else if cfg.DefaultKind != "" {
		if s.kind, err = links.ParseKind(cfg.DefaultKind); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid default_kind %q", cfg.DefaultKind)
		}
	}
	return s, nil
}

// run fetches the crate named by args[0] and opens, prints, or summarizes
// the requested link.
func (c *CLI) run(ctx context.Context, args []string) error {
	logger := loggerFromContext(ctx)
	name := args[0]

	s, err := c.resolveSettings(args)
	if err != nil {
		return err
	}
	logger.Debug("settings", "registry", s.registry, "kind", s.kind, "timeout", s.timeout)

	client := crates.NewClient(crates.Options{
		BaseURL:   s.registry,
		UserAgent: s.userAgent,
		Timeout:   s.timeout,
		Logger:    logger,
	})

	info, err := c.fetch(ctx, client, name)
	if err != nil {
		return err
	}
	meta := info.Metadata(client.BaseURL())
	logger.Debug("metadata",
		"name", meta.Name,
		"version", info.Version,
		"homepage", meta.Homepage,
		"repository", meta.Repository,
		"documentation", meta.Documentation,
	)

	if c.opts.info {
		c.printInfo(info, meta)
		return nil
	}

	url, err := links.Resolve(meta, s.kind)
	if err != nil {
		return err
	}

	if c.opts.print {
		if isTerminal(c.Out) {
			printLink(c.Out, url)
		} else {
			fmt.Fprintln(c.Out, url)
		}
		return nil
	}

	open := c.Open
	if open == nil {
		open = newOpener(s.browser, c.Err)
	}
	if err := openURL(open, url); err != nil {
		return err
	}
	printSuccess(c.Err, "Opening %s of %s", s.kind.Label(), meta.Name)
	printLink(c.Err, url)
	return nil
}

func (c *CLI) fetch(ctx context.Context, client *crates.Client, name string) (*crates.CrateInfo, error) {
	prog := newProgress(loggerFromContext(ctx))
	if isTerminal(c.Err) {
		spinner := newSpinner(ctx, c.Err, "Looking up "+name+"...")
		spinner.Start()
		defer spinner.Stop()
	}

	info, err := client.FetchCrate(ctx, name)
	if err != nil {
		return nil, err
	}
	prog.done("Fetched " + info.Name)
	return info, nil
}

// printInfo writes the crate summary. Non-terminal output gets the plain
// one-line form.
func (c *CLI) printInfo(info *crates.CrateInfo, meta links.Metadata) {
	if !isTerminal(c.Out) {
		fmt.Fprintln(c.Out, meta.String())
		return
	}

	fmt.Fprintln(c.Out, StyleTitle.Render(meta.Name)+" "+StyleDim.Render(info.Version))
	if info.Description != "" {
		printDetail(c.Out, "%s", info.Description)
	}
	avail := meta.Available()
	for _, l := range avail {
		printKeyValue(c.Out, l.Kind.Label(), StyleLink.Render(l.URL))
	}
	if len(avail) == 0 {
		printDetail(c.Out, "No links provided")
	}
	printKeyValue(c.Out, links.CratePage.Label(), StyleLink.Render(meta.CratePage))
}
