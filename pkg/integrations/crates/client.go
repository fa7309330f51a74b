package crates

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cratelink/pkg/buildinfo"
	errs "github.com/matzehuels/cratelink/pkg/errors"
	"github.com/matzehuels/cratelink/pkg/integrations"
	"github.com/matzehuels/cratelink/pkg/links"
)

// DefaultBaseURL is the public crates.io registry.
const DefaultBaseURL = "https://crates.io"

// CrateInfo holds metadata for a Rust crate from crates.io.
//
// Zero values: link fields are empty when the crate author did not supply
// them (the API reports null). A Downloads value of 0 is valid for newly
// published crates.
type CrateInfo struct {
	Name          string // Crate name (e.g., "serde", never empty in valid info)
	Version       string // Latest version (max_version)
	Description   string // Crate description (may be empty)
	License       string // License identifier(s) (may be empty or "MIT OR Apache-2.0")
	Downloads     int    // Total download count across all versions
	HomePage      string // Homepage URL (may be empty)
	Repository    string // Repository URL (may be empty)
	Documentation string // Documentation URL (may be empty)
}

// Metadata converts info into the link set used by [links.Resolve].
// The crate page is built on site, the registry's public base URL.
func (ci *CrateInfo) Metadata(site string) links.Metadata {
	return links.Metadata{
		Name:          ci.Name,
		Homepage:      ci.HomePage,
		Repository:    ci.Repository,
		Documentation: ci.Documentation,
		CratePage:     links.CratePageURL(site, ci.Name),
	}
}

// Options configures a [Client]. Zero fields select defaults.
type Options struct {
	BaseURL   string        // Registry base URL (default [DefaultBaseURL])
	UserAgent string        // User-Agent header (default [buildinfo.UserAgent])
	Timeout   time.Duration // Request timeout (default integrations.DefaultTimeout)
	Logger    *log.Logger   // Debug request logging (optional)
}

// Client provides access to the crates.io package registry API.
// Each FetchCrate call performs exactly one HTTP request.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = buildinfo.UserAgent()
	}
	headers := map[string]string{
		"User-Agent": ua,
		"Accept":     "application/json",
	}
	c := &Client{
		Client:  integrations.NewClient(opts.Timeout, headers),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	c.SetLogger(opts.Logger)
	return c
}

// BaseURL returns the registry base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CrateURL returns the metadata endpoint for a crate,
// e.g. "https://crates.io/api/v1/crates/serde".
func (c *Client) CrateURL(crate string) string {
	return fmt.Sprintf("%s/api/v1/crates/%s", c.baseURL, url.PathEscape(crate))
}

// FetchCrate retrieves metadata for a Rust crate from crates.io.
//
// The crate name is passed to the registry as given; syntax errors are
// reported by the registry, not checked here.
//
// Returns:
//   - CrateInfo populated with metadata on success
//   - PACKAGE_NOT_FOUND if the registry answers 404
//   - NETWORK_ERROR for transport failures, timeouts, and other statuses
//   - PARSE_ERROR for malformed JSON or a response without a crate name
//
// The returned CrateInfo pointer is never nil if err is nil.
func (c *Client) FetchCrate(ctx context.Context, crate string) (*CrateInfo, error) {
	if err := errs.ValidatePackageName(crate); err != nil {
		return nil, err
	}

	var data crateResponse
	if err := c.Get(ctx, c.CrateURL(crate), &data); err != nil {
		switch {
		case errors.Is(err, integrations.ErrNotFound):
			return nil, errs.Wrap(errs.ErrCodePackageNotFound, err, "crate %q not found on %s", crate, c.baseURL)
		case errors.Is(err, integrations.ErrParse):
			return nil, errs.Wrap(errs.ErrCodeParse, err, "unexpected response for crate %q", crate)
		default:
			return nil, errs.Wrap(errs.ErrCodeNetwork, err, "could not reach %s", c.baseURL)
		}
	}

	if data.Crate.Name == "" {
		return nil, errs.New(errs.ErrCodeParse, "response for crate %q has no crate name", crate)
	}

	return &CrateInfo{
		Name:          data.Crate.Name,
		Version:       data.Crate.MaxVersion,
		Description:   data.Crate.Description,
		License:       data.Crate.License,
		Downloads:     data.Crate.Downloads,
		HomePage:      data.Crate.HomePage,
		Repository:    data.Crate.Repository,
		Documentation: data.Crate.Documentation,
	}, nil
}

type crateResponse struct {
	Crate struct {
		Name          string `json:"name"`
		MaxVersion    string `json:"max_version"`
		Description   string `json:"description"`
		License       string `json:"license"`
		Downloads     int    `json:"downloads"`
		HomePage      string `json:"homepage"`
		Repository    string `json:"repository"`
		Documentation string `json:"documentation"`
	} `json:"crate"`
}
