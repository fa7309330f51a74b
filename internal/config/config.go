// Package config loads cratelink settings from a TOML file.
//
// The file is optional. It lives at $XDG_CONFIG_HOME/cratelink/config.toml,
// falling back to ~/.config/cratelink/config.toml:
//
//	registry     = "https://crates.io"
//	timeout      = "10s"
//	user_agent   = "my-agent/1.0"
//	default_kind = "repository"
//	browser      = "firefox --new-tab"
//
// Command-line flags and the CRATELINK_REGISTRY environment variable take
// precedence over the file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/cratelink/pkg/errors"
)

const (
	appName = "cratelink"

	// EnvRegistry overrides the registry base URL.
	EnvRegistry = "CRATELINK_REGISTRY"
)

// Config holds user settings. Zero fields mean "use the default".
type Config struct {
	Registry    string   `toml:"registry"`
	Timeout     Duration `toml:"timeout"`
	UserAgent   string   `toml:"user_agent"`
	DefaultKind string   `toml:"default_kind"`
	Browser     string   `toml:"browser"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Path returns the default config file location using the XDG standard.
func Path() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path. An empty path selects [Path], and a
// missing default file yields an empty Config. A missing file named
// explicitly is an error, as are malformed TOML, unknown keys, and a
// negative timeout.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return &Config{}, nil
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "cannot load config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown key(s) in %s: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Timeout.Duration < 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "timeout must not be negative in %s", path)
	}
	return &cfg, nil
}

// RegistryURL picks the registry base URL: flag, then environment, then
// file. It returns "" when none is set.
func (c *Config) RegistryURL(flag string, getenv func(string) string) string {
	if flag != "" {
		return flag
	}
	if v := getenv(EnvRegistry); v != "" {
		return v
	}
	return c.Registry
}
