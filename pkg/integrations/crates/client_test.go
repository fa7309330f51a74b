package crates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cratelink/pkg/buildinfo"
	errs "github.com/matzehuels/cratelink/pkg/errors"
	"github.com/matzehuels/cratelink/pkg/links"
)

// registry serves canned crates.io responses keyed by crate name.
// Names missing from bodies get a 404 like the real API.
func registry(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/v1/crates/{name}", func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("request without User-Agent header")
		}
		body, ok := bodies[chi.URLParam(r, "name")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"errors": []map[string]string{{"detail": "Not Found"}},
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

const serdeBody = `{
	"crate": {
		"name": "serde",
		"max_version": "1.0.219",
		"description": "A generic serialization/deserialization framework",
		"downloads": 500000000,
		"homepage": "https://serde.rs",
		"repository": "https://github.com/serde-rs/serde",
		"documentation": null
	},
	"versions": [],
	"keywords": []
}`

func TestNewClient(t *testing.T) {
	c := NewClient(Options{})
	if c.Client == nil {
		t.Fatal("expected client to be initialized")
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
}

func TestClient_CrateURL(t *testing.T) {
	tests := []struct {
		base, crate, want string
	}{
		{"", "serde", "https://crates.io/api/v1/crates/serde"},
		{"https://registry.example.com/", "serde_json", "https://registry.example.com/api/v1/crates/serde_json"},
		{"http://localhost:3000", "a b", "http://localhost:3000/api/v1/crates/a%20b"},
	}
	for _, tt := range tests {
		c := NewClient(Options{BaseURL: tt.base})
		if got := c.CrateURL(tt.crate); got != tt.want {
			t.Errorf("CrateURL(%q) = %q, want %q", tt.crate, got, tt.want)
		}
	}
}

func TestClient_FetchCrate(t *testing.T) {
	server := registry(t, map[string]string{"serde": serdeBody})
	c := NewClient(Options{BaseURL: server.URL, Timeout: time.Second})

	info, err := c.FetchCrate(context.Background(), "serde")
	if err != nil {
		t.Fatalf("FetchCrate failed: %v", err)
	}

	if info.Name != "serde" {
		t.Errorf("expected name serde, got %s", info.Name)
	}
	if info.Version != "1.0.219" {
		t.Errorf("expected version 1.0.219, got %s", info.Version)
	}
	if info.HomePage != "https://serde.rs" {
		t.Errorf("expected homepage https://serde.rs, got %s", info.HomePage)
	}
	if info.Repository != "https://github.com/serde-rs/serde" {
		t.Errorf("expected repository, got %s", info.Repository)
	}
	if info.Documentation != "" {
		t.Errorf("null documentation should decode to empty, got %q", info.Documentation)
	}
}

func TestClient_FetchCrate_NotFound(t *testing.T) {
	server := registry(t, nil)
	c := NewClient(Options{BaseURL: server.URL})

	_, err := c.FetchCrate(context.Background(), "does-not-exist-xyz")
	if !errs.Is(err, errs.ErrCodePackageNotFound) {
		t.Errorf("FetchCrate() error = %v, want %s", err, errs.ErrCodePackageNotFound)
	}
}

func TestClient_FetchCrate_ParseErrors(t *testing.T) {
	server := registry(t, map[string]string{
		"broken":   `{"crate": {"name": "broken",`,
		"nameless": `{"crate": {"homepage": "https://example.com"}}`,
		"wrongtyp": `{"crate": {"name": 42}}`,
		"empty":    `{}`,
	})
	c := NewClient(Options{BaseURL: server.URL})

	for _, name := range []string{"broken", "nameless", "wrongtyp", "empty"} {
		t.Run(name, func(t *testing.T) {
			_, err := c.FetchCrate(context.Background(), name)
			if !errs.Is(err, errs.ErrCodeParse) {
				t.Errorf("FetchCrate(%q) error = %v, want %s", name, err, errs.ErrCodeParse)
			}
		})
	}
}

func TestClient_FetchCrate_NetworkErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		c := NewClient(Options{BaseURL: server.URL})
		_, err := c.FetchCrate(context.Background(), "serde")
		if !errs.Is(err, errs.ErrCodeNetwork) {
			t.Errorf("FetchCrate() error = %v, want %s", err, errs.ErrCodeNetwork)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		base := server.URL
		server.Close()

		c := NewClient(Options{BaseURL: base})
		_, err := c.FetchCrate(context.Background(), "serde")
		if !errs.Is(err, errs.ErrCodeNetwork) {
			t.Errorf("FetchCrate() error = %v, want %s", err, errs.ErrCodeNetwork)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		server := registry(t, map[string]string{"serde": serdeBody})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewClient(Options{BaseURL: server.URL})
		_, err := c.FetchCrate(ctx, "serde")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("FetchCrate() error = %v, want context.Canceled in chain", err)
		}
	})
}

func TestClient_FetchCrate_EmptyName(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1"})
	_, err := c.FetchCrate(context.Background(), "")
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("FetchCrate(\"\") error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}
}

func TestClient_UserAgent(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/api/v1/crates/{name}", func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.Write([]byte(serdeBody))
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := NewClient(Options{BaseURL: server.URL, UserAgent: "custom-agent/2.0"})
	if _, err := c.FetchCrate(context.Background(), "serde"); err != nil {
		t.Fatalf("FetchCrate failed: %v", err)
	}
	if got != "custom-agent/2.0" {
		t.Errorf("User-Agent = %q, want %q", got, "custom-agent/2.0")
	}
}

func TestClient_DefaultUserAgent(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/api/v1/crates/{name}", func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.Write([]byte(serdeBody))
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := NewClient(Options{BaseURL: server.URL})
	if _, err := c.FetchCrate(context.Background(), "serde"); err != nil {
		t.Fatalf("FetchCrate failed: %v", err)
	}
	if got != buildinfo.UserAgent() {
		t.Errorf("User-Agent = %q, want %q", got, buildinfo.UserAgent())
	}
}

func TestCrateInfo_Metadata(t *testing.T) {
	info := &CrateInfo{Name: "foo"}
	meta := info.Metadata("https://crates.io")

	got, err := links.Resolve(meta, links.CratePage)
	if err != nil {
		t.Fatalf("Resolve(CratePage) error: %v", err)
	}
	if got != "https://crates.io/crates/foo" {
		t.Errorf("Resolve(CratePage) = %q, want %q", got, "https://crates.io/crates/foo")
	}

	var unavailable *links.UnavailableError
	if _, err := links.Resolve(meta, links.Homepage); !errors.As(err, &unavailable) {
		t.Errorf("Resolve(Homepage) error = %v, want *links.UnavailableError", err)
	}
}
