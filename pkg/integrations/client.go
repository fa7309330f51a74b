package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Client provides shared HTTP functionality for registry API clients.
// Every call performs exactly one request: there is no retry and no cache.
type Client struct {
	http    *http.Client
	headers map[string]string
	logger  *log.Logger
}

// NewClient creates a Client with the given timeout and default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(timeout time.Duration, headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(timeout),
		headers: headers,
	}
}

// SetLogger enables debug logging of requests. A nil logger disables it.
func (c *Client) SetLogger(l *log.Logger) {
	c.logger = l
}

// Timeout returns the configured request timeout.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
//
// Errors wrap [ErrNotFound], [ErrNetwork], or [ErrParse]. Transport errors
// also keep their cause, so context cancellation stays detectable with
// errors.Is.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	c.debug("GET", "url", url)

	resp, err := c.http.Do(req)
	if err != nil {
		c.debug("request failed", "url", url, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	c.debug("response", "status", resp.StatusCode, "elapsed", time.Since(start).Round(time.Millisecond))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) debug(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
