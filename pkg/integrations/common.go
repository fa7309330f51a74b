package integrations

import (
	"errors"
	"net/http"
	"time"
)

// DefaultTimeout bounds every registry request unless configured otherwise.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, unexpected status).
	ErrNetwork = errors.New("network error")

	// ErrParse is returned when a response body cannot be decoded.
	ErrParse = errors.New("malformed response")
)

// NewHTTPClient creates an HTTP client with the given timeout.
// A non-positive timeout selects [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
