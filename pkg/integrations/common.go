package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrNotFound is returned when a user or repository doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-200 responses).
	ErrNetwork = errors.New("network error")
)

// StatusError is returned for any response other than 200 OK.
// Body holds the raw response body for diagnostics.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
	Header     http.Header
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

// Unwrap maps 404 to [ErrNotFound] and everything else to [ErrNetwork].
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrNetwork
}

// RateLimited reports whether the server said the rate limit is exhausted.
func (e *StatusError) RateLimited() bool {
	return e.Header != nil && e.Header.Get("X-RateLimit-Remaining") == "0"
}

// NewHTTPClient creates an HTTP client with the given timeout.
// A zero timeout leaves the client without a deadline.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
