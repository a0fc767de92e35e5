package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
	"github.com/gruns/gitsnitch/pkg/observability"
)

// Client provides shared HTTP functionality for API clients.
// It applies common request headers, reports every call to the registered
// [observability.HTTPHooks] and turns non-200 responses into [*StatusError].
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client that sends requests through hc with the given
// default headers. A nil hc uses [NewHTTPClient] with no timeout.
// Pass nil for headers if no default headers are needed.
func NewClient(hc *http.Client, headers map[string]string) *Client {
	if hc == nil {
		hc = NewHTTPClient(0)
	}
	return &Client{
		http:    hc,
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// Non-200 responses are returned as *StatusError carrying the raw body.
// Transport failures carry the NETWORK_ERROR code and wrap [ErrNetwork].
func (c *Client) Get(ctx context.Context, url string, v any) error {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, networkError(err, "GET %s", url)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, networkError(err, "read error body of %s", url)
		}
		return nil, &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(data),
			Header:     resp.Header,
		}
	}
	return resp.Body, nil
}

// networkError codes a transport failure as NETWORK_ERROR while keeping
// ErrNetwork and the cause (e.g. context.Canceled) in the chain.
func networkError(cause error, format string, args ...any) error {
	return snitcherrors.Wrap(snitcherrors.ErrCodeNetwork, fmt.Errorf("%w: %w", ErrNetwork, cause), format, args...)
}
