package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
	"github.com/gruns/gitsnitch/pkg/observability"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"Accept": "application/json"}
	client := NewClient(nil, headers)

	require.NotNil(t, client)
	assert.NotNil(t, client.http, "nil http client should be replaced")
	assert.Equal(t, "application/json", client.headers["Accept"])
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "default", r.Header.Get("X-Default"))
		assert.Equal(t, "override", r.Header.Get("X-Shared"))
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(server.Client(), map[string]string{"X-Default": "default", "X-Shared": "override"})

	var resp response
	err := client.Get(context.Background(), server.URL, &resp)
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Message)
}

func TestClientGetStatusError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		remaining   string
		wantIs      error
		rateLimited bool
	}{
		{"not found", http.StatusNotFound, "59", ErrNotFound, false},
		{"forbidden", http.StatusForbidden, "12", ErrNetwork, false},
		{"rate limited", http.StatusForbidden, "0", ErrNetwork, true},
		{"server error", http.StatusInternalServerError, "", ErrNetwork, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.remaining != "" {
					w.Header().Set("X-RateLimit-Remaining", tt.remaining)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"nope"}`))
			}))
			defer server.Close()

			client := NewClient(server.Client(), nil)
			var v any
			err := client.Get(context.Background(), server.URL+"/x", &v)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, `{"message":"nope"}`, se.Body)
			assert.Equal(t, tt.rateLimited, se.RateLimited())
		})
	}
}

func TestClientGetDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)
	var v map[string]any
	err := client.Get(context.Background(), server.URL, &v)

	require.Error(t, err)
	var se *StatusError
	assert.False(t, errors.As(err, &se), "decode failures are not status errors")
}

func TestClientGetCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.Client(), nil)
	var v map[string]any
	err := client.Get(ctx, server.URL, &v)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientReportsHooks(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	hooks := &recordingHooks{}
	observability.SetHTTPHooks(hooks)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)
	var v map[string]any
	require.NoError(t, client.Get(context.Background(), server.URL+"/users/gruns/repos", &v))

	assert.Equal(t, []string{"/users/gruns/repos"}, hooks.paths)
	assert.Equal(t, []int{http.StatusOK}, hooks.statuses)
}

type recordingHooks struct {
	observability.NoopHTTPHooks
	paths    []string
	statuses []int
}

func (h *recordingHooks) OnRequest(_ context.Context, _, _, path string) {
	h.paths = append(h.paths, path)
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}

func TestClientGetConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(nil, nil)
	var v any
	err := client.Get(context.Background(), url+"/users/gruns/repos", &v)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.True(t, snitcherrors.Is(err, snitcherrors.ErrCodeNetwork))
	assert.Equal(t, snitcherrors.ErrCodeNetwork, snitcherrors.GetCode(err))

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}
