package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnListStart(ctx, "gruns")
	p.OnListComplete(ctx, "gruns", 10, time.Second, nil)
	p.OnRepoStart(ctx, "gruns", "icecream")
	p.OnRepoComplete(ctx, "gruns", "icecream", 3, time.Second, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "api.github.com", "/users/gruns/repos")
	h.OnResponse(ctx, "GET", "api.github.com", "/users/gruns/repos", 200, time.Second)
	h.OnError(ctx, "GET", "api.github.com", "/users/gruns/repos", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, ok := Pipeline().(NoopPipelineHooks)
	assert.True(t, ok, "Pipeline() should return NoopPipelineHooks by default")
	_, ok = HTTP().(NoopHTTPHooks)
	assert.True(t, ok, "HTTP() should return NoopHTTPHooks by default")

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	assert.Same(t, customPipeline, Pipeline())

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	assert.Same(t, customHTTP, HTTP())

	// nil registrations are ignored
	SetPipelineHooks(nil)
	SetHTTPHooks(nil)
	assert.Same(t, customPipeline, Pipeline())
	assert.Same(t, customHTTP, HTTP())

	Reset()
	_, ok = Pipeline().(NoopPipelineHooks)
	assert.True(t, ok, "Reset() should restore pipeline hooks")
	_, ok = HTTP().(NoopHTTPHooks)
	assert.True(t, ok, "Reset() should restore HTTP hooks")
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	h := &testHTTPHooks{}
	SetHTTPHooks(h)

	HTTP().OnRequest(context.Background(), "GET", "api.github.com", "/repos/gruns/icecream/commits")
	HTTP().OnResponse(context.Background(), "GET", "api.github.com", "/repos/gruns/icecream/commits", 200, time.Millisecond)

	assert.Equal(t, 1, h.requests)
	assert.Equal(t, []int{200}, h.statuses)
}

type testPipelineHooks struct{ NoopPipelineHooks }

type testHTTPHooks struct {
	NoopHTTPHooks
	requests int
	statuses []int
}

func (h *testHTTPHooks) OnRequest(context.Context, string, string, string) { h.requests++ }

func (h *testHTTPHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}
