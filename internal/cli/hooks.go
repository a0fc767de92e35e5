package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gruns/gitsnitch/pkg/observability"
)

// logHooks reports pipeline and HTTP events as debug logs and keeps the
// spinner message current.
type logHooks struct {
	logger  *log.Logger
	spinner *Spinner
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.HTTPHooks     = (*logHooks)(nil)
)

func (h *logHooks) OnListStart(_ context.Context, username string) {
	h.spinner.SetMessage(fmt.Sprintf("Listing repositories of %s...", username))
}

func (h *logHooks) OnListComplete(_ context.Context, username string, repos int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("list repositories failed", "user", username, "duration", d, "err", err)
		return
	}
	h.logger.Debug("list repositories", "user", username, "repos", repos, "duration", d)
}

func (h *logHooks) OnRepoStart(_ context.Context, owner, repo string) {
	h.spinner.SetMessage(fmt.Sprintf("Scanning %s/%s...", owner, repo))
}

func (h *logHooks) OnRepoComplete(_ context.Context, owner, repo string, committers int, d time.Duration, err error) {
	h.logger.Debug("scanned repository",
		"repo", owner+"/"+repo,
		"committers", committers,
		"duration", d,
		"err", err)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "path", path, "status", status, "duration", d)
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
