package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gruns/gitsnitch/pkg/committers"
	"github.com/gruns/gitsnitch/pkg/integrations"
	"github.com/gruns/gitsnitch/pkg/integrations/github"
	"github.com/gruns/gitsnitch/pkg/observability"
	"github.com/gruns/gitsnitch/pkg/report"
)

// Source is where repositories and commits come from.
// [*github.Client] is the production implementation.
type Source interface {
	ListRepos(ctx context.Context, username string) ([]github.Repository, error)
	ListCommits(ctx context.Context, owner, repo string) ([]github.Commit, error)
}

// EmitFunc receives each ranked repository in processing order.
// Returning an error stops the run.
type EmitFunc func(report.Block) error

// Runner executes the pipeline against a Source.
//
// Requests are issued one at a time, in order, so blocks are emitted in
// the same order the repositories were prioritized.
type Runner struct {
	Source Source
	Logger *log.Logger
	Opts   Options
}

// NewRunner creates a runner. A nil logger uses log.Default(). Zero
// options take their defaults when Run starts.
func NewRunner(src Source, logger *log.Logger, opts Options) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Source: src,
		Logger: logger,
		Opts:   opts,
	}
}

// Run reports on every prioritized repository of username, calling emit
// once per repository (including repositories with no committers, as an
// empty block). Fetching the repository list is fatal on failure; a
// repository whose commit fetch returns a non-200 status is logged and
// skipped.
func (r *Runner) Run(ctx context.Context, username string, emit EmitFunc) error {
	if err := r.Opts.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	repos, err := r.listRepos(ctx, username)
	if err != nil {
		return err
	}

	for _, repo := range PrioritizeRepos(repos, r.Opts.MaxRepos) {
		if err := ctx.Err(); err != nil {
			return err
		}

		top, err := r.scanRepo(ctx, username, repo.Name)
		if err != nil {
			return err
		}
		if err := emit(report.Block{Username: username, Repo: repo.Name, Committers: top}); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) listRepos(ctx context.Context, username string) ([]github.Repository, error) {
	hooks := observability.Pipeline()
	hooks.OnListStart(ctx, username)
	start := time.Now()

	repos, err := r.Source.ListRepos(ctx, username)
	hooks.OnListComplete(ctx, username, len(repos), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("listed repositories",
		"user", username,
		"repos", len(repos),
		"duration", time.Since(start))
	return repos, nil
}

// scanRepo returns the ranked committers of owner/repo, capped at
// Opts.MaxCommitters. A non-200 commit fetch (an empty repository answers
// 409, a removed one 404) yields no committers instead of an error.
func (r *Runner) scanRepo(ctx context.Context, owner, repo string) ([]committers.Stat, error) {
	hooks := observability.Pipeline()
	hooks.OnRepoStart(ctx, owner, repo)
	start := time.Now()

	top, err := r.rank(ctx, owner, repo)
	hooks.OnRepoComplete(ctx, owner, repo, len(top), time.Since(start), err)
	return top, err
}

func (r *Runner) rank(ctx context.Context, owner, repo string) ([]committers.Stat, error) {
	commits, err := r.Source.ListCommits(ctx, owner, repo)
	if err != nil {
		var se *integrations.StatusError
		if errors.As(err, &se) {
			r.Logger.Debug("skipping repository", "repo", owner+"/"+repo, "status", se.StatusCode)
			return nil, nil
		}
		return nil, fmt.Errorf("fetch commits for %s/%s: %w", owner, repo, err)
	}

	table, err := committers.Aggregate(commits)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("aggregated commits",
		"repo", owner+"/"+repo,
		"commits", len(commits),
		"committers", table.Len())
	return table.Top(r.Opts.MaxCommitters), nil
}

// PrioritizeRepos orders repositories non-forks first, keeping the API
// order within each group, and truncates the result to limit entries.
// limit <= 0 keeps everything.
func PrioritizeRepos(repos []github.Repository, limit int) []github.Repository {
	out := make([]github.Repository, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			out = append(out, r)
		}
	}
	for _, r := range repos {
		if r.Fork {
			out = append(out, r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
