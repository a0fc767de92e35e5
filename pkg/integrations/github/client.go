package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/gruns/gitsnitch/pkg/buildinfo"
	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
	"github.com/gruns/gitsnitch/pkg/integrations"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// tokenType makes oauth2 send "Authorization: token <value>".
const tokenType = "token"

// Client provides access to the two GitHub REST endpoints gitsnitch needs.
// It is safe for sequential use; gitsnitch never issues requests concurrently.
type Client struct {
	*integrations.Client
	baseURL string
}

// Options configures a Client. The zero value talks to the public API
// without authentication and without a request timeout.
type Options struct {
	Token   string        // optional personal access token
	BaseURL string        // defaults to DefaultBaseURL
	Timeout time.Duration // 0 means no timeout
}

// NewClient creates a GitHub API client. When opts.Token is set, every
// request carries an "Authorization: token <value>" header.
func NewClient(ctx context.Context, opts Options) *Client {
	base := strings.TrimSuffix(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	headers := map[string]string{
		"Accept":     "application/vnd.github.v3+json",
		"User-Agent": buildinfo.UserAgent(),
	}

	return &Client{
		Client:  integrations.NewClient(newHTTPClient(ctx, opts.Token, opts.Timeout), headers),
		baseURL: base,
	}
}

func newHTTPClient(ctx context.Context, token string, timeout time.Duration) *http.Client {
	hc := integrations.NewHTTPClient(timeout)
	if token == "" {
		return hc
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   tokenType,
	})
	tc := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, hc), ts)
	tc.Timeout = timeout
	return tc
}

// ListRepos returns the first page of the user's public repositories in
// API order. A non-200 response is a *errors.RepositoryFetchError.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repository, error) {
	var data []*gh.Repository
	url := fmt.Sprintf("%s/users/%s/repos", c.baseURL, username)
	if err := c.Get(ctx, url, &data); err != nil {
		var se *integrations.StatusError
		if errors.As(err, &se) {
			return nil, &snitcherrors.RepositoryFetchError{
				Username:    username,
				StatusCode:  se.StatusCode,
				Body:        se.Body,
				RateLimited: se.RateLimited(),
			}
		}
		return nil, err
	}

	repos := make([]Repository, 0, len(data))
	for _, r := range data {
		if r == nil {
			continue
		}
		repos = append(repos, Repository{
			Name: r.GetName(),
			Fork: r.GetFork(),
		})
	}
	return repos, nil
}

// ListCommits returns the default page of commits for owner/repo.
// Non-200 responses come back as *integrations.StatusError; deciding what
// that means is left to the caller.
func (c *Client) ListCommits(ctx context.Context, owner, repo string) ([]Commit, error) {
	var data []commitResponse
	url := fmt.Sprintf("%s/repos/%s/%s/commits", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, err
	}

	commits := make([]Commit, 0, len(data))
	for _, cr := range data {
		commit, err := cr.toCommit()
		if err != nil {
			return nil, snitcherrors.Wrap(snitcherrors.ErrCodeCommitDecode, err, "commit %s in %s/%s", cr.SHA, owner, repo)
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

// RepoURL returns the github.com page for owner/repo.
func RepoURL(owner, repo string) string {
	return fmt.Sprintf("https://github.com/%s/%s", owner, repo)
}
