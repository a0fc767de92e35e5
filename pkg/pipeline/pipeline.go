// Package pipeline runs the gitsnitch report: list a user's repositories,
// fetch each one's commits, and rank the committers.
//
// # Architecture
//
// The pipeline has three stages per user:
//
//  1. List: fetch the user's repositories and keep the first MaxRepos,
//     original (non-fork) repositories first
//  2. Fetch: for each kept repository, fetch its recent commits
//  3. Rank: aggregate commits by author email and keep the top
//     MaxCommitters
//
// Each ranked repository is handed to an emit callback as soon as it is
// ready, so output streams while later repositories are still fetching.
//
// # Usage
//
//	runner := pipeline.NewRunner(client, logger, pipeline.Options{})
//	err := runner.Run(ctx, "gruns", func(b report.Block) error {
//	    return printer.Print(b)
//	})
package pipeline

import (
	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMaxRepos is how many repositories are inspected per user.
	DefaultMaxRepos = 10

	// DefaultMaxCommitters is how many committers are listed per repository.
	DefaultMaxCommitters = 10
)

// =============================================================================
// Options
// =============================================================================

// Options controls how much of a user's activity is inspected.
// Zero values are replaced by the defaults.
type Options struct {
	MaxRepos      int
	MaxCommitters int
}

// SetDefaults fills zero fields with their defaults.
func (o *Options) SetDefaults() {
	if o.MaxRepos == 0 {
		o.MaxRepos = DefaultMaxRepos
	}
	if o.MaxCommitters == 0 {
		o.MaxCommitters = DefaultMaxCommitters
	}
}

// Validate checks that the caps are positive.
func (o *Options) Validate() error {
	if o.MaxRepos < 1 {
		return snitcherrors.New(snitcherrors.ErrCodeInvalidInput, "max repos must be at least 1, got %d", o.MaxRepos)
	}
	if o.MaxCommitters < 1 {
		return snitcherrors.New(snitcherrors.ErrCodeInvalidInput, "max committers must be at least 1, got %d", o.MaxCommitters)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults then validates. Calling it more
// than once is harmless.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}
