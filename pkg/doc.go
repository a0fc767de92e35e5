// Package pkg provides the libraries behind gitsnitch.
//
// # Overview
//
// gitsnitch takes a GitHub username (or profile URL), looks at up to ten of
// the user's repositories and prints who commits to them: name, email,
// commit count and date of the latest commit. The pkg directory is
// organized by stage:
//
//  1. [integrations] - HTTP plumbing, and [github], the GitHub REST client
//  2. [committers] - placeholder-email filtering and per-email aggregation
//  3. [pipeline] - orchestration (list → fetch → rank)
//  4. [report] - text, table and JSON output
//  5. [config] - defaults, config file, .env and environment
//
// [errors], [observability] and [buildinfo] support all of them.
//
// # Architecture
//
// The data flow for one run:
//
//	username or profile URL
//	         ↓
//	    [github] ParseUsername
//	         ↓
//	    GET /users/{user}/repos → [pipeline] PrioritizeRepos (originals first, max 10)
//	         ↓
//	    GET /repos/{user}/{repo}/commits (per repository, in order)
//	         ↓
//	    [committers] Aggregate → Table.Top(10)
//	         ↓
//	    [report] Printer → stdout
//
// Requests are sequential and each repository's block is printed as soon
// as it is ranked.
//
// # Quick Start
//
//	client := github.NewClient(ctx, github.Options{Token: token})
//	runner := pipeline.NewRunner(client, logger, pipeline.Options{})
//	printer := report.NewPrinter(os.Stdout, report.Text{})
//
//	username, err := github.ParseUsername("https://github.com/gruns")
//	if err != nil {
//	    return err
//	}
//	return runner.Run(ctx, username, func(b report.Block) error {
//	    return printer.Print(b)
//	})
//
// [integrations]: https://pkg.go.dev/github.com/gruns/gitsnitch/pkg/integrations
// [github]: https://pkg.go.dev/github.com/gruns/gitsnitch/pkg/integrations/github
// [committers]: https://pkg.go.dev/github.com/gruns/gitsnitch/pkg/committers
// [pipeline]: https://pkg.go.dev/github.com/gruns/gitsnitch/pkg/pipeline
// [report]: https://pkg.go.dev/github.com/gruns/gitsnitch/pkg/report
// [config]: https://pkg.go.dev/github.com/gruns/gitsnitch/pkg/config
// [errors]: https://pkg.go.dev/github.com/gruns/gitsnitch/pkg/errors
// [observability]: https://pkg.go.dev/github.com/gruns/gitsnitch/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/gruns/gitsnitch/pkg/buildinfo
package pkg
