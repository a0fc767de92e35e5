// Package github provides an HTTP client for the GitHub REST API.
//
// # Overview
//
// gitsnitch reads two endpoints:
//
//   - GET /users/{username}/repos: [Client.ListRepos]
//   - GET /repos/{owner}/{repo}/commits: [Client.ListCommits]
//
// Only the default page of each is requested.
//
// # Usage
//
//	client := github.NewClient(ctx, github.Options{Token: os.Getenv("GITHUB_TOKEN")})
//
//	repos, err := client.ListRepos(ctx, "gruns")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	commits, err := client.ListCommits(ctx, "gruns", repos[0].Name)
//
// # Authentication
//
// A personal access token is optional. Without one, GitHub allows 60
// requests per hour; with one, 5000. The token is sent as
// "Authorization: token <value>" through an oauth2 transport.
//
// # Profile URLs
//
// [ParseUsername] accepts either a bare username or a
// https://github.com/<user> profile URL and returns the username.
package github
