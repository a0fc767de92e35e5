package github

import "errors"

// Repository is the subset of a GitHub repository record gitsnitch reads.
type Repository struct {
	Name string `json:"name"`
	Fork bool   `json:"fork"`
}

// Commit is one entry of the commit list. Author is nil when the API
// returned no author object (some merge and bot commits).
type Commit struct {
	SHA    string
	Author *Author
}

// Author is the git author recorded in a commit.
// Date is the raw API timestamp; parsing is left to the caller.
type Author struct {
	Name  string
	Email string
	Date  string
}

// commitResponse is the internal GitHub API response for one commit.
type commitResponse struct {
	SHA    string `json:"sha"`
	Commit struct {
		Author *authorResponse `json:"author"`
	} `json:"commit"`
}

type authorResponse struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Date  *string `json:"date"`
}

func (a *authorResponse) empty() bool {
	return a == nil || (a.Name == nil && a.Email == nil && a.Date == nil)
}

var errIncompleteAuthor = errors.New("author is missing name, email or date")

func (cr commitResponse) toCommit() (Commit, error) {
	a := cr.Commit.Author
	if a.empty() {
		return Commit{SHA: cr.SHA}, nil
	}
	if a.Name == nil || a.Email == nil || a.Date == nil {
		return Commit{}, errIncompleteAuthor
	}
	return Commit{
		SHA: cr.SHA,
		Author: &Author{
			Name:  *a.Name,
			Email: *a.Email,
			Date:  *a.Date,
		},
	}, nil
}
