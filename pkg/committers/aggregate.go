package committers

import (
	"cmp"
	"slices"
	"time"

	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
	"github.com/gruns/gitsnitch/pkg/integrations/github"
)

// DateLayout is the only accepted author date format (UTC, second precision).
const DateLayout = "2006-01-02T15:04:05Z"

// Stat is the aggregate for one email address.
type Stat struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Commits      int       `json:"commits"`
	LatestCommit time.Time `json:"latest_commit"`
}

// Table holds committer stats keyed by email, remembering the order in
// which emails were first seen. The zero value is not usable; call NewTable.
type Table struct {
	order []string
	stats map[string]*Stat
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{stats: make(map[string]*Stat)}
}

// Add records one commit by email. The name is only stored the first
// time an email is seen.
func (t *Table) Add(email, name string, date time.Time) {
	s, ok := t.stats[email]
	if !ok {
		s = &Stat{Email: email, Name: name, LatestCommit: date}
		t.stats[email] = s
		t.order = append(t.order, email)
	} else if date.After(s.LatestCommit) {
		s.LatestCommit = date
	}
	s.Commits++
}

// Len returns the number of distinct emails.
func (t *Table) Len() int { return len(t.order) }

// Get returns the stat for email.
func (t *Table) Get(email string) (Stat, bool) {
	s, ok := t.stats[email]
	if !ok {
		return Stat{}, false
	}
	return *s, true
}

// Stats returns a copy of all stats in first-seen order.
func (t *Table) Stats() []Stat {
	out := make([]Stat, 0, len(t.order))
	for _, email := range t.order {
		out = append(out, *t.stats[email])
	}
	return out
}

// Top returns at most n stats ranked by commit count, highest first.
// Ties are in reverse first-seen order. n <= 0 returns every stat.
func (t *Table) Top(n int) []Stat {
	ranked := t.Stats()
	slices.SortStableFunc(ranked, func(a, b Stat) int {
		return cmp.Compare(a.Commits, b.Commits)
	})
	slices.Reverse(ranked)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Aggregate builds a Table from one repository's commits.
// An unparseable author date aborts aggregation with an error.
func Aggregate(commits []github.Commit) (*Table, error) {
	t := NewTable()
	for _, c := range commits {
		if c.Author == nil {
			continue
		}
		date, err := time.Parse(DateLayout, c.Author.Date)
		if err != nil {
			return nil, snitcherrors.Wrap(snitcherrors.ErrCodeCommitDecode, err, "commit %s: bad author date %q", c.SHA, c.Author.Date)
		}
		if IsPlaceholder(c.Author.Email) {
			continue
		}
		t.Add(c.Author.Email, c.Author.Name, date)
	}
	return t, nil
}
