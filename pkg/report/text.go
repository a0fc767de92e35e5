package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// Text renders the plain column-aligned layout: the repository URL, then
// one row per committer with name and email left-aligned and the commit
// count right-aligned. Column widths fit the widest value in the block.
type Text struct{}

// Render implements Renderer.
func (Text) Render(w io.Writer, b Block) error {
	if b.Empty() {
		return nil
	}

	var nameW, emailW, countW int
	for _, s := range b.Committers {
		nameW = max(nameW, utf8.RuneCountInString(s.Name))
		emailW = max(emailW, utf8.RuneCountInString(s.Email))
		countW = max(countW, len(strconv.Itoa(s.Commits)))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, b.URL())
	for _, s := range b.Committers {
		fmt.Fprintf(bw, "%-*s  %-*s  %*d commits, latest on %s\n",
			nameW, s.Name,
			emailW, s.Email,
			countW, s.Commits,
			s.LatestCommit.Format(dateLayout))
	}
	return bw.Flush()
}

// Separator implements Renderer.
func (Text) Separator() string { return "\n" }
