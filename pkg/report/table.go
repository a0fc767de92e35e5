package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders a block as a bordered lipgloss table under a styled
// repository URL.
type Table struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Border
}

// NewTable returns a Table with the default styles.
func NewTable() Table {
	return Table{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Border: lipgloss.RoundedBorder(),
	}
}

const countColumn = 2

// Render implements Renderer.
func (t Table) Render(w io.Writer, b Block) error {
	if b.Empty() {
		return nil
	}

	rows := make([][]string, 0, len(b.Committers))
	for _, s := range b.Committers {
		rows = append(rows, []string{s.Name, s.Email, strconv.Itoa(s.Commits), s.LatestCommit.Format(dateLayout)})
	}

	tbl := table.New().
		Border(t.Border).
		Headers("NAME", "EMAIL", "COMMITS", "LATEST").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := t.Cell
			if row < 0 {
				style = t.Header
			}
			if col == countColumn {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Title.Render(b.URL()), tbl.Render())
	return err
}

// Separator implements Renderer.
func (Table) Separator() string { return "\n" }
