package report

import (
	"io"
	"slices"

	"github.com/gruns/gitsnitch/pkg/committers"
	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
	"github.com/gruns/gitsnitch/pkg/integrations/github"
)

// Output format names.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formats lists every supported format.
var Formats = []string{FormatText, FormatTable, FormatJSON}

// dateLayout renders dates like "Jan 05, 2023".
const dateLayout = "Jan 02, 2006"

// Block is one repository's ranked committers, ready to print.
type Block struct {
	Username   string
	Repo       string
	Committers []committers.Stat
}

// URL is the github.com page of the block's repository.
func (b Block) URL() string {
	return github.RepoURL(b.Username, b.Repo)
}

// Empty reports whether the block has no committers to print.
func (b Block) Empty() bool {
	return len(b.Committers) == 0
}

// Renderer writes one non-empty block.
type Renderer interface {
	Render(w io.Writer, b Block) error
	// Separator is written between consecutive blocks.
	Separator() string
}

// NewRenderer returns the renderer for a format name.
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case FormatText, "":
		return Text{}, nil
	case FormatTable:
		return NewTable(), nil
	case FormatJSON:
		return JSON{}, nil
	}
	return nil, snitcherrors.New(snitcherrors.ErrCodeInvalidFormat, "unknown format %q (want one of %v)", format, Formats)
}

// ValidFormat reports whether format names a renderer.
func ValidFormat(format string) bool {
	return slices.Contains(Formats, format)
}

// Printer writes blocks to w one after another. Empty blocks produce no
// output and no separator.
type Printer struct {
	w       io.Writer
	r       Renderer
	printed int
}

// NewPrinter creates a Printer.
func NewPrinter(w io.Writer, r Renderer) *Printer {
	return &Printer{w: w, r: r}
}

// Print renders b, preceded by the renderer's separator unless it is the
// first block printed.
func (p *Printer) Print(b Block) error {
	if b.Empty() {
		return nil
	}
	if p.printed > 0 {
		if _, err := io.WriteString(p.w, p.r.Separator()); err != nil {
			return err
		}
	}
	if err := p.r.Render(p.w, b); err != nil {
		return snitcherrors.Wrap(snitcherrors.ErrCodeInternal, err, "render %s", b.URL())
	}
	p.printed++
	return nil
}

// Printed returns the number of blocks written so far.
func (p *Printer) Printed() int { return p.printed }
