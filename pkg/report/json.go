package report

import (
	"encoding/json"
	"io"

	"github.com/gruns/gitsnitch/pkg/committers"
)

// JSON renders each block as a single-line JSON object.
type JSON struct{}

type jsonBlock struct {
	RepoURL    string            `json:"repo_url"`
	Committers []committers.Stat `json:"committers"`
}

// Render implements Renderer.
func (JSON) Render(w io.Writer, b Block) error {
	if b.Empty() {
		return nil
	}
	return json.NewEncoder(w).Encode(jsonBlock{
		RepoURL:    b.URL(),
		Committers: b.Committers,
	})
}

// Separator implements Renderer. Encoded blocks already end in a newline.
func (JSON) Separator() string { return "" }
