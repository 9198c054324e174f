package surface

import (
	"encoding/json"
	"io"

	"github.com/cvsscalc/cvss/pkg/scoring"
)

// JSONRenderer writes the ScoreResult as indented JSON, with the one-line
// summary added under "summary".
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *scoring.ScoreResult) error {
	payload := struct {
		*scoring.ScoreResult
		Summary string `json:"summary"`
	}{
		ScoreResult: result,
		Summary:     Summary(result),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
