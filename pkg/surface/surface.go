// Package surface defines output rendering for CVSS score results.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"fmt"
	"io"

	"github.com/cvsscalc/cvss/pkg/scoring"
)

// Renderer produces formatted output from a ScoreResult.
type Renderer interface {
	// Render writes the formatted score result to the writer.
	Render(w io.Writer, result *scoring.ScoreResult) error
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string, verbose bool) (Renderer, error) {
	switch format {
	case "", "text":
		return &TerminalRenderer{Verbose: verbose}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}
