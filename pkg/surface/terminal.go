package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cvsscalc/cvss/pkg/scoring"
)

// TerminalRenderer writes the "<score> which is <rating>" line and, when
// Verbose is set, a colored per-metric breakdown.
type TerminalRenderer struct {
	Verbose bool
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func ratingColor(r scoring.Rating) string {
	if noColor() {
		return ""
	}
	switch r {
	case scoring.RatingNone, scoring.RatingLow:
		return colorGreen
	case scoring.RatingMedium:
		return colorYellow
	case scoring.RatingHigh, scoring.RatingCritical:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

// Summary formats the one-line result.
func Summary(result *scoring.ScoreResult) string {
	return fmt.Sprintf("%.1f which is %s", result.BaseScore, result.Rating)
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.ScoreResult) error {
	if _, err := fmt.Fprintln(w, Summary(result)); err != nil {
		return err
	}
	if !r.Verbose {
		return nil
	}

	scope := "Unchanged"
	if result.ScopeChanged {
		scope = "Changed"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", bold("Vector:  "), result.Vector)
	fmt.Fprintf(w, "%s %s\n", bold("Scope:   "), scope)
	fmt.Fprintf(w, "%s %s\n\n", bold("Severity:"), colored(string(result.Rating), ratingColor(result.Rating)))

	fmt.Fprintln(w, "Metrics:")
	for _, mr := range result.Breakdown {
		weight := dim("-")
		if mr.Key != "S" {
			weight = fmt.Sprintf("%.2f", mr.Weight)
		}
		fmt.Fprintf(w, "  %-3s %-20s %s  %s\n", mr.Key, mr.Name, mr.Value, weight)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Sub-scores:")
	fmt.Fprintf(w, "  %-23s %.4f\n", "Impact sub-score (ISS)", result.ImpactSubScore)
	fmt.Fprintf(w, "  %-23s %.4f\n", "Impact", result.Impact)
	fmt.Fprintf(w, "  %-23s %.4f\n", "Exploitability", result.Exploitability)

	if len(result.Ignored) > 0 {
		fields := make([]string, 0, len(result.Ignored))
		for _, f := range result.Ignored {
			fields = append(fields, f.Key+":"+f.Value)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s\n", dim("Ignored non-base fields: "+strings.Join(fields, " ")))
	}

	return nil
}
