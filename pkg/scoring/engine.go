package scoring

import (
	"fmt"
	"math"

	"github.com/cvsscalc/cvss/pkg/vector"
)

// Calculation holds the intermediate and final values of the base formula.
type Calculation struct {
	ImpactSubScore float64
	Impact         float64
	Exploitability float64
	BaseScore      float64
}

// Calculate applies the CVSS v3.1 base score formula to resolved metrics.
func Calculate(m Metrics, w ScopeWeighting) Calculation {
	iss := 1 - (1-m.C)*(1-m.I)*(1-m.A)
	exploitability := 8.22 * m.AV * m.AC * m.PR * m.UI

	impact := 6.42 * iss
	if m.ScopeChanged {
		impact = 7.52*(iss-0.029) - 3.25*math.Pow(iss-0.02, 15)
	}

	var base float64
	switch {
	case impact <= 0:
		base = 0
	case m.ScopeChanged && w == ScopeWeightTotal:
		base = math.Min(1.08*(impact+exploitability), 10)
	case m.ScopeChanged:
		base = math.Min(1.08*impact+exploitability, 10)
	default:
		base = math.Min(impact+exploitability, 10)
	}

	return Calculation{
		ImpactSubScore: iss,
		Impact:         impact,
		Exploitability: exploitability,
		BaseScore:      Roundup(base),
	}
}

// Roundup returns the smallest value with one decimal place that is >= x.
// It works on x scaled to five decimals so that float noise such as
// 4.000000000000001 stays 4.0 rather than becoming 4.1.
func Roundup(x float64) float64 {
	i := int64(math.Round(x * 100000))
	if i%10000 == 0 {
		return float64(i) / 100000
	}
	return float64(i/10000+1) / 10
}

// Engine scores vector strings. Safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates a scoring engine with the given config. An empty
// ScopeWeighting selects the default.
func NewEngine(cfg Config) *Engine {
	if cfg.ScopeWeighting == "" {
		cfg.ScopeWeighting = ScopeWeightImpact
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's effective config.
func (e *Engine) Config() Config { return e.cfg }

// Parse parses raw according to the engine's strictness.
func (e *Engine) Parse(raw string) (*vector.Vector, error) {
	if e.cfg.Strict {
		return vector.ParseStrict(raw)
	}
	return vector.Parse(raw)
}

// Score parses, resolves and scores a single vector string.
func (e *Engine) Score(raw string) (*ScoreResult, error) {
	changed, err := vector.ParseScope(raw)
	if err != nil {
		return nil, fmt.Errorf("extracting scope from %q: %w", raw, err)
	}

	v, err := e.Parse(raw)
	if err != nil {
		return nil, err
	}

	table := Weights(changed)
	metrics, err := table.Resolve(v)
	if err != nil {
		return nil, fmt.Errorf("resolving metrics: %w", err)
	}

	calc := Calculate(metrics, e.cfg.ScopeWeighting)

	result := &ScoreResult{
		Vector:         v.String(),
		BaseScore:      calc.BaseScore,
		Rating:         RatingForScore(calc.BaseScore),
		ScopeChanged:   changed,
		ImpactSubScore: calc.ImpactSubScore,
		Impact:         calc.Impact,
		Exploitability: calc.Exploitability,
		Breakdown:      breakdown(table, v),
		Ignored:        v.Extra,
	}
	return result, nil
}

// breakdown lists each base metric with the weight it contributed.
// Scope carries no weight of its own.
func breakdown(table QualitativeTable, v *vector.Vector) []MetricResult {
	results := make([]MetricResult, 0, len(vector.BaseMetrics))
	for _, m := range vector.BaseMetrics {
		mr := MetricResult{
			Key:   string(m),
			Name:  m.Name(),
			Value: v.Get(m),
		}
		if m != vector.Scope {
			// Already resolved successfully by the caller.
			mr.Weight, _ = table.Weight(m, mr.Value)
		}
		results = append(results, mr)
	}
	return results
}

var defaultEngine = NewEngine(DefaultConfig())

// ComputeBaseScore returns the base score of a vector using the default
// engine config.
func ComputeBaseScore(raw string) (float64, error) {
	result, err := defaultEngine.Score(raw)
	if err != nil {
		return 0, err
	}
	return result.BaseScore, nil
}
