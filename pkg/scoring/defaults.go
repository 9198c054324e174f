package scoring

import (
	"errors"
	"fmt"

	"github.com/cvsscalc/cvss/pkg/vector"
)

// ErrUnknownMetricLetter means a parsed letter has no weight in the table.
// The parser grammar and the table cover the same letters, so this indicates
// a defect rather than bad input.
var ErrUnknownMetricLetter = errors.New("unknown metric letter")

// Qualitative weights per metric. Read-only.
var (
	attackVectorWeights = map[string]float64{"N": 0.20, "A": 0.62, "L": 0.55, "P": 0.20}

	attackComplexityWeights = map[string]float64{"L": 0.77, "H": 0.44}

	privilegesUnchangedWeights = map[string]float64{"N": 0.85, "L": 0.62, "H": 0.27}
	privilegesChangedWeights   = map[string]float64{"N": 0.85, "L": 0.68, "H": 0.27}

	userInteractionWeights = map[string]float64{"N": 0.85, "R": 0.62}

	// Shared by C, I and A.
	impactWeights = map[string]float64{"H": 0.56, "L": 0.22, "N": 0.00}
)

// QualitativeTable maps metric letters to numeric weights. The PR column
// depends on the scope it was built for.
type QualitativeTable struct {
	scopeChanged bool
}

// Weights returns the qualitative table for the given scope.
func Weights(scopeChanged bool) QualitativeTable {
	return QualitativeTable{scopeChanged: scopeChanged}
}

// ScopeChanged reports which PR column the table uses.
func (t QualitativeTable) ScopeChanged() bool { return t.scopeChanged }

func (t QualitativeTable) column(m vector.Metric) map[string]float64 {
	switch m {
	case vector.AttackVector:
		return attackVectorWeights
	case vector.AttackComplexity:
		return attackComplexityWeights
	case vector.PrivilegesRequired:
		if t.scopeChanged {
			return privilegesChangedWeights
		}
		return privilegesUnchangedWeights
	case vector.UserInteraction:
		return userInteractionWeights
	case vector.Confidentiality, vector.Integrity, vector.Availability:
		return impactWeights
	default:
		return nil
	}
}

// Weight returns the numeric weight of a metric letter.
func (t QualitativeTable) Weight(m vector.Metric, letter string) (float64, error) {
	w, ok := t.column(m)[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %s:%s", ErrUnknownMetricLetter, m, letter)
	}
	return w, nil
}

// Resolve looks up every weighted base metric of v. It never returns a
// partially populated Metrics.
func (t QualitativeTable) Resolve(v *vector.Vector) (Metrics, error) {
	if v == nil {
		return Metrics{}, fmt.Errorf("vector is nil")
	}

	var (
		m   = Metrics{ScopeChanged: t.scopeChanged}
		err error
	)
	targets := []struct {
		metric vector.Metric
		dst    *float64
	}{
		{vector.AttackVector, &m.AV},
		{vector.AttackComplexity, &m.AC},
		{vector.PrivilegesRequired, &m.PR},
		{vector.UserInteraction, &m.UI},
		{vector.Confidentiality, &m.C},
		{vector.Integrity, &m.I},
		{vector.Availability, &m.A},
	}
	for _, tg := range targets {
		*tg.dst, err = t.Weight(tg.metric, v.Get(tg.metric))
		if err != nil {
			return Metrics{}, err
		}
	}
	return m, nil
}
