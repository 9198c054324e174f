package scoring

import "fmt"

// ScopeWeighting selects where the 1.08 scope-changed multiplier applies.
type ScopeWeighting string

const (
	// ScopeWeightImpact applies the multiplier to Impact only:
	// 1.08*Impact + Exploitability.
	ScopeWeightImpact ScopeWeighting = "impact"
	// ScopeWeightTotal applies it to the sum: 1.08*(Impact + Exploitability).
	ScopeWeightTotal ScopeWeighting = "total"
)

// ParseScopeWeighting converts a config or flag value to a ScopeWeighting.
// The empty string selects the default.
func ParseScopeWeighting(s string) (ScopeWeighting, error) {
	switch ScopeWeighting(s) {
	case "":
		return ScopeWeightImpact, nil
	case ScopeWeightImpact, ScopeWeightTotal:
		return ScopeWeighting(s), nil
	default:
		return "", fmt.Errorf("unknown scope weighting %q (want %q or %q)", s, ScopeWeightImpact, ScopeWeightTotal)
	}
}

// Config controls engine behaviour.
type Config struct {
	// Strict rejects vectors with anything after the base metrics.
	Strict         bool
	ScopeWeighting ScopeWeighting
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Strict:         false,
		ScopeWeighting: ScopeWeightImpact,
	}
}
