// Package scoring implements the CVSS v3.1 base score calculation.
// It resolves parsed vectors to numeric weights, applies the base score
// formula and maps scores to qualitative ratings.
package scoring

import (
	"math"

	"github.com/cvsscalc/cvss/pkg/vector"
)

// ScoreResult is the complete output of scoring a vector.
// Immutable once computed.
type ScoreResult struct {
	Vector         string         `json:"vector"`
	BaseScore      float64        `json:"base_score"`
	Rating         Rating         `json:"rating"`
	ScopeChanged   bool           `json:"scope_changed"`
	ImpactSubScore float64        `json:"impact_sub_score"`
	Impact         float64        `json:"impact"`
	Exploitability float64        `json:"exploitability"`
	Breakdown      []MetricResult `json:"breakdown"`
	Ignored        []vector.Field `json:"ignored,omitempty"` // trailing non-base fields
}

// MetricResult describes how a single metric letter was weighted.
type MetricResult struct {
	Key    string  `json:"key"`   // "AV"
	Name   string  `json:"name"`  // "Attack Vector"
	Value  string  `json:"value"` // "N"
	Weight float64 `json:"weight"`
}

// Metrics are the resolved numeric weights fed to the formula.
// Only QualitativeTable.Resolve builds them.
type Metrics struct {
	AV, AC, PR, UI float64
	C, I, A        float64
	ScopeChanged   bool
}

// Rating is the qualitative severity band of a base score.
type Rating string

const (
	RatingNone     Rating = "None"
	RatingLow      Rating = "Low"
	RatingMedium   Rating = "Medium"
	RatingHigh     Rating = "High"
	RatingCritical Rating = "Critical"
	RatingInvalid  Rating = "Invalid Value"
)

// RatingForScore maps a base score to its rating band. Scores outside
// [0.0, 10.0] map to RatingInvalid.
func RatingForScore(score float64) Rating {
	switch {
	case math.IsNaN(score):
		return RatingInvalid
	case score >= 0.0 && score < 0.1:
		return RatingNone
	case score >= 0.1 && score < 4.0:
		return RatingLow
	case score >= 4.0 && score < 7.0:
		return RatingMedium
	case score >= 7.0 && score < 9.0:
		return RatingHigh
	case score >= 9.0 && score <= 10.0:
		return RatingCritical
	default:
		return RatingInvalid
	}
}
