package scoring_test

import (
	"errors"
	"testing"

	"github.com/cvsscalc/cvss/pkg/scoring"
	"github.com/cvsscalc/cvss/pkg/vector"
)

func TestWeights(t *testing.T) {
	tests := []struct {
		changed bool
		metric  vector.Metric
		letter  string
		want    float64
	}{
		{false, vector.AttackVector, "N", 0.20},
		{false, vector.AttackVector, "A", 0.62},
		{false, vector.AttackVector, "L", 0.55},
		{false, vector.AttackVector, "P", 0.20},
		{false, vector.AttackComplexity, "L", 0.77},
		{false, vector.AttackComplexity, "H", 0.44},
		{false, vector.PrivilegesRequired, "N", 0.85},
		{false, vector.PrivilegesRequired, "L", 0.62},
		{false, vector.PrivilegesRequired, "H", 0.27},
		{true, vector.PrivilegesRequired, "N", 0.85},
		{true, vector.PrivilegesRequired, "L", 0.68},
		{true, vector.PrivilegesRequired, "H", 0.27},
		{true, vector.UserInteraction, "N", 0.85},
		{true, vector.UserInteraction, "R", 0.62},
		{false, vector.Confidentiality, "H", 0.56},
		{false, vector.Integrity, "L", 0.22},
		{true, vector.Availability, "N", 0.00},
	}

	for _, tt := range tests {
		got, err := scoring.Weights(tt.changed).Weight(tt.metric, tt.letter)
		if err != nil {
			t.Errorf("Weight(%s, %s) error: %v", tt.metric, tt.letter, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Weights(%v).Weight(%s, %s) = %v, want %v", tt.changed, tt.metric, tt.letter, got, tt.want)
		}
	}
}

func TestWeightUnknownLetter(t *testing.T) {
	table := scoring.Weights(false)

	for _, tc := range []struct {
		metric vector.Metric
		letter string
	}{
		{vector.AttackVector, "X"},
		{vector.UserInteraction, "H"},
		{vector.Scope, "U"},
		{vector.Metric("E"), "P"},
	} {
		if _, err := table.Weight(tc.metric, tc.letter); !errors.Is(err, scoring.ErrUnknownMetricLetter) {
			t.Errorf("Weight(%s, %s) error = %v, want ErrUnknownMetricLetter", tc.metric, tc.letter, err)
		}
	}
}

func TestResolve(t *testing.T) {
	v, err := vector.Parse("CVSS:3.1/AV:A/AC:H/PR:L/UI:N/S:C/C:H/I:L/A:N")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	m, err := scoring.Weights(v.ScopeChanged()).Resolve(v)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := scoring.Metrics{AV: 0.62, AC: 0.44, PR: 0.68, UI: 0.85, C: 0.56, I: 0.22, A: 0, ScopeChanged: true}
	if m != want {
		t.Errorf("Resolve() = %+v, want %+v", m, want)
	}
}

func TestResolveRejectsInconsistentVector(t *testing.T) {
	// Hand-built vectors bypass the parser grammar.
	v := &vector.Vector{
		AttackVector: "N", AttackComplexity: "M", PrivilegesRequired: "N", UserInteraction: "N",
		Scope: "U", Confidentiality: "H", Integrity: "H", Availability: "H",
	}

	m, err := scoring.Weights(false).Resolve(v)
	if !errors.Is(err, scoring.ErrUnknownMetricLetter) {
		t.Errorf("Resolve() error = %v, want ErrUnknownMetricLetter", err)
	}
	if m != (scoring.Metrics{}) {
		t.Errorf("expected zero Metrics on error, got %+v", m)
	}

	if _, err := scoring.Weights(false).Resolve(nil); err == nil {
		t.Error("expected error for nil vector")
	}
}
