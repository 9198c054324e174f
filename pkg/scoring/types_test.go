package scoring_test

import (
	"math"
	"testing"

	"github.com/cvsscalc/cvss/pkg/scoring"
)

func TestRatingForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  scoring.Rating
	}{
		{0.0, scoring.RatingNone},
		{0.09, scoring.RatingNone},
		{0.1, scoring.RatingLow},
		{3.2, scoring.RatingLow},
		{3.99, scoring.RatingLow},
		{4.0, scoring.RatingMedium},
		{6.4, scoring.RatingMedium},
		{7.0, scoring.RatingHigh},
		{8.234, scoring.RatingHigh},
		{9.0, scoring.RatingCritical},
		{9.69, scoring.RatingCritical},
		{10.00, scoring.RatingCritical},
		{-1.0, scoring.RatingInvalid},
		{10.32, scoring.RatingInvalid},
		{math.NaN(), scoring.RatingInvalid},
		{math.Inf(1), scoring.RatingInvalid},
	}

	for _, tt := range tests {
		if got := scoring.RatingForScore(tt.score); got != tt.want {
			t.Errorf("RatingForScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRatingInvalidLabel(t *testing.T) {
	if string(scoring.RatingInvalid) != "Invalid Value" {
		t.Errorf("unexpected invalid label %q", scoring.RatingInvalid)
	}
}

func TestRatingMonotonic(t *testing.T) {
	order := map[scoring.Rating]int{
		scoring.RatingNone:     0,
		scoring.RatingLow:      1,
		scoring.RatingMedium:   2,
		scoring.RatingHigh:     3,
		scoring.RatingCritical: 4,
	}

	prev := -1
	for tenths := 0; tenths <= 100; tenths++ {
		r := scoring.RatingForScore(float64(tenths) / 10)
		rank, ok := order[r]
		if !ok {
			t.Fatalf("RatingForScore(%v) = %q, expected a valid band", float64(tenths)/10, r)
		}
		if rank < prev {
			t.Errorf("rating decreased at %v: %q", float64(tenths)/10, r)
		}
		prev = rank
	}
}
