package services

import (
	"math"
	"testing"
)

func TestValueScoreExact(t *testing.T) {
	// (4² / 8000) × 5000 = 10.0
	got := ValueScore(4, 8000)
	if math.Abs(got-10.0) > 1e-9 {
		t.Errorf("ValueScore(4, 8000) = %v; want 10.0", got)
	}
}

func TestValueScoreMonotonicInRating(t *testing.T) {
	if ValueScore(5, 5000) <= ValueScore(4, 5000) {
		t.Error("score should increase with rating at fixed cost")
	}
}

func TestValueScoreMonotonicInCost(t *testing.T) {
	if ValueScore(4, 5000) <= ValueScore(4, 10000) {
		t.Error("score should decrease with cost at fixed rating")
	}
}

func TestValueScoreNonNegative(t *testing.T) {
	for _, tc := range []struct{ rating, cost float64 }{
		{1, 1}, {5, 100000}, {3, 8000}, {4, 0},
	} {
		if got := ValueScore(tc.rating, tc.cost); got < 0 {
			t.Errorf("ValueScore(%v, %v) = %v; want non-negative", tc.rating, tc.cost, got)
		}
	}
}
