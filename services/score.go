package services

// ValueScore ranks a listing by quality per rupee: (rating² / cost) × 5000.
// Squaring the rating makes the metric favor quality over raw cheapness.
// It is pure and deterministic: strictly increasing in rating, strictly
// decreasing in cost. Cost is guaranteed positive by the cost normalizer's
// fallback policy; the zero guard only covers callers bypassing it.
func ValueScore(rating, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	return rating * rating / cost * 5000
}
