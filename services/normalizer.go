package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"pg-atlas/config"
	"pg-atlas/models"
	"pg-atlas/utils"
)

var (
	// amountRegexp captures a numeric value with an optional thousands suffix
	amountRegexp = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(k)?`)
	// ratingRegexp captures the first numeric value, sign included, in a raw
	// rating cell; without the sign a "-2" would parse as a valid 2.0
	ratingRegexp = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	// sharingRegexp captures a leading bed count like "2 Sharing" or "3-sharing"
	sharingRegexp = regexp.MustCompile(`\d+`)
)

// Normalizer turns raw sheet cells into clean, bounded field values.
// Malformed input never errors; it degrades to the atlas defaults so every
// row survives into the ranked dataset.
type Normalizer struct {
	atlas  *config.Atlas
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given atlas constants and logger.
func NewNormalizer(atlas *config.Atlas, logger *utils.Logger) *Normalizer {
	return &Normalizer{atlas: atlas, logger: logger}
}

// ResolveCost parses a raw monthly cost into a single positive number.
// Examples:
//
//	"5000"    → 5000
//	"₹4,500"  → 4500
//	"5k"      → 5000
//	"5k-6k"   → 5500 (range midpoint, rounded to nearest integer)
//	"" / "n/a" → the default cost
func (n *Normalizer) ResolveCost(raw string) float64 {
	cleaned := cleanCost(raw)

	if lo, hi, ok := strings.Cut(cleaned, "-"); ok {
		low := parseAmount(lo)
		high := parseAmount(hi)
		switch {
		case low > 0 && high > 0:
			return math.Round((low + high) / 2)
		case low > 0:
			return low
		case high > 0:
			return high
		}
	} else if v := parseAmount(cleaned); v > 0 {
		return v
	}

	n.logger.Debug("[normalizer] Unparseable cost %q, using default %.0f", raw, n.atlas.DefaultCost)
	return n.atlas.DefaultCost
}

// ImputeRating parses a raw rating and substitutes the default for anything
// missing or outside [1.0, 5.0]. Zero, negative and ">5" ratings all count as
// unknown rather than being clamped.
func (n *Normalizer) ImputeRating(raw string) float64 {
	match := ratingRegexp.FindString(raw)
	if match == "" {
		return n.atlas.DefaultRating
	}
	val, err := strconv.ParseFloat(match, 64)
	if err != nil || val < 1.0 || val > 5.0 {
		n.logger.Debug("[normalizer] Rating %q out of range, using default %.1f", raw, n.atlas.DefaultRating)
		return n.atlas.DefaultRating
	}
	return val
}

// ParseCategory maps free-text PG type to a Category. Ladies markers are
// checked before gents because "female" contains "male" and "women" contains
// "men".
func ParseCategory(raw string) models.Category {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return models.CategoryUnknown
	case containsAny(s, "co-ed", "coed", "co ed", "unisex", "both"):
		return models.CategoryCoed
	case containsAny(s, "ladies", "girl", "female", "women"):
		return models.CategoryLadies
	case containsAny(s, "gent", "boy", "male", "men"):
		return models.CategoryGents
	default:
		return models.CategoryUnknown
	}
}

// ParseSharing extracts a bed count from the raw sharing cell. Word forms
// ("Single", "Double") and digits ("2 Sharing") are both accepted; anything
// else is SharingUnknown.
func ParseSharing(raw string) int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return models.SharingUnknown
	}

	if match := sharingRegexp.FindString(s); match != "" {
		if n, err := strconv.Atoi(match); err == nil && n >= 1 {
			return n
		}
	}

	switch {
	case strings.Contains(s, "single"):
		return 1
	case strings.Contains(s, "double") || strings.Contains(s, "two"):
		return 2
	case strings.Contains(s, "triple") || strings.Contains(s, "three"):
		return 3
	case strings.Contains(s, "four") || strings.Contains(s, "quad"):
		return 4
	}
	return models.SharingUnknown
}

// cleanCost lower-cases the raw cell and keeps only the characters the parser
// understands: digits, the decimal point, the thousands marker and the range
// separator. Currency symbols, commas and words all drop out here.
func cleanCost(raw string) string {
	raw = strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.', r == 'k', r == '-':
			b.WriteRune(r)
		case r == '–' || r == '—': // en/em dash ranges from copy-pasted text
			b.WriteByte('-')
		}
	}
	return b.String()
}

// parseAmount parses one side of a cost expression. A value under 1000 with a
// trailing k marker is a thousands shorthand ("5k" → 5000, "5.5k" → 5500).
func parseAmount(s string) float64 {
	match := amountRegexp.FindStringSubmatch(s)
	if match == nil {
		return 0
	}
	val, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	if match[2] != "" && val < 1000 {
		val *= 1000
	}
	return val
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
