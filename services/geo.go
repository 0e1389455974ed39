package services

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"pg-atlas/config"
)

// CityHubName labels listings that fell back to the citywide coordinate.
const CityHubName = "Hyderabad"

// GeoResolver places a free-text area name on the map via the static hub
// table. Resolution is deterministic; the randomized jitter that keeps
// markers from stacking is a separate step so tests (and anything that
// scores or filters) can work with the raw hub coordinate.
type GeoResolver struct {
	coords   map[string]config.Coordinate // normalized key → hub coordinate
	names    map[string]string            // normalized key → display name
	keys     []string                     // normalized keys, longest first
	fallback config.Coordinate
	sigma    float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGeoResolver builds a resolver from the atlas hub table.
func NewGeoResolver(atlas *config.Atlas) *GeoResolver {
	g := &GeoResolver{
		coords:   make(map[string]config.Coordinate, len(atlas.Hubs)),
		names:    make(map[string]string, len(atlas.Hubs)),
		fallback: atlas.CityCenter,
		sigma:    atlas.JitterSigma,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for name, coord := range atlas.Hubs {
		key := normalizeKey(name)
		if key == "" {
			continue
		}
		g.coords[key] = coord
		g.names[key] = name
		g.keys = append(g.keys, key)
	}

	// Longer hub names match first so "KPHB Colony" cannot be claimed by a
	// shorter hub that happens to be a substring of it.
	sort.Slice(g.keys, func(i, j int) bool {
		if len(g.keys[i]) == len(g.keys[j]) {
			return g.keys[i] < g.keys[j]
		}
		return len(g.keys[i]) > len(g.keys[j])
	})

	return g
}

// Resolve maps a raw location to a hub coordinate and the hub's display name.
// Lookup is exact first, then containment in either direction ("Near
// Gachibowli Metro" still lands on Gachibowli), then the citywide fallback.
// The result carries no jitter and is stable across runs.
func (g *GeoResolver) Resolve(location string) (config.Coordinate, string) {
	key := normalizeKey(location)
	if key == "" {
		return g.fallback, CityHubName
	}

	if coord, ok := g.coords[key]; ok {
		return coord, g.names[key]
	}

	for _, hubKey := range g.keys {
		if strings.Contains(key, hubKey) || strings.Contains(hubKey, key) {
			return g.coords[hubKey], g.names[hubKey]
		}
	}

	return g.fallback, CityHubName
}

// Jitter offsets a coordinate by independent Gaussian noise on each axis so
// listings sharing a hub do not render as one marker. Applied once per record
// per run; not reproducible across runs and never used for scoring.
func (g *GeoResolver) Jitter(c config.Coordinate) config.Coordinate {
	g.mu.Lock()
	defer g.mu.Unlock()
	return config.Coordinate{
		Lat: c.Lat + g.rng.NormFloat64()*g.sigma,
		Lon: c.Lon + g.rng.NormFloat64()*g.sigma,
	}
}

// normalizeKey case-folds a location and collapses anything that is not a
// letter or digit to single spaces, so "Hitec-City," and "hitec city" compare
// equal.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSpace = false
			continue
		}
		if !prevSpace {
			b.WriteByte(' ')
			prevSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
