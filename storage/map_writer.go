package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pg-atlas/models"
)

// MapWriter exports listings as the JSON marker array the map renderer
// consumes: one (lat, lon, label, tags) tuple per listing.
type MapWriter struct {
	path string
}

// NewMapWriter returns a MapWriter targeting the given path.
func NewMapWriter(path string) *MapWriter {
	return &MapWriter{path: path}
}

// Export writes all map points, replacing any previous file.
func (m *MapWriter) Export(listings []*models.Listing) error {
	points := make([]models.MapPoint, 0, len(listings))
	for _, l := range listings {
		label := l.Name
		if label == "" {
			label = l.Hub
		}
		points = append(points, models.MapPoint{
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
			Label:     label,
			Hub:       l.Hub,
			Tags:      l.Tags,
		})
	}

	data, err := json.MarshalIndent(points, "", "  ")
	if err != nil {
		return fmt.Errorf("map: marshal points: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("map: create output dir: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("map: write file %q: %w", m.path, err)
	}
	return nil
}
