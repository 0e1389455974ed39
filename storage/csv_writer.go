package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"pg-atlas/models"
)

// CSVWriter writes the normalized dataset to a CSV file for the tabular
// display. It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{
		"name", "category", "location", "sharing", "monthly_cost",
		"rating", "value_score", "tags", "hub", "latitude", "longitude", "comments",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends all normalized listings, one row each, in dataset order.
func (c *CSVWriter) Write(listings []*models.Listing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range listings {
		tags := make([]string, len(l.Tags))
		for i, t := range l.Tags {
			tags[i] = string(t)
		}

		row := []string{
			l.Name,
			string(l.Category),
			l.Location,
			l.SharingLabel(),
			strconv.FormatFloat(l.Cost, 'f', 0, 64),
			strconv.FormatFloat(l.Rating, 'f', 1, 64),
			strconv.FormatFloat(l.ValueScore, 'f', 2, 64),
			strings.Join(tags, "|"),
			l.Hub,
			strconv.FormatFloat(l.Latitude, 'f', 6, 64),
			strconv.FormatFloat(l.Longitude, 'f', 6, 64),
			l.Comments,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
