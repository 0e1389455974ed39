// Package ingest reads the crowd-sourced sheet's CSV export into raw listings.
//
// The sheet is produced by a public form, so header cells arrive with emoji,
// trailing colons and stray whitespace ("💰 Monthly Cost (₹):"). Headers are
// normalized and matched against an alias table; columns that match nothing
// are ignored, and recognized columns that are absent simply leave the
// corresponding field empty.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"pg-atlas/models"
)

// Canonical field keys for recognized sheet columns.
const (
	fieldName     = "name"
	fieldCategory = "category"
	fieldLocation = "location"
	fieldSharing  = "sharing"
	fieldCost     = "cost"
	fieldRating   = "rating"
	fieldComments = "comments"
)

// headerAliases maps normalized header text to a canonical field. Matching is
// by containment, longest alias first, so "name of pg hostel" resolves before
// a bare "name".
var headerAliases = []struct {
	substr string
	field  string
}{
	{"name of pg", fieldName},
	{"pg hostel", fieldName},
	{"type of pg", fieldCategory},
	{"type of sharing", fieldSharing},
	{"monthly cost", fieldCost},
	{"overall rating", fieldRating},
	{"additional comments", fieldComments},
	{"category", fieldCategory},
	{"location", fieldLocation},
	{"sharing", fieldSharing},
	{"comments", fieldComments},
	{"rating", fieldRating},
	{"area", fieldLocation},
	{"cost", fieldCost},
	{"rent", fieldCost},
	{"name", fieldName},
}

// ReadSheet opens the CSV export at path and returns its rows as raw listings.
func ReadSheet(path string) ([]*models.RawListing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open sheet %q: %w", path, err)
	}
	defer f.Close()

	listings, err := ParseSheet(f)
	if err != nil {
		return nil, fmt.Errorf("ingest: sheet %q: %w", path, err)
	}
	return listings, nil
}

// ParseSheet reads CSV data and maps each row to a RawListing. The header row
// is required; a sheet whose header matches no known column is a contract
// violation and fails fast. Data rows are never rejected, however malformed.
func ParseSheet(r io.Reader) ([]*models.RawListing, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sheet is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := mapColumns(header)
	if len(cols) == 0 {
		return nil, fmt.Errorf("header matches no recognized columns: %v", header)
	}

	var listings []*models.RawListing
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(listings)+2, err)
		}

		listings = append(listings, &models.RawListing{
			Name:     cell(row, cols, fieldName),
			Category: cell(row, cols, fieldCategory),
			Location: cell(row, cols, fieldLocation),
			Sharing:  cell(row, cols, fieldSharing),
			RawCost:  cell(row, cols, fieldCost),
			Rating:   cell(row, cols, fieldRating),
			Comments: cell(row, cols, fieldComments),
		})
	}
	return listings, nil
}

// mapColumns resolves each header cell to a canonical field index. The first
// column claiming a field wins; later duplicates are ignored.
func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		key := normalizeHeader(h)
		if key == "" {
			continue
		}
		for _, alias := range headerAliases {
			if strings.Contains(key, alias.substr) {
				if _, taken := cols[alias.field]; !taken {
					cols[alias.field] = i
				}
				break
			}
		}
	}
	return cols
}

// normalizeHeader lower-cases a header cell and collapses everything that is
// not a letter or digit (emoji, punctuation, the currency hint) to single
// spaces.
func normalizeHeader(s string) string {
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

func cell(row []string, cols map[string]int, field string) string {
	idx, ok := cols[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
