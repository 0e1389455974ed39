package services

import (
	"math"
	"testing"

	"pg-atlas/config"
	"pg-atlas/models"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewPipeline(config.DefaultAtlas(), newTestLogger(), 4)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func sampleRows() []*models.RawListing {
	return []*models.RawListing{
		{Name: "Sri Sai Comforts", Category: "Gents", Location: "Gachibowli", Sharing: "2 Sharing", RawCost: "5k-6k", Rating: "4.5", Comments: "fast wifi but bad food"},
		{Name: "Lakshmi Nivas", Category: "Ladies", Location: "Ameerpet", Sharing: "Triple", RawCost: "₹7,500", Rating: "4", Comments: "good food, strict curfew"},
		{Name: "Mystery PG", Category: "", Location: "Narnia", Sharing: "", RawCost: "", Rating: ""},
	}
}

func TestPipelineRowCountInvariant(t *testing.T) {
	p := newTestPipeline(t)

	if got := p.Run(nil); len(got) != 0 {
		t.Errorf("empty input: got %d rows, want 0", len(got))
	}
	if got := p.Run([]*models.RawListing{}); len(got) != 0 {
		t.Errorf("empty slice: got %d rows, want 0", len(got))
	}

	rows := sampleRows()
	got := p.Run(rows)
	if len(got) != len(rows) {
		t.Fatalf("got %d rows, want %d", len(got), len(rows))
	}
	for i, l := range got {
		if l == nil {
			t.Fatalf("row %d is nil", i)
		}
	}
}

func TestPipelinePreservesOrder(t *testing.T) {
	p := newTestPipeline(t)

	rows := make([]*models.RawListing, 50)
	for i := range rows {
		rows[i] = &models.RawListing{Name: "PG-" + string(rune('A'+i%26)) + string(rune('a'+i/26))}
	}

	got := p.Run(rows)
	for i := range rows {
		if got[i].Name != rows[i].Name {
			t.Fatalf("row %d: got name %q, want %q", i, got[i].Name, rows[i].Name)
		}
	}
}

func TestPipelineMalformedRowDegrades(t *testing.T) {
	p := newTestPipeline(t)
	atlas := config.DefaultAtlas()

	got := p.Run([]*models.RawListing{{Name: "Broken Row", RawCost: "???", Rating: "many", Location: "Atlantis"}})
	l := got[0]

	if l.Cost != atlas.DefaultCost {
		t.Errorf("cost: got %.0f, want default %.0f", l.Cost, atlas.DefaultCost)
	}
	if l.Rating != atlas.DefaultRating {
		t.Errorf("rating: got %.1f, want default %.1f", l.Rating, atlas.DefaultRating)
	}
	if l.Category != models.CategoryUnknown {
		t.Errorf("category: got %q, want Unknown", l.Category)
	}
	if l.Hub != CityHubName {
		t.Errorf("hub: got %q, want %q", l.Hub, CityHubName)
	}
	if l.Latitude == 0 || l.Longitude == 0 {
		t.Errorf("coordinates not populated: %+v", l)
	}
	if l.ValueScore <= 0 {
		t.Errorf("value score: got %v, want positive", l.ValueScore)
	}
}

func TestPipelineNonRandomFieldsIdempotent(t *testing.T) {
	p := newTestPipeline(t)
	rows := sampleRows()

	first := p.Run(rows)
	second := p.Run(rows)

	for i := range rows {
		a, b := first[i], second[i]
		if a.Cost != b.Cost || a.Rating != b.Rating || a.ValueScore != b.ValueScore {
			t.Errorf("row %d: numeric fields differ across runs: %+v vs %+v", i, a, b)
		}
		if a.Hub != b.Hub || a.Category != b.Category || a.Sharing != b.Sharing {
			t.Errorf("row %d: categorical fields differ across runs", i)
		}
		if len(a.Tags) != len(b.Tags) {
			t.Errorf("row %d: tag sets differ across runs: %v vs %v", i, a.Tags, b.Tags)
		}
	}
}

func TestPipelineCoordinatesWithinJitterRadius(t *testing.T) {
	p := newTestPipeline(t)
	hub := config.DefaultAtlas().Hubs["Gachibowli"]

	got := p.Run([]*models.RawListing{{Name: "Near Campus", Location: "Gachibowli"}})
	l := got[0]

	const radius = 0.05
	if math.Abs(l.Latitude-hub.Lat) > radius || math.Abs(l.Longitude-hub.Lon) > radius {
		t.Errorf("coordinate (%f, %f) outside jitter radius of hub (%f, %f)",
			l.Latitude, l.Longitude, hub.Lat, hub.Lon)
	}
}

func TestPipelineSampleRowValues(t *testing.T) {
	p := newTestPipeline(t)
	got := p.Run(sampleRows())

	first := got[0]
	if first.Cost != 5500 {
		t.Errorf("range cost: got %.0f, want 5500", first.Cost)
	}
	if first.Rating != 4.5 {
		t.Errorf("rating: got %.1f, want 4.5", first.Rating)
	}
	if first.Sharing != 2 {
		t.Errorf("sharing: got %d, want 2", first.Sharing)
	}
	if !first.HasTag(models.TagFastWifi) || !first.HasTag(models.TagBadFood) {
		t.Errorf("tags: got %v, want fast-wifi and bad-food", first.Tags)
	}
	if first.Hub != "Gachibowli" {
		t.Errorf("hub: got %q, want Gachibowli", first.Hub)
	}

	second := got[1]
	if second.Cost != 7500 {
		t.Errorf("currency cost: got %.0f, want 7500", second.Cost)
	}
	if !second.HasTag(models.TagGoodFood) || !second.HasTag(models.TagStrictRules) {
		t.Errorf("tags: got %v, want good-food and strict-rules", second.Tags)
	}
}

func TestNewPipelineRejectsNilAtlas(t *testing.T) {
	if _, err := NewPipeline(nil, newTestLogger(), 1); err == nil {
		t.Error("expected error for nil atlas")
	}
}
