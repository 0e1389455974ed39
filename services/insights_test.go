package services

import (
	"testing"

	"pg-atlas/models"
)

func sampleListings() []*models.Listing {
	return []*models.Listing{
		{Name: "A", Hub: "Gachibowli", Cost: 6000, Rating: 4.5, Sharing: 2, ValueScore: ValueScore(4.5, 6000), Tags: []models.Tag{models.TagFastWifi}},
		{Name: "B", Hub: "Gachibowli", Cost: 8000, Rating: 4.0, Sharing: 2, ValueScore: ValueScore(4.0, 8000)},
		{Name: "C", Hub: "Ameerpet", Cost: 5000, Rating: 3.0, Sharing: 3, ValueScore: ValueScore(3.0, 5000), Tags: []models.Tag{models.TagFastWifi, models.TagBadFood}},
		{Name: "D", Hub: "Hyderabad", Cost: 9000, Rating: 3.0, Sharing: models.SharingUnknown, ValueScore: ValueScore(3.0, 9000)},
	}
}

func TestInsightCounts(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())

	if r.TotalListings != 4 {
		t.Errorf("TotalListings: got %d, want 4", r.TotalListings)
	}
	if r.CountsByLocation["Gachibowli"] != 2 {
		t.Errorf("Gachibowli count: got %d, want 2", r.CountsByLocation["Gachibowli"])
	}
	if r.CountsByLocation["Ameerpet"] != 1 {
		t.Errorf("Ameerpet count: got %d, want 1", r.CountsByLocation["Ameerpet"])
	}
}

func TestInsightAverageCost(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())

	if got := r.AvgCostByLocation["Gachibowli"]; got != 7000 {
		t.Errorf("Gachibowli avg cost: got %.0f, want 7000", got)
	}
	if got := r.AvgCostBySharing["2 Sharing"]; got != 7000 {
		t.Errorf("2 Sharing avg cost: got %.0f, want 7000", got)
	}
	if got := r.AvgCostBySharing["Unknown"]; got != 9000 {
		t.Errorf("Unknown sharing avg cost: got %.0f, want 9000", got)
	}
}

func TestInsightTopValue(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())

	if len(r.TopValue) != 4 {
		t.Fatalf("TopValue len: got %d, want 4", len(r.TopValue))
	}
	for i := 1; i < len(r.TopValue); i++ {
		if r.TopValue[i].ValueScore > r.TopValue[i-1].ValueScore {
			t.Errorf("TopValue not sorted descending at %d", i)
		}
	}
	if r.BestValue == nil || r.BestValue.Name != r.TopValue[0].Name {
		t.Errorf("BestValue should be the top-ranked listing")
	}
}

func TestInsightTagCounts(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())

	if r.TagCounts[models.TagFastWifi] != 2 {
		t.Errorf("fast-wifi count: got %d, want 2", r.TagCounts[models.TagFastWifi])
	}
	if r.TagCounts[models.TagBadFood] != 1 {
		t.Errorf("bad-food count: got %d, want 1", r.TagCounts[models.TagBadFood])
	}
}

func TestInsightScatter(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())

	if len(r.Scatter) != 4 {
		t.Fatalf("scatter points: got %d, want 4", len(r.Scatter))
	}
	if r.Scatter[0].Cost != 6000 || r.Scatter[0].Rating != 4.5 {
		t.Errorf("scatter[0]: got %+v, want cost 6000 rating 4.5", r.Scatter[0])
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(nil)

	if r.TotalListings != 0 {
		t.Errorf("expected 0 total listings for empty input")
	}
	if r.BestValue != nil {
		t.Errorf("BestValue should be nil for empty input")
	}
}
