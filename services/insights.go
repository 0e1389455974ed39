package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"pg-atlas/models"
	"pg-atlas/utils"
)

// InsightService computes the cross-row aggregates the chart widgets are
// built from. This is deliberately downstream of the pipeline: the per-row
// transform never aggregates.
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates an InsightService with the given logger.
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate builds the aggregate report over a normalized dataset.
func (s *InsightService) Generate(listings []*models.Listing) *models.InsightReport {
	report := &models.InsightReport{
		AvgCostByLocation: make(map[string]float64),
		AvgCostBySharing:  make(map[string]float64),
		CountsByLocation:  make(map[string]int),
		TagCounts:         make(map[models.Tag]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)

	costTotals := make(map[string]float64)
	sharingTotals := make(map[string]float64)
	sharingCounts := make(map[string]int)

	for _, l := range listings {
		hub := l.Hub
		report.CountsByLocation[hub]++
		costTotals[hub] += l.Cost

		label := l.SharingLabel()
		sharingTotals[label] += l.Cost
		sharingCounts[label]++

		for _, tag := range l.Tags {
			report.TagCounts[tag]++
		}

		report.Scatter = append(report.Scatter, models.ScatterPoint{
			Cost:    l.Cost,
			Rating:  l.Rating,
			Sharing: l.Sharing,
		})
	}

	for hub, total := range costTotals {
		report.AvgCostByLocation[hub] = math.Round(total / float64(report.CountsByLocation[hub]))
	}
	for label, total := range sharingTotals {
		report.AvgCostBySharing[label] = math.Round(total / float64(sharingCounts[label]))
	}

	ranked := make([]*models.Listing, len(listings))
	copy(ranked, listings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ValueScore > ranked[j].ValueScore
	})
	if len(ranked) > 5 {
		report.TopValue = ranked[:5]
	} else {
		report.TopValue = ranked
	}
	report.BestValue = ranked[0]

	return report
}

// Print renders the report as an ANSI terminal dashboard. Listing and hub
// names come from a public form and are often non-ASCII, so alignment uses
// display width rather than byte length.
func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 56)
	thin := strings.Repeat("─", 56)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🏡 PG/HOSTEL DATASET INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Listings in dataset : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Println()

	fmt.Printf("\033[1;33m  Average Monthly Cost by Location\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.AvgCostByLocation) == 0 {
		fmt.Printf("  No location data\n")
	} else {
		for _, hub := range sortedByValueDesc(r.AvgCostByLocation) {
			fmt.Printf("  %s \033[1;32m₹%.0f\033[0m\n",
				padName(hub, 24), r.AvgCostByLocation[hub])
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Average Monthly Cost by Sharing Type\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, label := range sortedByValueDesc(r.AvgCostBySharing) {
		fmt.Printf("  %s \033[1;32m₹%.0f\033[0m\n",
			padName(label, 24), r.AvgCostBySharing[label])
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Listings by Location\033[0m\n")
	fmt.Printf("  %s\n", thin)
	type hubCount struct {
		hub   string
		count int
	}
	var hubs []hubCount
	for hub, cnt := range r.CountsByLocation {
		hubs = append(hubs, hubCount{hub, cnt})
	}
	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].count == hubs[j].count {
			return hubs[i].hub < hubs[j].hub
		}
		return hubs[i].count > hubs[j].count
	})
	for _, hc := range hubs {
		bar := strings.Repeat("█", hc.count)
		fmt.Printf("  %s %s (%d)\n", padName(hc.hub, 24), bar, hc.count)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top 5 Best Value (rating² per rupee)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopValue) == 0 {
		fmt.Printf("  No listings\n")
	} else {
		for i, l := range r.TopValue {
			fmt.Printf("  \033[1m%d.\033[0m %s \033[1;32m%6.2f\033[0m  ₹%.0f/mo, %.1f ★\n",
				i+1, padName(l.Name, 30), l.ValueScore, l.Cost, l.Rating)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// padName truncates and right-pads a name to a fixed display width.
func padName(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}

func sortedByValueDesc(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] == m[keys[j]] {
			return keys[i] < keys[j]
		}
		return m[keys[i]] > m[keys[j]]
	})
	return keys
}
