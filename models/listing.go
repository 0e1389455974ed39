package models

import "strconv"

// RawListing holds one sheet row exactly as ingested, before any cleaning.
// Every field is free text from the form; any of them may be empty or garbage.
type RawListing struct {
	Name     string
	Category string
	Location string
	Sharing  string
	RawCost  string
	Rating   string
	Comments string
}

// Category classifies who a PG/hostel admits.
type Category string

const (
	CategoryGents   Category = "Gents"
	CategoryLadies  Category = "Ladies"
	CategoryCoed    Category = "Co-ed"
	CategoryUnknown Category = "Unknown"
)

// Tag is a semantic label derived from the free-text comments.
type Tag string

const (
	TagFastWifi      Tag = "fast-wifi"
	TagSlowWifi      Tag = "slow-wifi"
	TagGoodFood      Tag = "good-food"
	TagBadFood       Tag = "bad-food"
	TagSpaciousRooms Tag = "spacious-rooms"
	TagCrampedRooms  Tag = "cramped-rooms"
	TagFriendlyOwner Tag = "friendly-owner"
	TagStrictRules   Tag = "strict-rules"
	TagPowerBackup   Tag = "power-backup"
	TagNearMetro     Tag = "near-metro"
)

// SharingUnknown marks a sharing type that could not be parsed.
const SharingUnknown = 0

// Listing is the normalized, scored, geolocated record ready for display.
// It is never mutated after the pipeline builds it.
type Listing struct {
	Name     string
	Category Category
	Location string
	Sharing  int // beds per room, SharingUnknown if unparseable
	Cost     float64
	Rating   float64
	Comments string

	Tags       []Tag
	ValueScore float64
	Hub        string
	Latitude   float64
	Longitude  float64
}

// HasTag reports whether the listing carries the given tag.
func (l *Listing) HasTag(tag Tag) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SharingLabel renders the sharing type for display.
func (l *Listing) SharingLabel() string {
	switch l.Sharing {
	case SharingUnknown:
		return "Unknown"
	case 1:
		return "Single"
	default:
		return strconv.Itoa(l.Sharing) + " Sharing"
	}
}

// MapPoint is what the map renderer consumes: one marker per listing.
type MapPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Label     string  `json:"label"`
	Hub       string  `json:"hub"`
	Tags      []Tag   `json:"tags"`
}

// ScatterPoint is one (cost, rating) pair for the rating-vs-cost chart.
type ScatterPoint struct {
	Cost    float64
	Rating  float64
	Sharing int
}

// InsightReport holds the aggregates the chart widgets are built from.
type InsightReport struct {
	TotalListings     int
	AvgCostByLocation map[string]float64
	AvgCostBySharing  map[string]float64
	CountsByLocation  map[string]int
	TagCounts         map[Tag]int
	Scatter           []ScatterPoint
	TopValue          []*Listing
	BestValue         *Listing
}
