package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pg-atlas/models"
)

// Coordinate is an approximate (latitude, longitude) reference point.
type Coordinate struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// TagRule binds a keyword family to the tag it emits. Families are matched
// independently; contradictory tags (good-food and bad-food) may both fire.
type TagRule struct {
	Tag      models.Tag `yaml:"tag"`
	Keywords []string   `yaml:"keywords"`
}

// Atlas is the static lookup configuration the pipeline is built with:
// hub coordinates, tagging rules, and the documented fallback constants.
// It is loaded once at startup and never mutated.
type Atlas struct {
	Hubs          map[string]Coordinate `yaml:"hubs"`
	CityCenter    Coordinate            `yaml:"city_center"`
	TagRules      []TagRule             `yaml:"tag_rules"`
	DefaultCost   float64               `yaml:"default_cost"`
	DefaultRating float64               `yaml:"default_rating"`
	JitterSigma   float64               `yaml:"jitter_sigma"`
}

// DefaultAtlas returns the compiled-in Hyderabad atlas: the major PG hubs,
// the comment keyword families, and the fallback constants (default cost
// 8000/mo, default rating 3.0 "unknown/average", jitter sigma 0.003 deg).
func DefaultAtlas() *Atlas {
	return &Atlas{
		Hubs: map[string]Coordinate{
			"Gachibowli":    {Lat: 17.4401, Lon: 78.3489},
			"Hitec City":    {Lat: 17.4435, Lon: 78.3772},
			"Madhapur":      {Lat: 17.4483, Lon: 78.3915},
			"Kondapur":      {Lat: 17.4622, Lon: 78.3568},
			"Manikonda":     {Lat: 17.4024, Lon: 78.3827},
			"Miyapur":       {Lat: 17.4969, Lon: 78.3715},
			"Kukatpally":    {Lat: 17.4849, Lon: 78.4113},
			"KPHB":          {Lat: 17.4933, Lon: 78.3996},
			"Ameerpet":      {Lat: 17.4375, Lon: 78.4483},
			"Begumpet":      {Lat: 17.4440, Lon: 78.4664},
			"Secunderabad":  {Lat: 17.4399, Lon: 78.4983},
			"Banjara Hills": {Lat: 17.4156, Lon: 78.4347},
			"Jubilee Hills": {Lat: 17.4326, Lon: 78.4071},
			"Uppal":         {Lat: 17.4058, Lon: 78.5592},
			"LB Nagar":      {Lat: 17.3476, Lon: 78.5516},
			"Dilsukhnagar":  {Lat: 17.3688, Lon: 78.5247},
			"Tarnaka":       {Lat: 17.4275, Lon: 78.5382},
		},
		CityCenter: Coordinate{Lat: 17.3850, Lon: 78.4867},
		TagRules: []TagRule{
			{Tag: models.TagFastWifi, Keywords: []string{"fast wifi", "good wifi", "great wifi", "wifi is good", "fast internet", "high speed internet"}},
			{Tag: models.TagSlowWifi, Keywords: []string{"slow wifi", "bad wifi", "wifi is bad", "wifi issues", "no wifi", "poor internet"}},
			{Tag: models.TagGoodFood, Keywords: []string{"good food", "great food", "tasty food", "food is good", "delicious"}},
			{Tag: models.TagBadFood, Keywords: []string{"bad food", "food is bad", "terrible food", "food not good", "pathetic food"}},
			{Tag: models.TagSpaciousRooms, Keywords: []string{"spacious", "big rooms", "large rooms", "roomy"}},
			{Tag: models.TagCrampedRooms, Keywords: []string{"cramped", "small rooms", "tiny rooms", "congested"}},
			{Tag: models.TagFriendlyOwner, Keywords: []string{"friendly owner", "owner is nice", "helpful owner", "good owner"}},
			{Tag: models.TagStrictRules, Keywords: []string{"strict", "curfew", "gate closes", "no guests"}},
			{Tag: models.TagPowerBackup, Keywords: []string{"power backup", "generator", "inverter", "no power cuts"}},
			{Tag: models.TagNearMetro, Keywords: []string{"near metro", "metro station", "close to metro", "walkable to metro"}},
		},
		DefaultCost:   8000,
		DefaultRating: 3.0,
		JitterSigma:   0.003,
	}
}

// LoadAtlas returns the atlas the pipeline should run with. An empty path
// means the compiled-in defaults; otherwise the YAML file at path is loaded,
// with any section it omits falling back to the defaults.
func LoadAtlas(path string) (*Atlas, error) {
	if path == "" {
		return DefaultAtlas(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read atlas file %q: %w", path, err)
	}

	var loaded Atlas
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("config: parse atlas file %q: %w", path, err)
	}

	atlas := DefaultAtlas()
	if len(loaded.Hubs) > 0 {
		atlas.Hubs = loaded.Hubs
	}
	if loaded.CityCenter != (Coordinate{}) {
		atlas.CityCenter = loaded.CityCenter
	}
	if len(loaded.TagRules) > 0 {
		atlas.TagRules = loaded.TagRules
	}
	if loaded.DefaultCost > 0 {
		atlas.DefaultCost = loaded.DefaultCost
	}
	if loaded.DefaultRating > 0 {
		atlas.DefaultRating = loaded.DefaultRating
	}
	if loaded.JitterSigma > 0 {
		atlas.JitterSigma = loaded.JitterSigma
	}

	if err := atlas.validate(); err != nil {
		return nil, err
	}
	return atlas, nil
}

func (a *Atlas) validate() error {
	if len(a.Hubs) == 0 {
		return fmt.Errorf("config: atlas has no hubs")
	}
	if a.DefaultRating < 1.0 || a.DefaultRating > 5.0 {
		return fmt.Errorf("config: default rating %.1f outside [1.0, 5.0]", a.DefaultRating)
	}
	if a.DefaultCost <= 0 {
		return fmt.Errorf("config: default cost must be positive, got %.0f", a.DefaultCost)
	}
	for _, rule := range a.TagRules {
		if rule.Tag == "" || len(rule.Keywords) == 0 {
			return fmt.Errorf("config: tag rule %q has no keywords", rule.Tag)
		}
	}
	return nil
}
