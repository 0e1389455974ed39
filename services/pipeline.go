package services

import (
	"fmt"
	"strings"

	"pg-atlas/config"
	"pg-atlas/models"
	"pg-atlas/utils"
)

// Pipeline composes normalization, geo resolution, tagging and scoring into
// a single raw → normalized transform over a batch of rows.
//
// Rows are independent, so the transform runs as a bounded parallel map; each
// worker writes its result to the row's own index, which preserves order and
// the 1:1 row identity. Malformed rows degrade to defaults; no row is ever
// dropped or added.
type Pipeline struct {
	logger  *utils.Logger
	norm    *Normalizer
	geo     *GeoResolver
	tagger  *Tagger
	workers int
}

// NewPipeline wires the pipeline stages from the atlas configuration.
// A nil atlas is a contract violation, not a data problem, and fails fast.
func NewPipeline(atlas *config.Atlas, logger *utils.Logger, maxWorkers int) (*Pipeline, error) {
	if atlas == nil {
		return nil, fmt.Errorf("pipeline: atlas configuration is nil")
	}
	if len(atlas.Hubs) == 0 {
		return nil, fmt.Errorf("pipeline: atlas has no hubs")
	}

	return &Pipeline{
		logger:  logger,
		norm:    NewNormalizer(atlas, logger),
		geo:     NewGeoResolver(atlas),
		tagger:  NewTagger(atlas.TagRules),
		workers: maxWorkers,
	}, nil
}

// Run transforms every raw row into exactly one normalized listing,
// preserving input order. An empty (or nil) input yields an empty output.
func (p *Pipeline) Run(raw []*models.RawListing) []*models.Listing {
	listings := make([]*models.Listing, len(raw))
	if len(raw) == 0 {
		return listings
	}

	pool := utils.NewWorkerPool(p.workers)
	for i, r := range raw {
		i, r := i, r
		pool.Submit(func() {
			listings[i] = p.transform(r)
		})
	}
	pool.Wait()

	p.logger.Info("[pipeline] Normalized %d listings", len(listings))
	return listings
}

// transform builds one normalized listing from one raw row. Every derived
// field except the jittered coordinates is a deterministic function of the
// row and the static atlas tables.
func (p *Pipeline) transform(r *models.RawListing) *models.Listing {
	if r == nil {
		r = &models.RawListing{}
	}

	cost := p.norm.ResolveCost(r.RawCost)
	rating := p.norm.ImputeRating(r.Rating)

	hubCoord, hub := p.geo.Resolve(r.Location)
	coord := p.geo.Jitter(hubCoord)

	return &models.Listing{
		Name:     strings.TrimSpace(r.Name),
		Category: ParseCategory(r.Category),
		Location: strings.TrimSpace(r.Location),
		Sharing:  ParseSharing(r.Sharing),
		Cost:     cost,
		Rating:   rating,
		Comments: strings.TrimSpace(r.Comments),

		Tags:       p.tagger.Tags(r.Comments),
		ValueScore: ValueScore(rating, cost),
		Hub:        hub,
		Latitude:   coord.Lat,
		Longitude:  coord.Lon,
	}
}
