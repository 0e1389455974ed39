package storage

import "pg-atlas/models"

// DatasetWriter is the interface any tabular output backend must satisfy.
type DatasetWriter interface {
	Write(listings []*models.Listing) error
	Close() error
}

// MapExporter emits the (lat, lon, label, tags) tuples the map renderer expects.
type MapExporter interface {
	Export(listings []*models.Listing) error
}
