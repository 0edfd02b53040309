// Package catalog records lineage for processed sorteos in an optional
// PostgreSQL catalog. Catalog failures never fail the pipeline.
package catalog

import (
	"context"
)

// CatalogConfig configures the lineage catalog.
type CatalogConfig struct {
	PostgresDSN string `yaml:"postgres_dsn"` // empty disables the catalog
}

// Writer persists lineage records for committed sorteos.
type Writer interface {
	RecordSorteo(ctx context.Context, rec SorteoRecord) error
	Close() error
}

// SorteoRecord describes one sorteo committed to Silver.
type SorteoRecord struct {
	NumeroSorteo     int64
	Year             int
	SorteoRows       int64
	PremioRows       int64
	SilverSorteosKey string
	SilverPremiosKey string
	SorteosChecksum  string
	PremiosChecksum  string
	ProducerVersion  string
}

// NewWriter creates a catalog writer. With an empty DSN it returns a no-op
// writer so the transformer can run without a catalog.
func NewWriter(cfg CatalogConfig) (Writer, error) {
	if cfg.PostgresDSN == "" {
		return noopWriter{}, nil
	}
	w, err := NewPostgresWriter(cfg)
	if err != nil {
		return nil, err
	}
	return w, nil
}

type noopWriter struct{}

func (noopWriter) RecordSorteo(ctx context.Context, rec SorteoRecord) error { return nil }
func (noopWriter) Close() error                                             { return nil }
