package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loteria-data/silver-transformer/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

// PostgresWriter implements Writer using PostgreSQL.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

// NewPostgresWriter connects to the catalog and ensures its schema exists.
func NewPostgresWriter(cfg CatalogConfig) (*PostgresWriter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolCfg.MaxConns = 2
	poolCfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	logging.Component("catalog").Info("connected to PostgreSQL catalog")
	return &PostgresWriter{pool: pool}, nil
}

// RecordSorteo writes a lineage record for a committed sorteo. Re-running a
// sorteo upserts its record.
func (w *PostgresWriter) RecordSorteo(ctx context.Context, rec SorteoRecord) error {
	query := `
		INSERT INTO _meta_sorteos (
			numero_sorteo, year, sorteo_rows, premio_rows,
			silver_sorteos_key, silver_premios_key,
			sorteos_checksum, premios_checksum, producer_version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (numero_sorteo)
		DO UPDATE SET
			year = EXCLUDED.year,
			sorteo_rows = EXCLUDED.sorteo_rows,
			premio_rows = EXCLUDED.premio_rows,
			silver_sorteos_key = EXCLUDED.silver_sorteos_key,
			silver_premios_key = EXCLUDED.silver_premios_key,
			sorteos_checksum = EXCLUDED.sorteos_checksum,
			premios_checksum = EXCLUDED.premios_checksum,
			producer_version = EXCLUDED.producer_version,
			created_at = NOW()
	`

	_, err := w.pool.Exec(ctx, query,
		rec.NumeroSorteo,
		rec.Year,
		rec.SorteoRows,
		rec.PremioRows,
		rec.SilverSorteosKey,
		rec.SilverPremiosKey,
		rec.SorteosChecksum,
		rec.PremiosChecksum,
		rec.ProducerVersion,
	)
	if err != nil {
		return fmt.Errorf("record sorteo %d: %w", rec.NumeroSorteo, err)
	}
	return nil
}

// Close releases database connections.
func (w *PostgresWriter) Close() error {
	w.pool.Close()
	return nil
}
