// Package transformer drives the raw-to-Silver pipeline, one file at a time.
package transformer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/loteria-data/silver-transformer/internal/catalog"
	"github.com/loteria-data/silver-transformer/internal/config"
	"github.com/loteria-data/silver-transformer/internal/logging"
	"github.com/loteria-data/silver-transformer/internal/metrics"
	"github.com/loteria-data/silver-transformer/internal/parser"
	"github.com/loteria-data/silver-transformer/internal/silver"
	"github.com/loteria-data/silver-transformer/internal/storage"
)

// Version information (set via ldflags)
var (
	Version = "v0.1.0"
	GitSHA  = "unknown"
)

// Transformer orchestrates the raw-to-Silver transformation.
type Transformer struct {
	cfg         config.Config
	partitioned storage.ObjectStore
	simple      storage.ObjectStore
	catalog     catalog.Writer
	metrics     *metrics.Metrics
	log         *slog.Logger
}

// New creates a new Transformer. catalog and metrics may be nil when disabled.
func New(cfg config.Config, partitioned, simple storage.ObjectStore, cat catalog.Writer, m *metrics.Metrics) *Transformer {
	return &Transformer{
		cfg:         cfg,
		partitioned: partitioned,
		simple:      simple,
		catalog:     cat,
		metrics:     m,
		log:         logging.Component("transformer"),
	}
}

// Run lists the raw files and processes each in turn. A failure in one file
// is logged and never blocks the rest of the batch.
func (t *Transformer) Run(ctx context.Context) error {
	// The idempotency check is against Silver, listed once per run.
	sorteosPrefix := t.cfg.Job.SilverPrefix + silver.DatasetSorteos + "/"
	processed, err := storage.ListProcessedSorteos(ctx, t.partitioned, sorteosPrefix)
	if err != nil {
		return fmt.Errorf("list processed sorteos: %w", err)
	}

	rawKeys, err := t.partitioned.List(ctx, t.cfg.Job.RawPrefix)
	if err != nil {
		return fmt.Errorf("list raw files: %w", err)
	}

	t.log.Info("starting run",
		"raw_files", len(rawKeys),
		"raw_prefix", t.cfg.Job.RawPrefix,
		"processed_sorteos", len(processed),
	)

	var processedCount, skippedCount, failedCount int
	startTime := time.Now()

	for _, key := range rawKeys {
		if err := ctx.Err(); err != nil {
			return err
		}

		numero, ok := storage.SorteoFromKey(key)
		if !ok {
			t.log.Warn("skipping file with unexpected key structure", "key", key)
			continue
		}

		if _, done := processed[numero]; done {
			t.log.Debug("skipping already processed sorteo", "sorteo", numero)
			skippedCount++
			if t.metrics != nil {
				t.metrics.FilesSkipped.Inc()
			}
			continue
		}

		log := logging.SorteoLogger(numero, key)
		if err := t.processFile(ctx, key, numero); err != nil {
			log.Error("file failed, continuing with next", "stage", failureStage(err), "error", err)
			failedCount++
			if t.metrics != nil {
				t.metrics.FilesFailed.WithLabelValues(failureStage(err)).Inc()
			}
			continue
		}

		log.Info("sorteo processed into Silver")
		processed[numero] = struct{}{}
		processedCount++
		if t.metrics != nil {
			t.metrics.FilesProcessed.Inc()
			t.metrics.LastSorteo.Set(float64(numero))
		}
	}

	t.log.Info("run complete",
		"processed", processedCount,
		"skipped", skippedCount,
		"failed", failedCount,
		"duration", time.Since(startTime).String(),
	)
	return nil
}

// processFile walks one file through download, parse, normalize, serialize
// and upload. Outputs are only uploaded once normalization fully succeeded,
// so Silver never sees a half-written sorteo.
func (t *Transformer) processFile(ctx context.Context, key string, numero int64) error {
	scratch := filepath.Join(t.cfg.Job.ScratchDir, fmt.Sprintf("sorteo_%d", numero))
	if err := os.MkdirAll(scratch, 0755); err != nil {
		return fmt.Errorf("create scratch dir %s: %w", scratch, err)
	}
	defer os.RemoveAll(scratch)

	localPath := filepath.Join(scratch, filepath.Base(key))
	if err := t.partitioned.Download(ctx, key, localPath); err != nil {
		return fmt.Errorf("download %s: %w", key, err)
	}

	lines, err := readLines(localPath, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}

	header, body, err := parser.SplitHeaderBody(lines)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}

	rawSorteo := parser.ParseHeader(header)
	rawPremios := parser.ParseBody(body)

	tables, err := silver.Normalize(rawSorteo, rawPremios)
	if err != nil {
		return fmt.Errorf("normalize sorteo %d: %w", numero, err)
	}
	if t.metrics != nil {
		t.metrics.PremiosParsed.Add(float64(len(tables.Premios)))
	}

	sorteosPath := filepath.Join(scratch, fmt.Sprintf("sorteos_%d.parquet", numero))
	premiosPath := filepath.Join(scratch, fmt.Sprintf("premios_%d.parquet", numero))

	if err := silver.WriteParquet(sorteosPath, tables.Sorteos); err != nil {
		return fmt.Errorf("write sorteos parquet: %w", err)
	}
	if err := silver.WriteParquet(premiosPath, tables.Premios); err != nil {
		return fmt.Errorf("write premios parquet: %w", err)
	}

	uploadStart := time.Now()
	if err := t.upload(ctx, numero, tables.Year, sorteosPath, premiosPath); err != nil {
		return err
	}
	if t.metrics != nil {
		t.metrics.UploadDuration.Observe(time.Since(uploadStart).Seconds())
	}

	t.recordLineage(ctx, numero, tables, sorteosPath, premiosPath)
	return nil
}

// recordLineage writes the catalog record for a committed sorteo. Catalog
// errors are logged, never propagated.
func (t *Transformer) recordLineage(ctx context.Context, numero int64, tables *silver.Tables, sorteosPath, premiosPath string) {
	if t.catalog == nil {
		return
	}

	sorteosSum, err := silver.ChecksumFile(sorteosPath)
	if err != nil {
		t.log.Warn("failed to checksum sorteos parquet", "sorteo", numero, "error", err)
	}
	premiosSum, err := silver.ChecksumFile(premiosPath)
	if err != nil {
		t.log.Warn("failed to checksum premios parquet", "sorteo", numero, "error", err)
	}

	sorteosRef := storage.PartitionRef{Dataset: silver.DatasetSorteos, Year: tables.Year, Sorteo: numero}
	premiosRef := storage.PartitionRef{Dataset: silver.DatasetPremios, Year: tables.Year, Sorteo: numero}

	err = t.catalog.RecordSorteo(ctx, catalog.SorteoRecord{
		NumeroSorteo:     numero,
		Year:             tables.Year,
		SorteoRows:       int64(len(tables.Sorteos)),
		PremioRows:       int64(len(tables.Premios)),
		SilverSorteosKey: sorteosRef.SilverKey(t.cfg.Job.SilverPrefix),
		SilverPremiosKey: premiosRef.SilverKey(t.cfg.Job.SilverPrefix),
		SorteosChecksum:  sorteosSum,
		PremiosChecksum:  premiosSum,
		ProducerVersion:  fmt.Sprintf("silver-transformer@%s", Version),
	})
	if err != nil {
		t.log.Warn("failed to record catalog lineage", "sorteo", numero, "error", err)
	}
}

// upload publishes both datasets to the flat simple bucket and to the
// canonical partitioned Silver layout.
func (t *Transformer) upload(ctx context.Context, numero int64, year int, sorteosPath, premiosPath string) error {
	datasets := []struct {
		ref  storage.PartitionRef
		path string
	}{
		{storage.PartitionRef{Dataset: silver.DatasetSorteos, Year: year, Sorteo: numero}, sorteosPath},
		{storage.PartitionRef{Dataset: silver.DatasetPremios, Year: year, Sorteo: numero}, premiosPath},
	}

	for _, d := range datasets {
		simpleKey := d.ref.SimpleKey(t.cfg.Job.SimplePrefix)
		if err := t.simple.Upload(ctx, d.path, simpleKey); err != nil {
			return fmt.Errorf("upload %s: %w", simpleKey, err)
		}

		silverKey := d.ref.SilverKey(t.cfg.Job.SilverPrefix)
		if err := t.partitioned.Upload(ctx, d.path, silverKey); err != nil {
			return fmt.Errorf("upload %s: %w", silverKey, err)
		}
	}
	return nil
}

// readLines reads a downloaded raw file into lines, transparently
// decompressing gzip drops.
func readLines(localPath, key string) ([]string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(key, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// failureStage classifies a per-file error for logs and metrics.
func failureStage(err error) string {
	switch {
	case errors.Is(err, parser.ErrNoBodySection):
		return "parse"
	case errors.Is(err, silver.ErrNoUsableDrawDate):
		return "normalize"
	default:
		return "io"
	}
}
