// Package storage provides object-store access for the transformer.
package storage

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
)

// ObjectStore abstracts listing, downloading and uploading objects in a
// bucket. All calls are synchronous and blocking.
type ObjectStore interface {
	// List returns all object keys under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Download copies the object at key to localPath.
	Download(ctx context.Context, key, localPath string) error

	// Upload copies the file at localPath to the object at key.
	Upload(ctx context.Context, localPath, key string) error

	// Close releases any resources.
	Close() error
}

// StorageConfig configures a storage backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "local" | "gcs" | "s3"

	// Local filesystem
	LocalDir string `yaml:"local_dir"`

	// S3 (also works for B2, R2, MinIO)
	S3Endpoint string `yaml:"s3_endpoint"`
	S3Region   string `yaml:"s3_region"`
}

// NewObjectStore creates a storage backend for the given bucket based on
// configuration.
func NewObjectStore(cfg StorageConfig, bucket string) (ObjectStore, error) {
	switch cfg.Backend {
	case "local":
		if cfg.LocalDir == "" {
			return nil, fmt.Errorf("LocalDir required for local backend")
		}
		return NewLocalStore(cfg.LocalDir, bucket)
	case "gcs":
		return NewGCSStore(bucket)
	case "s3":
		return NewS3Store(bucket, cfg.S3Endpoint, cfg.S3Region)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// sorteoSegmentRe extracts the draw number from partitioned keys of the form
// .../year=YYYY/sorteo=NNNN/....
var sorteoSegmentRe = regexp.MustCompile(`sorteo=(\d+)/`)

// SorteoFromKey extracts the draw number from an object key. Returns false
// when the key carries no sorteo segment.
func SorteoFromKey(key string) (int64, bool) {
	m := sorteoSegmentRe.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ListProcessedSorteos returns the set of draw numbers already present under
// the given prefix. Called once per run so the skip check costs one listing.
func ListProcessedSorteos(ctx context.Context, store ObjectStore, prefix string) (map[int64]struct{}, error) {
	keys, err := store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}

	sorteos := make(map[int64]struct{})
	for _, key := range keys {
		if n, ok := SorteoFromKey(key); ok {
			sorteos[n] = struct{}{}
		}
	}
	return sorteos, nil
}
