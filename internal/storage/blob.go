package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gocloud.dev/blob"
)

// BlobStore implements ObjectStore on top of a gocloud.dev bucket. All
// backends (local, gcs, s3) share this implementation and differ only in
// how the bucket is opened.
type BlobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore wraps an already-open bucket. Useful for tests with memblob.
func NewBlobStore(bucket *blob.Bucket) *BlobStore {
	return &BlobStore{bucket: bucket}
}

// List returns all object keys under prefix.
func (s *BlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects under %s: %w", prefix, err)
		}
		if obj.IsDir {
			continue
		}
		keys = append(keys, obj.Key)
	}

	return keys, nil
}

// Download copies the object at key to localPath.
func (s *BlobStore) Download(ctx context.Context, key, localPath string) error {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("open object %s: %w", key, err)
	}
	defer reader.Close()

	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", localPath, err)
	}

	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", localPath, err)
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(localPath)
		return fmt.Errorf("download %s: %w", key, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(localPath)
		return fmt.Errorf("close %s: %w", localPath, err)
	}

	return nil
}

// Upload copies the file at localPath to the object at key.
func (s *BlobStore) Upload(ctx context.Context, localPath, key string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	w, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("create writer for %s: %w", key, err)
	}

	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return fmt.Errorf("upload %s to %s: %w", localPath, key, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close writer for %s: %w", key, err)
	}

	return nil
}

// Close releases the bucket connection.
func (s *BlobStore) Close() error {
	if s.bucket != nil {
		return s.bucket.Close()
	}
	return nil
}
