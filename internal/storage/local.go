package storage

import (
	"fmt"
	"path/filepath"

	"gocloud.dev/blob/fileblob"
)

// NewLocalStore opens a filesystem-backed bucket rooted at
// <baseDir>/<bucketName>. Intended for development and tests.
func NewLocalStore(baseDir, bucketName string) (*BlobStore, error) {
	dir := filepath.Join(baseDir, bucketName)

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, fmt.Errorf("open local bucket %s: %w", dir, err)
	}

	return NewBlobStore(bucket), nil
}
