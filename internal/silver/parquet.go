package silver

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// WriteParquet serializes rows to a snappy-compressed parquet file at path.
// The file is written atomically via temp file + rename.
func WriteParquet[T any](path string, rows []T) error {
	tempPath := path + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", tempPath, err)
	}

	w := parquet.NewGenericWriter[T](f, parquet.Compression(&parquet.Snappy))

	if _, err := w.Write(rows); err != nil {
		w.Close()
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("write rows to %s: %w", tempPath, err)
	}

	if err := w.Close(); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("close parquet writer for %s: %w", tempPath, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("rename %s to %s: %w", tempPath, path, err)
	}

	return nil
}

// ReadParquet reads all rows back from a parquet file. Used by consumers and
// tests to verify round-trips.
func ReadParquet[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	rows, err := parquet.Read[T](f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	return rows, nil
}
