package storage

import "fmt"

// PartitionRef identifies one dataset partition of one sorteo.
type PartitionRef struct {
	Dataset string // "sorteos" | "premios"
	Year    int
	Sorteo  int64
}

// SilverKey returns the canonical partitioned output key:
// <prefix><dataset>/year=<YYYY>/sorteo=<NNNN>/<dataset>.parquet
func (r PartitionRef) SilverKey(prefix string) string {
	return fmt.Sprintf("%s%s/year=%d/sorteo=%d/%s.parquet",
		prefix, r.Dataset, r.Year, r.Sorteo, r.Dataset)
}

// SimpleKey returns the flat output key: <prefix><dataset>_<NNNN>.parquet
func (r PartitionRef) SimpleKey(prefix string) string {
	return fmt.Sprintf("%s%s_%d.parquet", prefix, r.Dataset, r.Sorteo)
}
