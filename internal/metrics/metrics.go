// Package metrics provides Prometheus metrics for the Silver Transformer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the transformer.
type Metrics struct {
	FilesProcessed prometheus.Counter
	FilesSkipped   prometheus.Counter
	FilesFailed    *prometheus.CounterVec

	PremiosParsed prometheus.Counter
	LastSorteo    prometheus.Gauge

	UploadDuration prometheus.Histogram
}

// Config holds metrics configuration.
type Config struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"` // e.g. ":9090"
}

// Init registers and returns the transformer metrics.
// Call this once at startup.
func Init(namespace string) *Metrics {
	if namespace == "" {
		namespace = "silver_transformer"
	}

	return &Metrics{
		FilesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_processed_total",
			Help:      "Total number of raw files transformed into Silver",
		}),
		FilesSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_skipped_total",
			Help:      "Total number of files skipped (sorteo already in Silver)",
		}),
		FilesFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_failed_total",
			Help:      "Total number of files that failed processing",
		}, []string{"stage"}),
		PremiosParsed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "premios_parsed_total",
			Help:      "Total number of prize rows parsed",
		}),
		LastSorteo: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_sorteo",
			Help:      "Last sorteo number processed successfully",
		}),
		UploadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_duration_seconds",
			Help:      "Time to upload one file's parquet outputs",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		}),
	}
}

// StartServer starts the metrics HTTP server.
// Blocks until the server exits.
func StartServer(address string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return http.ListenAndServe(address, mux)
}
