package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/loteria-data/silver-transformer/internal/catalog"
	"github.com/loteria-data/silver-transformer/internal/config"
	"github.com/loteria-data/silver-transformer/internal/logging"
	"github.com/loteria-data/silver-transformer/internal/metrics"
	"github.com/loteria-data/silver-transformer/internal/secrets"
	"github.com/loteria-data/silver-transformer/internal/storage"
	"github.com/loteria-data/silver-transformer/internal/transformer"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logging.Setup(cfg.Log)

	log := logging.Component("main")
	log.Info("silver transformer starting", "version", transformer.Version, "git_sha", transformer.GitSHA)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown handler
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		log.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	// Resolve bucket identifiers once at startup; job config overrides win.
	buckets, err := secrets.Resolve(ctx, cfg.Buckets.SecretsURL)
	if err != nil {
		log.Error("failed to resolve buckets", "error", err)
		os.Exit(1)
	}
	if cfg.Buckets.Partitioned != "" {
		buckets.Partitioned = cfg.Buckets.Partitioned
	}
	if cfg.Buckets.Simple != "" {
		buckets.Simple = cfg.Buckets.Simple
	}
	if buckets.Partitioned == "" || buckets.Simple == "" {
		log.Error("both partitioned and simple buckets must be configured")
		os.Exit(1)
	}

	partitioned, err := storage.NewObjectStore(cfg.Storage, buckets.Partitioned)
	if err != nil {
		log.Error("failed to create partitioned store", "error", err)
		os.Exit(1)
	}
	defer partitioned.Close()

	simple, err := storage.NewObjectStore(cfg.Storage, buckets.Simple)
	if err != nil {
		log.Error("failed to create simple store", "error", err)
		os.Exit(1)
	}
	defer simple.Close()

	cat, err := catalog.NewWriter(cfg.Catalog)
	if err != nil {
		log.Warn("catalog unavailable, continuing without lineage", "error", err)
		cat = nil
	}
	if cat != nil {
		defer cat.Close()
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.Init("")
		go func() {
			if err := metrics.StartServer(cfg.Metrics.Address); err != nil {
				slog.Warn("metrics server stopped", "error", err)
			}
		}()
	}

	t := transformer.New(cfg, partitioned, simple, cat, m)
	if err := t.Run(ctx); err != nil {
		if ctx.Err() != nil {
			log.Info("shutdown complete")
			return
		}
		log.Error("transformer failed", "error", err)
		os.Exit(1)
	}

	log.Info("silver transformer finished")
}
