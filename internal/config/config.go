// Package config loads transformer configuration from an optional YAML file
// overlaid with environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/loteria-data/silver-transformer/internal/catalog"
	"github.com/loteria-data/silver-transformer/internal/logging"
	"github.com/loteria-data/silver-transformer/internal/metrics"
	"github.com/loteria-data/silver-transformer/internal/storage"
)

type Config struct {
	Buckets BucketsConfig         `yaml:"buckets"`
	Job     JobConfig             `yaml:"job"`
	Storage storage.StorageConfig `yaml:"storage"`
	Catalog catalog.CatalogConfig `yaml:"catalog"`
	Log     logging.Config        `yaml:"log"`
	Metrics metrics.Config        `yaml:"metrics"`
}

// BucketsConfig controls where bucket identifiers come from. SecretsURL is a
// runtimevar URL resolved once at startup; Partitioned and Simple, when set,
// override whatever the resolver returned.
type BucketsConfig struct {
	SecretsURL  string `yaml:"secrets_url"`
	Partitioned string `yaml:"partitioned"`
	Simple      string `yaml:"simple"`
}

// JobConfig holds the per-run arguments.
type JobConfig struct {
	RawPrefix    string `yaml:"raw_prefix"`
	SilverPrefix string `yaml:"silver_prefix"`
	SimplePrefix string `yaml:"simple_prefix"`
	ScratchDir   string `yaml:"scratch_dir"`
}

// Load reads configuration from the YAML file at path (skipped when path is
// empty or the file does not exist), then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// MustLoad is Load for main; it exits on error.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func defaults() Config {
	return Config{
		Job: JobConfig{
			RawPrefix:    "raw/",
			SilverPrefix: "silver/",
			SimplePrefix: "processed/",
			ScratchDir:   os.TempDir(),
		},
		Storage: storage.StorageConfig{
			Backend:  "s3",
			LocalDir: "./data",
		},
		Log: logging.Config{
			Format: "text",
			Level:  "info",
		},
		Metrics: metrics.Config{
			Address: ":9090",
		},
	}
}

func applyEnv(cfg *Config) {
	setEnv(&cfg.Buckets.SecretsURL, "SECRETS_URL")
	setEnv(&cfg.Buckets.Partitioned, "PARTITIONED_BUCKET")
	setEnv(&cfg.Buckets.Simple, "SIMPLE_BUCKET")

	setEnv(&cfg.Job.RawPrefix, "RAW_PREFIX")
	setEnv(&cfg.Job.SilverPrefix, "SILVER_PREFIX")
	setEnv(&cfg.Job.SimplePrefix, "PROCESSED_PREFIX")
	setEnv(&cfg.Job.ScratchDir, "SCRATCH_DIR")

	setEnv(&cfg.Storage.Backend, "STORAGE_BACKEND")
	setEnv(&cfg.Storage.LocalDir, "LOCAL_DIR")
	setEnv(&cfg.Storage.S3Endpoint, "S3_ENDPOINT")
	setEnv(&cfg.Storage.S3Region, "S3_REGION")

	setEnv(&cfg.Catalog.PostgresDSN, "CATALOG_DSN")

	setEnv(&cfg.Log.Format, "LOG_FORMAT")
	setEnv(&cfg.Log.Level, "LOG_LEVEL")

	if os.Getenv("METRICS_ENABLED") == "true" {
		cfg.Metrics.Enabled = true
	}
	setEnv(&cfg.Metrics.Address, "METRICS_ADDR")
}

func setEnv(dst *string, key string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}
