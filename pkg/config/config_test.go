package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalCSV = `
environment: test
dataset:
  backend: csv
  csv_path: data/prices.csv
artifacts:
  dir: artifacts
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalCSV))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Artifacts.WindowSize != 30 {
		t.Fatalf("expected default window size 30, got %d", cfg.Artifacts.WindowSize)
	}
	if cfg.Forecast.DefaultDays != 30 || cfg.Forecast.MinDays != 7 || cfg.Forecast.MaxDays != 60 {
		t.Fatalf("unexpected forecast defaults %+v", cfg.Forecast)
	}
	if cfg.Forecast.CacheTTL != 10*time.Minute {
		t.Fatalf("expected default cache ttl 10m, got %v", cfg.Forecast.CacheTTL)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
dataset:
  backend: postgres
artifacts:
  dir: artifacts
`))
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadRequiresCSVPath(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
dataset:
  backend: csv
artifacts:
  dir: artifacts
`))
	if err == nil {
		t.Fatalf("expected error for missing csv_path")
	}
}

func TestLoadRequiresClickHouseHost(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
dataset:
  backend: clickhouse
artifacts:
  dir: artifacts
`))
	if err == nil {
		t.Fatalf("expected error for missing clickhouse host")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("DATASET_CSV", "/tmp/other.csv")
	t.Setenv("ARTIFACTS_DIR", "/tmp/models")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")

	cfg, err := LoadWithEnv(writeConfig(t, minimalCSV))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dataset.CSVPath != "/tmp/other.csv" {
		t.Fatalf("expected csv override, got %q", cfg.Dataset.CSVPath)
	}
	if cfg.Artifacts.Dir != "/tmp/models" {
		t.Fatalf("expected artifacts override, got %q", cfg.Artifacts.Dir)
	}
	if cfg.Redis.Host != "redis.internal" || cfg.Redis.Port != 6380 {
		t.Fatalf("expected redis override, got %q:%d", cfg.Redis.Host, cfg.Redis.Port)
	}
}
