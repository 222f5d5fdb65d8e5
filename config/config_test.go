package config

import "testing"

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("MATCH_WORKERS", "many")

	cfg := LoadEnv()
	if cfg.Match.Workers != 4 {
		t.Fatalf("unparseable worker count should fall back, got %d", cfg.Match.Workers)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("EXPORT_DIR", "/tmp/ledger")
	t.Setenv("EXPORT_FORMATS", "xlsx,csv,sqlite")
	t.Setenv("MATCH_WORKERS", "8")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/ledger.prom")

	cfg := LoadEnv()
	if cfg.Server.AppEnv != "development" || cfg.Export.Dir != "/tmp/ledger" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Export.Formats) != 3 || cfg.Export.Formats[2] != "sqlite" {
		t.Fatalf("unexpected formats: %v", cfg.Export.Formats)
	}
	if cfg.Match.Workers != 8 || !cfg.Logger.DisableCaller {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Metrics.Textfile != "/var/lib/node_exporter/ledger.prom" {
		t.Fatalf("unexpected metrics path %q", cfg.Metrics.Textfile)
	}
}
