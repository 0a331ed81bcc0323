package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Fatalf("port: got=%d want=5000", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "local" {
		t.Fatalf("storage driver: got=%q want=local", cfg.Storage.Driver)
	}
	if cfg.Preview.TimeoutSeconds != 8 {
		t.Fatalf("preview timeout: got=%d want=8", cfg.Preview.TimeoutSeconds)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/trendradar")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/radar")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataDir != "/var/lib/trendradar" {
		t.Fatalf("data dir: got=%q", cfg.DataDir)
	}
	if cfg.DB.URL != "postgres://u:p@db:5432/radar" {
		t.Fatalf("database url: got=%q", cfg.DB.URL)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port: got=%d want=9090", cfg.Server.Port)
	}
}
