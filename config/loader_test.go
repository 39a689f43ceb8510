package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return p
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, `
storage:
  dataDir: /tmp/commutewise-test
maps:
  apiKey: file-key
  region: ph
  timeoutMS: 5000
chat:
  model: gemini-2.5-flash
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.DataDir != "/tmp/commutewise-test" {
		t.Errorf("unexpected data dir: %s", cfg.Storage.DataDir)
	}
	if cfg.Maps.TimeoutMS != 5000 {
		t.Errorf("unexpected maps timeout: %d", cfg.Maps.TimeoutMS)
	}
	// Unset fields pick up defaults.
	if cfg.Maps.GeocodeCacheTTLMS == 0 || cfg.Chat.TimeoutMS == 0 {
		t.Errorf("expected defaults applied: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidURL(t *testing.T) {
	p := writeConfig(t, `
storage:
  dataDir: ./data
maps:
  geocodeURL: "not a url"
`)
	if _, err := Load(p); err == nil {
		t.Fatal("expected validation error for malformed URL")
	}
}

func TestEnvOverridesKey(t *testing.T) {
	p := writeConfig(t, `
storage:
  dataDir: ./data
maps:
  apiKey: file-key
`)
	t.Setenv("COMMUTEWISE_MAPS_KEY", "env-key")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Maps.APIKey != "env-key" {
		t.Errorf("expected env key to win, got %s", cfg.Maps.APIKey)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Storage.DataDir == "" || cfg.Maps.Region != "ph" || cfg.Chat.Model == "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
