package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "name: test-gateway\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Name != "test-gateway" {
		t.Errorf("Name = %q, want test-gateway", cfg.Name)
	}
	if cfg.Server.Port != 8002 {
		t.Errorf("Server.Port = %d, want default 8002", cfg.Server.Port)
	}
	if cfg.Transcription.Backend != "parakeet" {
		t.Errorf("Transcription.Backend = %q, want default parakeet", cfg.Transcription.Backend)
	}
	if cfg.Transcription.Language != "de" {
		t.Errorf("Transcription.Language = %q, want default de", cfg.Transcription.Language)
	}
}

func TestLoadFileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9100
transcription:
  backend: whisper
  model: large-v3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Transcription.Backend != "whisper" {
		t.Errorf("Backend = %q, want whisper", cfg.Transcription.Backend)
	}
	if cfg.Transcription.Model != "large-v3" {
		t.Errorf("Model = %q, want large-v3", cfg.Transcription.Model)
	}
}

func TestLoadEnvAliases(t *testing.T) {
	t.Setenv("PARAKEET_MODEL", "mlx-community/parakeet-tdt-1.1b")
	t.Setenv("PORT", "9200")

	path := writeConfig(t, "name: env-test\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Transcription.Model != "mlx-community/parakeet-tdt-1.1b" {
		t.Errorf("Model = %q, want PARAKEET_MODEL value", cfg.Transcription.Model)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("Port = %d, want 9200 from PORT", cfg.Server.Port)
	}
}

func TestLoadRejectsBadBackend(t *testing.T) {
	path := writeConfig(t, "transcription:\n  backend: mystery\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unknown backend")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
