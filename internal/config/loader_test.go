package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duel.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseDuel(defaultDuelYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults are invalid: %v", err)
	}

	def := DefaultDuelConfig()
	if cfg.Gravity != def.Gravity || cfg.Garbage != def.Garbage {
		t.Errorf("embedded %+v differs from hardcoded %+v", cfg, def)
	}
	if strings.Join(cfg.Controls.Player2.HardDrop, ",") != "enter" {
		t.Errorf("unexpected P2 hard drop keys %v", cfg.Controls.Player2.HardDrop)
	}
}

func TestLoadDuelCustomPathPartial(t *testing.T) {
	path := writeConfig(t, "gravity:\n  delay_ms: 250\ngarbage:\n  enabled: false\n")

	cfg, err := LoadDuel(path)
	if err != nil {
		t.Fatalf("LoadDuel() failed: %v", err)
	}
	if cfg.GravityDelay() != 250*time.Millisecond {
		t.Errorf("GravityDelay() = %v, expected 250ms", cfg.GravityDelay())
	}
	if cfg.Garbage.Enabled {
		t.Error("garbage should be disabled")
	}
	if len(cfg.Controls.Player1.Left) == 0 {
		t.Error("missing keys should keep their defaults")
	}
}

func TestLoadDuelCustomPathErrors(t *testing.T) {
	if _, err := LoadDuel(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing custom config")
	}

	bad := writeConfig(t, "gravity: [this is not a map")
	if _, err := LoadDuel(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := writeConfig(t, "gravity:\n  delay_ms: 0\n")
	if _, err := LoadDuel(invalid); err == nil {
		t.Error("expected error for a zero gravity delay")
	}
}

func TestLoadDuelFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadDuel("")
	if err != nil {
		t.Fatalf("LoadDuel() failed: %v", err)
	}
	if cfg.Gravity.DelayMS != 1000 {
		t.Errorf("expected embedded delay 1000, got %d", cfg.Gravity.DelayMS)
	}
}

func TestLoadDuelLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", DuelFile), []byte("gravity:\n  delay_ms: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDuel("")
	if err != nil {
		t.Fatalf("LoadDuel() failed: %v", err)
	}
	if cfg.Gravity.DelayMS != 500 {
		t.Errorf("expected ./configs delay 500, got %d", cfg.Gravity.DelayMS)
	}
}

func TestValidateDuplicateKeys(t *testing.T) {
	cfg := DefaultDuelConfig()
	cfg.Controls.Player2.Left = []string{"a"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
	if !strings.Contains(err.Error(), `"a"`) {
		t.Errorf("error should name the key, got %v", err)
	}
}

func TestValidateEmptyBinding(t *testing.T) {
	cfg := DefaultDuelConfig()
	cfg.Controls.Global.Pause = nil

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for an unbound action")
	}
}
