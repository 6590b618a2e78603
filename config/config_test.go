package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Machine.Rows != 3 || cfg.Machine.Columns != 5 {
		t.Errorf("Expected default 3x5 machine, got %dx%d", cfg.Machine.Rows, cfg.Machine.Columns)
	}
	if err := cfg.SpinConfig().Validate(); err != nil {
		t.Errorf("Expected valid default spin config, got %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reelspin.yaml")
	data := `
machine:
  base_duration: 2s
  stagger_increment: 300ms
  scroll_speed: 1.4
  instant: true
app:
  audio: false
  bet: "25"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := time.Duration(cfg.Machine.BaseDuration); got != 2*time.Second {
		t.Errorf("Expected base duration 2s, got %v", got)
	}
	if got := time.Duration(cfg.Machine.StaggerIncrement); got != 300*time.Millisecond {
		t.Errorf("Expected stagger 300ms, got %v", got)
	}
	if !cfg.Machine.Instant {
		t.Error("Expected instant mode enabled")
	}
	if cfg.App.Audio {
		t.Error("Expected audio disabled")
	}
	if cfg.App.Bet != "25" {
		t.Errorf("Expected bet 25, got %s", cfg.App.Bet)
	}
	// Untouched keys keep their defaults
	if cfg.Machine.Rows != 3 {
		t.Errorf("Expected default rows preserved, got %d", cfg.Machine.Rows)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reelspin.yaml")
	if err := os.WriteFile(path, []byte("machine:\n  base_duration: soon\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unparseable duration")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("REELSPIN_AUDIO", "false")
	t.Setenv("REELSPIN_INSTANT", "true")
	t.Setenv("REELSPIN_BET", "50")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.App.Audio {
		t.Error("Expected env to disable audio")
	}
	if !cfg.Machine.Instant {
		t.Error("Expected env to enable instant mode")
	}
	if cfg.App.Bet != "50" {
		t.Errorf("Expected env bet 50, got %s", cfg.App.Bet)
	}
}
