package game

import (
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv("AGENT2199_LEVEL", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("AGENT2199_TELEMETRY", "")

	cfg, err := ParseFlags("agent2199", nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Config = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestParseFlagsEnvAndArgs(t *testing.T) {
	t.Setenv("AGENT2199_LEVEL", "env.json")
	t.Setenv("LOG_FILE", "env.log")
	t.Setenv("AGENT2199_TELEMETRY", "false")

	cfg, err := ParseFlags("agent2199", []string{"-log", "flag.log", "-scale", "2", "-dump", "-plain"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.LevelFile != "env.json" {
		t.Errorf("LevelFile = %q, want env.json", cfg.LevelFile)
	}
	if cfg.LogFile != "flag.log" {
		t.Errorf("Flags should override env, LogFile = %q", cfg.LogFile)
	}
	if cfg.Telemetry {
		t.Error("AGENT2199_TELEMETRY=false should disable telemetry")
	}
	if cfg.Scale != 2 || !cfg.Dump || !cfg.Plain {
		t.Errorf("Config = %+v, want scale 2, dump and plain", cfg)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	t.Setenv("AGENT2199_TELEMETRY", "")
	if _, err := ParseFlags("agent2199", []string{"-scale", "0"}); err == nil {
		t.Error("Scale 0 should be rejected")
	}
	if _, err := ParseFlags("agent2199", []string{"-bogus"}); err == nil {
		t.Error("Unknown flag should be rejected")
	}

	t.Setenv("AGENT2199_TELEMETRY", "maybe")
	if _, err := ParseFlags("agent2199", nil); err == nil {
		t.Error("Invalid AGENT2199_TELEMETRY should be rejected")
	}
}

func TestConfigLoadLevel(t *testing.T) {
	level, err := DefaultConfig().LoadLevel()
	if err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}
	if level.Map.Width != 80 {
		t.Errorf("Embedded level width = %d, want 80", level.Map.Width)
	}

	cfg := DefaultConfig()
	cfg.LevelFile = "does-not-exist.json"
	if _, err := cfg.LoadLevel(); err == nil {
		t.Error("Missing level file should fail")
	}
}
