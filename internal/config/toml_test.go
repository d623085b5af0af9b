package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored: %v", err)
	}
	if cfg.Teleprompter.Speed != nil || cfg.Devices.Video != nil {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[teleprompter]
speed = 80
script = "2"
steps-per-line = 12

[devices]
video = false

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Teleprompter.Speed == nil || *cfg.Teleprompter.Speed != 80 {
		t.Fatalf("unexpected speed %v", cfg.Teleprompter.Speed)
	}
	if cfg.Teleprompter.Script == nil || *cfg.Teleprompter.Script != "2" {
		t.Fatalf("unexpected script %v", cfg.Teleprompter.Script)
	}
	if cfg.Teleprompter.StepsPerLine == nil || *cfg.Teleprompter.StepsPerLine != 12 {
		t.Fatalf("unexpected steps-per-line %v", cfg.Teleprompter.StepsPerLine)
	}
	if cfg.Devices.Video == nil || *cfg.Devices.Video {
		t.Fatalf("expected video=false")
	}
	if cfg.Devices.Audio != nil {
		t.Fatalf("expected audio unset")
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level %v", cfg.Log.Level)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[teleprompter]\nsped = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "telecue", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultLogDir(); got != filepath.Join("/state", "telecue") {
		t.Fatalf("unexpected log dir %q", got)
	}
}
