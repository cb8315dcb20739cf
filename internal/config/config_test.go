package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load() created the missing file")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Load(\"\") should fail")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssd1306.yaml")
	data := "bus: \"1\"\nwidth: 128\nheight: 64\naddress: 0x3D\npoll_timeout: 1s\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Bus != "1" || cfg.Width != 128 || cfg.Height != 64 || cfg.Address != 0x3D {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.PollTimeout != time.Second {
		t.Errorf("PollTimeout = %v, want 1s", cfg.PollTimeout)
	}
	if cfg.PollInterval != 500*time.Microsecond || cfg.MaxPolls != 500 {
		t.Errorf("polling defaults not applied: %v, %d", cfg.PollInterval, cfg.MaxPolls)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{LogLevel: "verbose", LineSpacing: 0}
	cfg.Normalize()
	if cfg.Width != 128 || cfg.Height != 32 || cfg.Address != 0x3C {
		t.Errorf("geometry defaults not applied: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.LineSpacing != 0 {
		t.Errorf("LineSpacing = %d, want 0 kept", cfg.LineSpacing)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ssd1306.yaml")
	want := DefaultConfig()
	want.Bus = "/dev/i2c-1"
	want.Width, want.Height = 96, 16
	want.LetterSpacing = 2

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveErrors(t *testing.T) {
	if err := Save("", DefaultConfig()); err == nil {
		t.Error("Save() with empty path should fail")
	}
	if err := Save(filepath.Join(t.TempDir(), "c.yaml"), nil); err == nil {
		t.Error("Save() with nil config should fail")
	}
}

func TestOpts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Address = 128, 64, 0x3D
	o := cfg.Opts()
	if o.W != 128 || o.H != 64 || o.Addr != 0x3D || o.LineSpacing != 1 || o.MaxPolls != 500 {
		t.Errorf("Opts() = %+v", o)
	}
}

func TestSaveEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssd1306.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	cfg.Bus = "2"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Bus != "2" || got.Width != 128 || got.PollTimeout != 250*time.Millisecond {
		t.Errorf("Load() = %+v", got)
	}
}
