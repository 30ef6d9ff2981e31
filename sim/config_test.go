package sim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative pickup radius", func(c *Config) { c.PickupRadius = -1 }},
		{"zero release speed", func(c *Config) { c.ReleaseSpeed = 0 }},
		{"negative ball count", func(c *Config) { c.BallCount = -3 }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
		{"channel out of range", func(c *Config) { c.Palette = [][3]int{{0, 256, 0}} }},
		{"zero max step", func(c *Config) { c.MaxStep = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.BallCount = 3
	cfg.PickupRadius = 42
	cfg.Seed = 7
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.BallCount != 3 || got.PickupRadius != 42 || got.Seed != 7 || len(got.Palette) != len(cfg.Palette) {
		t.Fatalf("loaded config differs: %+v", got)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ball_count": 4}`), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.BallCount != 4 || got.Width != 800 || got.ReleaseSpeed != DefaultReleaseSpeed {
		t.Fatalf("unexpected config: %+v", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"width": -1}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestClampStep(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ClampStep(0.5); got != 0.1 {
		t.Fatalf("long frame: got=%f", got)
	}
	if got := cfg.ClampStep(0.016); got != 0.016 {
		t.Fatalf("normal frame: got=%f", got)
	}
	if got := cfg.ClampStep(-1); got != 0 {
		t.Fatalf("negative frame: got=%f", got)
	}
}

func TestConfigNewWorld(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 1000, 500
	cfg.ZoneWidth, cfg.ZoneHeight = 100, 50
	cfg.PickupRadius = 20
	w := cfg.NewWorld()
	if got := w.DeleteZone(); got != (Rect{X: 900, Y: 450, W: 100, H: 50}) {
		t.Fatalf("zone: got=%+v", got)
	}
	if w.PickupRadius() != 20 {
		t.Fatalf("pickup radius: got=%f", w.PickupRadius())
	}
}
