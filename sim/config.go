package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunables of a session. It is stored as JSON.
type Config struct {
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
	BallCount    int      `json:"ball_count"`
	PickupRadius float64  `json:"pickup_radius"`
	ReleaseSpeed float64  `json:"release_speed"`
	ZoneWidth    float64  `json:"zone_width"`
	ZoneHeight   float64  `json:"zone_height"`
	MaxStep      float64  `json:"max_step"` // Upper bound on a frame's dt, seconds
	Seed         int64    `json:"seed"`     // 0 picks a time-based seed
	Palette      [][3]int `json:"palette"`
}

// DefaultConfig returns the stock session settings
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		BallCount:    12,
		PickupRadius: DefaultPickupRadius,
		ReleaseSpeed: DefaultReleaseSpeed,
		ZoneWidth:    DefaultZoneWidth,
		ZoneHeight:   DefaultZoneHeight,
		MaxStep:      0.1,
		Palette: [][3]int{
			{255, 0, 0}, {0, 150, 255}, {0, 200, 80}, {255, 180, 0},
			{180, 0, 255}, {255, 100, 150}, {0, 200, 200}, {200, 100, 0},
		},
	}
}

// LoadConfig reads a JSON config from path. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate reports the first out-of-range setting
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"pickup_radius", c.PickupRadius},
		{"release_speed", c.ReleaseSpeed},
		{"zone_width", c.ZoneWidth},
		{"zone_height", c.ZoneHeight},
		{"max_step", c.MaxStep},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 1) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.BallCount < 0 {
		return fmt.Errorf("%w: ball_count must not be negative, got %d", ErrInvalidConfig, c.BallCount)
	}
	if c.BallCount > 0 && len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	}
	for i, p := range c.Palette {
		for _, ch := range p {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("%w: palette[%d] channel %d out of range", ErrInvalidConfig, i, ch)
			}
		}
	}
	return nil
}

// Colors returns the palette as RGB values
func (c Config) Colors() []RGB {
	out := make([]RGB, len(c.Palette))
	for i, p := range c.Palette {
		out[i] = ClampRGB(p[0], p[1], p[2])
	}
	return out
}

// Zone returns the removal zone anchored at the bottom-right of a width x height boundary
func (c Config) Zone(width, height float64) Rect {
	return Rect{X: width - c.ZoneWidth, Y: height - c.ZoneHeight, W: c.ZoneWidth, H: c.ZoneHeight}
}

// ClampStep bounds a measured frame time to [0, MaxStep]
func (c Config) ClampStep(dt float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return math.Min(dt, c.MaxStep)
}

// NewWorld builds an empty world from the config
func (c Config) NewWorld() *World {
	return NewWorld(c.Width, c.Height,
		WithDeleteZone(c.Zone(c.Width, c.Height)),
		WithPickupRadius(c.PickupRadius),
		WithReleaseSpeed(c.ReleaseSpeed),
	)
}

// NewSpawner builds a spawner from the config's seed and palette
func (c Config) NewSpawner() *Spawner {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSpawner(seed, c.Colors())
}
