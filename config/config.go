package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/reading-timer/display"
	"github.com/lixenwraith/reading-timer/stopwatch"
)

// Config is the complete runtime configuration
type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
}

type TimerConfig struct {
	Interval         time.Duration `yaml:"interval"`
	RecomputeOnPause bool          `yaml:"recompute_on_pause"`
}

// DisplayConfig places the timer on screen
// Negative coordinates center the display on that axis
type DisplayConfig struct {
	ID    string `yaml:"id"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Color string `yaml:"color"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			Interval: stopwatch.DefaultInterval,
		},
		Display: DisplayConfig{
			ID:    display.DefaultID,
			X:     -1,
			Y:     -1,
			Color: "white",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	ErrInterval  = errors.New("timer interval must be positive")
	ErrVolume    = errors.New("audio volume must be within 0..1")
	ErrDisplayID = errors.New("display id must not be empty")
)

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Timer.Interval <= 0 {
		return fmt.Errorf("invalid config: %w (got %s)", ErrInterval, c.Timer.Interval)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("invalid config: %w (got %g)", ErrVolume, c.Audio.Volume)
	}
	if c.Display.ID == "" {
		return fmt.Errorf("invalid config: %w", ErrDisplayID)
	}
	return nil
}
