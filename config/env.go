package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names; malformed values are ignored
const (
	EnvInterval         = "READING_TIMER_INTERVAL"
	EnvRecomputeOnPause = "READING_TIMER_RECOMPUTE_ON_PAUSE"
	EnvDisplayID        = "READING_TIMER_DISPLAY_ID"
	EnvAudioEnabled     = "READING_TIMER_AUDIO_ENABLED"
	EnvVolume           = "READING_TIMER_VOLUME"
	EnvDebug            = "READING_TIMER_DEBUG"
)

func applyEnv(cfg *Config) {
	if interval := os.Getenv(EnvInterval); interval != "" {
		if val, err := time.ParseDuration(interval); err == nil && val > 0 {
			cfg.Timer.Interval = val
		}
	}

	if recompute := os.Getenv(EnvRecomputeOnPause); recompute != "" {
		if val, err := strconv.ParseBool(recompute); err == nil {
			cfg.Timer.RecomputeOnPause = val
		}
	}

	if id := os.Getenv(EnvDisplayID); id != "" {
		cfg.Display.ID = id
	}

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.Volume = float64(val) / 100.0
			if cfg.Audio.Volume < 0 {
				cfg.Audio.Volume = 0
			}
			if cfg.Audio.Volume > 1 {
				cfg.Audio.Volume = 1
			}
		}
	}

	if debug := os.Getenv(EnvDebug); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Log.Debug = val
		}
	}
}
