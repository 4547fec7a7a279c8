// Package config loads host settings from the environment. Command-line
// flags in main override whatever is set here.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls the host around the simulation.
//
// MusicVolume is in [0, 1] and 0 mutes. Any negative value, the default,
// keeps the scene prefab's volume.
type Config struct {
	Debug         bool          `env:"RACCOONRUN_DEBUG"`
	Scene         string        `env:"RACCOONRUN_SCENE"           envDefault:"scene.yaml"`
	PrefabDir     string        `env:"RACCOONRUN_PREFAB_DIR"      envDefault:"prefabs"`
	AssetDir      string        `env:"RACCOONRUN_ASSETS"          envDefault:"public"`
	HotReload     bool          `env:"RACCOONRUN_HOT_RELOAD"`
	MusicVolume   float64       `env:"RACCOONRUN_MUSIC_VOLUME"    envDefault:"-1"`
	MaxFrameDelta time.Duration `env:"RACCOONRUN_MAX_FRAME_DELTA" envDefault:"100ms"`
	BaseMonitor   bool          `env:"RACCOONRUN_BASE_MONITOR"`
}

// Default returns the configuration used when the environment is empty.
func Default() Config {
	return Config{
		Scene:         "scene.yaml",
		PrefabDir:     "prefabs",
		AssetDir:      "public",
		MusicVolume:   -1,
		MaxFrameDelta: 100 * time.Millisecond,
	}
}

// Load reads the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	if cfg.MusicVolume < 0 {
		cfg.MusicVolume = -1
	}
	if cfg.MusicVolume > 1 {
		cfg.MusicVolume = 1
	}
	if cfg.MaxFrameDelta <= 0 {
		cfg.MaxFrameDelta = Default().MaxFrameDelta
	}
	return cfg, nil
}
