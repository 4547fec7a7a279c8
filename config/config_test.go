package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults %+v, got %+v", Default(), cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RACCOONRUN_DEBUG", "true")
	t.Setenv("RACCOONRUN_SCENE", "night.yaml")
	t.Setenv("RACCOONRUN_HOT_RELOAD", "1")
	t.Setenv("RACCOONRUN_MAX_FRAME_DELTA", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Debug || !cfg.HotReload {
		t.Fatalf("expected debug and hot reload, got %+v", cfg)
	}
	if cfg.Scene != "night.yaml" {
		t.Fatalf("expected scene night.yaml, got %q", cfg.Scene)
	}
	if cfg.MaxFrameDelta != 250*time.Millisecond {
		t.Fatalf("expected 250ms max frame delta, got %v", cfg.MaxFrameDelta)
	}
}

func TestLoadClampsVolume(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"negative_keeps_prefab", "-2", -1},
		{"mute", "0", 0},
		{"too_loud", "3.5", 1},
		{"in_range", "0.25", 0.25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv("RACCOONRUN_MUSIC_VOLUME", c.raw)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.MusicVolume != c.want {
				t.Fatalf("expected volume %v, got %v", c.want, cfg.MusicVolume)
			}
		})
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	t.Setenv("RACCOONRUN_MAX_FRAME_DELTA", "soon")
	cfg, err := Load()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg != Default() {
		t.Fatalf("expected defaults on error, got %+v", cfg)
	}
}
