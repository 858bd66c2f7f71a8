package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/bubblescroll/internal/effect"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Thresholds.Enter != 0.95 || cfg.Thresholds.Exit != 0.9 {
		t.Errorf("unexpected thresholds %+v", cfg.Thresholds)
	}
	if cfg.Proximity.Radius != 100 {
		t.Errorf("expected radius 100, got %v", cfg.Proximity.Radius)
	}
	if cfg.Debounce != 100*time.Millisecond {
		t.Errorf("expected 100ms debounce, got %v", cfg.Debounce)
	}
	if cfg.Loading != 3*time.Second {
		t.Errorf("expected 3s loading, got %v", cfg.Loading)
	}
	if len(cfg.Blocks) != 4 {
		t.Errorf("expected 4 blocks, got %d", len(cfg.Blocks))
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bubble.yaml")
	data := []byte("debounce: 250ms\nthresholds:\n  enter: 0.8\n  exit: 0.7\nproximity:\n  radius: 42\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Errorf("debounce = %v", cfg.Debounce)
	}
	if cfg.Thresholds.Enter != 0.8 || cfg.Thresholds.Exit != 0.7 {
		t.Errorf("thresholds = %+v", cfg.Thresholds)
	}
	if cfg.Proximity.Radius != 42 || cfg.Proximity.Scale != 1.5 {
		t.Errorf("proximity = %+v", cfg.Proximity)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("fps default lost: %d", cfg.FPS)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bubble.yaml")
	cfg := GetPreset("calm")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Debounce != cfg.Debounce || loaded.Idle.Amplitude != cfg.Idle.Amplitude {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("thresholds:\n  enter: 0.5\n  exit: 0.9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, effect.ErrInvalidThresholds) {
		t.Errorf("expected ErrInvalidThresholds, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"radius", func(c *Config) { c.Proximity.Radius = 0 }, effect.ErrInvalidRadius},
		{"fps", func(c *Config) { c.FPS = 0 }, effect.ErrInvalidDuration},
		{"debounce", func(c *Config) { c.Debounce = 0 }, effect.ErrInvalidDuration},
		{"particles", func(c *Config) { c.Particles.MaxSize = 1 }, effect.ErrInvalidParticles},
		{"blocks", func(c *Config) { c.Blocks = nil }, effect.ErrNoBlocks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Blocks[0].Variant = "Z"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("eager")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Thresholds.Enter != 0.85 {
		t.Errorf("expected enter 0.85, got %v", cfg.Thresholds.Enter)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestTextBlocks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Blocks = []BlockConfig{{Text: "one"}, {Text: "two", Variant: "A", AnchorX: 5}}
	blocks := cfg.TextBlocks()
	if blocks[0].Variant != effect.VariantA || blocks[1].Variant != effect.VariantA {
		t.Errorf("variants = %v, %v", blocks[0].Variant, blocks[1].Variant)
	}
	if blocks[1].Anchor.X != 5 {
		t.Errorf("anchor = %+v", blocks[1].Anchor)
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 50
	if got := cfg.FrameInterval(); got != 20*time.Millisecond {
		t.Errorf("FrameInterval = %v", got)
	}
}
