package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/bubblescroll/internal/bubble"
	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/gate"
	"github.com/san-kum/bubblescroll/internal/highlight"
	"github.com/san-kum/bubblescroll/internal/idle"
	"github.com/san-kum/bubblescroll/internal/particle"
	"github.com/san-kum/bubblescroll/internal/scroll"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS     = 60
	DefaultLoading = 3 * time.Second
	DefaultTheme   = "rouser"
)

type Config struct {
	FPS          int             `yaml:"fps"`
	Loading      time.Duration   `yaml:"loading"`
	Debounce     time.Duration   `yaml:"debounce"`
	Thresholds   gate.Thresholds `yaml:"thresholds"`
	Proximity    ProximityConfig `yaml:"proximity"`
	Idle         IdleConfig      `yaml:"idle"`
	ExitDuration time.Duration   `yaml:"exit_duration"`
	Particles    particle.Config `yaml:"particles"`
	Theme        string          `yaml:"theme"`
	Blocks       []BlockConfig   `yaml:"blocks"`
}

type ProximityConfig struct {
	Radius float64 `yaml:"radius"`
	Scale  float64 `yaml:"scale"`
}

type IdleConfig struct {
	Amplitude float64 `yaml:"amplitude"`
}

type BlockConfig struct {
	Text    string  `yaml:"text"`
	Variant string  `yaml:"variant,omitempty"`
	AnchorX float64 `yaml:"anchor_x,omitempty"`
	AnchorY float64 `yaml:"anchor_y,omitempty"`
}

func DefaultConfig() *Config {
	blocks := make([]BlockConfig, len(effect.DefaultTexts))
	for i, t := range effect.DefaultTexts {
		blocks[i] = BlockConfig{Text: t, Variant: effect.Variant(i % 2).String()}
	}
	return &Config{
		FPS:          DefaultFPS,
		Loading:      DefaultLoading,
		Debounce:     scroll.DefaultQuiet,
		Thresholds:   gate.DefaultThresholds(),
		Proximity:    ProximityConfig{Radius: highlight.DefaultRadius, Scale: highlight.DefaultScale},
		Idle:         IdleConfig{Amplitude: idle.DefaultAmplitude},
		ExitDuration: bubble.DefaultExitDuration,
		Particles:    particle.DefaultConfig(),
		Theme:        DefaultTheme,
		Blocks:       blocks,
	}
}

// Load reads a YAML file over the defaults, so a file only needs the fields
// it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	if c.Proximity.Radius <= 0 || c.Proximity.Scale <= 0 {
		return fmt.Errorf("%w: radius=%v scale=%v", effect.ErrInvalidRadius, c.Proximity.Radius, c.Proximity.Scale)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", effect.ErrInvalidDuration, c.FPS)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive, got %v", effect.ErrInvalidDuration, c.Debounce)
	}
	if c.Loading < 0 || c.ExitDuration <= 0 {
		return fmt.Errorf("%w: loading=%v exit=%v", effect.ErrInvalidDuration, c.Loading, c.ExitDuration)
	}
	p := c.Particles
	if p.Count < 0 || p.Lifetime <= 0 || p.Stagger < 0 || p.MinSize <= 0 || p.MaxSize < p.MinSize {
		return fmt.Errorf("%w: %+v", effect.ErrInvalidParticles, p)
	}
	if len(c.Blocks) == 0 {
		return effect.ErrNoBlocks
	}
	for i, b := range c.Blocks {
		if b.Variant == "" {
			continue
		}
		if _, err := effect.ParseVariant(b.Variant); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// FrameInterval is the time between redraws.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}

// TextBlocks converts the configured blocks. Blocks without a variant
// alternate A/B by position.
func (c *Config) TextBlocks() []effect.TextBlock {
	out := make([]effect.TextBlock, len(c.Blocks))
	for i, b := range c.Blocks {
		v := effect.Variant(i % 2)
		if parsed, err := effect.ParseVariant(b.Variant); err == nil {
			v = parsed
		}
		out[i] = effect.TextBlock{
			Content: b.Text,
			Anchor:  effect.Vec{X: b.AnchorX, Y: b.AnchorY},
			Variant: v,
		}
	}
	return out
}
