package config

import (
	"sort"
	"time"
)

var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"calm": func(c *Config) {
		c.Idle.Amplitude = 40
		c.Debounce = 250 * time.Millisecond
		c.Proximity.Radius = 60
	},
	"eager": func(c *Config) {
		c.Thresholds.Enter = 0.85
		c.Thresholds.Exit = 0.8
		c.ExitDuration = 300 * time.Millisecond
	},
	"wide": func(c *Config) {
		c.Proximity.Radius = 160
		c.Proximity.Scale = 1.8
		c.Particles.Count = 40
	},
	"instant": func(c *Config) {
		c.Loading = 0
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
