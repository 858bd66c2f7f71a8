// Package particle renders the droplets that replace the bubble once it
// bursts. The effect core only signals the burst; the emitter owns the
// droplet lifecycle.
package particle

import (
	"math/rand"
	"time"

	"github.com/san-kum/bubblescroll/internal/curve"
)

// Renderer is the collaborator the engine signals.
type Renderer interface {
	// Burst starts a one-shot emission at now.
	Burst(now time.Time)
	// Reset discards any droplets, for when the bubble re-forms.
	Reset()
}

const (
	DefaultCount    = 20
	DefaultLifetime = 1500 * time.Millisecond
	DefaultStagger  = 100 * time.Millisecond
	DefaultMinSize  = 5.0
	DefaultMaxSize  = 15.0
)

// Config describes one emission.
type Config struct {
	Count    int           `yaml:"count"`
	Lifetime time.Duration `yaml:"lifetime"`
	Stagger  time.Duration `yaml:"stagger"`
	MinSize  float64       `yaml:"min_size"`
	MaxSize  float64       `yaml:"max_size"`
	Seed     int64         `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Count:    DefaultCount,
		Lifetime: DefaultLifetime,
		Stagger:  DefaultStagger,
		MinSize:  DefaultMinSize,
		MaxSize:  DefaultMaxSize,
	}
}

// Droplet is fixed at spawn; only its age changes.
type Droplet struct {
	X, Y   float64 // fraction of the page, 0-1
	SizePx float64
	Delay  time.Duration
}

// Frame is a droplet as it should be drawn now.
type Frame struct {
	X, Y    float64
	SizePx  float64
	Scale   float64
	Opacity float64
}

var (
	fadeCurve = curve.New(0, 0.8, 1, 0)
	growCurve = curve.New(0, 1, 1, 1.5)
)

// Emitter is the default Renderer.
type Emitter struct {
	cfg      Config
	rng      *rand.Rand
	droplets []Droplet
	started  time.Time
	active   bool
	bursts   int
}

func NewEmitter(cfg Config) *Emitter {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Emitter{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

func (e *Emitter) Burst(now time.Time) {
	e.droplets = e.droplets[:0]
	for i := 0; i < e.cfg.Count; i++ {
		e.droplets = append(e.droplets, Droplet{
			X:      e.rng.Float64(),
			Y:      e.rng.Float64(),
			SizePx: e.cfg.MinSize + e.rng.Float64()*(e.cfg.MaxSize-e.cfg.MinSize),
			Delay:  time.Duration(i) * e.cfg.Stagger,
		})
	}
	e.started = now
	e.active = true
	e.bursts++
}

func (e *Emitter) Reset() {
	e.droplets = e.droplets[:0]
	e.active = false
}

func (e *Emitter) Active() bool        { return e.active }
func (e *Emitter) Bursts() int         { return e.bursts }
func (e *Emitter) Droplets() []Droplet { return e.droplets }

// Sample returns the droplets visible at now. A droplet that has not
// started yet is drawn at its initial opacity and scale; a finished one is
// gone.
func (e *Emitter) Sample(now time.Time) []Frame {
	if !e.active {
		return nil
	}
	age := now.Sub(e.started)
	frames := make([]Frame, 0, len(e.droplets))
	for _, d := range e.droplets {
		local := age - d.Delay
		if local >= e.cfg.Lifetime {
			continue
		}
		t := 0.0
		if local > 0 && e.cfg.Lifetime > 0 {
			t = float64(local) / float64(e.cfg.Lifetime)
		}
		frames = append(frames, Frame{
			X:       d.X,
			Y:       d.Y,
			SizePx:  d.SizePx,
			Scale:   growCurve.At(t),
			Opacity: fadeCurve.At(t),
		})
	}
	return frames
}

// Finished reports whether every droplet has faded.
func (e *Emitter) Finished(now time.Time) bool {
	if !e.active || len(e.droplets) == 0 {
		return true
	}
	last := e.droplets[len(e.droplets)-1].Delay + e.cfg.Lifetime
	return now.Sub(e.started) >= last
}
