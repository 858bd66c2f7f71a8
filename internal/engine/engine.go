package engine

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/bubblescroll/internal/bubble"
	"github.com/san-kum/bubblescroll/internal/clock"
	"github.com/san-kum/bubblescroll/internal/config"
	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/gate"
	"github.com/san-kum/bubblescroll/internal/highlight"
	"github.com/san-kum/bubblescroll/internal/idle"
	"github.com/san-kum/bubblescroll/internal/particle"
	"github.com/san-kum/bubblescroll/internal/scroll"
)

// Context is the whole mutable state of the effect.
type Context struct {
	Progress  float64
	Scrolling bool
	Burst     gate.State
	Offset    effect.Vec
}

// Frame is everything a renderer needs for one redraw.
type Frame struct {
	Context
	At      time.Time
	Elapsed time.Duration
	// Visual is the live bubble; hidden once burst.
	Visual effect.Visual
	// Exit is the burst transition of the last visible bubble, hidden when
	// no transition is playing.
	Exit   effect.Visual
	Blocks []effect.BlockState
	// BurstFired is true on the first frame after the bubble burst.
	BurstFired bool
}

// Bubble returns whichever bubble should be drawn: the live one or the
// exit transition.
func (f Frame) Bubble() effect.Visual {
	if f.Visual.Visible {
		return f.Visual
	}
	return f.Exit
}

type Options struct {
	Config    *config.Config
	Clock     clock.Clock
	Particles particle.Renderer
	Logger    zerolog.Logger
}

type Engine struct {
	cfg       *config.Config
	clock     clock.Clock
	tracker   *scroll.Tracker
	gate      *gate.Gate
	idle      idle.Generator
	projector bubble.Projector
	highlight highlight.Highlighter
	particles particle.Renderer
	blocks    []effect.TextBlock
	log       zerolog.Logger

	ctx       Context
	origin    time.Time
	exitAt    time.Time
	active    bool
	torn      bool
	exit      *bubble.Exit
	lastShown effect.Visual
	fired     bool
	unsub     func()
}

func New(opts Options) *Engine {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	e := &Engine{
		cfg:       cfg,
		clock:     clk,
		tracker:   scroll.NewTracker(cfg.Debounce),
		gate:      gate.New(cfg.Thresholds),
		idle:      idle.New(cfg.Idle.Amplitude),
		projector: bubble.NewProjector(bubble.DefaultCurves()),
		highlight: highlight.New(cfg.Proximity.Radius, cfg.Proximity.Scale),
		particles: opts.Particles,
		blocks:    cfg.TextBlocks(),
		log:       opts.Logger,
	}
	e.unsub = e.tracker.Subscribe(func(u scroll.Update) {
		e.ctx.Progress = u.Progress
		e.ctx.Scrolling = u.Scrolling
	})
	return e
}

// Activate ends the loading phase. The idle drift starts from the moment of
// activation. Calling it again has no effect.
func (e *Engine) Activate() {
	if e.active || e.torn {
		return
	}
	now := e.clock.Now()
	e.active = true
	e.origin = now
	e.log.Debug().Msg("effect active")
}

func (e *Engine) Active() bool               { return e.active && !e.torn }
func (e *Engine) Context() Context           { return e.ctx }
func (e *Engine) Blocks() []effect.TextBlock { return e.blocks }
func (e *Engine) Config() *config.Config     { return e.cfg }

// Scroll is the scroll listener. Progress and activity are updated before
// the gate is evaluated, so the next Tick always sees this sample.
func (e *Engine) Scroll(s effect.ScrollSample) {
	if !e.Active() {
		return
	}
	prev := e.ctx
	u := e.tracker.Handle(s, e.clock.Now())
	state, changed := e.gate.Apply(u.Progress)
	e.ctx.Burst = state
	if !changed {
		return
	}
	e.log.Debug().Str("state", state.String()).Float64("progress", u.Progress).Msg("burst gate changed")
	switch state {
	case gate.Burst:
		from := e.lastShown
		if !from.Visible {
			from = e.projector.Project(prev.Progress, gate.Intact, prev.Offset)
		}
		e.exit = bubble.NewExit(from, e.cfg.ExitDuration)
		e.exitAt = e.clock.Now()
		e.fired = true
		e.log.Debug().Stringer("from", from).Msg("exit started")
		if e.particles != nil {
			e.particles.Burst(u.At)
		}
	case gate.Intact:
		e.exit = nil
		if e.particles != nil {
			e.particles.Reset()
		}
	}
}

// Tick computes one frame. Before activation and after teardown it returns
// a frame with a hidden bubble and unscaled blocks.
func (e *Engine) Tick() Frame {
	now := e.clock.Now()
	if !e.Active() {
		return Frame{Context: e.ctx, At: now, Blocks: e.highlight.Evaluate(effect.Visual{}, e.blocks)}
	}
	e.tracker.Poll(now)

	elapsed := clock.Since(e.clock, e.origin)

	e.ctx.Offset = e.idle.Offset(elapsed, e.ctx.Scrolling, e.ctx.Burst)
	visual := e.projector.Project(e.ctx.Progress, e.ctx.Burst, e.ctx.Offset)
	if visual.Visible {
		e.lastShown = visual
	}

	var exit effect.Visual
	if e.exit != nil {
		// The exit runs from the instant of the burst, not the previous frame.
		exit = e.exit.Step(now.Sub(e.exitAt))
		e.exitAt = now
		if e.exit.Done() {
			e.exit = nil
		}
	}

	f := Frame{
		Context:    e.ctx,
		At:         now,
		Elapsed:    elapsed,
		Visual:     visual,
		Exit:       exit,
		Blocks:     e.highlight.Evaluate(visual, e.blocks),
		BurstFired: e.fired,
	}
	e.fired = false
	return f
}

// Teardown clears the pending activity reset and detaches the listeners.
// The engine ignores all later calls.
func (e *Engine) Teardown() {
	if e.torn {
		return
	}
	e.torn = true
	if e.unsub != nil {
		e.unsub()
	}
	e.tracker.Teardown()
	e.exit = nil
	e.log.Debug().Msg("effect torn down")
}

// Pending reports whether an activity reset is still scheduled.
func (e *Engine) Pending() bool { return e.tracker.Pending() }
