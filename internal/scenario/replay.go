package scenario

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/bubblescroll/internal/clock"
	"github.com/san-kum/bubblescroll/internal/config"
	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/engine"
	"github.com/san-kum/bubblescroll/internal/gate"
	"github.com/san-kum/bubblescroll/internal/highlight"
	"github.com/san-kum/bubblescroll/internal/particle"
	"golang.org/x/sync/errgroup"
)

// Record is one replayed frame.
type Record struct {
	T          time.Duration
	Progress   float64
	Scrolling  bool
	State      gate.State
	Bubble     effect.Visual
	Enlarged   int
	BurstFired bool
	Droplets   int
}

func record(f engine.Frame, t time.Duration, emitter *particle.Emitter) Record {
	return Record{
		T:          t,
		Progress:   f.Progress,
		Scrolling:  f.Scrolling,
		State:      f.Burst,
		Bubble:     f.Bubble(),
		Enlarged:   highlight.Count(f.Blocks),
		BurstFired: f.BurstFired,
		Droplets:   len(emitter.Sample(f.At)),
	}
}

// Simulate replays sc on a manual clock, one frame every sc.Frame, and
// returns every frame. The result depends only on sc and cfg.
func Simulate(sc *Scenario, cfg *config.Config) []Record {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	start := time.Unix(0, 0)
	clk := clock.NewManual(start)
	emitter := particle.NewEmitter(seeded(cfg.Particles))
	eng := engine.New(engine.Options{Config: cfg, Clock: clk, Particles: emitter})
	eng.Activate()
	defer eng.Teardown()

	end := sc.Duration()
	records := make([]Record, 0, int(end/sc.Frame)+1)
	next := 0
	for t := time.Duration(0); t <= end; t += sc.Frame {
		clk.Set(start.Add(t))
		for next < len(sc.Steps) && sc.Steps[next].At <= t {
			eng.Scroll(sc.Sample(sc.Steps[next]))
			next++
		}
		records = append(records, record(eng.Tick(), t, emitter))
	}
	return records
}

// Run replays sc in real time. One goroutine feeds the steps at their
// scheduled times while the engine loop draws frames; sink receives every
// frame from the loop goroutine. Run returns when the scenario ends, ctx
// is canceled or either side fails.
func Run(ctx context.Context, sc *Scenario, cfg *config.Config, log zerolog.Logger, sink func(Record)) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	emitter := particle.NewEmitter(seeded(cfg.Particles))
	eng := engine.New(engine.Options{Config: cfg, Particles: emitter, Logger: log})

	var begin time.Time
	loop := engine.NewLoop(eng, sc.Frame, func(f engine.Frame) {
		if begin.IsZero() {
			begin = f.At
		}
		if sink != nil {
			sink(record(f, f.At.Sub(begin), emitter))
		}
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := loop.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer loop.Stop()
		started := time.Now()
		for _, step := range sc.Steps {
			if err := sleepUntil(ctx, started.Add(step.At)); err != nil {
				return err
			}
			if err := loop.Scroll(ctx, sc.Sample(step)); err != nil {
				return err
			}
			log.Debug().Dur("at", step.At).Float64("position", step.Position).Msg("scroll step")
		}
		return sleepUntil(ctx, started.Add(sc.Duration()))
	})
	return g.Wait()
}

func sleepUntil(ctx context.Context, t time.Time) error {
	d := time.Until(t)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func seeded(p particle.Config) particle.Config {
	if p.Seed == 0 {
		p.Seed = 1
	}
	return p
}
