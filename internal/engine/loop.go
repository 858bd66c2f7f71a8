package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/bubblescroll/internal/effect"
)

var (
	ErrLoopRunning = errors.New("engine: loop already running")
	ErrLoopStopped = errors.New("engine: loop stopped")
)

// Loop drives an Engine from one goroutine: scroll samples arrive over a
// channel, frames are produced on a ticker and handed to draw. Nothing
// else touches the engine while the loop runs.
type Loop struct {
	eng      *Engine
	interval time.Duration
	draw     func(Frame)

	samples  chan effect.ScrollSample
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
}

func NewLoop(eng *Engine, interval time.Duration, draw func(Frame)) *Loop {
	if interval <= 0 {
		interval = eng.Config().FrameInterval()
	}
	if draw == nil {
		draw = func(Frame) {}
	}
	return &Loop{
		eng:      eng,
		interval: interval,
		draw:     draw,
		samples:  make(chan effect.ScrollSample, 16),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run activates the engine and processes samples and frames until ctx is
// done or Stop is called. On return the engine is torn down and the ticker
// released. Run may be called once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	defer l.eng.Teardown()

	l.eng.Activate()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case s := <-l.samples:
			l.eng.Scroll(s)
		case <-ticker.C:
			if l.stopped() {
				return nil
			}
			l.draw(l.eng.Tick())
		}
	}
}

// Scroll hands a sample to the loop goroutine. It blocks while the sample
// buffer is full and fails once the loop has stopped.
func (l *Loop) Scroll(ctx context.Context, s effect.ScrollSample) error {
	select {
	case <-l.stop:
		return ErrLoopStopped
	case <-l.done:
		return ErrLoopStopped
	default:
	}
	select {
	case l.samples <- s:
		return nil
	case <-l.stop:
		return ErrLoopStopped
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop ends the loop and waits for it to exit. After Stop returns, draw is
// never called again. Extra calls are no-ops.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
	if l.started.Load() {
		<-l.done
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

func (l *Loop) stopped() bool {
	select {
	case <-l.stop:
		return true
	default:
		return false
	}
}
