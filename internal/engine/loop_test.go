package engine_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bubblescroll/internal/config"
	"github.com/san-kum/bubblescroll/internal/engine"
	"github.com/san-kum/bubblescroll/internal/gate"
)

var _ = Describe("Loop", func() {
	var (
		eng    *engine.Engine
		loop   *engine.Loop
		mu     sync.Mutex
		frames []engine.Frame
		draws  atomic.Int64
		errc   chan error
	)

	BeforeEach(func() {
		frames = nil
		draws.Store(0)
		eng = engine.New(engine.Options{Config: config.DefaultConfig()})
		loop = engine.NewLoop(eng, 2*time.Millisecond, func(f engine.Frame) {
			draws.Add(1)
			mu.Lock()
			frames = append(frames, f)
			mu.Unlock()
		})
		errc = make(chan error, 1)
		l, ec := loop, errc
		go func() { ec <- l.Run(context.Background()) }()
	})

	AfterEach(func() {
		loop.Stop()
	})

	last := func() engine.Frame {
		mu.Lock()
		defer mu.Unlock()
		if len(frames) == 0 {
			return engine.Frame{}
		}
		return frames[len(frames)-1]
	}

	It("draws frames and applies scroll samples on its own goroutine", func() {
		Eventually(draws.Load).Should(BeNumerically(">", 2))
		Expect(loop.Scroll(context.Background(), at(0.97))).To(Succeed())
		Eventually(func() gate.State { return last().Burst }).Should(Equal(gate.Burst))
	})

	It("stops exactly once and never draws afterwards", func() {
		Eventually(draws.Load).Should(BeNumerically(">", 0))
		loop.Stop()
		loop.Stop()
		Eventually(errc).Should(Receive(BeNil()))

		n := draws.Load()
		Consistently(draws.Load, 30*time.Millisecond, 5*time.Millisecond).Should(Equal(n))
		Expect(eng.Active()).To(BeFalse())
		Expect(eng.Pending()).To(BeFalse())
		Expect(loop.Scroll(context.Background(), at(0.5))).To(MatchError(engine.ErrLoopStopped))
	})

	It("refuses a second Run", func() {
		Eventually(draws.Load).Should(BeNumerically(">", 0))
		Expect(loop.Run(context.Background())).To(MatchError(engine.ErrLoopRunning))
	})

	It("returns the context error when canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		other := engine.NewLoop(engine.New(engine.Options{}), time.Millisecond, nil)
		done := make(chan error, 1)
		go func() { done <- other.Run(ctx) }()
		cancel()
		Eventually(done).Should(Receive(MatchError(context.Canceled)))
		other.Stop()
	})
})
