package engine_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/bubblescroll/internal/clock"
	"github.com/san-kum/bubblescroll/internal/config"
	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/engine"
	"github.com/san-kum/bubblescroll/internal/gate"
)

type recorder struct {
	bursts []time.Time
	resets int
}

func (r *recorder) Burst(now time.Time) { r.bursts = append(r.bursts, now) }
func (r *recorder) Reset()              { r.resets++ }

func at(progress float64) effect.ScrollSample {
	return effect.ScrollSample{PositionPx: progress * 3000, ViewportHeightPx: 1000, DocumentHeightPx: 4000}
}

var _ = Describe("Engine", func() {
	var (
		clk   *clock.Manual
		parts *recorder
		eng   *engine.Engine
	)

	BeforeEach(func() {
		clk = clock.NewManual(time.Unix(1_700_000_000, 0))
		parts = &recorder{}
		eng = engine.New(engine.Options{
			Config:    config.DefaultConfig(),
			Clock:     clk,
			Particles: parts,
			Logger:    zerolog.Nop(),
		})
	})

	Context("before activation", func() {
		It("ignores scroll and renders nothing", func() {
			eng.Scroll(at(0.99))
			f := eng.Tick()
			Expect(f.Visual.Visible).To(BeFalse())
			Expect(f.Burst).To(Equal(gate.Intact))
			Expect(parts.bursts).To(BeEmpty())
			for _, b := range f.Blocks {
				Expect(b.Scale).To(Equal(1.0))
			}
		})
	})

	Context("when active", func() {
		BeforeEach(func() {
			eng.Activate()
		})

		It("drifts idly when nobody scrolls", func() {
			clk.Advance(time.Duration(math.Round(math.Pi / 2 * float64(time.Second))))
			f := eng.Tick()
			Expect(f.Elapsed).To(Equal(time.Duration(math.Round(math.Pi / 2 * float64(time.Second)))))
			Expect(f.Visual.Visible).To(BeTrue())
			Expect(f.Offset.X).To(BeNumerically("~", 100, 1e-6))
			Expect(f.Offset.Y).To(BeNumerically("~", 0, 1e-6))
			Expect(f.Visual.SizeRem).To(Equal(16.0))
			Expect(f.Visual.Opacity).To(Equal(0.8))
		})

		It("freezes the drift at the origin while scrolling and resumes in phase", func() {
			clk.Advance(time.Second)
			eng.Scroll(at(0.3))

			clk.Advance(50 * time.Millisecond)
			f := eng.Tick()
			Expect(f.Scrolling).To(BeTrue())
			Expect(f.Offset).To(Equal(effect.Vec{}))
			Expect(f.Progress).To(BeNumerically("~", 0.3, 1e-9))

			clk.Advance(100 * time.Millisecond)
			f = eng.Tick()
			Expect(f.Scrolling).To(BeFalse())
			Expect(f.Offset.X).To(BeNumerically("~", 100*math.Sin(1.15), 1e-6))
			Expect(f.Offset.Y).To(BeNumerically("~", 100*math.Cos(1.15), 1e-6))
		})

		It("enlarges every block while the bubble sits on the anchors", func() {
			eng.Scroll(at(0.2))
			f := eng.Tick()
			Expect(f.Offset).To(Equal(effect.Vec{}))
			for _, b := range f.Blocks {
				Expect(b.Enlarged).To(BeTrue())
				Expect(b.Scale).To(Equal(1.5))
			}
		})

		It("keeps blocks unscaled during the drift", func() {
			f := eng.Tick()
			Expect(f.Offset.Y).To(BeNumerically("~", 100, 1e-9))
			for _, b := range f.Blocks {
				Expect(b.Enlarged).To(BeFalse())
			}
		})

		Describe("bursting", func() {
			BeforeEach(func() {
				eng.Scroll(at(0.9))
				eng.Tick()
				clk.Advance(16 * time.Millisecond)
				eng.Scroll(at(0.96))
			})

			It("fires the particle renderer once and signals the first frame", func() {
				Expect(parts.bursts).To(HaveLen(1))

				f := eng.Tick()
				Expect(f.Burst).To(Equal(gate.Burst))
				Expect(f.BurstFired).To(BeTrue())
				Expect(f.Visual.Visible).To(BeFalse())
				Expect(f.Offset).To(Equal(effect.Vec{}))

				clk.Advance(16 * time.Millisecond)
				Expect(eng.Tick().BurstFired).To(BeFalse())

				eng.Scroll(at(0.99))
				Expect(parts.bursts).To(HaveLen(1))
			})

			It("plays the exit transition from the last visible bubble", func() {
				f := eng.Tick()
				Expect(f.Exit.Visible).To(BeTrue())
				Expect(f.Exit.SizeRem).To(Equal(48.0))
				Expect(f.Bubble()).To(Equal(f.Exit))

				for i := 0; i < 40; i++ {
					clk.Advance(16 * time.Millisecond)
					f = eng.Tick()
				}
				Expect(f.Exit.Visible).To(BeFalse())
				Expect(f.Bubble().Visible).To(BeFalse())
			})

			It("never enlarges text while burst", func() {
				for _, b := range eng.Tick().Blocks {
					Expect(b.Enlarged).To(BeFalse())
					Expect(b.Scale).To(Equal(1.0))
				}
			})

			It("holds the burst inside the dead zone", func() {
				eng.Scroll(at(0.92))
				Expect(eng.Tick().Burst).To(Equal(gate.Burst))
				Expect(parts.resets).To(Equal(0))
			})

			It("re-forms the bubble below the exit threshold", func() {
				eng.Scroll(at(0.89))
				f := eng.Tick()
				Expect(f.Burst).To(Equal(gate.Intact))
				Expect(f.Visual.Visible).To(BeTrue())
				Expect(f.Exit.Visible).To(BeFalse())
				Expect(parts.resets).To(Equal(1))
			})
		})

		It("times the exit from the burst, not from the previous frame", func() {
			eng.Scroll(at(0.9))
			before := eng.Tick()
			Expect(before.Visual.Visible).To(BeTrue())

			clk.Advance(190 * time.Millisecond)
			eng.Scroll(at(0.97))
			clk.Advance(10 * time.Millisecond)
			f := eng.Tick()
			Expect(f.Exit.Visible).To(BeTrue())
			Expect(f.Exit.Scale / before.Visual.Scale).To(BeNumerically("~", 1.008, 1e-4))
			Expect(f.Exit.Opacity).To(BeNumerically("~", before.Visual.Opacity, 1e-6))
		})

		It("bursts even when the first scroll jumps straight to the end", func() {
			eng.Scroll(at(1))
			f := eng.Tick()
			Expect(f.Burst).To(Equal(gate.Burst))
			Expect(f.Exit.Visible).To(BeTrue())
			Expect(f.Exit.SizeRem).To(Equal(16.0))
		})

		It("clamps overscroll and bogus geometry", func() {
			eng.Scroll(effect.ScrollSample{PositionPx: -50, ViewportHeightPx: 1000, DocumentHeightPx: 4000})
			Expect(eng.Context().Progress).To(Equal(0.0))
			eng.Scroll(effect.ScrollSample{PositionPx: 50, ViewportHeightPx: 1000, DocumentHeightPx: 800})
			Expect(eng.Context().Progress).To(Equal(0.0))
			Expect(eng.Tick().Visual.Visible).To(BeTrue())
		})
	})

	Describe("teardown", func() {
		It("leaves nothing pending and ignores later calls", func() {
			eng.Activate()
			eng.Scroll(at(0.5))
			Expect(eng.Pending()).To(BeTrue())

			eng.Teardown()
			Expect(eng.Pending()).To(BeFalse())
			Expect(eng.Active()).To(BeFalse())

			eng.Scroll(at(0.99))
			Expect(parts.bursts).To(BeEmpty())
			Expect(eng.Tick().Visual.Visible).To(BeFalse())

			eng.Teardown()
		})
	})
})
