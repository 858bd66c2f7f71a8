package scenario

import (
	"time"

	"github.com/san-kum/bubblescroll/internal/gate"
)

// Metric folds replayed frames into one number.
type Metric interface {
	Name() string
	Observe(r Record)
	Value() float64
	Reset()
}

// DefaultMetrics returns a fresh set of the metrics the replay tools report.
func DefaultMetrics() []Metric {
	return []Metric{NewFirstBurst(), NewBurstCount(), NewEnlargedShare(), NewPeakDiameter()}
}

// Summarize feeds every record through the metrics and returns their values
// by name.
func Summarize(records []Record, metrics ...Metric) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		m.Reset()
		for _, r := range records {
			m.Observe(r)
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// FirstBurst is the time of the first burst in seconds, or -1 if the
// bubble never burst.
type FirstBurst struct {
	at   time.Duration
	seen bool
}

func NewFirstBurst() *FirstBurst { return &FirstBurst{} }

func (f *FirstBurst) Name() string { return "first_burst_s" }

func (f *FirstBurst) Observe(r Record) {
	if !f.seen && r.State == gate.Burst {
		f.at, f.seen = r.T, true
	}
}

func (f *FirstBurst) Value() float64 {
	if !f.seen {
		return -1
	}
	return f.at.Seconds()
}

func (f *FirstBurst) Reset() { *f = FirstBurst{} }

// BurstCount counts frames on which a burst fired.
type BurstCount struct {
	n int
}

func NewBurstCount() *BurstCount { return &BurstCount{} }

func (b *BurstCount) Name() string { return "bursts" }

func (b *BurstCount) Observe(r Record) {
	if r.BurstFired {
		b.n++
	}
}

func (b *BurstCount) Value() float64 { return float64(b.n) }
func (b *BurstCount) Reset()         { b.n = 0 }

// EnlargedShare is the fraction of frames with at least one block enlarged.
type EnlargedShare struct {
	hits, samples int
}

func NewEnlargedShare() *EnlargedShare { return &EnlargedShare{} }

func (e *EnlargedShare) Name() string { return "enlarged_share" }

func (e *EnlargedShare) Observe(r Record) {
	e.samples++
	if r.Enlarged > 0 {
		e.hits++
	}
}

func (e *EnlargedShare) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return float64(e.hits) / float64(e.samples)
}

func (e *EnlargedShare) Reset() { e.hits, e.samples = 0, 0 }

// PeakDiameter is the largest rendered diameter in rem.
type PeakDiameter struct {
	peak float64
}

func NewPeakDiameter() *PeakDiameter { return &PeakDiameter{} }

func (p *PeakDiameter) Name() string { return "peak_diameter_rem" }

func (p *PeakDiameter) Observe(r Record) {
	if !r.Bubble.Visible {
		return
	}
	if d := r.Bubble.SizeRem * r.Bubble.Scale; d > p.peak {
		p.peak = d
	}
}

func (p *PeakDiameter) Value() float64 { return p.peak }
func (p *PeakDiameter) Reset()         { p.peak = 0 }
