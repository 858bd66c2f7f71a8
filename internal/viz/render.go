package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bubblescroll/internal/curve"
	"github.com/san-kum/bubblescroll/internal/gate"
	"github.com/san-kum/bubblescroll/internal/highlight"
)

const (
	ringCount  = 5
	ringPeriod = 2 * time.Second
	// Largest bubble radius in rem is 48*1.2/2; the panel fits a bit more.
	panelRem = 64.0
	pxPerRem = 16.0
)

// Rings breathe 0.8 -> 1.2 -> 0.8 over one period, each a little behind
// the one inside it.
var ringPulse = curve.New(0, 0.8, 0.5, 1.2, 1, 0.8)

func ringScale(elapsed time.Duration, ring int) float64 {
	t := elapsed - time.Duration(ring)*ringPeriod/10
	phase := math.Mod(t.Seconds()/ringPeriod.Seconds(), 1)
	if phase < 0 {
		phase++
	}
	return ringPulse.At(phase)
}

func (m Model) viewLoading() string {
	c := NewCanvas(panelWidth, 10)
	wd, hd := c.Dots()
	cx, cy := wd/2, hd/2
	base := float64(min(wd, hd)) / 2 / 1.2 / ringCount
	elapsed := m.clock.Now().Sub(m.started)
	for i := 0; i < ringCount; i++ {
		r := base * float64(i+1) * ringScale(elapsed, i)
		c.Circle(cx, cy, int(math.Round(r)))
	}
	rings := lipgloss.NewStyle().Foreground(m.theme.Ink).Render(c.String())
	caption := m.spinner.View() + " " + m.styles.value.Render("loading")
	body := lipgloss.JoinVertical(lipgloss.Center, rings, "", caption)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// drawBubble paints the current bubble, or its exit transition, and any
// live droplets onto the canvas.
func (m Model) drawBubble() float64 {
	c := m.canvas
	c.Clear()
	wd, hd := c.Dots()
	dotsPerRem := float64(min(wd, hd)) / panelRem
	cx, cy := float64(wd)/2, float64(hd)/2

	v := m.frame.Bubble()
	opacity := 0.0
	if v.Visible && v.Opacity > 0 {
		opacity = v.Opacity
		x := cx + v.X/pxPerRem*dotsPerRem
		y := cy + v.Y/pxPerRem*dotsPerRem
		r := v.Radius() * dotsPerRem
		c.Disc(x, y, r, opacity*0.6)
		c.Circle(int(math.Round(x)), int(math.Round(y)), int(math.Round(r)))
	}
	for _, d := range m.emitter.Sample(m.frame.At) {
		r := math.Max(0.8, d.SizePx*d.Scale/pxPerRem*dotsPerRem)
		c.Disc(d.X*float64(wd), d.Y*float64(hd), r, d.Opacity)
		opacity = math.Max(opacity, d.Opacity)
	}
	return opacity
}

func (m Model) viewBubble() string {
	opacity := m.drawBubble()
	ink := Blend(m.theme.SectionA, m.theme.Ink, math.Max(opacity, 0.35))
	return m.styles.panel.Render(lipgloss.NewStyle().Foreground(ink).Render(m.canvas.String()))
}

func (m Model) viewStats() string {
	f := m.frame
	v := f.Bubble()
	var s strings.Builder
	s.WriteString(m.styles.header.Render("BUBBLE") + "\n")

	row := func(label, value string) {
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	row("Progress", fmt.Sprintf("%s %3.0f%%", ProgressBar(f.Progress, 12), f.Progress*100))
	row("Scrolling", fmt.Sprintf("%v", f.Scrolling))
	if f.Burst == gate.Burst {
		s.WriteString(m.styles.label.Render("State") + m.styles.burst.Render(f.Burst.String()) + "\n")
	} else {
		row("State", f.Burst.String())
	}
	row("Size", fmt.Sprintf("%.1frem", v.SizeRem))
	row("Scale", fmt.Sprintf("%.2f", v.Scale))
	row("Opacity", fmt.Sprintf("%.2f", v.Opacity))
	row("Offset", fmt.Sprintf("%+.0f, %+.0f", f.Offset.X, f.Offset.Y))
	row("Enlarged", fmt.Sprintf("%d/%d", highlight.Count(f.Blocks), len(f.Blocks)))
	row("Droplets", fmt.Sprintf("%d", len(m.emitter.Sample(f.At))))
	row("Uptime", f.Elapsed.Truncate(100*time.Millisecond).String())

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(statsWidth-10),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Caption("progress"))
		s.WriteString("\n" + m.styles.graph.Render(chart) + "\n")
	}
	return m.styles.stats.Render(s.String())
}
