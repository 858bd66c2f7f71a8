package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	sectionA lipgloss.Style
	sectionB lipgloss.Style
	panel    lipgloss.Style
	stats    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	burst    lipgloss.Style
	graph    lipgloss.Style
	help     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		sectionA: lipgloss.NewStyle().Background(t.SectionA).Foreground(t.Ink).Align(lipgloss.Center),
		sectionB: lipgloss.NewStyle().Background(t.SectionB).Foreground(t.Ink).Align(lipgloss.Center),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Foreground(t.Ink),
		stats:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(0, 2).Width(statsWidth),
		header:   lipgloss.NewStyle().Foreground(t.Ink).Bold(true).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:    lipgloss.NewStyle().Foreground(t.Accent),
		burst:    lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		graph:    lipgloss.NewStyle().Foreground(t.Ink),
		help:     lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
	}
}

// Spaced puts gap spaces between the letters of each word and widens the
// spaces between words to match.
func Spaced(text string, gap int) string {
	if gap <= 0 {
		return text
	}
	pad := strings.Repeat(" ", gap)
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = strings.Join(strings.Split(w, ""), pad)
	}
	return strings.Join(words, " "+pad+pad)
}

// ProgressBar renders p in [0,1] as a bar of the given width.
func ProgressBar(p float64, width int) string {
	filled := int(p * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Blend mixes from toward to by t in [0,1].
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	fr, fg, fb := parseHex(string(from))
	tr, tg, tb := parseHex(string(to))
	mix := func(a, b int) int { return a + int(t*float64(b-a)) }
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", mix(fr, tr), mix(fg, tg), mix(fb, tb)))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
