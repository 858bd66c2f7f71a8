package viz

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSpaced(t *testing.T) {
	tests := []struct {
		in   string
		gap  int
		want string
	}{
		{"get noisy", 0, "get noisy"},
		{"get noisy", 1, "g e t   n o i s y"},
		{"ab", 2, "a  b"},
		{"", 1, ""},
	}
	for _, tt := range tests {
		if got := Spaced(tt.in, tt.gap); got != tt.want {
			t.Errorf("Spaced(%q, %d) = %q, want %q", tt.in, tt.gap, got, tt.want)
		}
	}
}

func TestLetterGap(t *testing.T) {
	if letterGap(1) != 0 || letterGap(1.5) != 1 || letterGap(0.5) != 0 {
		t.Errorf("gaps = %d %d %d", letterGap(1), letterGap(1.5), letterGap(0.5))
	}
}

func TestBlend(t *testing.T) {
	a, b := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")
	if Blend(a, b, 0) != a || Blend(a, b, 1) != b {
		t.Error("endpoints should be returned unchanged")
	}
	if got := Blend(a, b, 0.5); got != lipgloss.Color("#7f7f7f") {
		t.Errorf("midpoint = %v", got)
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(0.5, 4); got != "██░░" {
		t.Errorf("ProgressBar(0.5) = %q", got)
	}
	if got := ProgressBar(2, 3); got != "███" {
		t.Errorf("ProgressBar(2) = %q", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "rouser" {
		t.Error("unknown theme should fall back to rouser")
	}
	last := Themes[len(Themes)-1]
	if NextTheme(last).Name != Themes[0].Name {
		t.Error("NextTheme should wrap")
	}
	if ThemeRouser.Ink != "#c5ff00" {
		t.Errorf("rouser ink = %v", ThemeRouser.Ink)
	}
}

func TestRingScale(t *testing.T) {
	if s := ringScale(0, 0); s != 0.8 {
		t.Errorf("start = %v, want 0.8", s)
	}
	if s := ringScale(ringPeriod/2, 0); s != 1.2 {
		t.Errorf("half period = %v, want 1.2", s)
	}
	if s := ringScale(ringPeriod, 0); s != 0.8 {
		t.Errorf("full period = %v, want 0.8", s)
	}
}
