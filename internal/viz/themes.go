package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the page palette. Sections alternate between SectionA and
// SectionB backgrounds; headlines and the bubble use Ink.
type Theme struct {
	Name     string
	Ink      lipgloss.Color
	SectionA lipgloss.Color
	SectionB lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Warning  lipgloss.Color
}

var (
	ThemeRouser = Theme{
		Name:     "rouser",
		Ink:      lipgloss.Color("#c5ff00"),
		SectionA: lipgloss.Color("#000000"),
		SectionB: lipgloss.Color("#e4c1c1"),
		Accent:   lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
		Warning:  lipgloss.Color("#ff4757"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Ink:      lipgloss.Color("#ffffff"),
		SectionA: lipgloss.Color("#000000"),
		SectionB: lipgloss.Color("#333333"),
		Accent:   lipgloss.Color("#0088ff"),
		Muted:    lipgloss.Color("#888888"),
		Warning:  lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Ink:      lipgloss.Color("#ffd700"),
		SectionA: lipgloss.Color("#001a33"),
		SectionB: lipgloss.Color("#0077be"),
		Accent:   lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Warning:  lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Ink:      lipgloss.Color("#feca57"),
		SectionA: lipgloss.Color("#2d1b2e"),
		SectionB: lipgloss.Color("#ff6b6b"),
		Accent:   lipgloss.Color("#ff9ff3"),
		Muted:    lipgloss.Color("#8b6b8c"),
		Warning:  lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeRouser, ThemeMinimal, ThemeOcean, ThemeSunset}
)

// GetTheme returns the named theme, or the rouser theme if there is none.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRouser
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
