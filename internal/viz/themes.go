package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the live view.
type Theme struct {
	Name   string
	Orbit  lipgloss.Color
	Planet lipgloss.Color
	Sun    lipgloss.Color
	Graph  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Warn   lipgloss.Color
}

var (
	ThemeSolar = Theme{
		Name:   "solar",
		Orbit:  lipgloss.Color("#ffb000"),
		Planet: lipgloss.Color("#4fc3f7"),
		Sun:    lipgloss.Color("#ffd54f"),
		Graph:  lipgloss.Color("#ff8a65"),
		Text:   lipgloss.Color("#fff8e1"),
		Muted:  lipgloss.Color("#8d6e63"),
		Accent: lipgloss.Color("#ffca28"),
		Warn:   lipgloss.Color("#ff5252"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Orbit:  lipgloss.Color("#ff00ff"),
		Planet: lipgloss.Color("#00ffff"),
		Sun:    lipgloss.Color("#ffff00"),
		Graph:  lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ff00ff"),
		Warn:   lipgloss.Color("#ff0000"),
	}

	ThemeRetro = Theme{
		Name:   "retro",
		Orbit:  lipgloss.Color("#00ff00"),
		Planet: lipgloss.Color("#88ff88"),
		Sun:    lipgloss.Color("#ccffcc"),
		Graph:  lipgloss.Color("#00cc00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Warn:   lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Orbit:  lipgloss.Color("#cccccc"),
		Planet: lipgloss.Color("#0088ff"),
		Sun:    lipgloss.Color("#ffffff"),
		Graph:  lipgloss.Color("#888888"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#0088ff"),
		Warn:   lipgloss.Color("#ffaa00"),
	}

	// Themes lists the built-in schemes in cycling order.
	Themes = []Theme{ThemeSolar, ThemeCyberpunk, ThemeRetro, ThemeMinimal}
)

// GetTheme returns the named theme, falling back to the first built-in one.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
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
