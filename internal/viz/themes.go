package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours and cell glyphs of the editor.
type Theme struct {
	Name      string
	AliveCell string
	DeadCell  string
	Alive     lipgloss.Color
	Dead      lipgloss.Color
	Cursor    lipgloss.Color
	Border    lipgloss.Color
	Title     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Running   lipgloss.Color
	Paused    lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:      "classic",
		AliveCell: "█",
		DeadCell:  " ",
		Alive:     lipgloss.Color("#00ff88"),
		Dead:      lipgloss.Color("#0a0a0a"),
		Cursor:    lipgloss.Color("#ffcc00"),
		Border:    lipgloss.Color("#444466"),
		Title:     lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Accent:    lipgloss.Color("#ffff00"),
		Running:   lipgloss.Color("#00ff88"),
		Paused:    lipgloss.Color("#ffaa00"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		AliveCell: "@",
		DeadCell:  " ",
		Alive:     lipgloss.Color("#ffffff"),
		Dead:      lipgloss.Color("#000000"),
		Cursor:    lipgloss.Color("#cccccc"),
		Border:    lipgloss.Color("#888888"),
		Title:     lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Accent:    lipgloss.Color("#ffffff"),
		Running:   lipgloss.Color("#ffffff"),
		Paused:    lipgloss.Color("#888888"),
	}

	ThemeNeon = Theme{
		Name:      "neon",
		AliveCell: "█",
		DeadCell:  "·",
		Alive:     lipgloss.Color("#ff00ff"),
		Dead:      lipgloss.Color("#1a001a"),
		Cursor:    lipgloss.Color("#00ffff"),
		Border:    lipgloss.Color("#ff00ff"),
		Title:     lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Accent:    lipgloss.Color("#ffff00"),
		Running:   lipgloss.Color("#00ff00"),
		Paused:    lipgloss.Color("#ff8800"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		AliveCell: "█",
		DeadCell:  " ",
		Alive:     lipgloss.Color("#00a8cc"),
		Dead:      lipgloss.Color("#001a33"),
		Cursor:    lipgloss.Color("#ffd700"),
		Border:    lipgloss.Color("#4488aa"),
		Title:     lipgloss.Color("#e0f0ff"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Accent:    lipgloss.Color("#ffd700"),
		Running:   lipgloss.Color("#00ff88"),
		Paused:    lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		AliveCell: "█",
		DeadCell:  " ",
		Alive:     lipgloss.Color("#ff6b6b"),
		Dead:      lipgloss.Color("#2d1b2e"),
		Cursor:    lipgloss.Color("#feca57"),
		Border:    lipgloss.Color("#8b6b8c"),
		Title:     lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Accent:    lipgloss.Color("#feca57"),
		Running:   lipgloss.Color("#5fd068"),
		Paused:    lipgloss.Color("#ffc048"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeMono,
		ThemeNeon,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// HasTheme reports whether name is a built-in theme.
func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
