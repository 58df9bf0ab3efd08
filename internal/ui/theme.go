package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kettle31/spyglass/internal/record"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string
	FocusBg    string

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string

	// Severity colors keyed by canonical level
	LevelColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		levelColors: t.LevelColors,
		muted:       t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	levelColors map[string]string
	muted       string
}

// LevelStyle returns a style for a record at the given severity. Unknown
// levels render in the plain text color.
func (s Styles) LevelStyle(level string) lipgloss.Style {
	color, ok := s.levelColors[level]
	if !ok {
		return lipgloss.NewStyle()
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if level == record.LevelError {
		style = style.Bold(true)
	}
	return style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		FocusBg:    "#29394f", // bg3

		Text:   "#cdcecf", // fg1
		Muted:  "#738091", // comment
		Faint:  "#71839b", // fg3
		Accent: "#719cd6", // blue

		LevelColors: map[string]string{
			record.LevelInfo:    "#81b29a", // green
			record.LevelWarn:    "#dbc074", // yellow
			record.LevelError:   "#c94f6d", // red
			record.LevelSuccess: "#63cdcf", // cyan
			record.LevelDebug:   "#71839b", // fg3
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		FocusBg:    "#2A2A37", // sumiInk4

		Text:   "#DCD7BA", // fujiWhite
		Muted:  "#C8C093", // oldWhite
		Faint:  "#727169", // fujiGray
		Accent: "#7E9CD8", // crystalBlue

		LevelColors: map[string]string{
			record.LevelInfo:    "#98BB6C", // springGreen
			record.LevelWarn:    "#E6C384", // carpYellow
			record.LevelError:   "#E46876", // waveRed
			record.LevelSuccess: "#7FB4CA", // springBlue
			record.LevelDebug:   "#727169", // fujiGray
		},
	}
}
