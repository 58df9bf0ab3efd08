package ui

import (
	"testing"

	"github.com/kettle31/spyglass/internal/record"
)

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("NoSuchTheme").Name; got != "Nightfox" {
		t.Fatalf("GetTheme fallback = %q, want Nightfox", got)
	}
	if got := GetTheme("Kanagawa").Name; got != "Kanagawa" {
		t.Fatalf("GetTheme = %q, want Kanagawa", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	start := themeOrder[0]
	current := start
	for range themeOrder {
		current = NextTheme(current)
	}
	if current != start {
		t.Fatalf("cycling %d themes ended at %q, want %q", len(themeOrder), current, start)
	}
	if got := NextTheme("NoSuchTheme"); got != themeOrder[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, themeOrder[0])
	}
}

func TestThemes_CoverKnownLevels(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, level := range record.KnownLevels {
			if theme.LevelColors[level] == "" {
				t.Fatalf("theme %s missing color for %s", name, level)
			}
		}
	}
}

func TestLevelStyle_UnknownLevelIsPlain(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()
	if got := styles.LevelStyle("TRACE").Render("x"); got != "x" {
		t.Fatalf("unknown level styled: %q", got)
	}
}
