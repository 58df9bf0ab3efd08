package ui

import (
	"fmt"
	"strings"
)

type helpItem struct {
	keys string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Stream",
			items: []helpItem{
				{"f", "Toggle follow mode"},
				{"/", "Search (regex, literal fallback)"},
				{"esc", "Clear applied search"},
				{"1-5", "Toggle INFO/WARN/ERROR/SUCCESS/DEBUG"},
				{"c", "Clear the view"},
				{"S", "Save snapshot"},
				{"+/-", "Grow/shrink log limit"},
			},
		},
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k", "Scroll down/up"},
				{"g/G", "Go to top/bottom (G resumes follow)"},
				{"ctrl+d/u", "Half page down/up"},
				{"pgup/pgdn", "Page up/down"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, section := range sections {
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.Text.Render(fmt.Sprintf("%-10s", item.keys)),
				styles.MutedText.Render(item.desc)))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.FaintText.Render("Press any key to close"))
	return b.String()
}
