package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kettle31/spyglass/internal/record"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderHeader renders the title line with the connection state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Logo.Render("SPYGLASS") + styles.MutedText.Render("  live log tail")

	state := "disconnected"
	if m.stream != nil {
		state = m.stream.State().String()
	}
	right := styles.AccentText.Render(state)
	if state == "disconnected" {
		right = styles.FaintText.Render("reconnecting...")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Render(left + strings.Repeat(" ", gap) + right)
}

// renderContent renders the colorized filtered records.
func (m Model) renderContent() string {
	if len(m.filtered) == 0 {
		if len(m.visible) > 0 {
			return "No records match the current filters."
		}
		return "Waiting for logs..."
	}

	styles := m.theme.Styles()
	lines := make([]string, len(m.filtered))
	for i, r := range m.filtered {
		lines[i] = renderRecordLine(r, styles)
	}
	return strings.Join(lines, "\n")
}

// renderRecordLine renders one record: faint timestamp, colored level tag,
// message in the level color.
func renderRecordLine(r record.Record, styles Styles) string {
	var b strings.Builder
	if r.Time != "" {
		b.WriteString(styles.FaintText.Render(r.Time))
		b.WriteString(" ")
	}
	if r.Level != "" {
		b.WriteString(styles.LevelStyle(r.Level).Render(fmt.Sprintf("%-7s", r.Level)))
		b.WriteString(" ")
	}
	b.WriteString(styles.LevelStyle(r.Level).Render(r.Message))
	return b.String()
}

// renderStatus renders the bottom status bar.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()

	if m.searching {
		return styles.Footer.Render(m.searchInput.View())
	}

	parts := []string{statusSummary(m)}

	if q := m.matcher.Query(); q != "" {
		label := "/" + q
		if m.matcher.Literal() {
			label += " (literal)"
		}
		parts = append(parts, label)
	}
	if f := filterSummary(m.filters); f != "" {
		parts = append(parts, f)
	}
	if m.note != "" {
		parts = append(parts, m.note)
	}

	return styles.Footer.Render(strings.Join(parts, " • "))
}

// statusSummary builds the "N/limit shown • received • dropped • follow"
// core of the status bar.
func statusSummary(m Model) string {
	follow := "follow off"
	if m.follow {
		follow = "follow on"
	}

	var stats string
	if m.buffer != nil {
		s := m.buffer.Stats()
		stats = fmt.Sprintf("%d recv", s.Received)
		if s.Malformed > 0 {
			stats += fmt.Sprintf(" %d dropped", s.Malformed)
		}
	}

	core := fmt.Sprintf("%d/%d logs (limit %d)", len(m.filtered), len(m.visible), m.settings.LogLimit())
	if stats == "" {
		return core + " • " + follow
	}
	return core + " • " + stats + " • " + follow
}

// filterSummary lists hidden levels, e.g. "hiding DEBUG" or
// "hiding WARN,DEBUG". Empty when everything known is visible.
func filterSummary(filters map[string]bool) string {
	var hidden []string
	for _, level := range record.KnownLevels {
		if !filters[level] {
			hidden = append(hidden, level)
		}
	}
	if len(hidden) == 0 {
		return ""
	}
	return "hiding " + strings.Join(hidden, ",")
}
