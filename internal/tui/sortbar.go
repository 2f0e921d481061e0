package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderSortBar renders the sortable columns as chips, the current one
// highlighted, followed by the order and auto-refresh chips.
func (m Model) renderSortBar() string {
	var chips []string
	for i, key := range m.sortKeys {
		title := key
		if col, ok := m.table.Column(key); ok && col.Title != "" {
			title = col.Title
		}
		chips = append(chips, renderChip(title, i == m.sortIdx))
	}

	order := "asc"
	if m.reverse {
		order = "desc"
	}
	chips = append(chips, renderChip(order, false), renderChip("Auto-refresh 30s", m.autoRefresh))

	bar := styleMuted.Render("Sort: ") + strings.Join(chips, " ")

	// Last update line after the chips
	if !m.lastUpdate.IsZero() {
		updateText := "  Last update: " + m.lastUpdate.Format("15:04:05")

		// Add countdown if auto-refresh is enabled
		if m.autoRefresh {
			remaining := autoRefreshInterval - time.Since(m.lastUpdate)
			if remaining < 0 {
				remaining = 0
			}
			updateText += fmt.Sprintf(" (refresh in %ds)", int(remaining.Seconds()))
		}
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, styleMuted.Render(updateText))
	}

	return bar
}

// renderChip renders a single chip, highlighted when active.
func renderChip(label string, active bool) string {
	if active {
		return styleChipCursor.Render("[" + label + "]")
	}
	return styleMuted.Render(" " + label + " ")
}
