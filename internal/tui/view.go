package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/irail-cli/internal/output"
)

// maxAutoWidth caps columns that size themselves to their content.
const maxAutoWidth = 40

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := styleLogo.Render("irail") + styleMuted.Render(" · ") + styleHeader.Render(m.table.Name)
	sortBar := m.renderSortBar()
	statusBar := m.renderStatusBar()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(sortBar) - lipgloss.Height(statusBar) - 1
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Render(m.renderTable(bodyHeight))

	return lipgloss.JoinVertical(lipgloss.Left, header, sortBar, "", body, statusBar)
}

// renderTable renders the column titles and the visible rows.
func (m Model) renderTable(height int) string {
	if m.loading {
		return styleLoading.Render(" Loading " + m.table.Name + "...")
	}
	if m.err != nil {
		return styleError.Render(" Error: "+m.err.Error()) + "\n" + styleMuted.Render(" Press r to retry")
	}
	if len(m.entries) == 0 {
		return styleMuted.Render(" No " + m.table.Name + " found")
	}

	widths := m.columnWidths()

	var b strings.Builder
	titles := make([]string, len(m.table.Columns))
	for i, col := range m.table.Columns {
		titles[i] = padRight(col.Title, widths[i])
	}
	b.WriteString("  ")
	b.WriteString(styleHeader.Render(strings.Join(titles, "  ")))
	b.WriteString("\n")

	maxVisible := height - 1 // column titles
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.cursor, len(m.entries), maxVisible)

	for i := start; i < end; i++ {
		cells := make([]string, len(m.table.Columns))
		for j, col := range m.table.Columns {
			text := output.Truncate(col.Render(m.entries[i]), widths[j])
			if i == m.cursor {
				cells[j] = padRight(styleSelected.Render(text.String()), widths[j])
			} else {
				cells[j] = padRight(styleText(text), widths[j])
			}
		}

		if i == m.cursor {
			b.WriteString(styleSelected.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(strings.Join(cells, "  "))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// columnWidths returns each column's width: its fixed Width, or the
// widest of its title and values up to maxAutoWidth.
func (m Model) columnWidths() []int {
	widths := make([]int, len(m.table.Columns))
	for i, col := range m.table.Columns {
		if col.Width > 0 {
			widths[i] = max(col.Width, lipgloss.Width(col.Title))
			continue
		}
		w := lipgloss.Width(col.Title)
		for _, e := range m.entries {
			w = max(w, lipgloss.Width(col.Render(e).String()))
		}
		widths[i] = min(w, maxAutoWidth)
	}
	return widths
}

// renderStatusBar renders keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	hints := "j/k:navigate  s:sort  S:reverse  r:refresh  a:auto-refresh  q:quit"
	return styleStatusBar.Width(m.width).Render(" " + hints)
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}
