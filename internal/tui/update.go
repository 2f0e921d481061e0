package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case entriesMsg:
		return m.handleEntries(msg)

	case autoRefreshTickMsg:
		return m.handleAutoRefreshTick()

	case countdownTickMsg:
		return m.handleCountdownTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleEntries(msg entriesMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results
	if msg.seq != m.seq {
		return m, nil
	}
	m.loading = false
	m.err = msg.err
	if msg.err != nil {
		return m, nil
	}

	m.entries = msg.entries
	m.resort()
	m.lastUpdate = time.Now()
	return m, nil
}

// refresh reloads the entries. With silent the current rows stay visible
// until the new ones arrive.
func (m Model) refresh(silent bool) (Model, tea.Cmd) {
	m.seq++
	if !silent {
		m.loading = true
		m.err = nil
	}
	return m, loadEntries(m.ctx, m.table, m.seq)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Entries may have shrunk since the last key
	m.clampCursor()

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "pgdown":
		m.cursor += m.pageSize()
		m.clampCursor()
		return m, nil

	case "pgup":
		m.cursor -= m.pageSize()
		m.clampCursor()
		return m, nil

	case "home", "g":
		m.cursor = 0
		return m, nil

	case "end", "G":
		m.cursor = len(m.entries) - 1
		m.clampCursor()
		return m, nil

	case "s":
		if len(m.sortKeys) > 0 {
			m.sortIdx = (m.sortIdx + 1) % len(m.sortKeys)
			m.resort()
		}
		return m, nil

	case "S":
		m.reverse = !m.reverse
		m.resort()
		return m, nil

	case "r":
		return m.refresh(false)

	case "a":
		m.autoRefresh = !m.autoRefresh
		if m.autoRefresh {
			// Do immediate update when enabling auto-refresh
			next, cmd := m.refresh(true)
			return next, tea.Batch(cmd, autoRefreshTick(), countdownTick())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleAutoRefreshTick() (tea.Model, tea.Cmd) {
	if !m.autoRefresh {
		return m, nil
	}
	next, cmd := m.refresh(true)
	return next, tea.Batch(autoRefreshTick(), cmd)
}

func (m Model) handleCountdownTick() (tea.Model, tea.Cmd) {
	if !m.autoRefresh {
		return m, nil
	}
	// Schedule next countdown tick
	return m, countdownTick()
}
