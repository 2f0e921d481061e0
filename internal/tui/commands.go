package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/irail-cli/internal/output"
)

const (
	apiTimeout          = 15 * time.Second
	autoRefreshInterval = 30 * time.Second
	warningTTL          = 2 * time.Second
)

// autoRefreshTick returns a tea.Cmd that sends a tick after the refresh interval.
func autoRefreshTick() tea.Cmd {
	return tea.Tick(autoRefreshInterval, func(t time.Time) tea.Msg {
		return autoRefreshTickMsg(t)
	})
}

// countdownTick returns a tea.Cmd that sends a tick every second for countdown display.
func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

// loadEntries returns a tea.Cmd that calls the table's entry producer.
func loadEntries(ctx context.Context, t output.Table, seq int) tea.Cmd {
	return func() tea.Msg {
		if t.Entries == nil {
			return entriesMsg{seq: seq}
		}
		ctx, cancel := context.WithTimeout(ctx, apiTimeout)
		defer cancel()

		entries, err := t.Entries(ctx)
		return entriesMsg{
			seq:     seq,
			entries: entries,
			err:     err,
		}
	}
}

// expireWarning returns a tea.Cmd that clears warning seq after warningTTL.
func expireWarning(seq int) tea.Cmd {
	return tea.Tick(warningTTL, func(time.Time) tea.Msg {
		return warningExpiredMsg{seq: seq}
	})
}
