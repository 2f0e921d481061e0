package tui

import (
	"time"

	"github.com/mobil-koeln/irail-cli/internal/format"
)

// autoRefreshTickMsg is sent every 30 seconds when auto-refresh is enabled.
type autoRefreshTickMsg time.Time

// countdownTickMsg is sent every second when auto-refresh is enabled to update countdown display.
type countdownTickMsg time.Time

// entriesMsg carries the result of a table load. seq is used for
// stale-result detection.
type entriesMsg struct {
	seq     int
	entries []format.Entry
	err     error
}

// warningExpiredMsg clears the prompt warning it was scheduled for.
type warningExpiredMsg struct {
	seq int
}
