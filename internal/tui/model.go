package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/irail-cli/internal/format"
	"github.com/mobil-koeln/irail-cli/internal/output"
)

// Model is the Bubble Tea model of the table browser.
type Model struct {
	ctx    context.Context
	table  output.Table
	width  int
	height int

	entries []format.Entry
	cursor  int
	loading bool
	err     error
	seq     int

	// Sorting over the table's sortable columns
	sortKeys []string
	sortIdx  int
	reverse  bool

	// Auto-refresh
	autoRefresh bool
	lastUpdate  time.Time
}

// New creates a browser for t. Entries are loaded by Init.
func New(ctx context.Context, t output.Table) Model {
	keys := t.SortableKeys()
	idx := 0
	for i, k := range keys {
		if k == t.SortKey {
			idx = i
			break
		}
	}

	return Model{
		ctx:      ctx,
		table:    t,
		sortKeys: keys,
		sortIdx:  idx,
		loading:  true,
	}
}

// Init loads the first set of entries.
func (m Model) Init() tea.Cmd {
	return loadEntries(m.ctx, m.table, m.seq)
}

// sortKey returns the key entries are currently sorted by.
func (m Model) sortKey() string {
	if len(m.sortKeys) == 0 {
		return m.table.SortKey
	}
	return m.sortKeys[m.sortIdx]
}

// resort re-applies the current sort and clamps the cursor.
func (m *Model) resort() {
	output.SortEntries(m.entries, m.sortKey(), m.reverse)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// pageSize is how far pgup/pgdown move the cursor.
func (m Model) pageSize() int {
	size := m.height - 10 // header, sort bar, column titles, status
	if size < 1 {
		size = 10
	}
	return size
}
