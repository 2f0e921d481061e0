package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rodaine/table"

	"github.com/mobil-koeln/irail-cli/internal/format"
)

// Column describes one column of a Table. Format renders the raw entry
// value; when nil, format.Value is used.
type Column struct {
	Key      string
	Title    string
	Width    int
	Sortable bool
	Format   func(any) format.Text
}

// Render formats the column's value in e, truncated to Width
func (c Column) Render(e format.Entry) format.Text {
	f := c.Format
	if f == nil {
		f = format.Value
	}
	return Truncate(f(e[c.Key]), c.Width)
}

// Table is what a display collaborator needs to show a list of entries
type Table struct {
	Name    string
	Entries func(ctx context.Context) ([]format.Entry, error)
	Columns []Column
	SortKey string
}

// Column returns the column with the given key
func (t Table) Column(key string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// SortableKeys returns the keys of the sortable columns in order
func (t Table) SortableKeys() []string {
	var keys []string
	for _, c := range t.Columns {
		if c.Sortable {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// Truncate cuts t to width display cells, marking the cut with "…".
// A width of 0 or less leaves t unchanged.
func Truncate(t format.Text, width int) format.Text {
	if width <= 0 || runewidth.StringWidth(t.String()) <= width {
		return t
	}

	out := make(format.Text, 0, len(t))
	remaining := width - 1
	for _, s := range t {
		w := runewidth.StringWidth(s.Text)
		if w <= remaining {
			out = append(out, s)
			remaining -= w
			continue
		}
		out = append(out, format.Span{Text: runewidth.Truncate(s.Text, remaining, "") + "…", Kind: s.Kind})
		return out
	}
	return out
}

// SortEntries sorts entries in place by key. Numeric and format.Ordered
// values compare numerically, everything else by its rendered text. The
// sort is stable.
func SortEntries(entries []format.Entry, key string, reverse bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i][key], entries[j][key]
		if reverse {
			a, b = b, a
		}
		return less(a, b)
	})
}

func less(a, b any) bool {
	na, aok := number(a)
	nb, bok := number(b)
	if aok && bok {
		return na < nb
	}
	return format.Value(a).String() < format.Value(b).String()
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case format.Ordered:
		return float64(x.Order), true
	}
	return 0, false
}

// RenderOptions configures RenderTable
type RenderOptions struct {
	Colors *Colors
}

// RenderTable prints entries as an aligned table with a header row
func RenderTable(w io.Writer, t Table, entries []format.Entry, opts RenderOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, c.Muted("No %s found.", t.Name))
		return
	}

	headers := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Title
	}

	tbl := table.New(headers...).
		WithWriter(w).
		WithHeaderFormatter(c.Header).
		WithWidthFunc(lipgloss.Width)

	for _, e := range entries {
		row := make([]interface{}, len(t.Columns))
		for i, col := range t.Columns {
			row[i] = c.Style(col.Render(e))
		}
		tbl.AddRow(row...)
	}

	tbl.Print()
}

// RenderJSON writes v as indented JSON
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintPrettyJSON re-indents a raw API response. Unparsable input is
// written through unchanged.
func PrintPrettyJSON(w io.Writer, data []byte) error {
	var prettyJSON interface{}
	if err := json.Unmarshal(data, &prettyJSON); err != nil {
		_, _ = fmt.Fprintln(w, string(data))
		return err
	}
	return RenderJSON(w, prettyJSON)
}
