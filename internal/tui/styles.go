package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/irail-cli/internal/format"
)

// Colors matching output/colors.go
var (
	colorCyan   = lipgloss.Color("6")  // Cyan - selection, focus
	colorYellow = lipgloss.Color("3")  // Yellow - warnings
	colorRed    = lipgloss.Color("1")  // Red - errors
	colorGreen  = lipgloss.Color("2")  // Green - success
	colorWhite  = lipgloss.Color("15") // White - headers
	colorGray   = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleActive  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// Selected row in the table
var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Sort chip of the current sort column
var styleChipCursor = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorCyan).
	Bold(true)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

// styleText renders formatter output with the style of each span's kind.
func styleText(t format.Text) string {
	var b strings.Builder
	for _, s := range t {
		if s.Text == "" {
			continue
		}
		switch s.Kind {
		case format.KindWarning:
			b.WriteString(styleWarning.Render(s.Text))
		case format.KindSuccess:
			b.WriteString(styleSuccess.Render(s.Text))
		case format.KindMuted:
			b.WriteString(styleMuted.Render(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
