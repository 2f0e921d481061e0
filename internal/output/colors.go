package output

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mobil-koeln/irail-cli/internal/format"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for the kinds of formatted text
type Colors struct {
	Header  func(format string, a ...interface{}) string
	Warning func(format string, a ...interface{}) string
	Success func(format string, a ...interface{}) string
	Muted   func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = IsTerminal(os.Stdout)
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Header:  noColor,
			Warning: noColor,
			Success: noColor,
			Muted:   noColor,
		}
	}

	return &Colors{
		Header:  color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Warning: color.New(color.FgYellow, color.Bold).SprintfFunc(),
		Success: color.New(color.FgGreen).SprintfFunc(),
		Muted:   color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// Style renders t, coloring each span by its kind
func (c *Colors) Style(t format.Text) string {
	var b strings.Builder
	for _, s := range t {
		if s.Text == "" {
			continue
		}
		switch s.Kind {
		case format.KindWarning:
			b.WriteString(c.Warning("%s", s.Text))
		case format.KindSuccess:
			b.WriteString(c.Success("%s", s.Text))
		case format.KindMuted:
			b.WriteString(c.Muted("%s", s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
