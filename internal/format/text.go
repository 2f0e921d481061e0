package format

import (
	"encoding/json"
	"strings"
)

// Kind tags a span of text with how it should be highlighted
type Kind int

const (
	// KindPlain is rendered without highlighting
	KindPlain Kind = iota
	// KindWarning marks delays, cancellations and alerts
	KindWarning
	// KindSuccess marks a clean result
	KindSuccess
	// KindMuted marks secondary details
	KindMuted
)

func (k Kind) String() string {
	switch k {
	case KindWarning:
		return "warning"
	case KindSuccess:
		return "success"
	case KindMuted:
		return "muted"
	default:
		return "plain"
	}
}

// Span is a run of text with a single Kind
type Span struct {
	Text string
	Kind Kind
}

// Text is formatter output. The display layer decides how each Kind looks.
type Text []Span

// Plain returns s as unhighlighted text
func Plain(s string) Text {
	return Text{{Text: s, Kind: KindPlain}}
}

// Warning returns s tagged as a warning
func Warning(s string) Text {
	return Text{{Text: s, Kind: KindWarning}}
}

// Success returns s tagged as a success
func Success(s string) Text {
	return Text{{Text: s, Kind: KindSuccess}}
}

// Muted returns s tagged as a secondary detail
func Muted(s string) Text {
	return Text{{Text: s, Kind: KindMuted}}
}

// String returns the text without any styling
func (t Text) String() string {
	var b strings.Builder
	for _, s := range t {
		b.WriteString(s.Text)
	}
	return b.String()
}

// IsEmpty reports whether t renders as nothing
func (t Text) IsEmpty() bool {
	for _, s := range t {
		if s.Text != "" {
			return false
		}
	}
	return true
}

// Has reports whether any non-empty span is of kind k
func (t Text) Has(k Kind) bool {
	for _, s := range t {
		if s.Kind == k && s.Text != "" {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the text as a plain string
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Ordered is display text that sorts by Order rather than by its
// rendering, such as a time of day that may cross midnight.
type Ordered struct {
	Text  Text
	Order int64
}

// MarshalJSON encodes the text only
func (o Ordered) MarshalJSON() ([]byte, error) {
	return o.Text.MarshalJSON()
}

// Join concatenates the non-empty parts with sep between them
func Join(sep string, parts ...Text) Text {
	var out Text
	for _, p := range parts {
		if p.IsEmpty() {
			continue
		}
		if len(out) > 0 && sep != "" {
			out = append(out, Span{Text: sep, Kind: KindPlain})
		}
		out = append(out, p...)
	}
	return out
}
