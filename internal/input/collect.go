package input

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mobil-koeln/irail-cli/internal/models"
)

// DefaultDays is how many days ReadDate offers, today included
const DefaultDays = 31

// DateLabelLayout is the layout of the labels offered by ReadDate
const DateLabelLayout = "Mon 02 Jan 2006"

// APIDateLayout and APITimeLayout are the wire formats of a Query
const (
	APIDateLayout = "020106"
	APITimeLayout = "1504"
)

type state int

const (
	awaitingInput state = iota
	validating
	done
)

// collector runs the prompt, validate and warn cycle until the input
// validates. Only a prompt error ends it early.
type collector struct {
	prompt   func() (string, error)
	validate func(string) (string, error)
	warn     func(string)
}

func (c collector) run() (string, error) {
	var input, result string
	st := awaitingInput

	for st != done {
		switch st {
		case awaitingInput:
			s, err := c.prompt()
			if err != nil {
				return "", err
			}
			input = s
			st = validating

		case validating:
			v, err := c.validate(input)
			if err != nil {
				c.warn(warning(err))
				st = awaitingInput
				continue
			}
			result = v
			st = done
		}
	}
	return result, nil
}

// warning turns a validation error into a prompt message
func warning(err error) string {
	if ve, ok := err.(*models.ValidationError); ok {
		return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
	}
	return err.Error()
}

// ParseTime parses "H:M" into a zero-padded "HHMM". Extra components
// after the minutes are ignored.
func ParseTime(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return "", models.ErrInvalidFormat("time", "HH:MM")
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", models.ErrInvalidFormat("time", "HH:MM")
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", models.ErrInvalidFormat("time", "HH:MM")
	}

	if hours < 0 || hours > 23 {
		return "", models.ErrOutOfRange("hours", hours, 0, 23)
	}
	if minutes < 0 || minutes > 59 {
		return "", models.ErrOutOfRange("minutes", minutes, 0, 59)
	}

	return fmt.Sprintf("%02d%02d", hours, minutes), nil
}

// ReadTime asks for a time of day until it parses. With useNow the
// prompt is pre-filled with now.
func ReadTime(p Prompter, now time.Time, useNow bool) (string, error) {
	def := ""
	if useNow {
		def = now.Format("15:04")
	}
	return collector{
		prompt:   func() (string, error) { return p.Read("Time (HH:MM)", def) },
		validate: ParseTime,
		warn:     p.Warn,
	}.run()
}

// DateCandidate is one selectable day
type DateCandidate struct {
	Label string
	Date  time.Time
}

// DateCandidates returns days consecutive calendar days starting with the
// day of start. A non-positive days yields DefaultDays.
func DateCandidates(start time.Time, days int) []DateCandidate {
	if days <= 0 {
		days = DefaultDays
	}
	y, m, d := start.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, start.Location())

	out := make([]DateCandidate, 0, days)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		out = append(out, DateCandidate{Label: day.Format(DateLabelLayout), Date: day})
	}
	return out
}

// ReadDate offers the next days calendar days and returns the chosen one
// as DDMMYY. Only listed days are accepted.
func ReadDate(p Prompter, start time.Time, days int) (string, error) {
	candidates := DateCandidates(start, days)
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
	}

	return collector{
		prompt: func() (string, error) { return p.Choose("Date", labels[0], labels) },
		validate: func(s string) (string, error) {
			label, ok := Complete(s, labels)
			if !ok {
				return "", models.ErrInvalidValue("date", s)
			}
			for _, c := range candidates {
				if c.Label == label {
					return c.Date.Format(APIDateLayout), nil
				}
			}
			return "", models.ErrInvalidValue("date", s)
		},
		warn: p.Warn,
	}.run()
}

// ReadChoice asks for one of candidates, completing unique prefixes
func ReadChoice(p Prompter, label, def string, candidates []string) (string, error) {
	return collector{
		prompt: func() (string, error) { return p.Choose(label, def, candidates) },
		validate: func(s string) (string, error) {
			v, ok := Complete(s, candidates)
			if !ok {
				return "", models.NewValidationError(strings.ToLower(label),
					"must be one of "+strings.Join(candidates, ", "))
			}
			return v, nil
		},
		warn: p.Warn,
	}.run()
}

// ReadStation asks for a station name. A unique match among names is
// completed; anything else is passed through for the API to resolve.
func ReadStation(p Prompter, label, def string, names []string) (string, error) {
	return collector{
		prompt: func() (string, error) { return p.Choose(label, def, names) },
		validate: func(s string) (string, error) {
			s = strings.TrimSpace(s)
			if s == "" {
				return "", models.ErrMissingField(strings.ToLower(label))
			}
			if v, ok := Complete(s, names); ok {
				return v, nil
			}
			return s, nil
		},
		warn: p.Warn,
	}.run()
}

// ParseDate accepts DDMMYY, DD.MM.YYYY or YYYY-MM-DD and returns DDMMYY
func ParseDate(s string, loc *time.Location) (string, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{APIDateLayout, "02.01.2006", "2.1.2006", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.Format(APIDateLayout), nil
		}
	}
	return "", models.ErrInvalidFormat("date", "DDMMYY, DD.MM.YYYY or YYYY-MM-DD")
}
