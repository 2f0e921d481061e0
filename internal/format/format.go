package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mobil-koeln/irail-cli/internal/models"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365 * secondsPerDay
)

// Markers used by the status and alert formatters
const (
	StatusOK        = "OK"
	StatusCancelled = "Cancelled"
	MarkerOK        = "✓"
	MarkerAlert     = "⚠"
)

// compact renders seconds as "1y 2d 3h 4m" with zero units left out.
// Anything under a minute yields the empty string.
func compact(seconds int64) string {
	units := []struct {
		size   int64
		suffix string
	}{
		{secondsPerYear, "y"},
		{secondsPerDay, "d"},
		{secondsPerHour, "h"},
		{secondsPerMinute, "m"},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		n := seconds / u.size
		seconds %= u.size
		if n > 0 {
			parts = append(parts, strconv.FormatInt(n, 10)+u.suffix)
		}
	}
	return strings.Join(parts, " ")
}

// FormatDelay renders a delay in seconds as a warning "+2m". A delay of 0
// yields empty text so that nothing is shown.
func FormatDelay(seconds int64) Text {
	if seconds <= 0 {
		return nil
	}
	c := compact(seconds)
	if c == "" {
		c = "<1m"
	}
	return Warning("+" + c)
}

// FormatTime renders an epoch timestamp as local HH:MM followed by the
// delay marker, if any.
func FormatTime(epoch int64, delay Text, loc *time.Location) Text {
	if loc == nil {
		loc = time.Local
	}
	hhmm := time.Unix(epoch, 0).In(loc).Format("15:04")
	return Join(" ", Plain(hhmm), delay)
}

// FormatDuration renders a total number of seconds compactly
func FormatDuration(seconds int64) Text {
	c := compact(seconds)
	if c == "" {
		c = "0m"
	}
	return Plain(c)
}

// FormatStatus renders the canceled flags of both ends of a connection:
// OK when neither end is canceled, a Cancelled warning otherwise.
func FormatStatus(departure, arrival string) Text {
	if isZeroFlag(departure) && isZeroFlag(arrival) {
		return Plain(StatusOK)
	}
	return Warning(StatusCancelled)
}

func isZeroFlag(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "0"
}

// FormatAlerts sums the alert counts: a success check mark when there
// are none, a warning with the total otherwise.
func FormatAlerts(alerts models.Alerts) Text {
	total := alerts.Total()
	if total == 0 {
		return Success(MarkerOK)
	}
	return Warning(fmt.Sprintf("%s %d", MarkerAlert, total))
}
