package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mobil-koeln/irail-cli/internal/models"
)

// Entry keys
const (
	KeyID                = "id"
	KeyName              = "name"
	KeyLocation          = "location"
	KeyDeparture         = "departure"
	KeyArrival           = "arrival"
	KeyDuration          = "duration"
	KeyVias              = "vias"
	KeyDeparturePlatform = "departure-platform"
	KeyArrivalPlatform   = "arrival-platform"
	KeyStatus            = "status"
	KeyAlerts            = "alerts"
)

// Entry is one flat display record. Values are strings, ints, Text,
// Ordered, or raw values (models.Cancellation, models.Alerts) left for
// the display layer to format.
type Entry map[string]any

// StationEntry converts a station into a display entry
func StationEntry(s models.Station) Entry {
	return Entry{
		KeyID:       s.ID,
		KeyName:     s.Name,
		KeyLocation: fmt.Sprintf("lat: %.8f\tlong: %.8f", s.Latitude(), s.Longitude()),
	}
}

// ConnectionEntry converts a connection into a display entry. Times are
// rendered in loc.
func ConnectionEntry(c models.Connection, loc *time.Location) Entry {
	dep, arr := c.Departure, c.Arrival
	return Entry{
		KeyID:                c.ID,
		KeyDeparture:         Ordered{FormatTime(dep.Time.Int64(), FormatDelay(dep.Delay.Int64()), loc), dep.Time.Int64()},
		KeyArrival:           Ordered{FormatTime(arr.Time.Int64(), FormatDelay(arr.Delay.Int64()), loc), arr.Time.Int64()},
		KeyDuration:          Ordered{FormatDuration(c.Duration.Int64()), c.Duration.Int64()},
		KeyVias:              c.ViaCount(),
		KeyDeparturePlatform: dep.Platform.String(),
		KeyArrivalPlatform:   arr.Platform.String(),
		KeyStatus:            c.Cancellation(),
		KeyAlerts:            c.Alerts,
	}
}

// Value renders any entry value as Text. Cancellation pairs and alert
// lists go through FormatStatus and FormatAlerts.
func Value(v any) Text {
	switch x := v.(type) {
	case nil:
		return nil
	case Text:
		return x
	case Ordered:
		return x.Text
	case string:
		return Plain(x)
	case int:
		return Plain(strconv.Itoa(x))
	case int64:
		return Plain(strconv.FormatInt(x, 10))
	case float64:
		return Plain(strconv.FormatFloat(x, 'f', -1, 64))
	case models.Cancellation:
		return FormatStatus(x.Departure, x.Arrival)
	case models.Alerts:
		return FormatAlerts(x)
	case fmt.Stringer:
		return Plain(x.String())
	default:
		return Plain(fmt.Sprint(x))
	}
}
