package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Connection is one journey between two stations as returned by the
// connections endpoint.
type Connection struct {
	ID        string `json:"id"`
	Departure Stop   `json:"departure"`
	Arrival   Stop   `json:"arrival"`
	Duration  Number `json:"duration"`
	Vias      *Vias  `json:"vias,omitempty"`
	Alerts    Alerts `json:"alerts,omitempty"`
}

// Stop is the departure or arrival end of a connection.
type Stop struct {
	Station   string     `json:"station,omitempty"`
	Time      Number     `json:"time"`
	Delay     Number     `json:"delay"`
	Platform  Number     `json:"platform"`
	Canceled  Number     `json:"canceled"`
	Vehicle   string     `json:"vehicle,omitempty"`
	Direction *Direction `json:"direction,omitempty"`
}

// Direction names the terminus of the vehicle serving a stop.
type Direction struct {
	Name string `json:"name"`
}

// IsCanceled reports whether the API flagged this stop as canceled.
func (s Stop) IsCanceled() bool {
	return s.Canceled.Int64() != 0
}

// Vias lists the transfers of a connection.
type Vias struct {
	Number Number `json:"number"`
	Via    []Via  `json:"via,omitempty"`
}

// Via is a single transfer station.
type Via struct {
	ID          string `json:"id,omitempty"`
	Station     string `json:"station"`
	TimeBetween Number `json:"timebetween,omitempty"`
	Vehicle     string `json:"vehicle,omitempty"`
}

// Alert is a service disruption notice. Number is the count it carries.
type Alert struct {
	ID          string `json:"id,omitempty"`
	Number      Number `json:"number"`
	Header      string `json:"header,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Alerts is the alert list of a connection.
//
// The API sends either a list of {number} records or a single object
// {"number": "2", "alert": [...]}. The object form is flattened into one
// Alert carrying the count and the first message.
type Alerts []Alert

// UnmarshalJSON accepts both the list and the object form.
func (a *Alerts) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}
	if data[0] == '[' {
		var list []Alert
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*a = list
		return nil
	}

	var obj struct {
		Number Number  `json:"number"`
		Alert  []Alert `json:"alert"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	summary := Alert{Number: obj.Number}
	if summary.Number == "" {
		summary.Number = Number(strconv.Itoa(len(obj.Alert)))
	}
	if len(obj.Alert) > 0 {
		summary.ID = obj.Alert[0].ID
		summary.Header = obj.Alert[0].Header
		summary.Description = obj.Alert[0].Description
		summary.Link = obj.Alert[0].Link
	}
	*a = Alerts{summary}
	return nil
}

// Total sums the counts of all alerts.
func (a Alerts) Total() int64 {
	var total int64
	for _, alert := range a {
		total += alert.Number.Int64()
	}
	return total
}

// Cancellation is the raw pair of canceled flags ("0" or "1") of the
// departure and arrival ends of a connection.
type Cancellation struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

// Cancellation returns the raw canceled flags of both ends.
func (c Connection) Cancellation() Cancellation {
	return Cancellation{
		Departure: flag(c.Departure.Canceled),
		Arrival:   flag(c.Arrival.Canceled),
	}
}

// ViaCount returns the number of transfers, 0 when the field is absent.
func (c Connection) ViaCount() int {
	if c.Vias == nil {
		return 0
	}
	if n := c.Vias.Number.Int64(); n > 0 {
		return int(n)
	}
	return len(c.Vias.Via)
}

// ViaStations returns the names of the transfer stations.
func (c Connection) ViaStations() []string {
	if c.Vias == nil {
		return nil
	}
	names := make([]string, 0, len(c.Vias.Via))
	for _, v := range c.Vias.Via {
		names = append(names, v.Station)
	}
	return names
}

func flag(n Number) string {
	if n == "" {
		return "0"
	}
	return n.String()
}
