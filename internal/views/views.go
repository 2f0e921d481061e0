// Package views holds the two entry producers handed to the display layer
// and the column layouts they are shown with.
package views

import (
	"context"
	"time"

	"github.com/mobil-koeln/irail-cli/internal/format"
	"github.com/mobil-koeln/irail-cli/internal/models"
	"github.com/mobil-koeln/irail-cli/internal/output"
)

// StationSource yields stations, usually a *cache.Stations
type StationSource interface {
	Get(ctx context.Context, useCache bool, lang models.Language) ([]models.Station, error)
}

// ConnectionSource yields connections, usually an *api.Client
type ConnectionSource interface {
	FetchConnections(ctx context.Context, q models.Query) ([]models.Connection, error)
}

// StationEntries returns one entry per station
func StationEntries(ctx context.Context, src StationSource, useCache bool, lang models.Language) ([]format.Entry, error) {
	stations, err := src.Get(ctx, useCache, lang)
	if err != nil {
		return nil, err
	}
	entries := make([]format.Entry, 0, len(stations))
	for _, s := range stations {
		entries = append(entries, format.StationEntry(s))
	}
	return entries, nil
}

// ConnectionEntries returns one entry per connection matching q, with
// times shown in loc
func ConnectionEntries(ctx context.Context, src ConnectionSource, q models.Query, loc *time.Location) ([]format.Entry, error) {
	connections, err := src.FetchConnections(ctx, q)
	if err != nil {
		return nil, err
	}
	entries := make([]format.Entry, 0, len(connections))
	for _, c := range connections {
		entries = append(entries, format.ConnectionEntry(c, loc))
	}
	return entries, nil
}

// Column formatters by key. Keys not listed use format.Value.
var formatters = map[string]func(any) format.Text{
	format.KeyStatus:            statusText,
	format.KeyAlerts:            alertsText,
	format.KeyDeparturePlatform: platformText,
	format.KeyArrivalPlatform:   platformText,
}

func platformText(v any) format.Text {
	return format.Muted(format.Value(v).String())
}

func statusText(v any) format.Text {
	c, ok := v.(models.Cancellation)
	if !ok {
		return format.Value(v)
	}
	return format.FormatStatus(c.Departure, c.Arrival)
}

func alertsText(v any) format.Text {
	a, ok := v.(models.Alerts)
	if !ok {
		return format.Value(v)
	}
	return format.FormatAlerts(a)
}

func column(key, title string, width int, sortable bool) output.Column {
	return output.Column{
		Key:      key,
		Title:    title,
		Width:    width,
		Sortable: sortable,
		Format:   formatters[key],
	}
}

// StationColumns is the layout of the stations table
var StationColumns = []output.Column{
	column(format.KeyID, "ID", 20, true),
	column(format.KeyName, "Name", 40, true),
	column(format.KeyLocation, "Location", 0, false),
}

// ConnectionColumns is the layout of the connections table
var ConnectionColumns = []output.Column{
	column(format.KeyID, "ID", 3, false),
	column(format.KeyDeparture, "Departure", 12, true),
	column(format.KeyArrival, "Arrival", 12, true),
	column(format.KeyDuration, "Duration", 10, true),
	column(format.KeyVias, "Vias", 4, true),
	column(format.KeyDeparturePlatform, "Dep. Pl.", 8, false),
	column(format.KeyArrivalPlatform, "Arr. Pl.", 8, false),
	column(format.KeyStatus, "Status", 10, true),
	column(format.KeyAlerts, "Alerts", 6, false),
}

// Stations is the stations table, sorted by name
func Stations(src StationSource, useCache bool, lang models.Language) output.Table {
	return output.Table{
		Name: "stations",
		Entries: func(ctx context.Context) ([]format.Entry, error) {
			return StationEntries(ctx, src, useCache, lang)
		},
		Columns: StationColumns,
		SortKey: format.KeyName,
	}
}

// Connections is the connections table for q, sorted by departure
func Connections(src ConnectionSource, q models.Query, loc *time.Location) output.Table {
	return output.Table{
		Name: "connections",
		Entries: func(ctx context.Context) ([]format.Entry, error) {
			return ConnectionEntries(ctx, src, q, loc)
		},
		Columns: ConnectionColumns,
		SortKey: format.KeyDeparture,
	}
}
