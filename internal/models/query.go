package models

import (
	"strings"
)

// Language is a locale supported by the API.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageDutch   Language = "nl"
	LanguageGerman  Language = "de"
	LanguageFrench  Language = "fr"

	DefaultLanguage = LanguageEnglish
)

// Languages lists every supported language.
var Languages = []Language{LanguageEnglish, LanguageDutch, LanguageGerman, LanguageFrench}

// ParseLanguage validates a language code. The empty string yields the default.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultLanguage, nil
	}
	for _, l := range Languages {
		if string(l) == s {
			return l, nil
		}
	}
	return "", ErrInvalidValue("lang", s)
}

// TimeSel anchors the query time to a departure or an arrival.
type TimeSel string

const (
	TimeSelDeparture TimeSel = "departure"
	TimeSelArrival   TimeSel = "arrival"
)

// TimeSels lists the valid time selections, default first.
var TimeSels = []string{string(TimeSelDeparture), string(TimeSelArrival)}

// ParseTimeSel validates a time selection. The empty string yields departure.
func ParseTimeSel(s string) (TimeSel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "departure", "dep":
		return TimeSelDeparture, nil
	case "arrival", "arr":
		return TimeSelArrival, nil
	}
	return "", ErrInvalidValue("timesel", s)
}

// TransportType filters the kind of trains a connection may use.
type TransportType string

const (
	TransportAutomatic             TransportType = "automatic"
	TransportTrains                TransportType = "trains"
	TransportNoInternationalTrains TransportType = "nointernationaltrains"
	TransportAll                   TransportType = "all"
)

// TransportTypes lists every accepted transport type.
var TransportTypes = []TransportType{TransportAll, TransportAutomatic, TransportTrains, TransportNoInternationalTrains}

// ParseTransportType validates a transport type. The empty string yields "all".
func ParseTransportType(s string) (TransportType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TransportAll, nil
	}
	for _, t := range TransportTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidValue("typeOfTransport", s)
}

// Query holds the parameters of a connections request.
// Date is DDMMYY and Time is HHMM.
type Query struct {
	From            string        `json:"from"`
	To              string        `json:"to"`
	TimeSel         TimeSel       `json:"timesel"`
	TypeOfTransport TransportType `json:"typeOfTransport"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
}

// NewQuery builds a Query, filling the transport type default, and validates it.
func NewQuery(from, to string, timesel TimeSel, transport TransportType, date, hhmm string) (Query, error) {
	if transport == "" {
		transport = TransportAll
	}
	q := Query{
		From:            strings.TrimSpace(from),
		To:              strings.TrimSpace(to),
		TimeSel:         timesel,
		TypeOfTransport: transport,
		Date:            date,
		Time:            hhmm,
	}
	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}

// Validate checks the Query invariants.
func (q Query) Validate() error {
	if q.From == "" {
		return ErrMissingField("from")
	}
	if q.To == "" {
		return ErrMissingField("to")
	}
	if q.TimeSel != TimeSelDeparture && q.TimeSel != TimeSelArrival {
		return ErrInvalidValue("timesel", q.TimeSel)
	}
	if q.Date != "" && !isDigits(q.Date, 6) {
		return ErrInvalidFormat("date", "DDMMYY")
	}
	if q.Time != "" && !isDigits(q.Time, 4) {
		return ErrInvalidFormat("time", "HHMM")
	}
	return nil
}

// Params returns the query parameters of the connections endpoint.
// Empty date or time are left out so the API uses the current one.
func (q Query) Params() map[string]string {
	params := map[string]string{
		"from":            q.From,
		"to":              q.To,
		"timesel":         string(q.TimeSel),
		"typeOfTransport": string(q.TypeOfTransport),
	}
	if q.Date != "" {
		params["date"] = q.Date
	}
	if q.Time != "" {
		params["time"] = q.Time
	}
	return params
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
