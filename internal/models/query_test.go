package models

import (
	"errors"
	"testing"
)

func TestNewQuery(t *testing.T) {
	q, err := NewQuery(" Gent-Sint-Pieters ", "Brussels-South", TimeSelArrival, "", "191026", "0905")
	if err != nil {
		t.Fatalf("NewQuery() error = %v", err)
	}
	if q.From != "Gent-Sint-Pieters" {
		t.Errorf("From = %q", q.From)
	}
	if q.TypeOfTransport != TransportAll {
		t.Errorf("TypeOfTransport = %q, want all", q.TypeOfTransport)
	}

	params := q.Params()
	want := map[string]string{
		"from":            "Gent-Sint-Pieters",
		"to":              "Brussels-South",
		"timesel":         "arrival",
		"typeOfTransport": "all",
		"date":            "191026",
		"time":            "0905",
	}
	if len(params) != len(want) {
		t.Fatalf("Params() = %v, want %v", params, want)
	}
	for k, v := range want {
		if params[k] != v {
			t.Errorf("Params()[%q] = %q, want %q", k, params[k], v)
		}
	}
}

func TestQuery_ParamsWithoutDateTime(t *testing.T) {
	q := Query{From: "A", To: "B", TimeSel: TimeSelDeparture, TypeOfTransport: TransportTrains}
	params := q.Params()
	if _, ok := params["date"]; ok {
		t.Error("date should be omitted")
	}
	if _, ok := params["time"]; ok {
		t.Error("time should be omitted")
	}
	if params["typeOfTransport"] != "trains" {
		t.Errorf("typeOfTransport = %q", params["typeOfTransport"])
	}
}

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		query     Query
		wantField string
	}{
		{"missing from", Query{To: "B", TimeSel: TimeSelDeparture}, "from"},
		{"missing to", Query{From: "A", TimeSel: TimeSelDeparture}, "to"},
		{"bad timesel", Query{From: "A", To: "B", TimeSel: "both"}, "timesel"},
		{"bad date", Query{From: "A", To: "B", TimeSel: TimeSelDeparture, Date: "2026-10-19"}, "date"},
		{"bad time", Query{From: "A", To: "B", TimeSel: TimeSelDeparture, Time: "9:05"}, "time"},
		{"valid", Query{From: "A", To: "B", TimeSel: TimeSelArrival, Date: "010126", Time: "2359"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{"", LanguageEnglish, false},
		{"en", LanguageEnglish, false},
		{"NL", LanguageDutch, false},
		{" de ", LanguageGerman, false},
		{"fr", LanguageFrench, false},
		{"es", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLanguage(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimeSel(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeSel
		wantErr bool
	}{
		{"", TimeSelDeparture, false},
		{"departure", TimeSelDeparture, false},
		{"Arrival", TimeSelArrival, false},
		{"arr", TimeSelArrival, false},
		{"later", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeSel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeSel(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimeSel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTransportType(t *testing.T) {
	got, err := ParseTransportType("")
	if err != nil || got != TransportAll {
		t.Errorf("ParseTransportType(\"\") = %q, %v", got, err)
	}
	got, err = ParseTransportType("NoInternationalTrains")
	if err != nil || got != TransportNoInternationalTrains {
		t.Errorf("ParseTransportType() = %q, %v", got, err)
	}
	if _, err := ParseTransportType("bus"); err == nil {
		t.Error("expected error for bus")
	}
}

func TestValidationError_Error(t *testing.T) {
	err := ErrOutOfRange("hours", 24, 0, 23)
	want := "validation error: hours - 24 out of range [0, 23]"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
