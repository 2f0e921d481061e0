package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mobil-koeln/irail-cli/internal/config"
	"github.com/mobil-koeln/irail-cli/internal/input"
	"github.com/mobil-koeln/irail-cli/internal/models"
	"github.com/mobil-koeln/irail-cli/internal/testutil"
)

// scripted answers prompts from a list; an empty answer takes the default
type scripted struct {
	answers  []string
	labels   []string
	warnings []string
}

func (s *scripted) next(label, def string) (string, error) {
	s.labels = append(s.labels, label)
	if len(s.answers) == 0 {
		return "", input.ErrAborted
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	if a == "" {
		return def, nil
	}
	return a, nil
}

func (s *scripted) Choose(label, def string, _ []string) (string, error) { return s.next(label, def) }
func (s *scripted) Read(label, def string) (string, error)                { return s.next(label, def) }
func (s *scripted) Warn(msg string)                                       { s.warnings = append(s.warnings, msg) }

var testNow = time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)

func noNames(t *testing.T) func() []string {
	return func() []string {
		t.Fatal("station names fetched without prompting")
		return nil
	}
}

func TestCollectQuery_StationsGiven(t *testing.T) {
	p := &scripted{}
	q, err := collectQuery(p, queryOptions{From: "Gent", To: "Leuven"}, noNames(t), testNow)
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, p.labels, 0)
	testutil.AssertEqual(t, q, models.Query{
		From:            "Gent",
		To:              "Leuven",
		TimeSel:         models.TimeSelDeparture,
		TypeOfTransport: models.TransportAll,
	})
}

func TestCollectQuery_Flags(t *testing.T) {
	opts := queryOptions{
		From:    "Gent",
		To:      "Leuven",
		TimeSel: "arrival",
		Type:    "trains",
		Date:    "2024-05-04",
		Time:    "7:20",
	}
	q, err := collectQuery(&scripted{}, opts, noNames(t), testNow)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, q.TimeSel, models.TimeSelArrival)
	testutil.AssertEqual(t, q.TypeOfTransport, models.TransportTrains)
	testutil.AssertEqual(t, q.Date, "040524")
	testutil.AssertEqual(t, q.Time, "0720")
}

func TestCollectQuery_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		opts queryOptions
	}{
		{"timesel", queryOptions{TimeSel: "sideways"}},
		{"type", queryOptions{Type: "rocket"}},
		{"date", queryOptions{Date: "yesterday"}},
		{"time", queryOptions{Time: "25:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.From, tt.opts.To = "Gent", "Leuven"
			_, err := collectQuery(&scripted{}, tt.opts, noNames(t), testNow)
			testutil.AssertErrorAs[*models.ValidationError](t, err)
		})
	}
}

func TestCollectQuery_Interactive(t *testing.T) {
	p := &scripted{answers: []string{
		"brussels-n", // From: completed
		"",           // To: config default
		"arr",        // Timesel
		"",           // Date: today
		"25:00",      // Time: rejected
		"9:5",
	}}
	calls := 0
	names := func() []string {
		calls++
		return []string{"Brussels-North", "Brussels-South", "Leuven"}
	}
	opts := queryOptions{Defaults: config.Config{To: "Leuven"}}

	q, err := collectQuery(p, opts, names, testNow)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, calls, 1)
	testutil.AssertEqual(t, q.From, "Brussels-North")
	testutil.AssertEqual(t, q.To, "Leuven")
	testutil.AssertEqual(t, q.TimeSel, models.TimeSelArrival)
	testutil.AssertEqual(t, q.Date, "030524")
	testutil.AssertEqual(t, q.Time, "0905")

	testutil.AssertLen(t, p.warnings, 1)
	testutil.AssertContains(t, p.warnings[0], "hours")
}

func TestCollectQuery_OneStationMissing(t *testing.T) {
	// Any missing station makes the rest interactive too
	p := &scripted{answers: []string{"Leuven", "", "", ""}}
	q, err := collectQuery(p, queryOptions{From: "Gent"}, func() []string { return nil }, testNow)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, q.To, "Leuven")
	testutil.AssertEqual(t, q.Time, "0800")
	testutil.AssertLen(t, p.labels, 4)
}

func TestCollectQuery_Aborted(t *testing.T) {
	_, err := collectQuery(&scripted{}, queryOptions{}, func() []string { return nil }, testNow)
	testutil.AssertErrorIs(t, err, input.ErrAborted)
}

func TestCollectQuery_DefaultsWithoutRoute(t *testing.T) {
	_, err := collectQuery(&input.Defaults{}, queryOptions{}, func() []string { return nil }, testNow)
	testutil.AssertErrorIs(t, err, input.ErrNoDefault)
}

func TestCollectQuery_DefaultsWithRoute(t *testing.T) {
	opts := queryOptions{Defaults: config.Config{From: "Gent-Sint-Pieters", To: "Brussels-North"}}
	q, err := collectQuery(&input.Defaults{}, opts, func() []string { return nil }, testNow)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, q.From, "Gent-Sint-Pieters")
	testutil.AssertEqual(t, q.To, "Brussels-North")
	testutil.AssertEqual(t, q.TimeSel, models.TimeSelDeparture)
	testutil.AssertEqual(t, q.Date, "030524")
	testutil.AssertEqual(t, q.Time, "0800")
}

// execute runs the root command with args and fresh flag values
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "irail", "config.json")

	out, err := execute(t, "config", "set", "--config", path, "--lang", "nl", "--from", "Gent-Sint-Pieters")
	testutil.AssertNil(t, err)
	testutil.AssertContains(t, out, "Saved "+path)

	out, err = execute(t, "config", "set", "--config", path, "--to", "Leuven")
	testutil.AssertNil(t, err)

	cfg, err := config.Load(path)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, cfg, config.Config{Language: models.LanguageDutch, From: "Gent-Sint-Pieters", To: "Leuven"})

	out, err = execute(t, "config", "show", "--config", path)
	testutil.AssertNil(t, err)
	testutil.AssertContains(t, out, "Gent-Sint-Pieters")
	testutil.AssertContains(t, out, "nl")

	// A flag overrides the saved language
	out, err = execute(t, "config", "show", "--config", path, "--lang", "fr", "--json")
	testutil.AssertNil(t, err)
	testutil.AssertContains(t, out, `"lang": "fr"`)
}

func TestConfigSet_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	_, err := execute(t, "config", "set", "--config", path)
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "nothing to set")

	_, err = execute(t, "config", "set", "--config", path, "--lang", "xx")
	testutil.AssertErrorAs[*models.ValidationError](t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, strings.TrimSpace(out), "irail version "+version)
}

func TestConnections_WatchWithTUI(t *testing.T) {
	_, err := execute(t, "connections", "Gent", "Leuven", "--watch", "--tui")
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "cannot be combined")
}

func TestTransportTypes(t *testing.T) {
	testutil.AssertEqual(t, transportTypes(), "all, automatic, trains, nointernationaltrains")
}
