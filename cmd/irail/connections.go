package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mobil-koeln/irail-cli/internal/cache"
	"github.com/mobil-koeln/irail-cli/internal/config"
	"github.com/mobil-koeln/irail-cli/internal/input"
	"github.com/mobil-koeln/irail-cli/internal/models"
	"github.com/mobil-koeln/irail-cli/internal/output"
	"github.com/mobil-koeln/irail-cli/internal/views"
)

const watchInterval = 30 * time.Second

// Connections flags
var (
	flagTimeSel string
	flagType    string
	flagDate    string
	flagTime    string
	flagYes     bool
	flagWatch   bool
	flagSave    bool
)

var connectionsCmd = &cobra.Command{
	Use:   "connections [FROM [TO]]",
	Short: "Show connections between two stations",
	Long: `Show connections between two stations, departing or arriving
around a given date and time.

Stations that are not given are asked for, with the stations from
the config as defaults. When both stations are given, the date,
time and time selection default to now and departure.

Transport types for --type: ` + transportTypes() + `

Examples:
  irail connections Gent-Sint-Pieters Brussels-North
  irail connections Gent Leuven --timesel arrival --date 2024-05-03 --time 9:00
  irail connections --yes                  # use the configured route, now
  irail connections Gent Antwerp --watch   # refresh every 30 seconds`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConnections,
}

func init() {
	f := connectionsCmd.Flags()
	f.StringVar(&flagTimeSel, "timesel", "", "Anchor the time to the departure or the arrival")
	f.StringVar(&flagType, "type", "", "Type of transport (default all)")
	f.StringVarP(&flagDate, "date", "d", "", "Date (DDMMYY, DD.MM.YYYY or YYYY-MM-DD)")
	f.StringVarP(&flagTime, "time", "t", "", "Time (HH:MM)")
	f.BoolVarP(&flagYes, "yes", "y", false, "Accept defaults instead of prompting")
	f.BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh every 30 seconds")
	f.BoolVar(&flagSave, "save", false, "Remember the stations as the default route")
	f.BoolVar(&flagTUI, "tui", false, "Browse the connections full-screen")
}

func transportTypes() string {
	names := make([]string, len(models.TransportTypes))
	for i, t := range models.TransportTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// queryOptions are the parts of a connections query given up front
type queryOptions struct {
	From, To string
	TimeSel  string
	Type     string
	Date     string
	Time     string
	Defaults config.Config
}

// collectQuery builds a query from opts, asking p for anything missing.
// Date, time and time selection are only asked for when a station was
// missing too. names is called at most once, for station completion.
func collectQuery(p input.Prompter, opts queryOptions, names func() []string, now time.Time) (models.Query, error) {
	interactive := opts.From == "" || opts.To == ""
	loc := now.Location()

	var candidates []string
	if interactive {
		candidates = names()
	}

	from := opts.From
	if from == "" {
		v, err := input.ReadStation(p, "From", opts.Defaults.From, candidates)
		if err != nil {
			return models.Query{}, err
		}
		from = v
	}

	to := opts.To
	if to == "" {
		v, err := input.ReadStation(p, "To", opts.Defaults.To, candidates)
		if err != nil {
			return models.Query{}, err
		}
		to = v
	}

	timesel := opts.TimeSel
	if timesel == "" && interactive {
		v, err := input.ReadChoice(p, "Timesel", models.TimeSels[0], models.TimeSels)
		if err != nil {
			return models.Query{}, err
		}
		timesel = v
	}
	ts, err := models.ParseTimeSel(timesel)
	if err != nil {
		return models.Query{}, err
	}

	transport, err := models.ParseTransportType(opts.Type)
	if err != nil {
		return models.Query{}, err
	}

	var date string
	switch {
	case opts.Date != "":
		if date, err = input.ParseDate(opts.Date, loc); err != nil {
			return models.Query{}, err
		}
	case interactive:
		if date, err = input.ReadDate(p, now, input.DefaultDays); err != nil {
			return models.Query{}, err
		}
	}

	var hhmm string
	switch {
	case opts.Time != "":
		if hhmm, err = input.ParseTime(opts.Time); err != nil {
			return models.Query{}, err
		}
	case interactive:
		if hhmm, err = input.ReadTime(p, now, true); err != nil {
			return models.Query{}, err
		}
	}

	return models.NewQuery(from, to, ts, transport, date, hhmm)
}

// stationNames returns the names to complete station prompts with. A
// failed fetch only costs the completion.
func stationNames(ctx context.Context, stations *cache.Stations, lang models.Language, logger *slog.Logger) func() []string {
	return func() []string {
		if _, err := stations.Get(ctx, true, lang); err != nil {
			logger.Warn("station list unavailable, completion disabled", "error", err)
			return nil
		}
		return stations.Names()
	}
}

func runConnections(cmd *cobra.Command, args []string) error {
	if flagWatch && flagTUI {
		return fmt.Errorf("--watch and --tui cannot be combined, the browser refreshes with r or a")
	}

	ctx, cancel := output.SignalContext(context.Background())
	defer cancel()

	logger := newLogger(flagVerbose)
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	lang, err := language(cfg)
	if err != nil {
		return err
	}

	client, err := createClient(logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	opts := queryOptions{
		TimeSel:  flagTimeSel,
		Type:     flagType,
		Date:     flagDate,
		Time:     flagTime,
		Defaults: cfg,
	}
	if len(args) > 0 {
		opts.From = args[0]
	}
	if len(args) > 1 {
		opts.To = args[1]
	}

	names := stationNames(ctx, cache.NewStations(client), lang, logger)
	if flagYes {
		// Defaults never complete
		names = func() []string { return nil }
	}
	q, err := collectQuery(newPrompter(flagYes), opts, names, time.Now().In(client.Timezone()))
	if err != nil {
		return err
	}
	logger.Debug("connections query", "from", q.From, "to", q.To, "timesel", q.TimeSel, "date", q.Date, "time", q.Time)

	if flagSave {
		if err := saveRoute(cfg, q.From, q.To); err != nil {
			return fmt.Errorf("failed to save route: %w", err)
		}
	}

	if flagRawJSON {
		raw, err := client.FetchConnectionsRaw(ctx, q)
		if err != nil {
			return err
		}
		return output.PrintPrettyJSON(cmd.OutOrStdout(), raw)
	}

	t := views.Connections(client, q, client.Timezone())
	if flagWatch {
		return output.Watch(ctx, cmd.OutOrStdout(), watchInterval, func(ctx context.Context, w io.Writer) error {
			return show(ctx, w, t)
		})
	}
	return show(ctx, cmd.OutOrStdout(), t)
}

func saveRoute(cfg config.Config, from, to string) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	cfg.From, cfg.To = from, to
	return config.Save(path, cfg)
}
