package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mobil-koeln/irail-cli/internal/cache"
	"github.com/mobil-koeln/irail-cli/internal/output"
	"github.com/mobil-koeln/irail-cli/internal/views"
)

var flagNoCache bool

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List all stations",
	Long: `List all stations of the Belgian railway network with their
ID and coordinates. Names are given in the language chosen with --lang.

Examples:
  irail stations
  irail stations --lang nl --json
  irail stations --tui`,
	Args: cobra.NoArgs,
	RunE: runStations,
}

func init() {
	stationsCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Always fetch a fresh station list")
	stationsCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse the list full-screen")
}

func runStations(cmd *cobra.Command, args []string) error {
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

	if flagRawJSON {
		raw, err := client.FetchStationsRaw(ctx, lang)
		if err != nil {
			return err
		}
		return output.PrintPrettyJSON(cmd.OutOrStdout(), raw)
	}

	stations := cache.NewStations(client)
	return show(ctx, cmd.OutOrStdout(), views.Stations(stations, !flagNoCache, lang))
}
