package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mobil-koeln/irail-cli/internal/api"
	"github.com/mobil-koeln/irail-cli/internal/config"
	"github.com/mobil-koeln/irail-cli/internal/format"
	"github.com/mobil-koeln/irail-cli/internal/input"
	"github.com/mobil-koeln/irail-cli/internal/models"
	"github.com/mobil-koeln/irail-cli/internal/output"
	"github.com/mobil-koeln/irail-cli/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "irail",
	Short: "CLI for querying Belgian railway stations and connections",
	Long: `irail is a command-line interface for the iRail API
(https://api.irail.be), covering the Belgian railway network.

Features:
  - Station list in English, Dutch, German or French
  - Connections between two stations with delays, platforms and alerts
  - Interactive prompts with station name completion
  - Full-screen browser with sorting and auto-refresh
  - JSON output for scripting

Quick Start:
  1. Launch the browser:       irail
  2. List stations:            irail stations
  3. Find connections:         irail connections Gent-Sint-Pieters Brussels-North
  4. Arrive by a given time:   irail connections Gent Leuven --timesel arrival --time 09:00
  5. Remember a default route: irail config set --from Gent-Sint-Pieters --to Leuven`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Without a subcommand, collect a connection query and browse it
		flagTUI = true
		return runConnections(cmd, args)
	},
}

// Global flags
var (
	flagLang       string
	flagColor      string
	flagJSON       bool
	flagRawJSON    bool
	flagVerbose    bool
	flagTimeout    time.Duration
	flagConfigPath string
	flagTUI        bool
)

func init() {
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(connectionsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagLang, "lang", "l", "", "Language: en, nl, de, fr (default from config, else en)")
	pf.StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.BoolVar(&flagRawJSON, "raw-json", false, "Output raw API response")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log requests to stderr")
	pf.DurationVar(&flagTimeout, "timeout", 30*time.Second, "HTTP request timeout")
	pf.StringVar(&flagConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/irail/config.json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "irail version %s\n", version)
	},
}

// newLogger returns a debug logger on stderr with verbose, else one that
// discards everything
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// createClient creates an API client with common options
func createClient(logger *slog.Logger) (*api.Client, error) {
	return api.NewClient(
		api.WithTimeout(flagTimeout),
		api.WithLogger(logger),
		api.WithUserAgent("irail-cli/"+version),
	)
}

func configPath() (string, error) {
	if flagConfigPath != "" {
		return flagConfigPath, nil
	}
	return config.DefaultPath()
}

// loadConfig reads the user config. Failing to locate the config
// directory is not an error.
func loadConfig(logger *slog.Logger) (config.Config, error) {
	path, err := configPath()
	if err != nil {
		logger.Debug("no config directory", "error", err)
		return config.Config{}, nil
	}
	return config.Load(path)
}

// language resolves --lang against the config
func language(cfg config.Config) (models.Language, error) {
	return cfg.Lang(flagLang)
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

// newPrompter picks how missing input is asked for: defaults only with
// --yes, Bubble Tea prompts on a terminal, plain lines otherwise.
func newPrompter(yes bool) input.Prompter {
	switch {
	case yes:
		return &input.Defaults{}
	case output.IsTerminal(os.Stdin) && output.IsTerminal(os.Stderr):
		return tui.NewPrompter(tea.WithOutput(os.Stderr))
	default:
		return input.NewLinePrompter(os.Stdin, os.Stderr)
	}
}

// show fetches the entries of t and prints them in the format the
// global flags ask for
func show(ctx context.Context, w io.Writer, t output.Table) error {
	if flagTUI {
		return tui.Browse(ctx, t)
	}

	entries, err := t.Entries(ctx)
	if err != nil {
		return err
	}

	if flagJSON {
		if entries == nil {
			entries = []format.Entry{}
		}
		return output.RenderJSON(w, entries)
	}

	output.RenderTable(w, t, entries, output.RenderOptions{Colors: output.NewColors(getColorMode())})
	return nil
}
