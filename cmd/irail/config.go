package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/mobil-koeln/irail-cli/internal/config"
	"github.com/mobil-koeln/irail-cli/internal/models"
	"github.com/mobil-koeln/irail-cli/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the saved defaults",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save default language and route",
	Long: `Save the default language and route. Only the given flags are
changed; pass an empty value to clear one.

Examples:
  irail config set --lang nl
  irail config set --from Gent-Sint-Pieters --to Brussels-North
  irail config set --to ""`,
	Args: cobra.NoArgs,
	RunE: runConfigSet,
}

var (
	flagSetFrom string
	flagSetTo   string
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	configSetCmd.Flags().StringVar(&flagSetFrom, "from", "", "Default departure station")
	configSetCmd.Flags().StringVar(&flagSetTo, "to", "", "Default arrival station")
}

// effectiveConfig is what config show prints
type effectiveConfig struct {
	Path     string          `json:"path"`
	Language models.Language `json:"lang"`
	From     string          `json:"from"`
	To       string          `json:"to"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	lang, err := language(cfg)
	if err != nil {
		return err
	}

	eff := effectiveConfig{Path: path, Language: lang, From: cfg.From, To: cfg.To}
	if flagJSON {
		return output.RenderJSON(cmd.OutOrStdout(), eff)
	}

	tbl := table.New("Setting", "Value").WithWriter(cmd.OutOrStdout())
	tbl.AddRow("path", eff.Path)
	tbl.AddRow("lang", eff.Language)
	tbl.AddRow("from", eff.From)
	tbl.AddRow("to", eff.To)
	tbl.Print()
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("lang") && !flags.Changed("from") && !flags.Changed("to") {
		return fmt.Errorf("nothing to set, use --lang, --from or --to")
	}
	if flags.Changed("lang") {
		cfg.Language = ""
		if flagLang != "" {
			lang, err := models.ParseLanguage(flagLang)
			if err != nil {
				return err
			}
			cfg.Language = lang
		}
	}
	if flags.Changed("from") {
		cfg.From = flagSetFrom
	}
	if flags.Changed("to") {
		cfg.To = flagSetTo
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}
