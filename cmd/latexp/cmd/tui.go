package cmd

import (
	"github.com/spf13/cobra"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/explorer"
)

var tuiMaxEntries int

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"explorer"},
	Short:   "Starts the interactive formula explorer",
	Long: `Starts the interactive formula explorer in the terminal.

Keyboard shortcuts:
  Enter       Parse the current formula
  Tab         Switch focus between input and results
  Up/Down     Recall input history / scroll results
  PgUp/PgDn   Scroll results
  c           Clear results (when results focused)
  g / G       Jump to top / bottom
  q / Ctrl+C  Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().IntVar(&tuiMaxEntries, "max-entries", 200, "Maximum number of results kept in the session")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		printError("history store unavailable, recording disabled", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	explorerCfg := explorer.Config{
		Engine: logic.Options{
			MaxInputLength: cfg.Engine.MaxInputLength,
			Strict:         cfg.Engine.Strict,
			CollectStats:   true,
		},
		Store:      store,
		MaxEntries: tuiMaxEntries,
	}

	return explorer.Run(explorerCfg)
}
