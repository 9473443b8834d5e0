package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrunoMiglioretto/Parser-Latex/internal/history"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "latexp",
	Short: "latexp - LaTeX propositional formula parser",
	Long: `latexp parses propositional logic formulas written in LaTeX
prefix notation, such as (\wedge (\neg (1)) (true)).

Commands:
  parse    - Parse formulas given on the command line or stdin
  check    - Run a formula example file and report verdicts
  repl     - Interactive read-eval-print loop
  tui      - Interactive formula explorer (terminal UI)
  serve    - HTTP/WebSocket parse gateway
  history  - Query the recorded parse history`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// loadConfig resolves the configuration from --config or the default
// search paths.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// openStore opens the configured history store. A nil store with nil
// error means history is disabled.
func openStore(cfg *config.Config) (history.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	return history.NewSQLiteStore(history.SQLiteConfig{Path: cfg.History.Path})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
