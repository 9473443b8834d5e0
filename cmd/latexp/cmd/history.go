package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrunoMiglioretto/Parser-Latex/internal/history"
)

var (
	historyLimit    int
	historyOffset   int
	historySource   string
	historyFailed   bool
	historyContains string
	historyStats    bool
	historyPrune    time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Queries the recorded parse history",
	Long: `Queries the parse history recorded by the CLI, REPL, explorer,
and the HTTP gateway.

Examples:
  latexp history                  # Last 20 records
  latexp history --failed         # Only failed parses
  latexp history --source api     # Only gateway parses
  latexp history --stats          # Aggregated statistics
  latexp history --prune 720h     # Delete records older than 30 days`,
	SilenceUsage: true,
	RunE:         runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of records")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "Number of records to skip")
	historyCmd.Flags().StringVar(&historySource, "source", "", "Filter by source (cli, repl, api, ws, tui)")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "Show only failed parses")
	historyCmd.Flags().StringVar(&historyContains, "contains", "", "Filter by input substring")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "Print aggregated statistics")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "Delete records older than the given duration")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("parse history is disabled in the configuration")
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if historyPrune > 0 {
		deleted, err := store.Prune(ctx, historyPrune)
		if err != nil {
			return fmt.Errorf("prune failed: %w", err)
		}
		fmt.Printf("deleted %d records older than %s\n", deleted, historyPrune)
		return nil
	}

	if historyStats {
		stats, err := store.Stats(ctx)
		if err != nil {
			return fmt.Errorf("stats query failed: %w", err)
		}
		fmt.Printf("total:     %d\n", stats.Total)
		fmt.Printf("succeeded: %d\n", stats.Succeeded)
		fmt.Printf("failed:    %d\n", stats.Failed)
		for src, n := range stats.BySource {
			fmt.Printf("  %-5s %d\n", src, n)
		}
		if !stats.LastParse.IsZero() {
			fmt.Printf("last:      %s\n", stats.LastParse.Format(time.RFC3339))
		}
		return nil
	}

	filter := history.Filter{
		Limit:    historyLimit,
		Offset:   historyOffset,
		Contains: historyContains,
		Source:   history.Source(historySource),
	}
	if historyFailed {
		ok := false
		filter.OK = &ok
	}

	recs, err := store.Query(ctx, filter)
	if err != nil {
		return fmt.Errorf("history query failed: %w", err)
	}
	if len(recs) == 0 {
		fmt.Println("no records")
		return nil
	}

	for _, rec := range recs {
		verdict := "ok  "
		if !rec.OK {
			verdict = "FAIL"
		}
		fmt.Printf("%s %s [%-4s] %s\n",
			rec.Timestamp.Format("2006-01-02 15:04:05"), verdict, rec.Source, rec.Input)
		if rec.OK {
			fmt.Printf("  = %s\n", rec.Rendered)
		} else {
			fmt.Printf("  ! %s\n", rec.Error)
		}
	}
	return nil
}
