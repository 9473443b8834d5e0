package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic/ast"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/history"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/config"
)

var (
	parseShowTree  bool
	parseShowStats bool
	parseNoRecord  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [formula...]",
	Short: "Parses one or more formulas",
	Long: `Parses propositional formulas in LaTeX prefix notation.

Formulas are taken from the command line arguments; without arguments
they are read from stdin, one per line.

Examples:
  latexp parse '(\wedge (true) (1))'
  latexp parse --tree '(\rightarrow (12) (\neg (false)))'
  echo '(\vee (1) (2))' | latexp parse`,
	SilenceUsage: true,
	RunE:         runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseShowTree, "tree", "t", false, "Print the syntax tree of each formula")
	parseCmd.Flags().BoolVarP(&parseShowStats, "stats", "s", false, "Print node count and nesting depth")
	parseCmd.Flags().BoolVar(&parseNoRecord, "no-record", false, "Do not write results to the parse history")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lines := args
	if len(lines) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if len(lines) == 0 {
		return fmt.Errorf("no formulas given")
	}

	engine, err := logic.New(logic.Options{
		MaxInputLength: cfg.Engine.MaxInputLength,
		Strict:         cfg.Engine.Strict,
		CollectStats:   parseShowStats || cfg.Engine.CollectStats,
	})
	if err != nil {
		return err
	}

	results := engine.ParseAll(lines)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s\n     %v\n", res.Input, res.Err)
			continue
		}
		fmt.Println(res.Rendered)
		if parseShowStats {
			fmt.Printf("  nodes: %d, depth: %d, time: %s\n", res.Nodes, res.Depth, res.Duration)
		}
		if parseShowTree {
			fmt.Print(ast.Tree(res.Formula))
		}
	}

	if !parseNoRecord {
		recordResults(cfg, history.SourceCLI, results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d formulas failed", failed, len(results))
	}
	return nil
}

// recordResults writes a batch of parse results to the history store.
// Recording is best effort; failures are reported but never fail the
// command itself.
func recordResults(cfg *config.Config, source history.Source, results []logic.Result) {
	store, err := openStore(cfg)
	if err != nil || store == nil {
		if err != nil && verbose {
			printError("history store unavailable", err)
		}
		return
	}
	defer store.Close()

	recs := make([]*history.Record, 0, len(results))
	for _, res := range results {
		rec := &history.Record{
			Source:   source,
			Input:    res.Input,
			OK:       res.Err == nil,
			Rendered: res.Rendered,
			Nodes:    res.Nodes,
			Depth:    res.Depth,
			Duration: res.Duration,
		}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		}
		recs = append(recs, rec)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, _, err := store.SaveBatch(ctx, recs); err != nil && verbose {
		printError("failed to record parse history", err)
	}
}
