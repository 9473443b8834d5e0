package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/driver"
)

var checkQuiet bool

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Runs a formula example file",
	Long: `Runs an example file and reports a per-line verdict.

The first line of the file holds the number of formulas that follow;
each remaining non-blank line is one formula in LaTeX prefix notation.

Example:
  latexp check examples.txt`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Print only the summary line")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, err := logic.New(logic.Options{
		MaxInputLength: cfg.Engine.MaxInputLength,
		Strict:         cfg.Engine.Strict,
		CollectStats:   cfg.Engine.CollectStats,
	})
	if err != nil {
		return err
	}

	runner := driver.NewRunner(engine)
	report, err := runner.RunFile(args[0])
	if err != nil {
		return err
	}

	if checkQuiet {
		fmt.Printf("%d formulas: %d ok, %d failed (declared %d)\n",
			report.Total(), report.Succeeded, report.Failed, report.Declared)
	} else {
		report.WriteSummary(os.Stdout)
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d formulas failed", report.Failed, report.Total())
	}
	return nil
}
