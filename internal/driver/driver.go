package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/logging"
)

// Report collects the outcome of running an example file
type Report struct {
	// Path of the file, empty when read from a stream
	Path string

	// Declared is the example count from the first line. It is
	// informational only and never validated against the line count.
	Declared int

	// Results holds one entry per formula line, in file order
	Results []logic.Result

	Succeeded int
	Failed    int
}

// Total returns the number of formula lines processed
func (r *Report) Total() int {
	return len(r.Results)
}

// Runner feeds example files through a formula engine
type Runner struct {
	engine *logic.Engine
	logger *logging.Logger
}

// NewRunner creates a runner around the given engine
func NewRunner(engine *logic.Engine) *Runner {
	return &Runner{
		engine: engine,
		logger: logging.New("driver"),
	}
}

// RunFile parses every formula in the named example file
func (r *Runner) RunFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open example file: %w", err)
	}
	defer f.Close()

	report, err := r.Run(f)
	if err != nil {
		return nil, err
	}
	report.Path = path
	return report, nil
}

// Run parses every formula read from in. The first line carries the
// declared example count; each following line is one formula. Blank lines
// are skipped.
func (r *Runner) Run(in io.Reader) (*Report, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []string
	declared := -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if declared < 0 {
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("first line must be the example count, got %q", line)
			}
			declared = n
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read example file: %w", err)
	}
	if declared < 0 {
		return nil, fmt.Errorf("example file is empty")
	}

	if declared != len(lines) {
		r.logger.Warn("Declared example count differs from formula lines",
			"declared", declared,
			"lines", len(lines),
		)
	}

	report := &Report{
		Declared: declared,
		Results:  r.engine.ParseAll(lines),
	}
	for _, res := range report.Results {
		if res.Err == nil {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	r.logger.Info("Example run finished",
		"declared", declared,
		"total", report.Total(),
		"failed", report.Failed,
	)

	return report, nil
}

// WriteSummary prints per-line verdicts followed by a summary line
func (r *Report) WriteSummary(w io.Writer) {
	for _, res := range r.Results {
		if res.Err == nil {
			fmt.Fprintf(w, "ok   %-3d %s\n", res.Index+1, res.Rendered)
		} else {
			fmt.Fprintf(w, "FAIL %-3d %s: %s\n", res.Index+1, res.Input, res.Err)
		}
	}
	fmt.Fprintf(w, "\n%d formulas: %d ok, %d failed (declared %d)\n",
		r.Total(), r.Succeeded, r.Failed, r.Declared)
}
