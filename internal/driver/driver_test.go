package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
)

func newRunner(t *testing.T) *Runner {
	t.Helper()
	engine, err := logic.New(logic.Options{CollectStats: true, Strict: true})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return NewRunner(engine)
}

func TestRun(t *testing.T) {
	input := `3
true
(\neg (12))
(\wedge (p1) (\vee (true) (false)))
`

	report, err := newRunner(t).Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Declared != 3 {
		t.Errorf("Declared = %d, want 3", report.Declared)
	}
	if report.Total() != 3 {
		t.Fatalf("Total = %d, want 3", report.Total())
	}
	if report.Succeeded != 3 || report.Failed != 0 {
		t.Errorf("Succeeded/Failed = %d/%d, want 3/0", report.Succeeded, report.Failed)
	}
	if report.Results[1].Rendered != `(\neg (12))` {
		t.Errorf("Rendered = %q", report.Results[1].Rendered)
	}
}

func TestRun_MixedResults(t *testing.T) {
	input := `4
true
tru
(\wedge (true))
(\leftrightarrow (1) (2))
`

	report, err := newRunner(t).Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Succeeded != 2 || report.Failed != 2 {
		t.Errorf("Succeeded/Failed = %d/%d, want 2/2", report.Succeeded, report.Failed)
	}
	if report.Results[0].Err != nil {
		t.Errorf("Line 1 should parse: %v", report.Results[0].Err)
	}
	if report.Results[1].Err == nil {
		t.Error("Line 2 should fail lexically")
	}
	if report.Results[2].Err == nil {
		t.Error("Line 3 should fail with missing operand")
	}
}

func TestRun_CountMismatchTolerated(t *testing.T) {
	// The declared count is informational; a mismatch must not fail the run.
	input := "10\ntrue\nfalse\n"

	report, err := newRunner(t).Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Declared != 10 || report.Total() != 2 {
		t.Errorf("Declared/Total = %d/%d, want 10/2", report.Declared, report.Total())
	}
}

func TestRun_SkipsBlankLines(t *testing.T) {
	input := "\n\n2\n\ntrue\n\nfalse\n\n"

	report, err := newRunner(t).Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Total() != 2 {
		t.Errorf("Total = %d, want 2", report.Total())
	}
}

func TestRun_BadHeader(t *testing.T) {
	if _, err := newRunner(t).Run(strings.NewReader("not-a-number\ntrue\n")); err == nil {
		t.Error("Run() should fail when the first line is not a count")
	}
}

func TestRun_EmptyInput(t *testing.T) {
	if _, err := newRunner(t).Run(strings.NewReader("")); err == nil {
		t.Error("Run() should fail on empty input")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "examples.txt")
	content := "2\n(\\rightarrow (true) (1))\n(\\neg (false))\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write example file: %v", err)
	}

	report, err := newRunner(t).RunFile(path)
	if err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
	if report.Path != path {
		t.Errorf("Path = %q, want %q", report.Path, path)
	}
	if report.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", report.Succeeded)
	}
}

func TestRunFile_Missing(t *testing.T) {
	if _, err := newRunner(t).RunFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("RunFile() should fail for a missing file")
	}
}

func TestWriteSummary(t *testing.T) {
	report, err := newRunner(t).Run(strings.NewReader("2\ntrue\ntru\n"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var buf bytes.Buffer
	report.WriteSummary(&buf)
	out := buf.String()

	if !strings.Contains(out, "ok   1") {
		t.Errorf("Summary missing ok verdict:\n%s", out)
	}
	if !strings.Contains(out, "FAIL 2") {
		t.Errorf("Summary missing FAIL verdict:\n%s", out)
	}
	if !strings.Contains(out, "2 formulas: 1 ok, 1 failed (declared 2)") {
		t.Errorf("Summary missing totals line:\n%s", out)
	}
}
