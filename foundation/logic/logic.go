// File: logic.go
// Title: Formula Engine Facade
// Description: Provides the high-level entry point for parsing propositional
//              logic formulas. Bundles input validation, scanner and parser
//              construction, strict end-of-input checking, rendering, and
//              structured logging behind one Engine type.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-21 v0.1.0: Initial engine implementation

package logic

import (
	"fmt"
	"strings"
	"time"

	coreerror "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/error"
	corelog "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/log"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic/ast"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic/parser"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/utils/stringx"
)

// Stage names the processing phase in which a parse failed
type Stage string

const (
	// StageInput covers validation before scanning starts
	StageInput Stage = "input"

	// StageScan covers lexical analysis failures
	StageScan Stage = "scan"

	// StageParse covers grammar failures
	StageParse Stage = "parse"
)

// Error wraps a parse failure with the offending input and the stage in
// which it occurred
type Error struct {
	Err   error
	Input string
	Stage Stage
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("formula error in stage %s", e.Stage)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Err.Error())
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures the engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *corelog.Logger

	// MaxInputLength limits formula line length (default: 4096)
	MaxInputLength int

	// Strict requires end of input after the formula; trailing content
	// fails the parse (default: true)
	Strict bool

	// CollectStats computes node counts and nesting depth per result
	CollectStats bool
}

// DefaultOptions returns the default engine configuration
func DefaultOptions() Options {
	return Options{
		MaxInputLength: 4096,
		Strict:         true,
	}
}

// Result holds the outcome of parsing one line
type Result struct {
	// Index is the zero-based position of the line in the batch
	Index int

	// Input is the line as handed to the engine
	Input string

	// Formula is the parsed AST, nil on failure
	Formula ast.Formula

	// Rendered is the canonical text form, empty on failure
	Rendered string

	// Err records the first error of the line, nil on success
	Err error

	// Duration is the time spent on the line
	Duration time.Duration

	// Nodes and Depth are filled when CollectStats is enabled
	Nodes int
	Depth int
}

// Engine is the high-level formula front end. An Engine is safe for
// concurrent use: every Parse call builds its own scanner/parser pair.
type Engine struct {
	logger  *corelog.Logger
	options Options
}

// New creates a formula engine. With no arguments the default options
// apply (4096 byte limit, strict end-of-input checking).
func New(opts ...Options) (*Engine, error) {
	options := DefaultOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	if options.Logger == nil {
		options.Logger = corelog.GetDefault()
	}
	if options.MaxInputLength == 0 {
		options.MaxInputLength = 4096
	}
	if options.MaxInputLength < 0 {
		return nil, coreerror.New("maximum input length must be positive").
			WithCode(coreerror.CodeInvalidConfig).
			WithDetail("max_input_length", options.MaxInputLength)
	}

	return &Engine{
		logger:  options.Logger.WithField("component", "formula-engine"),
		options: options,
	}, nil
}

// Options returns the engine configuration
func (e *Engine) Options() Options {
	return e.options
}

// Parse parses one line of formula text and returns its AST. The line is
// trimmed and lower-cased; in strict mode trailing content after the
// formula is an error.
func (e *Engine) Parse(line string) (ast.Formula, error) {
	timer := e.logger.StartTimer("parse-formula")

	formula, err := e.parseLine(line)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.Stop()
	return formula, nil
}

func (e *Engine) parseLine(line string) (ast.Formula, error) {
	trimmed := strings.TrimSpace(line)

	if stringx.IsBlank(trimmed) {
		return nil, &Error{
			Stage: StageInput,
			Input: line,
			Err: coreerror.New("formula line is blank").
				WithCode(coreerror.CodeInvalidInput),
		}
	}
	if len(trimmed) > e.options.MaxInputLength {
		return nil, &Error{
			Stage: StageInput,
			Input: line,
			Err: coreerror.New(fmt.Sprintf("formula exceeds maximum length: %d > %d",
				len(trimmed), e.options.MaxInputLength)).
				WithCode(coreerror.CodeInvalidLength).
				WithDetail("length", len(trimmed)).
				WithDetail("max_length", e.options.MaxInputLength),
		}
	}

	p, err := parser.New(parser.Options{Logger: e.logger})
	if err != nil {
		return nil, &Error{Stage: StageInput, Input: line, Err: err}
	}

	formula, err := p.Parse(trimmed)
	if err != nil {
		return nil, &Error{Stage: stageOf(err), Input: line, Err: err}
	}

	if e.options.Strict {
		atEnd, err := p.AtEnd()
		if err != nil {
			return nil, &Error{Stage: stageOf(err), Input: line, Err: err}
		}
		if !atEnd {
			return nil, &Error{
				Stage: StageParse,
				Input: line,
				Err: coreerror.New("unexpected trailing content after formula").
					WithCode(coreerror.CodeTrailingInput),
			}
		}
	}

	return formula, nil
}

// ParseAll parses a batch of lines. Every line is processed; a failing
// line records its error in the result and processing continues with the
// next line.
func (e *Engine) ParseAll(lines []string) []Result {
	results := make([]Result, 0, len(lines))

	for i, line := range lines {
		started := time.Now()
		result := Result{Index: i, Input: line}

		formula, err := e.parseLine(line)
		if err != nil {
			result.Err = err
		} else {
			result.Formula = formula
			result.Rendered = ast.Render(formula)
			if e.options.CollectStats {
				stats := ast.Stats(formula)
				result.Nodes = stats.Nodes
				result.Depth = stats.MaxDepth
			}
		}

		result.Duration = time.Since(started)
		results = append(results, result)
	}

	return results
}

// Render returns the canonical text form of a formula. Parsing the
// rendering yields an equal tree.
func (e *Engine) Render(f ast.Formula) string {
	if f == nil {
		return ""
	}
	return ast.Render(f)
}

// stageOf maps an error code to the processing stage that raised it
func stageOf(err error) Stage {
	if coreerror.HasCode(err, coreerror.CodeAlphabet) {
		return StageScan
	}
	return StageParse
}
