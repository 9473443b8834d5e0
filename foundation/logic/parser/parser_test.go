// File: parser_test.go
// Title: Formula Parser Unit Tests
// Description: Unit tests for the recursive descent parser covering every
//              production, the two-token disambiguation after an open
//              parenthesis, transparent grouping, round-trip rendering,
//              and syntax error reporting.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-21 v0.1.0: Initial parser test suite

package parser

import (
	"testing"

	coreerror "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/error"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic/ast"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New(Options{})
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	return p
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     ast.Kind
		rendered string
	}{
		{
			name:     "Constant true",
			input:    "true",
			kind:     ast.KindConstant,
			rendered: "true",
		},
		{
			name:     "Constant false",
			input:    "false",
			kind:     ast.KindConstant,
			rendered: "false",
		},
		{
			name:     "Proposition",
			input:    "23abc",
			kind:     ast.KindProposition,
			rendered: "23abc",
		},
		{
			name:     "Negation",
			input:    `(\neg 1)`,
			kind:     ast.KindNegation,
			rendered: `(\neg 1)`,
		},
		{
			name:     "Conjunction",
			input:    `(\wedge true 2)`,
			kind:     ast.KindAnd,
			rendered: `(\wedge true 2)`,
		},
		{
			name:     "Disjunction",
			input:    `(\vee 1 2)`,
			kind:     ast.KindOr,
			rendered: `(\vee 1 2)`,
		},
		{
			name:     "Implication",
			input:    `(\rightarrow 1 false)`,
			kind:     ast.KindImplies,
			rendered: `(\rightarrow 1 false)`,
		},
		{
			name:     "Biconditional",
			input:    `(\leftrightarrow true false)`,
			kind:     ast.KindBiConditional,
			rendered: `(\leftrightarrow true false)`,
		},
		{
			name:     "Nested formula",
			input:    `(\wedge (\neg 1) (\vee true 2))`,
			kind:     ast.KindAnd,
			rendered: `(\wedge (\neg 1) (\vee true 2))`,
		},
		{
			name:     "Deeply nested negations",
			input:    `(\neg (\neg (\neg 42)))`,
			kind:     ast.KindNegation,
			rendered: `(\neg (\neg (\neg 42)))`,
		},
		{
			name:     "Grouping is transparent",
			input:    `(1)`,
			kind:     ast.KindProposition,
			rendered: "1",
		},
		{
			name:     "Grouped operand inside negation",
			input:    `(\neg (1))`,
			kind:     ast.KindNegation,
			rendered: `(\neg 1)`,
		},
		{
			name:     "Grouped operands inside conjunction",
			input:    `(\wedge (true) (2))`,
			kind:     ast.KindAnd,
			rendered: `(\wedge true 2)`,
		},
		{
			name:     "Uppercase input",
			input:    `(\WEDGE TRUE 2)`,
			kind:     ast.KindAnd,
			rendered: `(\wedge true 2)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t)
			formula, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if formula.Kind() != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, formula.Kind())
			}
			if rendered := ast.Render(formula); rendered != tt.rendered {
				t.Errorf("Expected rendering %q, got %q", tt.rendered, rendered)
			}
		})
	}
}

func TestParser_Disambiguation(t *testing.T) {
	p := newTestParser(t)

	// Second-token lookahead selects the unary production
	formula, err := p.Parse(`(\neg (1))`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	neg, ok := formula.(*ast.Negation)
	if !ok {
		t.Fatalf("Expected *ast.Negation, got %T", formula)
	}
	prop, ok := neg.Operand.(*ast.Proposition)
	if !ok {
		t.Fatalf("Expected *ast.Proposition operand, got %T", neg.Operand)
	}
	if prop.Name != "1" {
		t.Errorf("Expected proposition name %q, got %q", "1", prop.Name)
	}

	// Second-token lookahead selects the binary production
	formula, err = p.Parse(`(\wedge (true) (2))`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	and, ok := formula.(*ast.And)
	if !ok {
		t.Fatalf("Expected *ast.And, got %T", formula)
	}
	left, ok := and.Left.(*ast.Constant)
	if !ok || left.Value != "true" {
		t.Errorf("Expected left operand Constant(true), got %v", and.Left)
	}
	right, ok := and.Right.(*ast.Proposition)
	if !ok || right.Name != "2" {
		t.Errorf("Expected right operand Proposition(2), got %v", and.Right)
	}
}

func TestParser_RoundTrip(t *testing.T) {
	// Parsing the canonical rendering reproduces the same AST shape
	inputs := []string{
		"true",
		"23abc",
		`(\neg 1)`,
		`(\wedge true 2)`,
		`(\vee (\neg 1) (\rightarrow false 2))`,
		`(\leftrightarrow (\wedge 1 2) (\vee 3 4))`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			p := newTestParser(t)
			first, err := p.Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", input, err)
			}

			rendered := ast.Render(first)
			second, err := p.Parse(rendered)
			if err != nil {
				t.Fatalf("Reparse(%q) failed: %v", rendered, err)
			}

			if again := ast.Render(second); again != rendered {
				t.Errorf("Round trip changed rendering: %q != %q", again, rendered)
			}
		})
	}
}

func TestParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty input", ""},
		{"Missing second operand", `(\wedge (true))`},
		{"Missing close paren", `(\neg 1`},
		{"Operator without parens", `\wedge true 2`},
		{"Close paren at start", `)`},
		{"Binary operator as operand", `(\wedge \vee 2)`},
		{"Empty grouping", `()`},
		{"Truncated after open paren", `(`},
		{"Keyword prefix", "tru"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t)
			_, err := p.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, expected syntax error", tt.input)
			}
			if !coreerror.HasCode(err, coreerror.CodeSyntax) {
				t.Errorf("Expected code %s, got %s", coreerror.CodeSyntax, coreerror.GetCode(err))
			}
		})
	}
}

func TestParser_AlphabetErrors(t *testing.T) {
	p := newTestParser(t)

	_, err := p.Parse(`(\wedge # 2)`)
	if err == nil {
		t.Fatal("Expected alphabet error")
	}
	if !coreerror.HasCode(err, coreerror.CodeAlphabet) {
		t.Errorf("Expected code %s, got %s", coreerror.CodeAlphabet, coreerror.GetCode(err))
	}
}

func TestParser_AtEnd(t *testing.T) {
	p := newTestParser(t)

	// Trailing content is not an error for the parser itself
	formula, err := p.Parse("true false")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if formula.Kind() != ast.KindConstant {
		t.Errorf("Expected constant, got %s", formula.Kind())
	}

	atEnd, err := p.AtEnd()
	if err != nil {
		t.Fatalf("AtEnd failed: %v", err)
	}
	if atEnd {
		t.Error("Expected trailing content to be reported by AtEnd")
	}

	if _, err := p.Parse("true"); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	atEnd, err = p.AtEnd()
	if err != nil {
		t.Fatalf("AtEnd failed: %v", err)
	}
	if !atEnd {
		t.Error("Expected AtEnd after a fully consumed line")
	}
}

func TestParser_Positions(t *testing.T) {
	p := newTestParser(t)

	formula, err := p.Parse(`(\wedge true 23abc)`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	and := formula.(*ast.And)
	if and.Position().Offset != 0 {
		t.Errorf("Expected connective position 0, got %d", and.Position().Offset)
	}
	if and.Left.Position().Offset != 8 {
		t.Errorf("Expected left operand position 8, got %d", and.Left.Position().Offset)
	}
	if and.Right.Position().Offset != 13 {
		t.Errorf("Expected right operand position 13, got %d", and.Right.Position().Offset)
	}
}

func BenchmarkParser_Parse(b *testing.B) {
	p, err := New(Options{})
	if err != nil {
		b.Fatal(err)
	}
	line := `(\leftrightarrow (\wedge true 23abc) (\neg (\vee 1 false)))`
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(line); err != nil {
			b.Fatal(err)
		}
	}
}
