// File: visitor_test.go
// Title: Formula AST Visitor Unit Tests
// Description: Unit tests for the formula AST visitor infrastructure
//              covering the base visitor, canonical rendering, tree dumps,
//              statistics collection, validation, and the package-level
//              utility functions.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-20 v0.1.0: Initial visitor test suite

package ast

import (
	"strings"
	"testing"
)

// Helper functions for creating test formulas

func createTestAtom() Formula {
	return &Proposition{Name: "1", Pos: Position{Column: 1, Offset: 0}}
}

func createTestConjunction() Formula {
	return &And{
		Left:  &Constant{Value: "true"},
		Right: &Proposition{Name: "2"},
	}
}

func createTestNested() Formula {
	// (\rightarrow (\neg 1) (\vee 23abc false))
	return &Implies{
		Left: &Negation{Operand: &Proposition{Name: "1"}},
		Right: &Or{
			Left:  &Proposition{Name: "23abc"},
			Right: &Constant{Value: "false"},
		},
	}
}

func TestBaseVisitor(t *testing.T) {
	bv := &BaseVisitor{}

	formulas := []Formula{
		createTestAtom(),
		&Constant{Value: "true"},
		createTestConjunction(),
		createTestNested(),
		&Negation{Operand: createTestNested()},
		&BiConditional{Left: createTestAtom(), Right: createTestAtom()},
	}

	for _, f := range formulas {
		if result := f.Accept(bv); result != nil {
			t.Errorf("Expected nil result from base visitor, got %v", result)
		}
	}

	// Nil children must not panic the default traversal
	partial := &And{Left: createTestAtom()}
	if result := partial.Accept(bv); result != nil {
		t.Errorf("Expected nil result for partial node, got %v", result)
	}
}

func TestRenderVisitor(t *testing.T) {
	tests := []struct {
		name     string
		formula  Formula
		expected string
	}{
		{
			name:     "Atom",
			formula:  createTestAtom(),
			expected: "1",
		},
		{
			name:     "Constant",
			formula:  &Constant{Value: "false"},
			expected: "false",
		},
		{
			name:     "Negation",
			formula:  &Negation{Operand: &Constant{Value: "true"}},
			expected: `(\neg true)`,
		},
		{
			name:     "Conjunction",
			formula:  createTestConjunction(),
			expected: `(\wedge true 2)`,
		},
		{
			name: "Disjunction",
			formula: &Or{
				Left:  &Proposition{Name: "1"},
				Right: &Proposition{Name: "2"},
			},
			expected: `(\vee 1 2)`,
		},
		{
			name: "Implication",
			formula: &Implies{
				Left:  &Constant{Value: "true"},
				Right: &Constant{Value: "false"},
			},
			expected: `(\rightarrow true false)`,
		},
		{
			name: "Biconditional",
			formula: &BiConditional{
				Left:  &Proposition{Name: "7x"},
				Right: &Constant{Value: "true"},
			},
			expected: `(\leftrightarrow 7x true)`,
		},
		{
			name:     "Nested formula",
			formula:  createTestNested(),
			expected: `(\rightarrow (\neg 1) (\vee 23abc false))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor := NewRenderVisitor()
			tt.formula.Accept(visitor)

			if result := visitor.String(); result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}

			// Rendering must agree with the node's own String form
			if result := tt.formula.String(); result != tt.expected {
				t.Errorf("String() disagrees with render: expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestRenderVisitor_Reset(t *testing.T) {
	visitor := NewRenderVisitor()

	createTestAtom().Accept(visitor)
	if visitor.String() == "" {
		t.Fatal("Expected non-empty buffer after first render")
	}

	visitor.Reset()
	if visitor.String() != "" {
		t.Errorf("Expected empty buffer after reset, got %q", visitor.String())
	}

	createTestConjunction().Accept(visitor)
	if result := visitor.String(); result != `(\wedge true 2)` {
		t.Errorf("Expected fresh render after reset, got %q", result)
	}
}

func TestTreeVisitor(t *testing.T) {
	tests := []struct {
		name     string
		formula  Formula
		expected string
	}{
		{
			name:     "Atom",
			formula:  createTestAtom(),
			expected: "proposition: 1\n",
		},
		{
			name:     "Constant",
			formula:  &Constant{Value: "true"},
			expected: "constant: true\n",
		},
		{
			name:    "Conjunction",
			formula: createTestConjunction(),
			expected: "and:\n" +
				"  constant: true\n" +
				"  proposition: 2\n",
		},
		{
			name:    "Nested formula",
			formula: createTestNested(),
			expected: "implies:\n" +
				"  negation:\n" +
				"    proposition: 1\n" +
				"  or:\n" +
				"    proposition: 23abc\n" +
				"    constant: false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor := NewTreeVisitor()
			tt.formula.Accept(visitor)

			if result := visitor.String(); result != tt.expected {
				t.Errorf("Expected:\n%s\nGot:\n%s", tt.expected, result)
			}
		})
	}
}

func TestTreeVisitor_Reset(t *testing.T) {
	visitor := NewTreeVisitor()

	createTestNested().Accept(visitor)
	visitor.Reset()

	createTestAtom().Accept(visitor)
	if result := visitor.String(); result != "proposition: 1\n" {
		t.Errorf("Expected clean dump after reset, got %q", result)
	}
}

func TestStatsVisitor(t *testing.T) {
	tests := []struct {
		name         string
		formula      Formula
		nodes        int
		constants    int
		propositions int
		connectives  int
		maxDepth     int
	}{
		{
			name:         "Single atom",
			formula:      createTestAtom(),
			nodes:        1,
			propositions: 1,
			maxDepth:     1,
		},
		{
			name:      "Single constant",
			formula:   &Constant{Value: "true"},
			nodes:     1,
			constants: 1,
			maxDepth:  1,
		},
		{
			name:         "Conjunction",
			formula:      createTestConjunction(),
			nodes:        3,
			constants:    1,
			propositions: 1,
			connectives:  1,
			maxDepth:     2,
		},
		{
			name:         "Nested formula",
			formula:      createTestNested(),
			nodes:        6,
			constants:    1,
			propositions: 2,
			connectives:  3,
			maxDepth:     3,
		},
		{
			name:         "Deep negation chain",
			formula:      &Negation{Operand: &Negation{Operand: &Negation{Operand: createTestAtom()}}},
			nodes:        4,
			propositions: 1,
			connectives:  3,
			maxDepth:     4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := Stats(tt.formula)

			if stats.Nodes != tt.nodes {
				t.Errorf("Expected %d nodes, got %d", tt.nodes, stats.Nodes)
			}
			if stats.Constants != tt.constants {
				t.Errorf("Expected %d constants, got %d", tt.constants, stats.Constants)
			}
			if stats.Propositions != tt.propositions {
				t.Errorf("Expected %d propositions, got %d", tt.propositions, stats.Propositions)
			}
			if stats.Connectives != tt.connectives {
				t.Errorf("Expected %d connectives, got %d", tt.connectives, stats.Connectives)
			}
			if stats.MaxDepth != tt.maxDepth {
				t.Errorf("Expected max depth %d, got %d", tt.maxDepth, stats.MaxDepth)
			}
		})
	}
}

func TestStatsVisitor_Reset(t *testing.T) {
	visitor := NewStatsVisitor()

	createTestNested().Accept(visitor)
	visitor.Reset()

	if visitor.Nodes != 0 || visitor.MaxDepth != 0 || visitor.Connectives != 0 {
		t.Errorf("Expected zeroed counters after reset, got %+v", visitor)
	}
}

func TestValidationVisitor(t *testing.T) {
	tests := []struct {
		name       string
		formula    Formula
		errorCount int
	}{
		{
			name:       "Valid nested formula",
			formula:    createTestNested(),
			errorCount: 0,
		},
		{
			name:       "Invalid constant",
			formula:    &Constant{Value: "maybe"},
			errorCount: 1,
		},
		{
			name: "Multiple problems collected in one pass",
			formula: &And{
				Left:  &Constant{Value: "maybe"},
				Right: &Negation{}, // missing operand
			},
			errorCount: 2,
		},
		{
			name:       "Missing operands on both sides",
			formula:    &Or{},
			errorCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor := NewValidationVisitor()
			tt.formula.Accept(visitor)

			if len(visitor.Errors()) != tt.errorCount {
				t.Errorf("Expected %d errors, got %d: %v",
					tt.errorCount, len(visitor.Errors()), visitor.Errors())
			}

			if visitor.HasErrors() != (tt.errorCount > 0) {
				t.Errorf("HasErrors() = %v, want %v", visitor.HasErrors(), tt.errorCount > 0)
			}
		})
	}
}

func TestValidationVisitor_Reset(t *testing.T) {
	visitor := NewValidationVisitor()

	(&Constant{Value: "maybe"}).Accept(visitor)
	if !visitor.HasErrors() {
		t.Fatal("Expected errors before reset")
	}

	visitor.Reset()
	if visitor.HasErrors() {
		t.Errorf("Expected no errors after reset, got %v", visitor.Errors())
	}
}

func TestUtilityFunctions(t *testing.T) {
	f := createTestNested()

	t.Run("Render", func(t *testing.T) {
		if result := Render(f); result != `(\rightarrow (\neg 1) (\vee 23abc false))` {
			t.Errorf("Unexpected render result: %q", result)
		}
	})

	t.Run("Tree", func(t *testing.T) {
		result := Tree(f)
		if !strings.HasPrefix(result, "implies:\n") {
			t.Errorf("Expected tree dump starting with root node, got %q", result)
		}
		if !strings.Contains(result, "    proposition: 23abc\n") {
			t.Errorf("Expected indented leaf in tree dump, got %q", result)
		}
	})

	t.Run("Stats", func(t *testing.T) {
		stats := Stats(f)
		if stats.Nodes != 6 {
			t.Errorf("Expected 6 nodes, got %d", stats.Nodes)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if errs := Validate(f); len(errs) != 0 {
			t.Errorf("Expected no validation errors, got %v", errs)
		}

		bad := &Negation{}
		if errs := Validate(bad); len(errs) != 1 {
			t.Errorf("Expected 1 validation error, got %d", len(errs))
		}
	})
}

// Benchmarks

func BenchmarkRender(b *testing.B) {
	f := createTestNested()

	for i := 0; i < b.N; i++ {
		Render(f)
	}
}

func BenchmarkStats(b *testing.B) {
	f := createTestNested()

	for i := 0; i < b.N; i++ {
		Stats(f)
	}
}
