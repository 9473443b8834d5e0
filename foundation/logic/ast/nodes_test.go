// File: nodes_test.go
// Title: Formula AST Node Unit Tests
// Description: Unit tests for the formula AST node types covering canonical
//              string rendering, kind reporting, position tracking, and
//              structural validation of every variant.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-20 v0.1.0: Initial node test suite

package ast

import (
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindConstant, "constant"},
		{KindProposition, "proposition"},
		{KindNegation, "negation"},
		{KindAnd, "and"},
		{KindOr, "or"},
		{KindImplies, "implies"},
		{KindBiConditional, "biconditional"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.kind.String(); result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestFormula_String(t *testing.T) {
	tests := []struct {
		name     string
		formula  Formula
		expected string
	}{
		{
			name:     "Constant true",
			formula:  &Constant{Value: "true"},
			expected: "true",
		},
		{
			name:     "Constant false",
			formula:  &Constant{Value: "false"},
			expected: "false",
		},
		{
			name:     "Proposition",
			formula:  &Proposition{Name: "23abc"},
			expected: "23abc",
		},
		{
			name:     "Negation",
			formula:  &Negation{Operand: &Proposition{Name: "1"}},
			expected: `(\neg 1)`,
		},
		{
			name: "Conjunction",
			formula: &And{
				Left:  &Constant{Value: "true"},
				Right: &Proposition{Name: "2"},
			},
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
				Left:  &Proposition{Name: "1"},
				Right: &Constant{Value: "true"},
			},
			expected: `(\rightarrow 1 true)`,
		},
		{
			name: "Biconditional",
			formula: &BiConditional{
				Left:  &Constant{Value: "false"},
				Right: &Proposition{Name: "42x"},
			},
			expected: `(\leftrightarrow false 42x)`,
		},
		{
			name: "Nested formula",
			formula: &Implies{
				Left: &Negation{Operand: &Proposition{Name: "1"}},
				Right: &Or{
					Left:  &Proposition{Name: "23abc"},
					Right: &Constant{Value: "false"},
				},
			},
			expected: `(\rightarrow (\neg 1) (\vee 23abc false))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.formula.String(); result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestFormula_Kind(t *testing.T) {
	tests := []struct {
		name     string
		formula  Formula
		expected Kind
	}{
		{"Constant", &Constant{Value: "true"}, KindConstant},
		{"Proposition", &Proposition{Name: "1"}, KindProposition},
		{"Negation", &Negation{}, KindNegation},
		{"And", &And{}, KindAnd},
		{"Or", &Or{}, KindOr},
		{"Implies", &Implies{}, KindImplies},
		{"BiConditional", &BiConditional{}, KindBiConditional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.formula.Kind(); result != tt.expected {
				t.Errorf("Expected kind %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestFormula_Position(t *testing.T) {
	pos := Position{Column: 5, Offset: 4}

	tests := []struct {
		name    string
		formula Formula
	}{
		{"Constant", &Constant{Value: "true", Pos: pos}},
		{"Proposition", &Proposition{Name: "1", Pos: pos}},
		{"Negation", &Negation{Pos: pos}},
		{"And", &And{Pos: pos}},
		{"Or", &Or{Pos: pos}},
		{"Implies", &Implies{Pos: pos}},
		{"BiConditional", &BiConditional{Pos: pos}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.formula.Position()
			if result.Column != 5 || result.Offset != 4 {
				t.Errorf("Expected position {5 4}, got {%d %d}", result.Column, result.Offset)
			}
		})
	}
}

func TestConstant_Bool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c := &Constant{Value: tt.value}
			if result := c.Bool(); result != tt.expected {
				t.Errorf("Bool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestConstant_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"True is valid", "true", false},
		{"False is valid", "false", false},
		{"Empty is invalid", "", true},
		{"Arbitrary word is invalid", "maybe", true},
		{"Uppercase is invalid", "TRUE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Constant{Value: tt.value}
			err := c.Validate()

			if tt.wantErr && err == nil {
				t.Errorf("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestProposition_Validate(t *testing.T) {
	tests := []struct {
		name     string
		propName string
		wantErr  bool
	}{
		{"Single digit", "1", false},
		{"Digits only", "23", false},
		{"Digit then letters", "2abc", false},
		{"Mixed tail", "1a2b3c", false},
		{"Empty name", "", true},
		{"Blank name", "   ", true},
		{"Letter first", "abc", true},
		{"Uppercase letter", "2A", true},
		{"Out of alphabet character", "2-a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Proposition{Name: tt.propName}
			err := p.Validate()

			if tt.wantErr && err == nil {
				t.Errorf("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestNegation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		formula *Negation
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Valid operand",
			formula: &Negation{Operand: &Proposition{Name: "1"}},
			wantErr: false,
		},
		{
			name:    "Missing operand",
			formula: &Negation{},
			wantErr: true,
			errMsg:  "operand is required",
		},
		{
			name:    "Invalid nested operand",
			formula: &Negation{Operand: &Constant{Value: "maybe"}},
			wantErr: true,
			errMsg:  "operand:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.formula.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got nil")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestBinary_Validate(t *testing.T) {
	valid := &Constant{Value: "true"}
	invalid := &Proposition{Name: "abc"}

	tests := []struct {
		name    string
		formula Formula
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Valid conjunction",
			formula: &And{Left: valid, Right: &Proposition{Name: "2"}},
			wantErr: false,
		},
		{
			name:    "Missing left operand",
			formula: &Or{Right: valid},
			wantErr: true,
			errMsg:  "left operand is required",
		},
		{
			name:    "Missing right operand",
			formula: &Implies{Left: valid},
			wantErr: true,
			errMsg:  "right operand is required",
		},
		{
			name:    "Invalid left operand",
			formula: &BiConditional{Left: invalid, Right: valid},
			wantErr: true,
			errMsg:  "left operand:",
		},
		{
			name:    "Invalid right operand",
			formula: &And{Left: valid, Right: invalid},
			wantErr: true,
			errMsg:  "right operand:",
		},
		{
			name: "Deeply nested invalid operand",
			formula: &And{
				Left:  valid,
				Right: &Negation{Operand: &Or{Left: invalid, Right: valid}},
			},
			wantErr: true,
			errMsg:  "must start with a digit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.formula.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got nil")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestOperator(t *testing.T) {
	tests := []struct {
		name     string
		operator string
		expected string
	}{
		{"Negation", (&Negation{}).Operator(), `\neg`},
		{"And", (&And{}).Operator(), `\wedge`},
		{"Or", (&Or{}).Operator(), `\vee`},
		{"Implies", (&Implies{}).Operator(), `\rightarrow`},
		{"BiConditional", (&BiConditional{}).Operator(), `\leftrightarrow`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.operator != tt.expected {
				t.Errorf("Expected operator %q, got %q", tt.expected, tt.operator)
			}
		})
	}
}
