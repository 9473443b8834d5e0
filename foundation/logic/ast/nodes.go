// File: nodes.go
// Title: Formula AST Node Definitions
// Description: Defines all AST node types for representing propositional-logic
//              formulas in LaTeX prefix notation. Provides the closed set of
//              formula variants with canonical string rendering, position
//              tracking, and validation methods.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-20 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the canonical text form of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error
}

// Position represents a position in the scanned line
type Position struct {
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Formula represents a propositional-logic formula. The variant set is
// closed: Constant, Proposition, Negation, And, Or, Implies, BiConditional.
type Formula interface {
	Node

	// Kind returns the variant of the formula node
	Kind() Kind

	formulaNode() // marker method
}

// Kind identifies the variant of a formula node
type Kind int

const (
	KindConstant Kind = iota
	KindProposition
	KindNegation
	KindAnd
	KindOr
	KindImplies
	KindBiConditional
)

// String returns string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindProposition:
		return "proposition"
	case KindNegation:
		return "negation"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindImplies:
		return "implies"
	case KindBiConditional:
		return "biconditional"
	default:
		return "unknown"
	}
}

// Formula node types

// Constant represents a truth constant, "true" or "false"
type Constant struct {
	Value string   // Matched text ("true" or "false")
	Pos   Position // Source position
}

// Proposition represents an atomic proposition. Names start with a digit
// and continue with lowercase letters and digits (e.g. "1", "23abc").
type Proposition struct {
	Name string   // Proposition name
	Pos  Position // Source position
}

// Negation represents the unary connective (\neg F)
type Negation struct {
	Operand Formula  // Negated formula
	Pos     Position // Source position (the opening parenthesis)
}

// And represents the binary connective (\wedge L R)
type And struct {
	Left  Formula  // Left operand
	Right Formula  // Right operand
	Pos   Position // Source position (the opening parenthesis)
}

// Or represents the binary connective (\vee L R)
type Or struct {
	Left  Formula  // Left operand
	Right Formula  // Right operand
	Pos   Position // Source position (the opening parenthesis)
}

// Implies represents the binary connective (\rightarrow L R)
type Implies struct {
	Left  Formula  // Left operand
	Right Formula  // Right operand
	Pos   Position // Source position (the opening parenthesis)
}

// BiConditional represents the binary connective (\leftrightarrow L R)
type BiConditional struct {
	Left  Formula  // Left operand
	Right Formula  // Right operand
	Pos   Position // Source position (the opening parenthesis)
}

// Implementation of Formula interface for Constant

func (c *Constant) String() string {
	return c.Value
}

func (c *Constant) Accept(visitor Visitor) interface{} {
	return visitor.VisitConstant(c)
}

func (c *Constant) Position() Position {
	return c.Pos
}

func (c *Constant) Validate() error {
	if c.Value != "true" && c.Value != "false" {
		return fmt.Errorf("constant must be \"true\" or \"false\", got %q", c.Value)
	}
	return nil
}

func (c *Constant) Kind() Kind { return KindConstant }

func (c *Constant) formulaNode() {}

// Bool returns the truth value of the constant
func (c *Constant) Bool() bool {
	return c.Value == "true"
}

// Implementation of Formula interface for Proposition

func (p *Proposition) String() string {
	return p.Name
}

func (p *Proposition) Accept(visitor Visitor) interface{} {
	return visitor.VisitProposition(p)
}

func (p *Proposition) Position() Position {
	return p.Pos
}

func (p *Proposition) Validate() error {
	if stringx.IsBlank(p.Name) {
		return fmt.Errorf("proposition name is required")
	}

	for i, r := range p.Name {
		isDigit := r >= '0' && r <= '9'
		isLetter := r >= 'a' && r <= 'z'
		if i == 0 && !isDigit {
			return fmt.Errorf("proposition name must start with a digit, got %q", p.Name)
		}
		if !isDigit && !isLetter {
			return fmt.Errorf("proposition name must be lowercase alphanumeric, got %q", p.Name)
		}
	}

	return nil
}

func (p *Proposition) Kind() Kind { return KindProposition }

func (p *Proposition) formulaNode() {}

// Implementation of Formula interface for Negation

func (n *Negation) String() string {
	return fmt.Sprintf("(%s %s)", n.Operator(), n.Operand.String())
}

func (n *Negation) Accept(visitor Visitor) interface{} {
	return visitor.VisitNegation(n)
}

func (n *Negation) Position() Position {
	return n.Pos
}

func (n *Negation) Validate() error {
	if n.Operand == nil {
		return fmt.Errorf("negation operand is required")
	}
	if err := n.Operand.Validate(); err != nil {
		return fmt.Errorf("operand: %w", err)
	}
	return nil
}

func (n *Negation) Kind() Kind { return KindNegation }

func (n *Negation) formulaNode() {}

// Operator returns the LaTeX operator of the connective
func (n *Negation) Operator() string { return `\neg` }

// Implementation of Formula interface for And

func (a *And) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Operator(), a.Left.String(), a.Right.String())
}

func (a *And) Accept(visitor Visitor) interface{} {
	return visitor.VisitAnd(a)
}

func (a *And) Position() Position {
	return a.Pos
}

func (a *And) Validate() error {
	return validateBinary(a.Left, a.Right)
}

func (a *And) Kind() Kind { return KindAnd }

func (a *And) formulaNode() {}

// Operator returns the LaTeX operator of the connective
func (a *And) Operator() string { return `\wedge` }

// Implementation of Formula interface for Or

func (o *Or) String() string {
	return fmt.Sprintf("(%s %s %s)", o.Operator(), o.Left.String(), o.Right.String())
}

func (o *Or) Accept(visitor Visitor) interface{} {
	return visitor.VisitOr(o)
}

func (o *Or) Position() Position {
	return o.Pos
}

func (o *Or) Validate() error {
	return validateBinary(o.Left, o.Right)
}

func (o *Or) Kind() Kind { return KindOr }

func (o *Or) formulaNode() {}

// Operator returns the LaTeX operator of the connective
func (o *Or) Operator() string { return `\vee` }

// Implementation of Formula interface for Implies

func (i *Implies) String() string {
	return fmt.Sprintf("(%s %s %s)", i.Operator(), i.Left.String(), i.Right.String())
}

func (i *Implies) Accept(visitor Visitor) interface{} {
	return visitor.VisitImplies(i)
}

func (i *Implies) Position() Position {
	return i.Pos
}

func (i *Implies) Validate() error {
	return validateBinary(i.Left, i.Right)
}

func (i *Implies) Kind() Kind { return KindImplies }

func (i *Implies) formulaNode() {}

// Operator returns the LaTeX operator of the connective
func (i *Implies) Operator() string { return `\rightarrow` }

// Implementation of Formula interface for BiConditional

func (b *BiConditional) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Operator(), b.Left.String(), b.Right.String())
}

func (b *BiConditional) Accept(visitor Visitor) interface{} {
	return visitor.VisitBiConditional(b)
}

func (b *BiConditional) Position() Position {
	return b.Pos
}

func (b *BiConditional) Validate() error {
	return validateBinary(b.Left, b.Right)
}

func (b *BiConditional) Kind() Kind { return KindBiConditional }

func (b *BiConditional) formulaNode() {}

// Operator returns the LaTeX operator of the connective
func (b *BiConditional) Operator() string { return `\leftrightarrow` }

// validateBinary checks both operands of a binary connective
func validateBinary(left, right Formula) error {
	if left == nil {
		return fmt.Errorf("left operand is required")
	}
	if right == nil {
		return fmt.Errorf("right operand is required")
	}
	if err := left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}
