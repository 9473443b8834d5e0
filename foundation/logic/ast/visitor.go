// File: visitor.go
// Title: Formula AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              formula AST nodes. Provides the base visitor plus rendering,
//              tree-dump, statistics, and validation visitors.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-20 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing formula nodes using the visitor pattern
type Visitor interface {
	VisitConstant(c *Constant) interface{}
	VisitProposition(p *Proposition) interface{}
	VisitNegation(n *Negation) interface{}
	VisitAnd(a *And) interface{}
	VisitOr(o *Or) interface{}
	VisitImplies(i *Implies) interface{}
	VisitBiConditional(b *BiConditional) interface{}
}

// BaseVisitor provides default implementations for all visitor methods
// Embed this in concrete visitors to only override needed methods
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitConstant(c *Constant) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitProposition(p *Proposition) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitNegation(n *Negation) interface{} {
	if n.Operand != nil {
		return n.Operand.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitAnd(a *And) interface{} {
	bv.visitChildren(a.Left, a.Right)
	return nil
}

func (bv *BaseVisitor) VisitOr(o *Or) interface{} {
	bv.visitChildren(o.Left, o.Right)
	return nil
}

func (bv *BaseVisitor) VisitImplies(i *Implies) interface{} {
	bv.visitChildren(i.Left, i.Right)
	return nil
}

func (bv *BaseVisitor) VisitBiConditional(b *BiConditional) interface{} {
	bv.visitChildren(b.Left, b.Right)
	return nil
}

func (bv *BaseVisitor) visitChildren(left, right Formula) {
	if left != nil {
		left.Accept(bv)
	}
	if right != nil {
		right.Accept(bv)
	}
}

// RenderVisitor renders a formula into its canonical text form. The
// canonical form is fully parenthesized prefix notation with single
// spaces, e.g. `(\wedge true (\neg 23abc))`. It is the round-trip
// partner of the parser: parsing a rendered formula yields an equal tree.
type RenderVisitor struct {
	BaseVisitor
	buffer strings.Builder
}

// NewRenderVisitor creates a new render visitor
func NewRenderVisitor() *RenderVisitor {
	return &RenderVisitor{}
}

// String returns the rendered canonical form
func (rv *RenderVisitor) String() string {
	return rv.buffer.String()
}

// Reset clears the internal buffer
func (rv *RenderVisitor) Reset() {
	rv.buffer.Reset()
}

func (rv *RenderVisitor) VisitConstant(c *Constant) interface{} {
	rv.buffer.WriteString(c.Value)
	return nil
}

func (rv *RenderVisitor) VisitProposition(p *Proposition) interface{} {
	rv.buffer.WriteString(p.Name)
	return nil
}

func (rv *RenderVisitor) VisitNegation(n *Negation) interface{} {
	rv.buffer.WriteString(fmt.Sprintf("(%s ", n.Operator()))
	if n.Operand != nil {
		n.Operand.Accept(rv)
	}
	rv.buffer.WriteString(")")
	return nil
}

func (rv *RenderVisitor) VisitAnd(a *And) interface{} {
	rv.renderBinary(a.Operator(), a.Left, a.Right)
	return nil
}

func (rv *RenderVisitor) VisitOr(o *Or) interface{} {
	rv.renderBinary(o.Operator(), o.Left, o.Right)
	return nil
}

func (rv *RenderVisitor) VisitImplies(i *Implies) interface{} {
	rv.renderBinary(i.Operator(), i.Left, i.Right)
	return nil
}

func (rv *RenderVisitor) VisitBiConditional(b *BiConditional) interface{} {
	rv.renderBinary(b.Operator(), b.Left, b.Right)
	return nil
}

func (rv *RenderVisitor) renderBinary(op string, left, right Formula) {
	rv.buffer.WriteString(fmt.Sprintf("(%s ", op))
	if left != nil {
		left.Accept(rv)
	}
	rv.buffer.WriteString(" ")
	if right != nil {
		right.Accept(rv)
	}
	rv.buffer.WriteString(")")
}

// TreeVisitor creates an indented tree representation of the AST,
// one node per line, for diagnostic output
type TreeVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built tree representation
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) writeIndent() {
	for i := 0; i < tv.indent; i++ {
		tv.buffer.WriteString("  ")
	}
}

func (tv *TreeVisitor) VisitConstant(c *Constant) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("%s: %s\n", c.Kind(), c.Value))
	return nil
}

func (tv *TreeVisitor) VisitProposition(p *Proposition) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("%s: %s\n", p.Kind(), p.Name))
	return nil
}

func (tv *TreeVisitor) VisitNegation(n *Negation) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("%s:\n", n.Kind()))
	tv.indent++
	if n.Operand != nil {
		n.Operand.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitAnd(a *And) interface{} {
	tv.treeBinary(a.Kind(), a.Left, a.Right)
	return nil
}

func (tv *TreeVisitor) VisitOr(o *Or) interface{} {
	tv.treeBinary(o.Kind(), o.Left, o.Right)
	return nil
}

func (tv *TreeVisitor) VisitImplies(i *Implies) interface{} {
	tv.treeBinary(i.Kind(), i.Left, i.Right)
	return nil
}

func (tv *TreeVisitor) VisitBiConditional(b *BiConditional) interface{} {
	tv.treeBinary(b.Kind(), b.Left, b.Right)
	return nil
}

func (tv *TreeVisitor) treeBinary(kind Kind, left, right Formula) {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("%s:\n", kind))
	tv.indent++
	if left != nil {
		left.Accept(tv)
	}
	if right != nil {
		right.Accept(tv)
	}
	tv.indent--
}

// StatsVisitor counts nodes and measures nesting depth. The counts feed
// parse-history records and diagnostic summaries.
type StatsVisitor struct {
	BaseVisitor
	Nodes        int // Total node count
	Constants    int // Constant leaves
	Propositions int // Proposition leaves
	Connectives  int // Negations plus binary connectives
	MaxDepth     int // Deepest nesting level (a lone atom has depth 1)
	depth        int
}

// NewStatsVisitor creates a new statistics visitor
func NewStatsVisitor() *StatsVisitor {
	return &StatsVisitor{}
}

// Reset clears all counters
func (sv *StatsVisitor) Reset() {
	*sv = StatsVisitor{}
}

func (sv *StatsVisitor) enter() {
	sv.Nodes++
	sv.depth++
	if sv.depth > sv.MaxDepth {
		sv.MaxDepth = sv.depth
	}
}

func (sv *StatsVisitor) leave() {
	sv.depth--
}

func (sv *StatsVisitor) VisitConstant(c *Constant) interface{} {
	sv.enter()
	sv.Constants++
	sv.leave()
	return nil
}

func (sv *StatsVisitor) VisitProposition(p *Proposition) interface{} {
	sv.enter()
	sv.Propositions++
	sv.leave()
	return nil
}

func (sv *StatsVisitor) VisitNegation(n *Negation) interface{} {
	sv.enter()
	sv.Connectives++
	if n.Operand != nil {
		n.Operand.Accept(sv)
	}
	sv.leave()
	return nil
}

func (sv *StatsVisitor) VisitAnd(a *And) interface{} {
	sv.countBinary(a.Left, a.Right)
	return nil
}

func (sv *StatsVisitor) VisitOr(o *Or) interface{} {
	sv.countBinary(o.Left, o.Right)
	return nil
}

func (sv *StatsVisitor) VisitImplies(i *Implies) interface{} {
	sv.countBinary(i.Left, i.Right)
	return nil
}

func (sv *StatsVisitor) VisitBiConditional(b *BiConditional) interface{} {
	sv.countBinary(b.Left, b.Right)
	return nil
}

func (sv *StatsVisitor) countBinary(left, right Formula) {
	sv.enter()
	sv.Connectives++
	if left != nil {
		left.Accept(sv)
	}
	if right != nil {
		right.Accept(sv)
	}
	sv.leave()
}

// ValidationVisitor validates formula nodes and collects errors.
// Each node is checked locally; traversal continues past failures so
// all problems in a tree are reported in one pass.
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitConstant(c *Constant) interface{} {
	if err := c.Validate(); err != nil {
		vv.addError(err)
	}
	return nil
}

func (vv *ValidationVisitor) VisitProposition(p *Proposition) interface{} {
	if err := p.Validate(); err != nil {
		vv.addError(err)
	}
	return nil
}

func (vv *ValidationVisitor) VisitNegation(n *Negation) interface{} {
	if n.Operand == nil {
		vv.addError(fmt.Errorf("%s: operand is required", n.Kind()))
		return nil
	}
	return n.Operand.Accept(vv)
}

func (vv *ValidationVisitor) VisitAnd(a *And) interface{} {
	vv.checkBinary(a.Kind(), a.Left, a.Right)
	return nil
}

func (vv *ValidationVisitor) VisitOr(o *Or) interface{} {
	vv.checkBinary(o.Kind(), o.Left, o.Right)
	return nil
}

func (vv *ValidationVisitor) VisitImplies(i *Implies) interface{} {
	vv.checkBinary(i.Kind(), i.Left, i.Right)
	return nil
}

func (vv *ValidationVisitor) VisitBiConditional(b *BiConditional) interface{} {
	vv.checkBinary(b.Kind(), b.Left, b.Right)
	return nil
}

func (vv *ValidationVisitor) checkBinary(kind Kind, left, right Formula) {
	if left == nil {
		vv.addError(fmt.Errorf("%s: left operand is required", kind))
	} else {
		left.Accept(vv)
	}
	if right == nil {
		vv.addError(fmt.Errorf("%s: right operand is required", kind))
	} else {
		right.Accept(vv)
	}
}

// Utility functions for working with visitors

// Render returns the canonical text form of a formula
func Render(f Formula) string {
	visitor := NewRenderVisitor()
	f.Accept(visitor)
	return visitor.String()
}

// Tree returns an indented tree representation of a formula
func Tree(f Formula) string {
	visitor := NewTreeVisitor()
	f.Accept(visitor)
	return visitor.String()
}

// Stats computes node counts and nesting depth for a formula
func Stats(f Formula) *StatsVisitor {
	visitor := NewStatsVisitor()
	f.Accept(visitor)
	return visitor
}

// Validate checks every node of a formula tree and returns all errors found
func Validate(f Formula) []error {
	visitor := NewValidationVisitor()
	f.Accept(visitor)
	return visitor.Errors()
}
