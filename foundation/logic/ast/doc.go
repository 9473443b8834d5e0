// File: doc.go
// Title: Formula AST Package Documentation
// Description: Defines the abstract syntax tree for propositional-logic
//              formulas together with the visitor infrastructure used to
//              render, inspect, and validate parsed formulas.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-20 v0.1.0: Initial AST package

/*
Package ast defines the abstract syntax tree for propositional-logic formulas.

This package provides the node types produced by the formula parser and the
visitor infrastructure for processing them. It includes:

  • A closed set of formula variants: constants, propositions, negation,
    and the binary connectives (\wedge, \vee, \rightarrow, \leftrightarrow)
  • Visitor pattern with a reusable base traversal
  • Canonical rendering, indented tree dumps, node statistics, and
    structural validation

Formula trees are immutable after parsing and safe for concurrent reads.
*/
package ast
