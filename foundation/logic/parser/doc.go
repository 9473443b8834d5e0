// File: doc.go
// Title: Formula Parser Package Documentation
// Description: Documents the two-stage formula front end: the automata-based
//              lexical scanner and the recursive-descent parser.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-21 v0.1.0: Initial parser package

/*
Package parser implements the two-stage front end for propositional-logic
formulas in LaTeX prefix notation.

The lexical stage drives six independent finite automata in lockstep over a
shared cursor, one automaton per lexeme category. Tokens are produced by
maximal munch: a match is extended while the winning automaton stays in a
final state, and table order breaks ties between patterns. Lookahead runs
on deep-copied scanner snapshots so peeking never mutates the real cursor.

The syntactic stage is a recursive descent parser with at most two tokens
of lookahead and no backtracking. After an open parenthesis the second
peeked token decides between the unary, binary, and transparent grouping
productions.

Usage:

	p, err := parser.New(parser.Options{})
	if err != nil {
		return err
	}

	formula, err := p.Parse(`(\wedge true (\neg 23abc))`)
	if err != nil {
		return err
	}
	fmt.Println(ast.Render(formula))

Errors carry structured codes: out-of-alphabet characters fail with
CodeAlphabet, grammar violations with CodeSyntax. Both abort the current
line; there is no error recovery or partial AST.
*/
package parser
