// File: token.go
// Title: Formula Tokens and Lexeme Kinds
// Description: Defines the lexeme categories of the formula language and
//              the immutable Token value produced by the scanner, together
//              with the operator literals shared by the pattern table and
//              the parser.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-20 v0.1.0: Initial token definitions

package parser

import (
	"fmt"
)

// LexemeKind identifies the lexical category of a token
type LexemeKind int

const (
	// LexemeEOF signals the end of the input line
	LexemeEOF LexemeKind = iota

	// LexemeConstant is a truth constant, "true" or "false"
	LexemeConstant

	// LexemeProposition is an atomic proposition, a digit followed by
	// zero or more lowercase alphanumerics
	LexemeProposition

	// LexemeOpenParen is "("
	LexemeOpenParen

	// LexemeCloseParen is ")"
	LexemeCloseParen

	// LexemeUnaryOperator is the negation operator \neg
	LexemeUnaryOperator

	// LexemeBinaryOperator is one of \wedge, \vee, \rightarrow,
	// \leftrightarrow
	LexemeBinaryOperator
)

// String returns string representation of LexemeKind
func (lk LexemeKind) String() string {
	switch lk {
	case LexemeEOF:
		return "EOF"
	case LexemeConstant:
		return "CONSTANT"
	case LexemeProposition:
		return "PROPOSITION"
	case LexemeOpenParen:
		return "OPEN_PAREN"
	case LexemeCloseParen:
		return "CLOSE_PAREN"
	case LexemeUnaryOperator:
		return "UNARY_OPERATOR"
	case LexemeBinaryOperator:
		return "BINARY_OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Operator literals of the formula language
const (
	OpNeg            = `\neg`
	OpWedge          = `\wedge`
	OpVee            = `\vee`
	OpRightarrow     = `\rightarrow`
	OpLeftrightarrow = `\leftrightarrow`
)

// Token represents a single lexeme recognized by the scanner.
// Tokens are immutable once created.
type Token struct {
	Kind   LexemeKind // Lexical category
	Text   string     // Matched text
	Len    int        // Consumed length in bytes
	Offset int        // Byte offset in the line (0-based)
	Column int        // Column in the line (1-based)
}

// String returns a readable representation of the token
func (t Token) String() string {
	if t.Kind == LexemeEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// IsEOF reports whether the token signals end of input
func (t Token) IsEOF() bool {
	return t.Kind == LexemeEOF
}
