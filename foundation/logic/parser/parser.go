// File: parser.go
// Title: Recursive Descent Formula Parser
// Description: Converts the scanner's token stream into a formula AST using
//              recursive descent with bounded lookahead. One peeked token
//              dispatches the production; a second peeked token resolves the
//              unary/binary/grouping ambiguity after an open parenthesis.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-21 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	coreerror "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/error"
	corelog "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/log"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic/ast"
)

// Parser implements recursive descent parsing over the formula grammar:
//
//	Formula   := Constant | Proposition
//	           | "(" UnaryOp Formula ")"
//	           | "(" BinaryOp Formula Formula ")"
//	           | "(" Formula ")"
//
// The grouping production is transparent: it never produces an AST node.
// No backtracking is needed; two tokens of lookahead resolve every choice.
type Parser struct {
	scanner *Scanner
	logger  *corelog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *corelog.Logger
}

// New creates a formula parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = corelog.GetDefault()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "formula-parser"),
		options: opts,
	}, nil
}

// Parse parses one line of formula text and returns its AST. The parser
// does not require end of input after the formula; trailing text is the
// caller's concern (see AtEnd).
func (p *Parser) Parse(line string) (ast.Formula, error) {
	p.scanner = NewScanner(line)

	p.logger.Debug("starting formula parse", corelog.Fields{
		"input":  line,
		"length": len(line),
	})

	formula, err := p.parseFormula()
	if err != nil {
		p.logger.Debug("formula parse failed", corelog.Fields{
			"input": line,
			"error": err.Error(),
		})
		return nil, err
	}

	return formula, nil
}

// AtEnd reports whether the scanner has reached end of input after the
// last parse. Callers wanting strict full-line validation check this.
func (p *Parser) AtEnd() (bool, error) {
	if p.scanner == nil {
		return true, nil
	}
	tok, err := p.scanner.PeekToken()
	if err != nil {
		return false, err
	}
	return tok.IsEOF(), nil
}

// parseFormula dispatches on one peeked token; after an open parenthesis
// a second peeked token selects the unary, binary, or grouping production.
func (p *Parser) parseFormula() (ast.Formula, error) {
	tok, err := p.scanner.PeekToken()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case LexemeConstant:
		return p.parseConstant()

	case LexemeProposition:
		return p.parseProposition()

	case LexemeOpenParen:
		second, err := p.scanner.PeekSecondToken()
		if err != nil {
			return nil, err
		}
		switch second.Kind {
		case LexemeUnaryOperator:
			return p.parseUnaryFormula()
		case LexemeBinaryOperator:
			return p.parseBinaryFormula()
		default:
			return p.parseGroupedFormula()
		}

	case LexemeEOF:
		return nil, p.syntaxError("unexpected end of input, expected a formula", tok)

	default:
		return nil, p.syntaxError(fmt.Sprintf("unexpected token %s", tok), tok)
	}
}

// parseConstant consumes one Constant token
func (p *Parser) parseConstant() (ast.Formula, error) {
	tok, err := p.expect(LexemeConstant)
	if err != nil {
		return nil, err
	}
	return &ast.Constant{Value: tok.Text, Pos: position(tok)}, nil
}

// parseProposition consumes one Proposition token
func (p *Parser) parseProposition() (ast.Formula, error) {
	tok, err := p.expect(LexemeProposition)
	if err != nil {
		return nil, err
	}
	return &ast.Proposition{Name: tok.Text, Pos: position(tok)}, nil
}

// parseUnaryFormula parses "(" "\neg" Formula ")"
func (p *Parser) parseUnaryFormula() (ast.Formula, error) {
	open, err := p.expect(LexemeOpenParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LexemeUnaryOperator); err != nil {
		return nil, err
	}

	operand, err := p.parseFormula()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(LexemeCloseParen); err != nil {
		return nil, err
	}

	return &ast.Negation{Operand: operand, Pos: position(open)}, nil
}

// parseBinaryFormula parses "(" BinaryOp Formula Formula ")". The matched
// operator text selects which of the four binary variants to build.
func (p *Parser) parseBinaryFormula() (ast.Formula, error) {
	open, err := p.expect(LexemeOpenParen)
	if err != nil {
		return nil, err
	}
	op, err := p.expect(LexemeBinaryOperator)
	if err != nil {
		return nil, err
	}

	left, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	right, err := p.parseFormula()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(LexemeCloseParen); err != nil {
		return nil, err
	}

	pos := position(open)
	switch op.Text {
	case OpWedge:
		return &ast.And{Left: left, Right: right, Pos: pos}, nil
	case OpVee:
		return &ast.Or{Left: left, Right: right, Pos: pos}, nil
	case OpRightarrow:
		return &ast.Implies{Left: left, Right: right, Pos: pos}, nil
	case OpLeftrightarrow:
		return &ast.BiConditional{Left: left, Right: right, Pos: pos}, nil
	default:
		// Unreachable given the binary-operator automaton, still checked
		return nil, p.syntaxError(fmt.Sprintf("unknown binary operator %q", op.Text), op)
	}
}

// parseGroupedFormula parses "(" Formula ")". The parentheses are
// transparent: the inner formula is returned unchanged, no grouping node
// is built.
func (p *Parser) parseGroupedFormula() (ast.Formula, error) {
	if _, err := p.expect(LexemeOpenParen); err != nil {
		return nil, err
	}

	inner, err := p.parseFormula()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(LexemeCloseParen); err != nil {
		return nil, err
	}

	return inner, nil
}

// expect consumes exactly one token of the given kind and fails with a
// syntax error on mismatch or end of input
func (p *Parser) expect(kind LexemeKind) (Token, error) {
	tok, err := p.scanner.NextToken()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		if tok.IsEOF() {
			return Token{}, p.syntaxError(fmt.Sprintf("unexpected end of input, expected %s", kind), tok)
		}
		return Token{}, p.syntaxError(fmt.Sprintf("expected %s, got %s", kind, tok), tok)
	}
	return tok, nil
}

// syntaxError builds a syntax error carrying the offending token position
func (p *Parser) syntaxError(message string, tok Token) error {
	return coreerror.New(message).
		WithCode(coreerror.CodeSyntax).
		WithDetail("position", tok.Offset).
		WithDetail("token", tok.String())
}

// position converts a token position into an AST position
func position(tok Token) ast.Position {
	return ast.Position{Column: tok.Column, Offset: tok.Offset}
}
