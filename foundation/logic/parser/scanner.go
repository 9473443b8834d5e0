// File: scanner.go
// Title: Lockstep Maximal-Munch Scanner
// Description: Drives every pattern automaton over the same input cursor,
//              producing tokens by longest match with table-order tie-break.
//              Lookahead runs on a deep-copied scanner snapshot so peeking
//              never mutates the real cursor.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-21 v0.1.0: Initial scanner implementation

package parser

import (
	"fmt"
	"strings"

	coreerror "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/error"
)

// Separator is the single token separator of the formula grammar. The
// grammar is fully parenthesized with single-space separation, so the
// scanner skips at most one separator before each token attempt.
const Separator = ' '

// Scanner tokenizes one line of formula text. It owns one cursor and one
// live automaton per pattern, advanced in lockstep. A Scanner is bound to
// a single line and a single goroutine; parse lines concurrently by giving
// each worker its own Scanner.
type Scanner struct {
	runes    []rune
	cursor   int
	patterns []Pattern
}

// NewScanner creates a scanner over one line of text. The grammar is
// case-insensitive; the line is lower-cased once here so all automaton
// guards stay lowercase-only.
func NewScanner(line string) *Scanner {
	return &Scanner{
		runes:    []rune(strings.ToLower(line)),
		patterns: newPatternTable(),
	}
}

// Clone returns a deep copy of the scanner: cursor plus the mutable state
// of every automaton. The input runes are immutable and shared. Mutating
// the clone is never observable from the original, which makes the clone
// a valid lookahead snapshot.
func (s *Scanner) Clone() *Scanner {
	patterns := make([]Pattern, len(s.patterns))
	for i, p := range s.patterns {
		patterns[i] = Pattern{Kind: p.Kind, Automaton: p.Automaton.Clone()}
	}

	return &Scanner{
		runes:    s.runes,
		cursor:   s.cursor,
		patterns: patterns,
	}
}

// Offset returns the current cursor position in runes
func (s *Scanner) Offset() int {
	return s.cursor
}

// NextToken produces the next token by maximal munch:
//
//  1. Skip at most one leading separator.
//  2. Feed each character to every automaton in table order; after each
//     character check final states.
//  3. Once a pattern is final, keep extending while it remains final and
//     input remains; the breaking character is not consumed.
//  4. The token kind is the first pattern in table order that is final.
//  5. All automata are reset after every produced token.
//
// End of line with nothing pending yields a LexemeEOF token.
func (s *Scanner) NextToken() (Token, error) {
	s.resetAutomata()

	if s.cursor < len(s.runes) && s.runes[s.cursor] == Separator {
		s.cursor++
	}

	if s.cursor >= len(s.runes) {
		return Token{Kind: LexemeEOF, Offset: s.cursor, Column: s.cursor + 1}, nil
	}

	start := s.cursor
	pos := start

	// Recognition: feed characters until some automaton reaches a final
	// state. When every automaton is dead no final state can ever be
	// reached, so the attempt stops there.
	var matched *Automaton
	var kind LexemeKind

	for pos < len(s.runes) && matched == nil {
		r := s.runes[pos]
		if !InAlphabet(r) {
			return Token{}, alphabetError(r, pos)
		}

		for i := range s.patterns {
			if err := s.patterns[i].Automaton.Step(r); err != nil {
				return Token{}, err
			}
		}
		pos++

		alive := false
		for i := range s.patterns {
			a := s.patterns[i].Automaton
			if a.InFinalState() {
				matched = a
				kind = s.patterns[i].Kind
				break
			}
			if !a.IsDead() {
				alive = true
			}
		}

		if matched == nil && !alive {
			break
		}
	}

	if matched == nil {
		residue := string(s.runes[start:pos])
		return Token{}, coreerror.New(fmt.Sprintf("unrecognized input %q", residue)).
			WithCode(coreerror.CodeSyntax).
			WithDetail("residue", residue).
			WithDetail("position", start)
	}

	// Maximal munch: extend the match while the winning automaton stays
	// final. An out-of-alphabet character simply breaks the match here;
	// the alphabet error surfaces when the next token is requested
	// starting at that character.
	end := pos
	for end < len(s.runes) {
		r := s.runes[end]
		if !InAlphabet(r) {
			break
		}
		if err := matched.Step(r); err != nil {
			return Token{}, err
		}
		if !matched.InFinalState() {
			break
		}
		end++
	}

	s.cursor = end
	s.resetAutomata()

	text := string(s.runes[start:end])
	return Token{
		Kind:   kind,
		Text:   text,
		Len:    end - start,
		Offset: start,
		Column: start + 1,
	}, nil
}

// PeekToken returns the next token without consuming it. The peek runs on
// a snapshot, so any number of peeks leaves the real cursor untouched.
func (s *Scanner) PeekToken() (Token, error) {
	return s.Clone().NextToken()
}

// PeekSecondToken returns the token after the next one without consuming
// either. Two-token lookahead is what lets the parser distinguish unary
// from binary parenthesized formulas.
func (s *Scanner) PeekSecondToken() (Token, error) {
	snapshot := s.Clone()
	if _, err := snapshot.NextToken(); err != nil {
		return Token{}, err
	}
	return snapshot.NextToken()
}

// resetAutomata returns every pattern automaton to its initial state.
// Idempotent; called before and after each token attempt.
func (s *Scanner) resetAutomata() {
	for i := range s.patterns {
		s.patterns[i].Automaton.Reset()
	}
}

// alphabetError reports a character outside the formula alphabet
func alphabetError(r rune, pos int) error {
	return coreerror.New(fmt.Sprintf("character %q at column %d is not in the formula alphabet", r, pos+1)).
		WithCode(coreerror.CodeAlphabet).
		WithDetail("symbol", string(r)).
		WithDetail("position", pos)
}
