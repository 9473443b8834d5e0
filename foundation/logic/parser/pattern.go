// File: pattern.go
// Title: Lexical Pattern Table
// Description: Builds the fixed, ordered table of (lexeme kind, automaton)
//              pairs that the scanner drives in lockstep. Literal patterns
//              share a prefix-trie construction; every state carries a
//              catch-all rule into the dead state.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-20 v0.1.0: Initial pattern table

package parser

// Pattern pairs a lexeme kind with the automaton that recognizes it
type Pattern struct {
	Kind      LexemeKind
	Automaton *Automaton
}

// newPatternTable builds the six patterns in fixed priority order. Table
// order is the tie-break when more than one automaton is final at the
// same length; the first final pattern names the token kind.
func newPatternTable() []Pattern {
	return []Pattern{
		{LexemeConstant, buildLiteralsAutomaton("true", "false")},
		{LexemeProposition, buildPropositionAutomaton()},
		{LexemeOpenParen, buildSymbolAutomaton('(')},
		{LexemeCloseParen, buildSymbolAutomaton(')')},
		{LexemeUnaryOperator, buildLiteralsAutomaton(OpNeg)},
		{LexemeBinaryOperator, buildLiteralsAutomaton(OpWedge, OpVee, OpRightarrow, OpLeftrightarrow)},
	}
}

// buildLiteralsAutomaton constructs an automaton accepting exactly the
// given literal words. Words sharing a prefix share the corresponding
// state chain (e.g. the four binary operators branch after the leading
// backslash). States are numbered in insertion order, so construction is
// deterministic. Every state gets a final catch-all rule into the dead
// state: a stalled prefix must never be revived by a later character
// ("truue" must not reach the final state of "true" by skipping the
// second 'u').
func buildLiteralsAutomaton(words ...string) *Automaton {
	var rules []Rule
	finals := make([]int, 0, len(words))
	next := 1 // state 0 is the initial state

	// (state, symbol) -> destination, for prefix sharing
	edges := make(map[int]map[rune]int)

	for _, word := range words {
		state := 0
		for _, r := range word {
			if edges[state] == nil {
				edges[state] = make(map[rune]int)
			}
			to, ok := edges[state][r]
			if !ok {
				to = next
				next++
				edges[state][r] = to
				rules = append(rules, Rule{From: state, Guard: symbolIs(r), To: to})
			}
			state = to
		}
		finals = append(finals, state)
	}

	for state := 0; state < next; state++ {
		rules = append(rules, Rule{From: state, Guard: anySymbol, To: DeadState})
	}

	return NewAutomaton(0, rules, finals)
}

// buildPropositionAutomaton accepts a digit followed by zero or more
// lowercase alphanumerics. The automaton is final from the first digit
// onward; trailing alphanumerics keep it final so maximal munch extends
// the token.
func buildPropositionAutomaton() *Automaton {
	rules := []Rule{
		{From: 0, Guard: isDigit, To: 1},
		{From: 0, Guard: anySymbol, To: DeadState},
		{From: 1, Guard: isAlnum, To: 1},
		{From: 1, Guard: anySymbol, To: DeadState},
	}

	return NewAutomaton(0, rules, []int{1})
}

// buildSymbolAutomaton accepts exactly one single-character symbol
func buildSymbolAutomaton(symbol rune) *Automaton {
	rules := []Rule{
		{From: 0, Guard: symbolIs(symbol), To: 1},
		{From: 0, Guard: anySymbol, To: DeadState},
		{From: 1, Guard: anySymbol, To: DeadState},
	}

	return NewAutomaton(0, rules, []int{1})
}
