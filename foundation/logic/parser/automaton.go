// File: automaton.go
// Title: Guarded Finite Automaton
// Description: Implements the deterministic finite-state machine that
//              underlies every lexical pattern. Transitions are guarded by
//              symbol predicates and tried in declared priority order; an
//              explicit dead state marks permanent rejection.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-20 v0.1.0: Initial automaton implementation

package parser

import (
	"fmt"
	"strings"

	coreerror "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/error"
)

// Alphabet is the fixed symbol set of the formula language. The hyphen
// never appears in any pattern but belongs to the legal symbol set; any
// character outside this set is a hard error.
const Alphabet = `abcdefghijklmnopqrstuvwxyz0123456789\()- `

// DeadState marks permanent rejection. No rule leaves it: once an
// automaton is dead it stays dead for the remainder of the token attempt.
const DeadState = 999

// InAlphabet reports whether r belongs to the formula alphabet
func InAlphabet(r rune) bool {
	return strings.ContainsRune(Alphabet, r)
}

// GuardFunc decides whether a transition fires for a given symbol
type GuardFunc func(r rune) bool

// Rule is one guarded transition. Rules sharing a source state are tried
// in declared order; the first rule whose guard accepts the symbol wins.
type Rule struct {
	From  int       // Source state
	Guard GuardFunc // Symbol predicate
	To    int       // Destination state
}

// Automaton is a deterministic finite-state machine with an immutable
// definition (initial state, ordered rules, final-state set) and one piece
// of mutable per-scan state: the current state.
type Automaton struct {
	initial int
	rules   []Rule
	finals  map[int]bool
	state   int
}

// NewAutomaton builds an automaton from its definition. The rules slice
// and final-state set are treated as immutable after this call.
func NewAutomaton(initial int, rules []Rule, finals []int) *Automaton {
	finalSet := make(map[int]bool, len(finals))
	for _, f := range finals {
		finalSet[f] = true
	}

	return &Automaton{
		initial: initial,
		rules:   rules,
		finals:  finalSet,
		state:   initial,
	}
}

// Step applies the first rule whose guard accepts the symbol, moving the
// automaton to that rule's destination. Symbols outside the alphabet fail
// before any transition is attempted. When no rule matches, the current
// state is left unchanged (a stall, not an error).
func (a *Automaton) Step(r rune) error {
	if !InAlphabet(r) {
		return coreerror.New(fmt.Sprintf("character %q is not in the formula alphabet", r)).
			WithCode(coreerror.CodeAlphabet).
			WithDetail("symbol", string(r))
	}

	for _, rule := range a.rules {
		if rule.From == a.state && rule.Guard(r) {
			a.state = rule.To
			return nil
		}
	}

	return nil
}

// InFinalState reports whether the automaton may legally emit a token at
// the current state
func (a *Automaton) InFinalState() bool {
	return a.finals[a.state]
}

// IsDead reports whether the automaton is permanently rejected
func (a *Automaton) IsDead() bool {
	return a.state == DeadState
}

// State returns the current state
func (a *Automaton) State() int {
	return a.state
}

// Reset returns the automaton to its initial state. Idempotent; called
// between token attempts.
func (a *Automaton) Reset() {
	a.state = a.initial
}

// Clone returns a copy owning its own current state. The immutable
// definition (rules, final states) is shared; only mutable state is
// copied, so mutating the clone never affects the original.
func (a *Automaton) Clone() *Automaton {
	clone := *a
	return &clone
}

// Guard helpers used by the pattern table

// symbolIs returns a guard matching exactly one symbol
func symbolIs(want rune) GuardFunc {
	return func(r rune) bool { return r == want }
}

// isDigit matches 0-9
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isLetter matches a-z; input is lower-cased before scanning
func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// isAlnum matches letters and digits
func isAlnum(r rune) bool {
	return isDigit(r) || isLetter(r)
}

// anySymbol accepts every symbol; used for lowest-priority catch-all
// rules into the dead state
func anySymbol(r rune) bool {
	return true
}
