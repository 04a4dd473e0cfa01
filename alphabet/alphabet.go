// Package alphabet maps readable characters to tape symbols and back.
//
// An alphabet exists only for human-readable I/O: machines and tapes work
// on symbol indices, and the computation layer consults an alphabet when
// writing an input string or rendering tape contents. Characters are
// assigned symbol indices in insertion order, starting at 0.
package alphabet

import (
	turingruntime "github.com/turinglab/turing-runtime"
)

// Alphabet is a bidirectional character/symbol table. It implements the
// turingruntime.Alphabet capability consumed by computations.
type Alphabet struct {
	forward map[rune]turingruntime.Symbol
	inverse map[turingruntime.Symbol]rune
	count   int
}

// New creates an empty alphabet.
func New() *Alphabet {
	return &Alphabet{
		forward: make(map[rune]turingruntime.Symbol),
		inverse: make(map[turingruntime.Symbol]rune),
	}
}

// FromString creates an alphabet holding every rune of s, in order.
func FromString(s string) *Alphabet {
	a := New()
	a.AddSymbols(s)
	return a
}

// AddSymbol assigns the next symbol index to r. Characters already present
// keep their original index; re-adding is a no-op.
func (a *Alphabet) AddSymbol(r rune) {
	if _, ok := a.forward[r]; ok {
		return
	}
	s := turingruntime.Symbol(a.count)
	a.forward[r] = s
	a.inverse[s] = r
	a.count++
}

// AddSymbols adds every rune of s, in order.
func (a *Alphabet) AddSymbols(s string) {
	for _, r := range s {
		a.AddSymbol(r)
	}
}

// Resolve returns the symbol r maps to. The blank character always
// resolves to Blank, whether or not it was added.
func (a *Alphabet) Resolve(r rune) (turingruntime.Symbol, bool) {
	if r == turingruntime.BlankRune {
		return turingruntime.Blank, true
	}
	s, ok := a.forward[r]
	return s, ok
}

// Represent returns the character s maps to. Blank always represents as
// the blank character.
func (a *Alphabet) Represent(s turingruntime.Symbol) (rune, bool) {
	if s == turingruntime.Blank {
		return turingruntime.BlankRune, true
	}
	r, ok := a.inverse[s]
	return r, ok
}

// SymbolCount returns the number of characters added.
func (a *Alphabet) SymbolCount() int {
	return a.count
}
