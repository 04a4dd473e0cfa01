package turingruntime

// State identifies one configuration of a machine's control unit. States are
// numbered from 0; state 0 is always the initial state.
type State int

// Symbol identifies one tape-alphabet value. Declared symbols are numbered
// from 0. A transition table additionally derives two synthetic output
// symbols from its symbol count, meaning "move the head" rather than "write
// this value"; those never appear on a tape.
type Symbol int

// Blank marks an unwritten tape cell. It is not a member of any declared
// symbol space: it can be read and matched against, but symbol indices
// always start at 0.
const Blank Symbol = -1

// BlankRune is the character that renders a blank cell in readable I/O.
const BlankRune = '*'

// Alphabet maps readable characters to tape symbols and back. The
// computation layer consumes it for writing input strings and rendering
// tape contents; implementations must resolve BlankRune to Blank and
// represent Blank as BlankRune.
type Alphabet interface {
	// Resolve returns the symbol a character maps to, if any.
	Resolve(r rune) (Symbol, bool)

	// Represent returns the character a symbol maps to, if any.
	Represent(s Symbol) (rune, bool)

	// SymbolCount returns the number of declared symbols.
	SymbolCount() int
}
