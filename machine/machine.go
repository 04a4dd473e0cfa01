package machine

import (
	"fmt"
	"sort"
	"strings"

	turingruntime "github.com/turinglab/turing-runtime"
)

// Rule is one transition quadruple: in state From, reading Read (one symbol
// per tape), write Write (a declared symbol, Blank, or one of the table's
// move symbols per tape) and enter state To.
type Rule struct {
	From  turingruntime.State
	Read  []turingruntime.Symbol
	Write []turingruntime.Symbol
	To    turingruntime.State
}

// Table is the definition of a deterministic K-tape Turing machine: state
// and symbol counts fixed at construction, a final-state set, and the
// transition function.
//
// A Table is not safe for concurrent mutation; build it fully before
// handing it to a computation.
type Table struct {
	states  int
	symbols int
	tapes   int
	finals  map[turingruntime.State]struct{}
	rules   map[string]Rule
}

// New creates a table for a machine with the given number of states,
// symbols and tapes. Non-positive counts are clamped to 1, so the zero
// machine has a single state q0, a single symbol and one tape.
func New(states, symbols, tapes int) *Table {
	if states < 1 {
		states = 1
	}
	if symbols < 1 {
		symbols = 1
	}
	if tapes < 1 {
		tapes = 1
	}
	return &Table{
		states:  states,
		symbols: symbols,
		tapes:   tapes,
		finals:  make(map[turingruntime.State]struct{}),
		rules:   make(map[string]Rule),
	}
}

// States returns the number of states.
func (t *Table) States() int { return t.states }

// Symbols returns the number of declared symbols.
func (t *Table) Symbols() int { return t.symbols }

// Tapes returns the number of tapes the machine operates on.
func (t *Table) Tapes() int { return t.tapes }

// Right returns the synthetic output symbol meaning "move the head right".
// It is derived from the symbol count, never stored.
func (t *Table) Right() turingruntime.Symbol {
	return turingruntime.Symbol(t.symbols)
}

// Left returns the synthetic output symbol meaning "move the head left".
func (t *Table) Left() turingruntime.Symbol {
	return turingruntime.Symbol(t.symbols + 1)
}

// AddTransition registers the rule (from, read) -> (write, to).
//
// The call is a no-op if either state is out of range, if the tuples do not
// have one symbol per tape, if a read symbol is outside {Blank} ∪
// [0, Symbols()), if a write symbol is outside {Blank} ∪ [0, Symbols()+2)
// (declared symbols plus the two move symbols), or if a rule for
// (from, read) already exists. The first rule registered for a key wins;
// remove it first to replace it.
func (t *Table) AddTransition(from turingruntime.State, read, write []turingruntime.Symbol, to turingruntime.State) {
	if from < 0 || int(from) >= t.states || to < 0 || int(to) >= t.states {
		return
	}
	if len(read) != t.tapes || len(write) != t.tapes {
		return
	}
	for _, s := range read {
		if s < turingruntime.Blank || int(s) >= t.symbols {
			return
		}
	}
	for _, s := range write {
		if s < turingruntime.Blank || int(s) >= t.symbols+2 {
			return
		}
	}

	key := transitionKey(from, read)
	if _, exists := t.rules[key]; exists {
		return
	}
	t.rules[key] = Rule{
		From:  from,
		Read:  append([]turingruntime.Symbol(nil), read...),
		Write: append([]turingruntime.Symbol(nil), write...),
		To:    to,
	}
}

// RemoveTransition deletes the rule keyed by (from, read), if present.
func (t *Table) RemoveTransition(from turingruntime.State, read []turingruntime.Symbol) {
	delete(t.rules, transitionKey(from, read))
}

// GetTransition looks up the rule for (from, read). Absence is the
// machine's halting condition, not an error.
func (t *Table) GetTransition(from turingruntime.State, read []turingruntime.Symbol) (to turingruntime.State, write []turingruntime.Symbol, ok bool) {
	r, ok := t.rules[transitionKey(from, read)]
	if !ok {
		return 0, nil, false
	}
	return r.To, r.Write, true
}

// AddFinalState marks s as accepting. Out-of-range states are dropped.
func (t *Table) AddFinalState(s turingruntime.State) {
	if s < 0 || int(s) >= t.states {
		return
	}
	t.finals[s] = struct{}{}
}

// AddFinalStates marks each given state as accepting, dropping any that
// are out of range.
func (t *Table) AddFinalStates(states []turingruntime.State) {
	for _, s := range states {
		t.AddFinalState(s)
	}
}

// IsFinalState reports whether s is accepting.
func (t *Table) IsFinalState(s turingruntime.State) bool {
	_, ok := t.finals[s]
	return ok
}

// FinalStates returns the accepting states in ascending order.
func (t *Table) FinalStates() []turingruntime.State {
	out := make([]turingruntime.State, 0, len(t.finals))
	for s := range t.finals {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transitions returns a snapshot of all rules in canonical order, ascending
// by (From, Read) lexicographically. The snapshot is independent of the map
// iteration order, so encoders built on it produce stable output.
func (t *Table) Transitions() []Rule {
	out := make([]Rule, 0, len(t.rules))
	for _, r := range t.rules {
		out = append(out, Rule{
			From:  r.From,
			Read:  append([]turingruntime.Symbol(nil), r.Read...),
			Write: append([]turingruntime.Symbol(nil), r.Write...),
			To:    r.To,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		for k := range out[i].Read {
			if out[i].Read[k] != out[j].Read[k] {
				return out[i].Read[k] < out[j].Read[k]
			}
		}
		return false
	})
	return out
}

// TransitionCount returns the number of registered rules.
func (t *Table) TransitionCount() int {
	return len(t.rules)
}

// Clone returns a deep copy of the table. Computations clone the table they
// are given so later edits to the original cannot affect a running machine.
func (t *Table) Clone() *Table {
	c := New(t.states, t.symbols, t.tapes)
	for s := range t.finals {
		c.finals[s] = struct{}{}
	}
	for k, r := range t.rules {
		c.rules[k] = Rule{
			From:  r.From,
			Read:  append([]turingruntime.Symbol(nil), r.Read...),
			Write: append([]turingruntime.Symbol(nil), r.Write...),
			To:    r.To,
		}
	}
	return c
}

// String returns a readable summary of the machine: states, final states,
// symbol space, move symbols, tape count and every transition in canonical
// order.
func (t *Table) String() string {
	var b strings.Builder

	b.WriteString("States Q = { ")
	for i := 0; i < t.states; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "q%d", i)
	}
	fmt.Fprintf(&b, " }\n|Q| = %d\n\n", t.states)

	b.WriteString("Final States F = { ")
	for i, s := range t.FinalStates() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "q%d", s)
	}
	b.WriteString(" }\n\n")

	fmt.Fprintf(&b, "Number of symbols |S| = %d\n", t.symbols)
	fmt.Fprintf(&b, "Right (R): %d\n", t.Right())
	fmt.Fprintf(&b, "Left (L): %d\n\n", t.Left())

	fmt.Fprintf(&b, "Number of tapes: %d\n\n", t.tapes)

	b.WriteString("Transitions:\n")
	for _, r := range t.Transitions() {
		fmt.Fprintf(&b, "%d (", r.From)
		for i, s := range r.Read {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", s)
		}
		b.WriteString(") (")
		for i, s := range r.Write {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", s)
		}
		fmt.Fprintf(&b, ") %d\n", r.To)
	}

	return b.String()
}
