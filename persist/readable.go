package persist

import (
	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/alphabet"
	"github.com/turinglab/turing-runtime/machine"
)

// ReadableTransition translates a transition written with characters into
// a rule for the given table: 'L' and 'R' map to the table's move symbols
// and every other character resolves through the alphabet. Both tuples
// must have one character per tape. It reports false when a character is
// outside the alphabet or the arity is wrong.
func ReadableTransition(a *alphabet.Alphabet, t *machine.Table, from turingruntime.State, read, write string, to turingruntime.State) (machine.Rule, bool) {
	readSyms, ok := resolveTuple(a, t, read)
	if !ok {
		return machine.Rule{}, false
	}
	writeSyms, ok := resolveTuple(a, t, write)
	if !ok {
		return machine.Rule{}, false
	}
	return machine.Rule{From: from, Read: readSyms, Write: writeSyms, To: to}, true
}

func resolveTuple(a *alphabet.Alphabet, t *machine.Table, chars string) ([]turingruntime.Symbol, bool) {
	out := make([]turingruntime.Symbol, 0, t.Tapes())
	for _, r := range chars {
		switch r {
		case 'L':
			out = append(out, t.Left())
		case 'R':
			out = append(out, t.Right())
		default:
			s, ok := a.Resolve(r)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
	}
	if len(out) != t.Tapes() {
		return nil, false
	}
	return out, true
}
