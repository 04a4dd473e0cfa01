package bincode

import (
	"github.com/turinglab/turing-runtime/bincode/internal/unary"
	"github.com/turinglab/turing-runtime/machine"
)

// Encode renders the machine definition as a bit string. The output
// depends only on the table's contents, not on insertion order.
func Encode(t *machine.Table) string {
	w := unary.NewWriter()

	w.Uint(t.Tapes())
	w.Zeros(2)

	w.Uint(t.States())
	w.Zeros(2)

	w.Uint(t.Symbols())
	w.Zeros(2)

	for _, f := range t.FinalStates() {
		w.Uint(int(f))
		w.Zero()
	}
	w.Zeros(3)

	for _, r := range t.Transitions() {
		w.Uint(int(r.From))
		w.Zeros(2)

		for _, s := range r.Read {
			w.Uint(int(s))
			w.Zero()
		}
		w.Zero()

		for _, s := range r.Write {
			w.Uint(int(s))
			w.Zero()
		}
		w.Zero()

		w.Uint(int(r.To))
		w.Zeros(3)
	}
	w.Zero()

	return w.String()
}
