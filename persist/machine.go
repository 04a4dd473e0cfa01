package persist

import (
	"fmt"

	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/errors"
	"github.com/turinglab/turing-runtime/machine"
)

// TransitionDoc is one persisted transition quadruple.
type TransitionDoc struct {
	From  int   `json:"q"`
	Read  []int `json:"x"`
	Write []int `json:"a"`
	To    int   `json:"t"`
}

// MachineDoc is the persisted form of a machine definition.
type MachineDoc struct {
	Tapes       int             `json:"#Tapes"`
	States      int             `json:"#States"`
	Symbols     int             `json:"#Symbols"`
	FinalStates []int           `json:"FStates"`
	Transitions []TransitionDoc `json:"Transitions"`
}

// MachineDocOf snapshots a table into its document form, transitions in
// canonical order.
func MachineDocOf(t *machine.Table) MachineDoc {
	doc := MachineDoc{
		Tapes:       t.Tapes(),
		States:      t.States(),
		Symbols:     t.Symbols(),
		FinalStates: make([]int, 0, len(t.FinalStates())),
		Transitions: make([]TransitionDoc, 0, t.TransitionCount()),
	}
	for _, f := range t.FinalStates() {
		doc.FinalStates = append(doc.FinalStates, int(f))
	}
	for _, r := range t.Transitions() {
		td := TransitionDoc{From: int(r.From), To: int(r.To)}
		for _, s := range r.Read {
			td.Read = append(td.Read, int(s))
		}
		for _, s := range r.Write {
			td.Write = append(td.Write, int(s))
		}
		doc.Transitions = append(doc.Transitions, td)
	}
	return doc
}

// Build reconstructs the table the document describes. tapes is the tape
// count the caller is built for; a document for a different tape count is
// rejected, as is any transition whose tuples do not have one symbol per
// tape.
func (d MachineDoc) Build(tapes int) (*machine.Table, error) {
	if d.Tapes != tapes {
		return nil, errors.TapeMismatch(errors.PhasePersist, tapes, d.Tapes)
	}

	t := machine.New(d.States, d.Symbols, tapes)
	for _, f := range d.FinalStates {
		t.AddFinalState(turingruntime.State(f))
	}

	for i, td := range d.Transitions {
		if len(td.Read) != tapes || len(td.Write) != tapes {
			return nil, &errors.Error{
				Phase:  errors.PhasePersist,
				Kind:   errors.KindInvalidData,
				Path:   []string{"Transitions", fmt.Sprint(i)},
				Detail: fmt.Sprintf("expected %d read and write symbols", tapes),
			}
		}
		read := make([]turingruntime.Symbol, tapes)
		write := make([]turingruntime.Symbol, tapes)
		for k := range td.Read {
			read[k] = turingruntime.Symbol(td.Read[k])
			write[k] = turingruntime.Symbol(td.Write[k])
		}
		t.AddTransition(turingruntime.State(td.From), read, write, turingruntime.State(td.To))
	}
	return t, nil
}
