package persist

import (
	"encoding/json"
	"fmt"

	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/alphabet"
	"github.com/turinglab/turing-runtime/errors"
)

// AlphabetEntry is one symbol of a persisted alphabet. On the wire it is a
// two-element array [index, character] rather than an object.
type AlphabetEntry struct {
	Index int
	Char  string
}

// MarshalJSON renders the entry as its [index, character] tuple.
func (e AlphabetEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Index, e.Char})
}

// UnmarshalJSON parses the [index, character] tuple.
func (e *AlphabetEntry) UnmarshalJSON(data []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[0], &e.Index); err != nil {
		return fmt.Errorf("alphabet entry index: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &e.Char); err != nil {
		return fmt.Errorf("alphabet entry character: %w", err)
	}
	return nil
}

// AlphabetDoc is the persisted form of an alphabet: one entry per symbol,
// ascending by index.
type AlphabetDoc []AlphabetEntry

// AlphabetDocOf snapshots an alphabet into its document form.
func AlphabetDocOf(a *alphabet.Alphabet) AlphabetDoc {
	doc := make(AlphabetDoc, 0, a.SymbolCount())
	for i := 0; i < a.SymbolCount(); i++ {
		r, ok := a.Represent(turingruntime.Symbol(i))
		if !ok {
			continue
		}
		doc = append(doc, AlphabetEntry{Index: i, Char: string(r)})
	}
	return doc
}

// Build reconstructs the alphabet the document describes. Entries must be
// in index order and hold exactly one character each.
func (d AlphabetDoc) Build() (*alphabet.Alphabet, error) {
	a := alphabet.New()
	for i, e := range d {
		runes := []rune(e.Char)
		if len(runes) != 1 {
			return nil, &errors.Error{
				Phase:  errors.PhasePersist,
				Kind:   errors.KindInvalidData,
				Path:   []string{fmt.Sprint(i)},
				Detail: fmt.Sprintf("alphabet entry %q must be a single character", e.Char),
			}
		}
		a.AddSymbol(runes[0])
	}
	return a, nil
}
