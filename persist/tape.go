package persist

import (
	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/tape"
)

// TapeDoc is the persisted form of a tape: its cells and head position.
type TapeDoc struct {
	Content []int `json:"Content"`
	Head    int   `json:"Head"`
}

// TapeDocOf snapshots a tape into its document form.
func TapeDocOf(t *tape.Tape) TapeDoc {
	content := t.Content()
	doc := TapeDoc{
		Content: make([]int, len(content)),
		Head:    t.HeadPosition(),
	}
	for i, s := range content {
		doc.Content[i] = int(s)
	}
	return doc
}

// Build reconstructs the tape the document describes, seeking the head to
// the persisted position and growing the tape if the position lies past
// the persisted content.
func (d TapeDoc) Build() *tape.Tape {
	cells := make([]turingruntime.Symbol, len(d.Content))
	for i, v := range d.Content {
		cells[i] = turingruntime.Symbol(v)
	}
	t := tape.FromContent(cells)
	if d.Head > 0 {
		t.Seek(d.Head)
	}
	return t
}
