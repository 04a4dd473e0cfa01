// Package tape implements the left-bounded, right-growing cell sequence a
// Turing machine reads and writes through a single head.
package tape

import (
	turingruntime "github.com/turinglab/turing-runtime"
)

// MaxCells caps how far a tape can grow. Past this, MoveRight fails and the
// head stays put, so a runaway machine cannot exhaust memory.
const MaxCells = 999999

// Tape is a left-limited tape: cell 0 is the leftmost cell and the sequence
// only ever grows to the right. The head is always a valid index into the
// allocated cells.
//
// A Tape must be used by at most one computation at a time.
type Tape struct {
	cells []turingruntime.Symbol
	head  int
}

// New creates a tape with the given number of cells, all Blank, head at
// cell 0. Sizes below 1 are clamped to 1 so the head invariant holds.
func New(size int) *Tape {
	if size < 1 {
		size = 1
	}
	if size > MaxCells {
		size = MaxCells
	}
	cells := make([]turingruntime.Symbol, size)
	for i := range cells {
		cells[i] = turingruntime.Blank
	}
	return &Tape{cells: cells}
}

// FromContent creates a tape holding a copy of the given cells, head at
// cell 0. An empty slice yields a single blank cell.
func FromContent(cells []turingruntime.Symbol) *Tape {
	if len(cells) == 0 {
		return New(1)
	}
	if len(cells) > MaxCells {
		cells = cells[:MaxCells]
	}
	return &Tape{cells: append([]turingruntime.Symbol(nil), cells...)}
}

// Read returns the symbol in the cell under the head.
func (t *Tape) Read() turingruntime.Symbol {
	return t.cells[t.head]
}

// Write overwrites the cell under the head. Only Blank or non-negative
// symbols may be written; values below Blank are dropped.
func (t *Tape) Write(s turingruntime.Symbol) {
	if s < turingruntime.Blank {
		return
	}
	t.cells[t.head] = s
}

// MoveLeft moves the head one cell left. It reports false, without moving,
// when the head is already on cell 0.
func (t *Tape) MoveLeft() bool {
	if t.head == 0 {
		return false
	}
	t.head--
	return true
}

// MoveRight moves the head one cell right, appending a Blank cell when the
// head is on the last allocated cell. It reports false, without moving,
// when the tape has reached MaxCells.
func (t *Tape) MoveRight() bool {
	if t.head == len(t.cells)-1 {
		if len(t.cells) >= MaxCells {
			return false
		}
		t.cells = append(t.cells, turingruntime.Blank)
	}
	t.head++
	return true
}

// HeadPosition returns the index of the cell the head is on.
func (t *Tape) HeadPosition() int {
	return t.head
}

// Size returns the number of allocated cells. Conceptually the tape is
// infinite to the right; Size counts only the cells touched so far.
func (t *Tape) Size() int {
	return len(t.cells)
}

// Content returns a snapshot of the allocated cells.
func (t *Tape) Content() []turingruntime.Symbol {
	return append([]turingruntime.Symbol(nil), t.cells...)
}

// Rewind moves the head back to cell 0.
func (t *Tape) Rewind() {
	t.head = 0
}

// Seek rewinds and then moves the head right to the given position,
// growing the tape as needed. It stops early at the growth cap.
func (t *Tape) Seek(pos int) {
	t.Rewind()
	for i := 0; i < pos; i++ {
		if !t.MoveRight() {
			return
		}
	}
}
