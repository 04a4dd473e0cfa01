package tape_test

import (
	"testing"

	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/tape"
)

func TestNewFillsWithBlank(t *testing.T) {
	tp := tape.New(4)
	if tp.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", tp.Size())
	}
	if tp.HeadPosition() != 0 {
		t.Errorf("HeadPosition() = %d, want 0", tp.HeadPosition())
	}
	for i, s := range tp.Content() {
		if s != turingruntime.Blank {
			t.Errorf("cell %d = %d, want Blank", i, s)
		}
	}
}

func TestNewClampsSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		tp := tape.New(size)
		if tp.Size() != 1 {
			t.Errorf("New(%d).Size() = %d, want 1", size, tp.Size())
		}
	}
}

func TestFromContent(t *testing.T) {
	cells := []turingruntime.Symbol{1, turingruntime.Blank, 0}
	tp := tape.FromContent(cells)

	if tp.Read() != 1 {
		t.Errorf("Read() = %d, want 1", tp.Read())
	}

	// The tape holds a copy, not the caller's slice.
	cells[0] = 9
	if tp.Read() != 1 {
		t.Error("tape content aliased the input slice")
	}

	if got := tape.FromContent(nil).Size(); got != 1 {
		t.Errorf("FromContent(nil).Size() = %d, want 1", got)
	}
}

func TestWrite(t *testing.T) {
	tp := tape.New(1)

	tp.Write(3)
	if tp.Read() != 3 {
		t.Errorf("Read() = %d, want 3", tp.Read())
	}

	tp.Write(turingruntime.Blank)
	if tp.Read() != turingruntime.Blank {
		t.Errorf("Read() = %d, want Blank", tp.Read())
	}

	// Values below Blank are rejected without effect.
	tp.Write(1)
	tp.Write(-2)
	if tp.Read() != 1 {
		t.Errorf("Read() = %d after rejected write, want 1", tp.Read())
	}
}

func TestMoveLeftBoundedAtZero(t *testing.T) {
	tp := tape.New(3)
	tp.MoveRight()
	tp.MoveRight()

	moves := 0
	for tp.MoveLeft() {
		moves++
	}
	if moves != 2 {
		t.Errorf("moved left %d times, want 2", moves)
	}
	if tp.HeadPosition() != 0 {
		t.Errorf("HeadPosition() = %d, want 0", tp.HeadPosition())
	}
	if tp.MoveLeft() {
		t.Error("MoveLeft() at cell 0 reported movement")
	}
	if tp.HeadPosition() != 0 {
		t.Errorf("HeadPosition() corrupted to %d after failed move", tp.HeadPosition())
	}
}

func TestMoveRightGrowsTape(t *testing.T) {
	tp := tape.New(1)
	tp.Write(0)

	if !tp.MoveRight() {
		t.Fatal("MoveRight() failed on growable tape")
	}
	if tp.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tp.Size())
	}
	if tp.Read() != turingruntime.Blank {
		t.Errorf("new cell = %d, want Blank", tp.Read())
	}

	// Moving within already-allocated cells does not grow the tape.
	tp.MoveLeft()
	if !tp.MoveRight() {
		t.Fatal("MoveRight() failed inside allocated cells")
	}
	if tp.Size() != 2 {
		t.Errorf("Size() = %d after interior move, want 2", tp.Size())
	}
}

func TestMoveRightStopsAtCap(t *testing.T) {
	tp := tape.FromContent(make([]turingruntime.Symbol, tape.MaxCells))
	tp.Seek(tape.MaxCells - 1)

	if tp.HeadPosition() != tape.MaxCells-1 {
		t.Fatalf("HeadPosition() = %d, want %d", tp.HeadPosition(), tape.MaxCells-1)
	}
	if tp.MoveRight() {
		t.Error("MoveRight() succeeded past the growth cap")
	}
	if tp.HeadPosition() != tape.MaxCells-1 {
		t.Errorf("head moved to %d on failed MoveRight", tp.HeadPosition())
	}
	if tp.Size() != tape.MaxCells {
		t.Errorf("Size() = %d, want %d", tp.Size(), tape.MaxCells)
	}
}

func TestSeek(t *testing.T) {
	tp := tape.New(1)
	tp.Seek(3)

	if tp.HeadPosition() != 3 {
		t.Errorf("HeadPosition() = %d, want 3", tp.HeadPosition())
	}
	if tp.Size() != 4 {
		t.Errorf("Size() = %d, want 4", tp.Size())
	}

	tp.Seek(1)
	if tp.HeadPosition() != 1 {
		t.Errorf("HeadPosition() after re-seek = %d, want 1", tp.HeadPosition())
	}
}

func TestContentIsSnapshot(t *testing.T) {
	tp := tape.New(2)
	snap := tp.Content()
	snap[0] = 7

	if tp.Read() != turingruntime.Blank {
		t.Error("mutating the snapshot changed the tape")
	}
}
