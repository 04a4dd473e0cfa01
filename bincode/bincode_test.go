package bincode_test

import (
	"errors"
	"testing"

	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/bincode"
	tmerrors "github.com/turinglab/turing-runtime/errors"
	"github.com/turinglab/turing-runtime/machine"
)

func sym(vals ...int) []turingruntime.Symbol {
	out := make([]turingruntime.Symbol, len(vals))
	for i, v := range vals {
		out[i] = turingruntime.Symbol(v)
	}
	return out
}

// incrementMachine is the 1-tape machine that walks right over the input
// and writes one extra symbol on the first blank cell.
func incrementMachine() *machine.Table {
	m := machine.New(2, 1, 1)
	m.AddTransition(0, sym(0), sym(int(m.Right())), 0)
	m.AddTransition(0, sym(-1), sym(0), 1)
	m.AddFinalState(1)
	return m
}

func TestEncodeGolden(t *testing.T) {
	m := machine.New(2, 1, 1)
	m.AddTransition(0, sym(-1), sym(0), 1)
	m.AddFinalState(1)

	// 2 tapes-count ones, state count, symbol count, final state 1,
	// list terminator, one transition, list terminator.
	want := "1100" + "11100" + "1100" + "110" + "000" +
		"100" + "0" + "0" + "10" + "0" + "11000" +
		"0"
	if got := bincode.Encode(m); got != want {
		t.Errorf("Encode:\n got %s\nwant %s", got, want)
	}
}

func TestEncodeIsCanonical(t *testing.T) {
	a := machine.New(3, 2, 1)
	a.AddTransition(0, sym(0), sym(1), 1)
	a.AddTransition(1, sym(1), sym(0), 2)
	a.AddFinalState(2)
	a.AddFinalState(0)

	b := machine.New(3, 2, 1)
	b.AddFinalState(0)
	b.AddTransition(1, sym(1), sym(0), 2)
	b.AddFinalState(2)
	b.AddTransition(0, sym(0), sym(1), 1)

	if bincode.Encode(a) != bincode.Encode(b) {
		t.Error("encodings differ for equal tables built in different order")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() *machine.Table
		tapes int
	}{
		{"increment machine", incrementMachine, 1},
		{
			"empty machine", func() *machine.Table {
				return machine.New(1, 1, 1)
			}, 1,
		},
		{
			"multiple final states", func() *machine.Table {
				m := machine.New(5, 2, 1)
				m.AddFinalStates([]turingruntime.State{1, 3, 4})
				m.AddTransition(0, sym(1), sym(0), 3)
				return m
			}, 1,
		},
		{
			"two tapes with moves and blanks", func() *machine.Table {
				m := machine.New(4, 3, 2)
				m.AddTransition(0, sym(0, -1), sym(int(m.Right()), 2), 1)
				m.AddTransition(1, sym(2, 2), sym(int(m.Left()), int(m.Left())), 2)
				m.AddTransition(2, sym(-1, -1), sym(-1, 0), 3)
				m.AddFinalState(3)
				return m
			}, 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.build()
			got, err := bincode.Decode(bincode.Encode(m), tt.tapes)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			if got.States() != m.States() || got.Symbols() != m.Symbols() || got.Tapes() != m.Tapes() {
				t.Errorf("counts: got (%d,%d,%d), want (%d,%d,%d)",
					got.States(), got.Symbols(), got.Tapes(), m.States(), m.Symbols(), m.Tapes())
			}

			wantFinals := m.FinalStates()
			gotFinals := got.FinalStates()
			if len(gotFinals) != len(wantFinals) {
				t.Fatalf("final states: got %v, want %v", gotFinals, wantFinals)
			}
			for i := range wantFinals {
				if gotFinals[i] != wantFinals[i] {
					t.Errorf("final states: got %v, want %v", gotFinals, wantFinals)
					break
				}
			}

			wantRules := m.Transitions()
			gotRules := got.Transitions()
			if len(gotRules) != len(wantRules) {
				t.Fatalf("transitions: got %d, want %d", len(gotRules), len(wantRules))
			}
			for i, w := range wantRules {
				g := gotRules[i]
				if g.From != w.From || g.To != w.To {
					t.Errorf("rule %d: got (%d -> %d), want (%d -> %d)", i, g.From, g.To, w.From, w.To)
				}
				for k := range w.Read {
					if g.Read[k] != w.Read[k] || g.Write[k] != w.Write[k] {
						t.Errorf("rule %d symbols: got (%v, %v), want (%v, %v)", i, g.Read, g.Write, w.Read, w.Write)
					}
				}
			}
		})
	}
}

func TestDecodeTapeCountMismatch(t *testing.T) {
	enc := bincode.Encode(incrementMachine())

	_, err := bincode.Decode(enc, 2)
	if err == nil {
		t.Fatal("expected error for wrong tape count")
	}
	if !errors.Is(err, &tmerrors.Error{Phase: tmerrors.PhaseDecode, Kind: tmerrors.KindTapeMismatch}) {
		t.Errorf("got %v, want tape_mismatch", err)
	}

	if _, err := bincode.Decode("", 1); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestDecodeTruncated(t *testing.T) {
	enc := bincode.Encode(incrementMachine())

	// Every proper prefix must fail, not silently produce a machine.
	for cut := 1; cut < len(enc); cut++ {
		if _, err := bincode.Decode(enc[:cut], 1); err == nil {
			t.Errorf("Decode of %d-byte prefix succeeded", cut)
		}
	}
}

func TestDecodeBadCharacter(t *testing.T) {
	enc := bincode.Encode(incrementMachine())
	corrupted := enc[:5] + "x" + enc[6:]

	_, err := bincode.Decode(corrupted, 1)
	if err == nil {
		t.Fatal("expected error for stray character")
	}
	if !errors.Is(err, &tmerrors.Error{Phase: tmerrors.PhaseDecode, Kind: tmerrors.KindInvalidData}) {
		t.Errorf("got %v, want invalid_data", err)
	}
}

func TestDecodeTrailingData(t *testing.T) {
	enc := bincode.Encode(incrementMachine())

	for _, junk := range []string{"0", "1", "10"} {
		if _, err := bincode.Decode(enc+junk, 1); err == nil {
			t.Errorf("Decode with trailing %q succeeded", junk)
		}
	}
}

func TestDecodeClampsCounts(t *testing.T) {
	// Hand-crafted stream for one tape with empty state and symbol runs:
	// both decode as -1 and clamp to the minimal machine.
	enc := "1100" + "00" + "00" + "000" + "0"
	m, err := bincode.Decode(enc, 1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.States() != 1 || m.Symbols() != 1 {
		t.Errorf("counts: got (%d,%d), want clamped (1,1)", m.States(), m.Symbols())
	}
	if m.TransitionCount() != 0 {
		t.Errorf("TransitionCount() = %d, want 0", m.TransitionCount())
	}
}
