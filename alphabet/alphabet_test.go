package alphabet_test

import (
	"testing"

	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/alphabet"
)

func TestAddSymbolAssignsIndicesInOrder(t *testing.T) {
	a := alphabet.New()
	a.AddSymbols("abc")

	for i, r := range "abc" {
		s, ok := a.Resolve(r)
		if !ok {
			t.Fatalf("Resolve(%q) not found", r)
		}
		if s != turingruntime.Symbol(i) {
			t.Errorf("Resolve(%q) = %d, want %d", r, s, i)
		}
	}
	if a.SymbolCount() != 3 {
		t.Errorf("SymbolCount() = %d, want 3", a.SymbolCount())
	}
}

func TestAddSymbolIgnoresDuplicates(t *testing.T) {
	a := alphabet.New()
	a.AddSymbols("aba")

	if a.SymbolCount() != 2 {
		t.Errorf("SymbolCount() = %d, want 2", a.SymbolCount())
	}
	if s, _ := a.Resolve('a'); s != 0 {
		t.Errorf("Resolve('a') = %d, want original index 0", s)
	}
}

func TestResolveUnknown(t *testing.T) {
	a := alphabet.FromString("01")
	if _, ok := a.Resolve('x'); ok {
		t.Error("Resolve of unknown character succeeded")
	}
}

func TestRepresent(t *testing.T) {
	a := alphabet.FromString("01")

	r, ok := a.Represent(1)
	if !ok || r != '1' {
		t.Errorf("Represent(1) = (%q, %v), want ('1', true)", r, ok)
	}
	if _, ok := a.Represent(2); ok {
		t.Error("Represent of unmapped symbol succeeded")
	}
}

func TestBlankIsAlwaysMapped(t *testing.T) {
	a := alphabet.New()

	s, ok := a.Resolve(turingruntime.BlankRune)
	if !ok || s != turingruntime.Blank {
		t.Errorf("Resolve(blank rune) = (%d, %v), want (Blank, true)", s, ok)
	}
	r, ok := a.Represent(turingruntime.Blank)
	if !ok || r != turingruntime.BlankRune {
		t.Errorf("Represent(Blank) = (%q, %v), want (blank rune, true)", r, ok)
	}
}
