package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want []string
	}{
		{
			name: "phase and kind",
			err:  InvalidData(PhaseDecode, "trailing data"),
			want: []string{"[decode]", "invalid_data", "trailing data"},
		},
		{
			name: "truncated with offset",
			err:  Truncated(PhaseDecode, 17),
			want: []string{"[decode]", "truncated", "offset 17"},
		},
		{
			name: "tape mismatch",
			err:  TapeMismatch(PhasePersist, 2, 3),
			want: []string{"[persist]", "tape_mismatch", "3 tape(s)", "expected 2"},
		},
		{
			name: "path",
			err: &Error{
				Phase:  PhasePersist,
				Kind:   KindInvalidData,
				Path:   []string{"Transitions", "4"},
				Detail: "wrong arity",
			},
			want: []string{"at Transitions.4", "wrong arity"},
		},
		{
			name: "cause",
			err:  Load("read machine document", fmt.Errorf("no such file")),
			want: []string{"[load]", "caused by: no such file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, w := range tt.want {
				if !strings.Contains(msg, w) {
					t.Errorf("message %q missing %q", msg, w)
				}
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := Truncated(PhaseDecode, 3)

	if !stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindTruncated}) {
		t.Error("expected match on phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseLoad, Kind: KindTruncated}) {
		t.Error("unexpected match on different phase")
	}
	if stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindInvalidData}) {
		t.Error("unexpected match on different kind")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(PhaseLoad, KindInvalidData, cause, "parse tape document")

	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause to be found")
	}
	if stderrors.Unwrap(err) != cause {
		t.Errorf("Unwrap: got %v, want %v", stderrors.Unwrap(err), cause)
	}
}
