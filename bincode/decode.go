package bincode

import (
	stderrors "errors"

	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/bincode/internal/unary"
	"github.com/turinglab/turing-runtime/errors"
	"github.com/turinglab/turing-runtime/machine"
)

// Decode reconstructs a machine definition from a bit string produced by
// Encode. tapes is the tape count the caller is built for; a stream
// describing a machine with a different tape count is rejected.
func Decode(s string, tapes int) (*machine.Table, error) {
	r := unary.NewReader(s)

	k := r.Uint()
	if k != tapes {
		return nil, errors.TapeMismatch(errors.PhaseDecode, tapes, k)
	}
	if err := r.ExpectRun('0', 2); err != nil {
		return nil, wrap(r, "tape count", err)
	}

	states := r.Uint()
	if err := r.ExpectRun('0', 2); err != nil {
		return nil, wrap(r, "state count", err)
	}

	symbols := r.Uint()
	if err := r.ExpectRun('0', 2); err != nil {
		return nil, wrap(r, "symbol count", err)
	}

	t := machine.New(states, symbols, tapes)

	// Final states: entries until a '0' appears where a run of ones is
	// expected, then the three closing zeros (the first of which is the
	// '0' that ended the list).
	for {
		c, ok := r.Peek()
		if !ok {
			return nil, errors.Truncated(errors.PhaseDecode, r.Position())
		}
		if c == '0' {
			break
		}
		f := r.Uint()
		if err := r.Expect('0'); err != nil {
			return nil, wrap(r, "final states", err)
		}
		t.AddFinalState(turingruntime.State(f))
	}
	if err := r.ExpectRun('0', 3); err != nil {
		return nil, wrap(r, "final states", err)
	}

	for {
		c, ok := r.Peek()
		if !ok {
			return nil, errors.Truncated(errors.PhaseDecode, r.Position())
		}
		if c == '0' {
			break
		}
		if err := decodeTransition(r, t, tapes); err != nil {
			return nil, err
		}
	}
	if err := r.Expect('0'); err != nil {
		return nil, wrap(r, "transition list", err)
	}

	if r.Position() != r.Len() {
		return nil, errors.InvalidData(errors.PhaseDecode, "trailing data after transition list")
	}
	return t, nil
}

func decodeTransition(r *unary.Reader, t *machine.Table, tapes int) error {
	from := r.Uint()
	if err := r.ExpectRun('0', 2); err != nil {
		return wrap(r, "transition source state", err)
	}

	read := make([]turingruntime.Symbol, tapes)
	for i := range read {
		read[i] = turingruntime.Symbol(r.Uint())
		if err := r.Expect('0'); err != nil {
			return wrap(r, "transition read symbols", err)
		}
	}
	if err := r.Expect('0'); err != nil {
		return wrap(r, "transition read symbols", err)
	}

	write := make([]turingruntime.Symbol, tapes)
	for i := range write {
		write[i] = turingruntime.Symbol(r.Uint())
		if err := r.Expect('0'); err != nil {
			return wrap(r, "transition write symbols", err)
		}
	}
	if err := r.Expect('0'); err != nil {
		return wrap(r, "transition write symbols", err)
	}

	to := r.Uint()
	if err := r.ExpectRun('0', 3); err != nil {
		return wrap(r, "transition target state", err)
	}

	t.AddTransition(turingruntime.State(from), read, write, turingruntime.State(to))
	return nil
}

func wrap(r *unary.Reader, section string, err error) error {
	kind := errors.KindInvalidData
	if stderrors.Is(err, unary.ErrTruncated) {
		kind = errors.KindTruncated
	}
	return errors.Wrap(errors.PhaseDecode, kind, r.WrapError(section, err), "malformed binary representation")
}
