// Package unary implements the low-level bit-string primitives for the
// machine codec: unary-coded integers over the characters '0' and '1'.
//
// An integer v >= -1 is coded as v+1 ones, so -1 (the blank sentinel) codes
// as an empty run. Zeros act as separators; their grouping is defined by
// the grammar in package bincode, not here.
package unary

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when the input ends where more digits are required.
var ErrTruncated = errors.New("unary: unexpected end of input")

// Reader scans a bit string with position tracking.
type Reader struct {
	s   string
	pos int
}

// NewReader creates a Reader over s.
func NewReader(s string) *Reader {
	return &Reader{s: s}
}

// Position returns the current offset into the input.
func (r *Reader) Position() int {
	return r.pos
}

// Len returns the total input length.
func (r *Reader) Len() int {
	return len(r.s)
}

// Uint consumes a run of '1' digits and returns the coded value: run
// length minus one, so an empty run yields -1. The terminating separator
// is left for Expect. Characters other than '0' and '1' end the run and
// are reported by the following Expect call.
func (r *Reader) Uint() int {
	n := 0
	for r.pos < len(r.s) && r.s[r.pos] == '1' {
		n++
		r.pos++
	}
	return n - 1
}

// Expect consumes one digit and fails unless it equals c.
func (r *Reader) Expect(c byte) error {
	if r.pos >= len(r.s) {
		return ErrTruncated
	}
	if r.s[r.pos] != c {
		return fmt.Errorf("expected %q, got %q at offset %d", c, r.s[r.pos], r.pos)
	}
	r.pos++
	return nil
}

// ExpectRun consumes n digits, all of which must equal c.
func (r *Reader) ExpectRun(c byte, n int) error {
	for i := 0; i < n; i++ {
		if err := r.Expect(c); err != nil {
			return err
		}
	}
	return nil
}

// Peek returns the next digit without consuming it. It reports false at
// end of input.
func (r *Reader) Peek() (byte, bool) {
	if r.pos >= len(r.s) {
		return 0, false
	}
	return r.s[r.pos], true
}

// WrapError annotates err with the section being parsed and the offset.
func (r *Reader) WrapError(section string, err error) error {
	return fmt.Errorf("%s at offset %d: %w", section, r.pos, err)
}
