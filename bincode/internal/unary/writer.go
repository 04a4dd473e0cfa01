package unary

import "strings"

// Writer builds a bit string.
type Writer struct {
	b strings.Builder
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Uint writes v as v+1 ones. v must be >= -1; -1 writes nothing.
func (w *Writer) Uint(v int) {
	for i := 0; i <= v; i++ {
		w.b.WriteByte('1')
	}
}

// Zero writes a single separator digit.
func (w *Writer) Zero() {
	w.b.WriteByte('0')
}

// Zeros writes n separator digits.
func (w *Writer) Zeros(n int) {
	for i := 0; i < n; i++ {
		w.b.WriteByte('0')
	}
}

// String returns the accumulated bit string.
func (w *Writer) String() string {
	return w.b.String()
}
