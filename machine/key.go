package machine

import (
	"strconv"

	turingruntime "github.com/turinglab/turing-runtime"
)

// transitionKey packs a state and a read-symbol tuple into a map key.
// Symbols may be negative (Blank), so values are written in decimal with a
// separator rather than packed positionally.
func transitionKey(from turingruntime.State, read []turingruntime.Symbol) string {
	b := make([]byte, 0, 4*(len(read)+1))
	b = strconv.AppendInt(b, int64(from), 10)
	for _, s := range read {
		b = append(b, '|')
		b = strconv.AppendInt(b, int64(s), 10)
	}
	return string(b)
}
