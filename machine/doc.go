// Package machine models the transition table of a deterministic multi-tape
// Turing machine.
//
// A Table owns a fixed state count, a fixed symbol count, a set of final
// states and a partial transition function keyed by the current state and
// the K-tuple of symbols under the heads. Determinism is enforced at
// insertion time: the first transition registered for a key wins and later
// inserts for the same key are ignored.
//
// Table-building operations never return errors. Out-of-range states or
// symbols make the call a no-op, matching the error model of the rest of
// the library where absence of effect is checked through lookups, not
// exceptions.
package machine
