// Package persist reads and writes the JSON documents that carry machines,
// alphabets and tapes between runs of the tooling.
//
// The document shapes mirror the established interchange format: a machine
// document with tape, state and symbol counts, final states and a
// transition list; an alphabet document listing [index, character] pairs;
// and a tape document with content and head position. Unlike the silent
// table-building operations, document conversion fails loudly: a tape
// count that does not match the caller's, a transition tuple of the wrong
// arity or a multi-character alphabet entry all produce structured errors.
package persist
