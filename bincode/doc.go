// Package bincode encodes and decodes machine definitions as bit strings
// over the characters '0' and '1'.
//
// Every integer in the format is unary coded: a value v is written as v+1
// ones, so the blank sentinel (-1) codes as an empty run. The stream is,
// in order: the tape count, "00", the state count, "00", the symbol count,
// "00", the final states ascending (each followed by "0", the list closed
// by "000"), then the transition list. Each transition is the source state,
// "00", the read symbols (each followed by "0", the group closed by one
// more "0"), the written symbols or moves (same shape), and the target
// state followed by "000". A single "0" closes the list.
//
// The format is self-delimiting because a real entry always starts with at
// least one '1': a '0' where an entry is expected means the list is over.
// Transitions are emitted in the table's canonical order, so equal tables
// encode to equal strings regardless of insertion order.
//
// Decoding fails closed: truncated input, stray characters, trailing data
// and a tape count other than the caller's all return a structured error
// instead of a partially reconstructed machine.
package bincode
