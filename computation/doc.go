// Package computation couples one transition table to a set of tapes and
// drives the machine to completion.
//
// A Computation moves through Configured -> Running -> {Terminated,
// Stopped}, with Running and Paused alternating in between. Terminated
// means the machine halted on its own because no transition matched;
// Stopped means an external Stop call forced the halt. The two are
// mutually exclusive and, once set, final. Acceptance requires natural
// termination in a final state.
//
// Execution is asynchronous: Start spawns a single worker goroutine that
// performs one transition per iteration, and returns immediately. The
// controlling goroutine interacts only through Pause, Resume, Stop, the
// flag accessors and Wait. The worker checks the pause gate before each
// step, so a step never straddles a suspension, and a stop request is
// observed within one step.
package computation
