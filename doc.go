// Package turingruntime provides a Go implementation of multi-tape
// deterministic Turing machines.
//
// The library models a machine's transition table, drives a step-by-step
// computation across K tapes under external pause/resume/stop control, and
// persists machines through a compact unary bit-string encoding as well as
// JSON documents.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	turingruntime/       Root package with the State/Symbol domain and the Alphabet contract
//	├── machine/         Transition table: states, symbols, final states, deterministic rules
//	├── tape/            Left-bounded, right-growing tape with a read/write head
//	├── computation/     Run controller: one worker goroutine, pause/resume/stop protocol
//	├── bincode/         Unary {0,1} bit-string codec for machine definitions
//	├── alphabet/        Bidirectional character-to-symbol mapping for readable I/O
//	├── persist/         JSON documents for machines, alphabets and tapes
//	└── errors/          Structured error types for decode and load failures
//
// # Quick Start
//
// Build a machine, attach tapes and run it:
//
//	m := machine.New(2, 1, 1)
//	m.AddTransition(0, []turingruntime.Symbol{0}, []turingruntime.Symbol{m.Right()}, 0)
//	m.AddTransition(0, []turingruntime.Symbol{turingruntime.Blank}, []turingruntime.Symbol{0}, 1)
//	m.AddFinalState(1)
//
//	c := computation.New()
//	c.UseMachine(m)
//	c.UseAlphabet(alpha)
//	c.InputString("000")
//	if err := c.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	c.Wait(context.Background())
//	fmt.Println(c.HasAccepted(), c.Output(0))
//
// # Thread Safety
//
// Table, Tape and Alphabet are NOT safe for concurrent use; each belongs to
// at most one Computation. A Computation's control surface (Pause, Resume,
// Stop, Wait and the flag accessors) is safe to call from any goroutine
// while the run loop is executing.
//
// # Tape Model
//
// Tapes are left-limited: the head never moves below cell 0, and the cell
// sequence only grows to the right, up to a fixed maximum. A machine that
// never finds an applicable transition halts on its own; one that loops
// forever must be stopped externally.
package turingruntime
