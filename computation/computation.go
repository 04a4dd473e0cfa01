package computation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/errors"
	"github.com/turinglab/turing-runtime/machine"
	"github.com/turinglab/turing-runtime/tape"
)

// Computation executes one machine over K tapes. Configure it with the
// Use* setters, then Start it exactly once; it cannot be rewound or
// restarted. The zero configuration runs the minimal one-state machine on
// a single blank tape and terminates immediately.
type Computation struct {
	mu   sync.Mutex
	cond *sync.Cond

	table *machine.Table
	tapes []*tape.Tape
	alpha turingruntime.Alphabet
	input string

	current turingruntime.State
	count   atomic.Uint64

	started    bool
	paused     atomic.Bool
	stopped    atomic.Bool
	terminated atomic.Bool

	done chan struct{}
	log  *zap.Logger
}

// New creates an unstarted computation for the minimal machine.
func New() *Computation {
	c := &Computation{
		table: machine.New(1, 1, 1),
		tapes: []*tape.Tape{tape.New(1)},
		done:  make(chan struct{}),
		log:   Logger(),
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// UseMachine sets the machine to execute. The table is cloned, so later
// edits to the original do not reach the computation. The tape array is
// resized to the machine's tape count, keeping already-configured tapes
// and filling the rest with fresh blank tapes. No-op after Start.
func (c *Computation) UseMachine(t *machine.Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started || t == nil {
		return
	}
	c.table = t.Clone()

	k := c.table.Tapes()
	tapes := make([]*tape.Tape, k)
	for i := range tapes {
		if i < len(c.tapes) {
			tapes[i] = c.tapes[i]
		} else {
			tapes[i] = tape.New(1)
		}
	}
	c.tapes = tapes
}

// UseTapes sets the machine's tapes, index by index. Entries beyond the
// machine's tape count are dropped. No-op after Start.
func (c *Computation) UseTapes(ts []*tape.Tape) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	for i, t := range ts {
		if i >= len(c.tapes) || t == nil {
			break
		}
		c.tapes[i] = t
	}
}

// UseTape sets the tape at the given index. An out-of-range index is a
// no-op, as is calling after Start.
func (c *Computation) UseTape(t *tape.Tape, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started || t == nil || index < 0 || index >= len(c.tapes) {
		return
	}
	c.tapes[index] = t
}

// UseAlphabet sets the alphabet used to translate the input string and to
// render tape contents. No-op after Start.
func (c *Computation) UseAlphabet(a turingruntime.Alphabet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.alpha = a
}

// InputString records the string to place on the input tape (tape 0). The
// tape is only written when the run starts, not at call time. The call has
// no effect unless an alphabet with at least one symbol is configured.
func (c *Computation) InputString(w string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started || c.alpha == nil || c.alpha.SymbolCount() == 0 {
		return
	}
	c.input = w
}

// Step performs a single transition if one is defined for the current
// state and the symbols under the heads, and reports whether it did. When
// no transition matches, the computation is marked terminated. Step is
// meant for manual, single-stepped execution; do not mix it with Start.
func (c *Computation) Step() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step()
}

// step performs one transition. Callers hold mu.
func (c *Computation) step() bool {
	read := make([]turingruntime.Symbol, len(c.tapes))
	for i, t := range c.tapes {
		read[i] = t.Read()
	}

	to, write, ok := c.table.GetTransition(c.current, read)
	if !ok {
		c.terminated.Store(true)
		return false
	}

	for i, t := range c.tapes {
		switch write[i] {
		case c.table.Right():
			t.MoveRight()
		case c.table.Left():
			t.MoveLeft()
		default:
			t.Write(write[i])
		}
	}
	c.current = to
	return true
}

// writeInput materializes the pending input string. Callers hold mu.
//
// Heads move in lockstep: each input character lands on tape 0 while every
// working tape gets an explicit Blank, so all tapes end up the same length.
// Unknown characters fall back to Blank.
func (c *Computation) writeInput() {
	for _, t := range c.tapes {
		t.Rewind()
	}
	for _, r := range c.input {
		s := turingruntime.Blank
		if v, ok := c.alpha.Resolve(r); ok {
			s = v
		}
		c.tapes[0].Write(s)
		for i := 1; i < len(c.tapes); i++ {
			c.tapes[i].Write(turingruntime.Blank)
		}
		for _, t := range c.tapes {
			t.MoveRight()
		}
	}
	for _, t := range c.tapes {
		t.Rewind()
	}
}

// Start begins the run. It writes the pending input string (if any) to the
// tapes, rewinds every head, resets the transition counter and spawns the
// worker goroutine, returning immediately. Completion must be awaited with
// Wait. Starting twice returns an error.
func (c *Computation) Start() error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return errors.AlreadyStarted()
	}
	c.started = true

	if c.input != "" {
		c.writeInput()
	}
	for _, t := range c.tapes {
		t.Rewind()
	}
	c.count.Store(0)
	c.mu.Unlock()

	c.log.Info("computation started",
		zap.Int("tapes", c.table.Tapes()),
		zap.Int("states", c.table.States()),
		zap.Int("input_len", len(c.input)),
	)
	go c.run()
	return nil
}

// run is the worker loop: block while paused, bail on stop, otherwise
// perform one transition per iteration until the machine halts.
func (c *Computation) run() {
	defer close(c.done)

	for !c.stopped.Load() && !c.terminated.Load() {
		c.mu.Lock()
		for c.paused.Load() && !c.stopped.Load() {
			c.cond.Wait()
		}
		if c.stopped.Load() {
			c.mu.Unlock()
			break
		}
		ok := c.step()
		if ok {
			c.count.Add(1)
		}
		c.mu.Unlock()
		if !ok {
			break
		}
	}

	switch {
	case c.stopped.Load():
		c.log.Info("computation stopped", zap.Uint64("transitions", c.count.Load()))
	default:
		c.log.Info("computation terminated",
			zap.Uint64("transitions", c.count.Load()),
			zap.Bool("accepted", c.HasAccepted()),
		)
	}
}

// Pause requests suspension before the next step. No-op once the run has
// terminated or been stopped.
func (c *Computation) Pause() {
	if c.terminated.Load() || c.stopped.Load() {
		return
	}
	c.paused.Store(true)
	c.log.Debug("computation paused", zap.Uint64("transitions", c.count.Load()))
}

// Resume clears a pending suspension and wakes the worker. No-op unless
// currently paused and still running.
func (c *Computation) Resume() {
	if !c.paused.Load() || c.stopped.Load() || c.terminated.Load() {
		return
	}
	c.mu.Lock()
	c.paused.Store(false)
	c.mu.Unlock()
	c.cond.Broadcast()
	c.log.Debug("computation resumed")
}

// Stop forces the run to halt. The worker observes the request within one
// step; a paused worker is woken so it can observe it promptly. Stop does
// not mark the computation terminated, so a stopped run never accepts.
func (c *Computation) Stop() {
	c.mu.Lock()
	c.stopped.Store(true)
	c.mu.Unlock()
	c.cond.Broadcast()
}

// Wait blocks until the run loop has exited, for any of the three exit
// reasons, or until the context is cancelled.
func (c *Computation) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel closed when the run loop exits.
func (c *Computation) Done() <-chan struct{} {
	return c.done
}

// IsTerminated reports whether the machine halted on its own.
func (c *Computation) IsTerminated() bool {
	return c.terminated.Load()
}

// IsStopped reports whether the run was halted externally.
func (c *Computation) IsStopped() bool {
	return c.stopped.Load()
}

// IsPaused reports whether a suspension is in effect.
func (c *Computation) IsPaused() bool {
	return c.paused.Load()
}

// TransitionCount returns the number of transitions performed so far. While
// the run is live the value is a monitoring snapshot, not tied to any
// particular step boundary.
func (c *Computation) TransitionCount() uint64 {
	return c.count.Load()
}

// CurrentState returns the state the control unit is in.
func (c *Computation) CurrentState() turingruntime.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// HasAccepted reports whether the machine halted naturally in a final
// state. A stopped computation never accepts.
func (c *Computation) HasAccepted() bool {
	if !c.terminated.Load() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.IsFinalState(c.current)
}

// TapeView returns a snapshot of one tape's cells and head position, for
// inspection and display. It returns (nil, 0) for an out-of-range index.
func (c *Computation) TapeView(index int) ([]turingruntime.Symbol, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.tapes) {
		return nil, 0
	}
	return c.tapes[index].Content(), c.tapes[index].HeadPosition()
}

// Output renders one tape through the alphabet. Symbols with no
// representation render as the blank character, and the fixed "..." suffix
// stands for the untouched infinity to the right. An out-of-range index
// yields the empty string.
func (c *Computation) Output(index int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.output(index)
}

func (c *Computation) output(index int) string {
	if index < 0 || index >= len(c.tapes) {
		return ""
	}
	var b strings.Builder
	for _, s := range c.tapes[index].Content() {
		r := rune(turingruntime.BlankRune)
		if c.alpha != nil {
			if v, ok := c.alpha.Represent(s); ok {
				r = v
			}
		}
		b.WriteRune(r)
	}
	b.WriteString("...")
	return b.String()
}

// OutputAll renders every tape, from the last down to the input tape, one
// line per tape prefixed with its index.
func (c *Computation) OutputAll() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var b strings.Builder
	for i := len(c.tapes) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%d: %s\n", i, c.output(i))
	}
	return b.String()
}
