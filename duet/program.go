package duet

import (
	"fmt"
	"log"

	"github.com/ezrec/duet/cpu"
	"github.com/ezrec/duet/emulator"
)

// State is the scheduling state of a Program.
type State int

const (
	STATE_RUNNABLE = State(0) // runnable
	STATE_STUCK    = State(1) // stuck
	STATE_HALTED   = State(2) // halted
)

func (st State) String() string {
	switch st {
	case STATE_RUNNABLE:
		return "runnable"
	case STATE_STUCK:
		return "stuck"
	case STATE_HALTED:
		return "halted"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

// Deadlocked returns true if none of the states can make progress.
func Deadlocked(states ...State) bool {
	for _, st := range states {
		if st == STATE_RUNNABLE {
			return false
		}
	}
	return true
}

// Program is a CPU with a receive queue.
type Program struct {
	Verbose bool   // If set, enables verbose logging.
	Name    string // Name used in logs and errors.

	*emulator.Emulator

	Queue   Queue // Values sent by the other program, oldest first.
	Waiting bool  // Blocked on a receive.
	Sent    int   // Count of values sent.
}

// NewProgram creates a program running a listing, with its id in
// cpu.REGISTER_ID.
func NewProgram(name string, prog *cpu.Program, id int64) (p *Program) {
	p = &Program{
		Name:     name,
		Emulator: emulator.NewEmulator(prog, id),
	}

	return
}

// Reset the program, its queue, and its counters.
func (p *Program) Reset() {
	p.Emulator.Verbose = p.Verbose
	p.Emulator.Reset(p.Id())
	p.Queue.Reset()
	p.Waiting = false
	p.Sent = 0
}

// Run performs one tick of the program.
//
// A waiting program spends the whole tick taking a value from its queue,
// if there is one. Otherwise the CPU is stepped once. running is false
// once the CPU has halted; sent is true if value was sent this tick.
func (p *Program) Run() (running bool, value int64, sent bool, err error) {
	running = true

	if p.Waiting {
		p.tryRecover()
		return
	}

	p.Emulator.Verbose = p.Verbose

	outcome, value, err := p.Emulator.Tick()
	if err != nil {
		err = &ErrProgram{Name: p.Name, Err: err}
		value = 0
		return
	}

	switch outcome {
	case cpu.OUTCOME_HALTED:
		running = false
	case cpu.OUTCOME_BLOCKED:
		p.Waiting = true
	case cpu.OUTCOME_SENT:
		p.Sent += 1
		sent = true
		return
	}

	value = 0
	return
}

// tryRecover completes the pending receive from the queue.
func (p *Program) tryRecover() {
	value, ok := p.Queue.Pop()
	if !ok {
		return
	}

	if p.Verbose {
		log.Printf("duet: program %v received %d", p.Name, value)
	}

	p.Emulator.Recover(value)
	p.Waiting = false
}

// IsStuck returns true if the program waits on an empty queue.
func (p *Program) IsStuck() bool {
	return p.Waiting && p.Queue.Empty()
}

// State returns the scheduling state of the program.
func (p *Program) State() State {
	switch {
	case p.IsStuck():
		return STATE_STUCK
	case !p.Waiting && p.Halted():
		return STATE_HALTED
	default:
		return STATE_RUNNABLE
	}
}

// Drain runs the program alone, until it is stuck or halted, and
// returns the values it sent in order.
func (p *Program) Drain() (values []int64, err error) {
	for p.State() == STATE_RUNNABLE {
		var value int64
		var sent bool
		_, value, sent, err = p.Run()
		if err != nil {
			return
		}
		if sent {
			values = append(values, value)
		}
	}

	return
}
