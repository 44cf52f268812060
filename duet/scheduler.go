package duet

import (
	"log"

	"github.com/ezrec/duet/cpu"
)

// Result of a duet.
type Result struct {
	Ticks  int   // Rounds run.
	SentA  int   // Values sent by program A.
	SentB  int   // Values sent by program B.
	StateA State // Final state of program A.
	StateB State // Final state of program B.
}

// Sent returns the count of values sent by the second program.
func (res Result) Sent() int {
	return res.SentB
}

// Scheduler alternates two programs, routing the values each sends to
// the other's queue.
type Scheduler struct {
	Verbose bool // If set, enables verbose logging.

	A *Program
	B *Program

	ticks int
}

// NewScheduler creates a scheduler running two copies of a listing with
// the given ids.
func NewScheduler(prog *cpu.Program, ids [2]int64) (s *Scheduler) {
	s = &Scheduler{
		A: NewProgram("0", prog, ids[0]),
		B: NewProgram("1", prog, ids[1]),
	}

	return
}

// States returns the scheduling state of both programs.
func (s *Scheduler) States() (a, b State) {
	return s.A.State(), s.B.State()
}

// Done returns true once neither program can make progress.
func (s *Scheduler) Done() bool {
	return Deadlocked(s.States())
}

// Tick runs one round: program A, then program B. A value sent by A is
// visible to B in the same round.
func (s *Scheduler) Tick() (done bool, err error) {
	s.A.Verbose = s.Verbose
	s.B.Verbose = s.Verbose

	_, value, sent, err := s.A.Run()
	if err != nil {
		return
	}
	if sent {
		s.B.Queue.Push(value)
	}

	_, value, sent, err = s.B.Run()
	if err != nil {
		return
	}
	if sent {
		s.A.Queue.Push(value)
	}

	s.ticks += 1
	done = s.Done()

	if s.Verbose {
		a, b := s.States()
		log.Printf("duet: tick %d: %v=%v %v=%v done=%v", s.ticks, s.A.Name, a, s.B.Name, b, done)
	}

	return
}

// Run ticks both programs until neither can make progress.
func (s *Scheduler) Run() (res Result, err error) {
	for done := false; !done; {
		done, err = s.Tick()
		if err != nil {
			break
		}
	}

	res = Result{
		Ticks: s.ticks,
		SentA: s.A.Sent,
		SentB: s.B.Sent,
	}
	res.StateA, res.StateB = s.States()

	return
}
