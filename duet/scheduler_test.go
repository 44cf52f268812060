package duet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/duet/cpu"
)

func TestSchedulerExchange(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"snd 1",
		"snd 2",
		"snd p",
		"rcv a",
		"rcv b",
		"rcv c",
		"rcv d",
	)

	s := NewScheduler(prog, [2]int64{0, 1})

	res, err := s.Run()
	assert.NoError(err)
	assert.Equal(3, res.Sent())
	assert.Equal(3, res.SentA)
	assert.Equal(3, res.SentB)
	assert.Equal(10, res.Ticks)
	assert.Equal(STATE_STUCK, res.StateA)
	assert.Equal(STATE_STUCK, res.StateB)

	assert.Equal(int64(1), s.A.Register.Get('c'))
	assert.Equal(int64(0), s.B.Register.Get('c'))
	assert.Equal(int64(2), s.B.Register.Get('b'))
}

func TestSchedulerDeadlock(t *testing.T) {
	assert := assert.New(t)

	s := NewScheduler(assemble(t, "rcv a"), [2]int64{0, 1})

	res, err := s.Run()
	assert.NoError(err)
	assert.Equal(1, res.Ticks)
	assert.Equal(0, res.SentA)
	assert.Equal(0, res.SentB)
	assert.True(s.A.IsStuck())
	assert.True(s.B.IsStuck())
}

func TestSchedulerHalted(t *testing.T) {
	assert := assert.New(t)

	s := NewScheduler(assemble(t, "snd p"), [2]int64{0, 1})

	res, err := s.Run()
	assert.NoError(err)
	assert.Equal(1, res.Ticks)
	assert.Equal(1, res.Sent())
	assert.Equal(STATE_HALTED, res.StateA)
	assert.Equal(STATE_HALTED, res.StateB)

	// Values left unread.
	assert.Equal([]int64{1}, s.A.Queue.Data)
	assert.Equal([]int64{0}, s.B.Queue.Data)
}

func TestSchedulerHaltedAndStuck(t *testing.T) {
	assert := assert.New(t)

	// Program 0 waits for a value program 1 never sends.
	s := NewScheduler(assemble(t, "jgz p 2", "rcv a", "noop"), [2]int64{0, 1})

	res, err := s.Run()
	assert.NoError(err)
	assert.Equal(2, res.Ticks)
	assert.Equal(STATE_STUCK, res.StateA)
	assert.Equal(STATE_HALTED, res.StateB)
}

func TestSchedulerOrdering(t *testing.T) {
	assert := assert.New(t)

	s := &Scheduler{
		A: NewProgram("a", assemble(t, "snd 5"), 0),
		B: NewProgram("b", assemble(t, "rcv a", "snd a"), 1),
	}

	// A sends, and B blocks on the value already in its queue.
	done, err := s.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.True(s.B.Waiting)
	assert.Equal(1, s.B.Queue.Len())

	// B only unblocks.
	done, err = s.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.False(s.B.Waiting)
	assert.Equal(0, s.B.Sent)
	assert.Equal(int64(1), s.B.Ip)
	assert.Equal(int64(5), s.B.Register.Get('a'))

	done, err = s.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(1, s.B.Sent)
	assert.Equal([]int64{5}, s.A.Queue.Data)
}

func TestSchedulerError(t *testing.T) {
	assert := assert.New(t)

	s := NewScheduler(assemble(t, "set a 3", "mod a p"), [2]int64{0, 1})

	_, err := s.Run()
	assert.True(errors.Is(err, cpu.ErrDivideByZero))

	var perr *ErrProgram
	if assert.True(errors.As(err, &perr)) {
		assert.Equal("0", perr.Name)
	}
}

func TestSchedulerLoop(t *testing.T) {
	assert := assert.New(t)

	// Each program forwards what it receives, decremented, until zero.
	prog := assemble(t,
		"jgz p 2",
		"snd 10",
		"rcv a",
		"jgz a 2",
		"jgz 1 4",
		"add a -1",
		"snd a",
		"jgz 1 -5",
	)

	s := NewScheduler(prog, [2]int64{0, 1})
	res, err := s.Run()
	assert.NoError(err)
	assert.Equal(6, res.SentA)
	assert.Equal(5, res.Sent())
	assert.Equal(STATE_STUCK, res.StateA)
	assert.Equal(STATE_HALTED, res.StateB)
	assert.Equal(int64(0), s.A.Register.Get('a'))
}
