package cpu

import (
	"errors"
	"fmt"
	"log"
)

// Outcome is the result of a single Cpu step.
type Outcome int

const (
	OUTCOME_CONTINUE = Outcome(0) // continue
	OUTCOME_SENT     = Outcome(1) // sent
	OUTCOME_BLOCKED  = Outcome(2) // blocked
	OUTCOME_HALTED   = Outcome(3) // halted
)

func (oc Outcome) String() string {
	switch oc {
	case OUTCOME_CONTINUE:
		return "continue"
	case OUTCOME_SENT:
		return "sent"
	case OUTCOME_BLOCKED:
		return "blocked"
	case OUTCOME_HALTED:
		return "halted"
	}
	return fmt.Sprintf("Outcome(%d)", int(oc))
}

// Cpu is the simulation context for a single program.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Code     []Instruction // Instruction sequence, never modified.
	Ip       int64         // Current instruction pointer.
	Register Registers     // Register bank.

	Ticks int // Count of executed steps. Recover is not a step.

	pending Register // Register awaiting a received value, or zero.
}

// NewCpu creates a new CPU over an instruction sequence, with the program
// id in REGISTER_ID.
func NewCpu(code []Instruction, id int64) (cpu *Cpu) {
	cpu = &Cpu{
		Code: code,
	}

	cpu.Reset(id)

	return
}

// Reset the CPU state.
// - Clears the registers, and seeds REGISTER_ID with the program id.
// - Zeros the IP and the ticks counter.
// - Forgets any pending receive.
func (cpu *Cpu) Reset(id int64) {
	if cpu.Verbose {
		log.Printf("cpu: reset id %v", id)
	}

	cpu.Register.Reset()
	cpu.Register.Set(REGISTER_ID, id)
	cpu.Ip = 0
	cpu.Ticks = 0
	cpu.pending = 0
}

// Halted returns true if the IP is outside of the instruction sequence.
func (cpu *Cpu) Halted() bool {
	return cpu.Ip < 0 || cpu.Ip >= int64(len(cpu.Code))
}

// Pending returns the register awaiting a value, if a receive is pending.
func (cpu *Cpu) Pending() (reg Register, ok bool) {
	reg = cpu.pending
	ok = reg != 0
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   ip: %d\n", cpu.Ip)
	if reg, ok := cpu.Pending(); ok {
		text += fmt.Sprintf("  rcv: %v\n", reg)
	}
	for reg, value := range cpu.Register.All() {
		text += fmt.Sprintf("% 5s: %d\n", reg.String(), value)
	}

	return
}

// Step executes a single instruction.
//
// For OUTCOME_SENT, value is the sent value. For OUTCOME_BLOCKED, value
// is the current content of the receiving register; the IP stays on the
// receive until Recover is called.
func (cpu *Cpu) Step() (outcome Outcome, value int64, err error) {
	if cpu.Halted() {
		outcome = OUTCOME_HALTED
		return
	}

	inst := cpu.Code[cpu.Ip]

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, inst)
	}

	regs := &cpu.Register
	next_ip := cpu.Ip + 1
	outcome = OUTCOME_CONTINUE

	switch inst.Op {
	case OP_NOOP:
		// pass
	case OP_SET, OP_ADD, OP_MUL, OP_MOD, OP_MULPOW2:
		var output int64
		output, err = doAlu(inst.Op, regs.Get(inst.Target), inst.A.Resolve(regs))
		if err != nil {
			return
		}
		regs.Set(inst.Target, output)
	case OP_SND:
		outcome = OUTCOME_SENT
		value = inst.A.Resolve(regs)
	case OP_RCV:
		outcome = OUTCOME_BLOCKED
		value = regs.Get(inst.Target)
		cpu.pending = inst.Target
		// Don't advance to next IP.
		next_ip = cpu.Ip
	case OP_JGZ:
		if inst.A.Resolve(regs) > 0 {
			next_ip = cpu.Ip + inst.B.Resolve(regs)
		}
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1

	return
}

// Recover completes a pending receive: the value is written to the
// receiving register, and the IP advances past the receive.
//
// Recover panics if no receive is pending.
func (cpu *Cpu) Recover(value int64) {
	reg, ok := cpu.Pending()
	if !ok {
		panic(ErrRecoverIdle)
	}

	if cpu.Verbose {
		log.Printf("%03d: %v <- %d", cpu.Ip, reg, value)
	}

	cpu.Register.Set(reg, value)
	cpu.pending = 0
	cpu.Ip += 1
}

// doAlu performs the requested arithmetic, and returns the output value.
func doAlu(op Op, input int64, value int64) (output int64, err error) {
	switch op {
	case OP_SET:
		output = value
	case OP_ADD:
		output = input + value
	case OP_MUL:
		output = input * value
	case OP_MOD:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = input % value
	case OP_MULPOW2:
		if value < 0 {
			err = ErrNegativeShift
			return
		}
		output = input << uint64(value)
	default:
		err = ErrOpcodeInvalid
	}

	return
}
