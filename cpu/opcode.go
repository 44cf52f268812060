package cpu

import (
	"fmt"
	"strconv"
)

// Op is an instruction operation.
type Op int

const (
	OP_NOOP    = Op(0) // noop
	OP_SET     = Op(1) // set
	OP_ADD     = Op(2) // add
	OP_MUL     = Op(3) // mul
	OP_MOD     = Op(4) // mod
	OP_MULPOW2 = Op(5) // mulpow2
	OP_SND     = Op(6) // snd
	OP_RCV     = Op(7) // rcv
	OP_JGZ     = Op(8) // jgz
)

// opName maps each operation to its mnemonic.
var opName = [...]string{
	OP_NOOP:    "noop",
	OP_SET:     "set",
	OP_ADD:     "add",
	OP_MUL:     "mul",
	OP_MOD:     "mod",
	OP_MULPOW2: "mulpow2",
	OP_SND:     "snd",
	OP_RCV:     "rcv",
	OP_JGZ:     "jgz",
}

// opMap maps mnemonics to operations.
var opMap = func() map[string]Op {
	m := make(map[string]Op, len(opName))
	for op, name := range opName {
		m[name] = Op(op)
	}
	return m
}()

// LookupOp returns the operation for a mnemonic.
func LookupOp(name string) (op Op, ok bool) {
	op, ok = opMap[name]
	return
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opName) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opName[op]
}

// Operand is either an immediate value, or a reference to a register.
type Operand struct {
	Register Register // Referenced register, or zero for an immediate.
	Value    int64    // Immediate value.
}

// Immediate returns an immediate operand.
func Immediate(value int64) Operand {
	return Operand{Value: value}
}

// RegisterRef returns an operand that reads a register.
func RegisterRef(reg Register) Operand {
	return Operand{Register: reg}
}

// IsRegister returns true if the operand references a register.
func (op Operand) IsRegister() bool {
	return op.Register != 0
}

// Resolve returns the value of the operand against a register file.
func (op Operand) Resolve(regs *Registers) int64 {
	if op.IsRegister() {
		return regs.Get(op.Register)
	}
	return op.Value
}

func (op Operand) String() string {
	if op.IsRegister() {
		return op.Register.String()
	}
	return strconv.FormatInt(op.Value, 10)
}

// Instruction is a single decoded instruction.
//
// The zero Instruction is a noop.
type Instruction struct {
	Op     Op       // Operation.
	Target Register // Written register for set, add, mul, mod, mulpow2 and rcv.
	A      Operand  // Source for arithmetic, value for snd, condition for jgz.
	B      Operand  // Offset for jgz.
}

// String returns the listing form of the instruction.
func (inst Instruction) String() string {
	switch inst.Op {
	case OP_SET, OP_ADD, OP_MUL, OP_MOD, OP_MULPOW2:
		return fmt.Sprintf("%v %v %v", inst.Op, inst.Target, inst.A)
	case OP_SND:
		return fmt.Sprintf("%v %v", inst.Op, inst.A)
	case OP_RCV:
		return fmt.Sprintf("%v %v", inst.Op, inst.Target)
	case OP_JGZ:
		return fmt.Sprintf("%v %v %v", inst.Op, inst.A, inst.B)
	default:
		return inst.Op.String()
	}
}
