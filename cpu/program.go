package cpu

import (
	"iter"
)

// Opcode is a line of assembled source with its decoded instruction.
type Opcode struct {
	LineNo      int
	Ip          int
	Words       []string
	Instruction Instruction
}

// Program is an assembled listing.
//
// The instruction sequence is shared, read-only, by every Cpu that runs
// the program.
type Program struct {
	Opcodes []Opcode

	code []Instruction
}

// NewProgram creates a listing directly from instructions.
func NewProgram(insts ...Instruction) (prog *Program) {
	prog = &Program{}
	for n, inst := range insts {
		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo:      n + 1,
			Ip:          n,
			Words:       nil,
			Instruction: inst,
		})
	}

	return
}

// Instructions returns the instruction sequence of the program.
func (prog *Program) Instructions() []Instruction {
	if len(prog.code) != len(prog.Opcodes) {
		prog.code = make([]Instruction, len(prog.Opcodes))
		for n, op := range prog.Opcodes {
			prog.code[n] = op.Instruction
		}
	}

	return prog.code
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

type Debug struct {
	*Opcode
}

// Debug returns the source opcode at an instruction pointer, or a Debug
// with a nil Opcode if the IP is outside of the program.
func (prog *Program) Debug(ip int64) (dbg Debug) {
	if ip < 0 || ip >= int64(len(prog.Opcodes)) {
		return
	}

	dbg.Opcode = &prog.Opcodes[ip]
	return
}

// Listing iterates over the instructions, by IP.
func (prog *Program) Listing() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, inst Instruction) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Instruction) {
				return
			}
		}
	}
}
