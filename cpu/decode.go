package cpu

import (
	"errors"
	"strconv"
	"strings"
)

// Decode decodes a single line of whitespace separated words into an
// Instruction.
func Decode(line string) (inst Instruction, err error) {
	return DecodeWords(strings.Fields(line))
}

// DecodeWords decodes an already split line into an Instruction.
func DecodeWords(words []string) (inst Instruction, err error) {
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	op, ok := LookupOp(words[0])
	if !ok {
		err = ErrUnknownOpcode(words[0])
		return
	}

	args := words[1:]

	var want int
	switch op {
	case OP_NOOP:
		want = 0
	case OP_SND, OP_RCV:
		want = 1
	default:
		want = 2
	}
	if len(args) < want {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > want {
		err = ErrOpcodeExtraArgs
		return
	}

	inst.Op = op

	switch op {
	case OP_SET, OP_ADD, OP_MUL, OP_MOD, OP_MULPOW2:
		inst.Target, err = parseRegister(args[0])
		if err == nil {
			inst.A, err = parseOperand(args[1])
		}
	case OP_SND:
		inst.A, err = parseOperand(args[0])
	case OP_RCV:
		inst.Target, err = parseRegister(args[0])
	case OP_JGZ:
		inst.A, err = parseOperand(args[0])
		if err == nil {
			inst.B, err = parseOperand(args[1])
		}
	}

	if err != nil {
		err = errors.Join(ErrOpcodeInvalid, err)
		inst = Instruction{}
	}

	return
}

// parseRegister parses a word as a register name.
func parseRegister(word string) (reg Register, err error) {
	if len(word) != 1 {
		err = ErrParseRegister(word)
		return
	}

	reg = Register(word[0])
	if !reg.Valid() {
		err = ErrParseRegister(word)
		reg = 0
	}

	return
}

// parseOperand parses a word as either an integer, or a register name.
func parseOperand(word string) (op Operand, err error) {
	value, err := strconv.ParseInt(word, 10, 64)
	if err == nil {
		op = Immediate(value)
		return
	}

	if len(word) != 1 {
		err = ErrParseValue(word)
		return
	}

	reg, err := parseRegister(word)
	if err != nil {
		err = ErrParseValue(word)
		return
	}

	op = RegisterRef(reg)
	return
}
