package cpu

import (
	"iter"
)

// REGISTER_COUNT is the number of registers, 'a' through 'z'.
const REGISTER_COUNT = 26

// REGISTER_ID holds the program id at reset.
const REGISTER_ID = Register('p')

// Register names one of the registers by its letter.
type Register byte

// Valid returns true if the register is one of 'a' through 'z'.
func (reg Register) Valid() bool {
	return reg >= 'a' && reg <= 'z'
}

func (reg Register) String() string {
	return string(rune(reg))
}

// Registers is a register file. Registers never written read as zero.
type Registers [REGISTER_COUNT]int64

// Get returns the value of a register.
func (regs *Registers) Get(reg Register) int64 {
	if !reg.Valid() {
		panic(ErrParseRegister(reg.String()))
	}
	return regs[reg-'a']
}

// Set writes the value of a register.
func (regs *Registers) Set(reg Register, value int64) {
	if !reg.Valid() {
		panic(ErrParseRegister(reg.String()))
	}
	regs[reg-'a'] = value
}

// Reset zeroes every register.
func (regs *Registers) Reset() {
	clear(regs[:])
}

// All iterates over the registers holding a non-zero value.
func (regs *Registers) All() iter.Seq2[Register, int64] {
	return func(yield func(Register, int64) bool) {
		for n, value := range regs {
			if value == 0 {
				continue
			}
			if !yield(Register('a'+n), value) {
				return
			}
		}
	}
}
