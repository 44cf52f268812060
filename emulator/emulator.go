// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs an assembled listing on a single CPU.
package emulator

import (
	"log"

	"github.com/ezrec/duet/cpu"
)

// Emulator state. CPU + the listing it executes.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	id int64
}

// NewEmulator creates a new emulator running a program with an id.
func NewEmulator(prog *cpu.Program, id int64) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     &cpu.Cpu{},
		Program: prog,
	}

	emu.Reset(id)

	return
}

// Id returns the program id given at the last reset.
func (emu *Emulator) Id() int64 {
	return emu.id
}

// Reset the emulator state, and reload the program.
func (emu *Emulator) Reset(id int64) {
	emu.id = id
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Code = emu.Program.Instructions()
	emu.Cpu.Reset(id)
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Code returns the current instruction.
func (emu *Emulator) Code() cpu.Instruction {
	dbg := emu.Program.Debug(emu.Cpu.Ip)
	if dbg.Opcode == nil {
		return cpu.Instruction{}
	}

	return dbg.Instruction
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Ip)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (outcome cpu.Outcome, value int64, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	outcome, value, err = emu.Cpu.Step()

	return
}

// FirstRecovered runs until the first receive of a non-zero register, and
// returns the last value sent before it.
//
// A receive of a zero register is skipped.
func (emu *Emulator) FirstRecovered() (sound int64, err error) {
	var played bool
	for {
		var outcome cpu.Outcome
		var value int64
		outcome, value, err = emu.Tick()
		if err != nil {
			return
		}

		switch outcome {
		case cpu.OUTCOME_SENT:
			sound = value
			played = true
			if emu.Verbose {
				log.Printf("emulator: play %d", value)
			}
		case cpu.OUTCOME_BLOCKED:
			if value != 0 {
				if emu.Verbose {
					log.Printf("emulator: recover %d (played %v)", sound, played)
				}
				return
			}
			// Leave the register unchanged, and move on.
			emu.Cpu.Recover(value)
		case cpu.OUTCOME_HALTED:
			err = ErrNotRecovered
			return
		}
	}
}
