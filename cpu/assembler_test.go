package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("0", asm.Equate["IP"])
	assert.Equal("26", asm.Equate["REGISTERS"])
}

func opEqual(t *testing.T, expected, opcodes []Opcode) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(opcodes))
	if len(expected) == len(opcodes) {
		for n := range len(expected) {
			assert.Equal(expected[n], opcodes[n])
		}
	}
}

func TestAssemblerListing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; sound check",
		"set a 1",
		"",
		"  snd a   ; play it",
		"rcv a",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{2, 0, []string{"set", "a", "1"}, Instruction{Op: OP_SET, Target: 'a', A: Immediate(1)}},
		{4, 1, []string{"snd", "a"}, Instruction{Op: OP_SND, A: RegisterRef('a')}},
		{5, 2, []string{"rcv", "a"}, Instruction{Op: OP_RCV, Target: 'a'}},
	}

	opEqual(t, expected, prog.Opcodes)

	assert.Equal(3, prog.Len())
	assert.Equal([]Instruction{
		expected[0].Instruction,
		expected[1].Instruction,
		expected[2].Instruction,
	}, prog.Instructions())
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "0x10")

	program := []string{
		".equ COUNT 5",
		".equ ACC b",
		"set ACC COUNT",
		"add ACC BASE",
		".equ LOOP $(IP)",
		"add ACC -1",
		"jgz ACC $(LOOP - IP)",
		"set c $(COUNT * 2 + LINENO)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]Instruction{
		{Op: OP_SET, Target: 'b', A: Immediate(5)},
		{Op: OP_ADD, Target: 'b', A: Immediate(16)},
		{Op: OP_ADD, Target: 'b', A: Immediate(-1)},
		{Op: OP_JGZ, A: RegisterRef('b'), B: Immediate(-1)},
		{Op: OP_SET, Target: 'c', A: Immediate(18)},
	}, prog.Instructions())
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program []string
		lineno  int
		err     error
	}){
		{[]string{"set a 1", "bogus a"}, 2, ErrOpcodeInvalid},
		{[]string{"set ab 1"}, 1, ErrParseRegister("ab")},
		{[]string{"", "", "jgz a"}, 3, ErrOpcodeValueMissing},
		{[]string{".equ X 1"}, 1, ErrEquateName},
		{[]string{".equ set 1"}, 1, ErrEquateName},
		{[]string{".equ -1 5", "jgz a -1"}, 1, ErrEquateName},
		{[]string{".equ 12 3"}, 1, ErrEquateName},
		{[]string{".equ 0x10 3"}, 1, ErrEquateName},
		{[]string{".equ ONE 1", ".equ ONE 2"}, 2, ErrEquateDuplicate},
		{[]string{".equ ONE"}, 1, ErrEquateSyntax},
		{[]string{"set a $(1 +)"}, 1, nil},
		{[]string{"set a $('x')"}, 1, ErrParseExpression("'x'")},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		assert.Nil(prog)
		assert.Error(err)

		var syntax ErrSyntax
		if assert.True(errors.As(err, &syntax), "%v", err) {
			assert.Equal(entry.lineno, syntax.LineNo, "%v", err)
		}
		if entry.err != nil {
			assert.True(errors.Is(err, entry.err), "%v", err)
		}
	}
}

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.ParseString("; header\nset a 1\n\nsnd a\n")
	assert.NoError(err)

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.LineNo)

	dbg = prog.Debug(1)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.LineNo)

	assert.Nil(prog.Debug(2).Opcode)
	assert.Nil(prog.Debug(-1).Opcode)
}

func TestProgramNew(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(
		Instruction{Op: OP_SND, A: Immediate(1)},
		Instruction{},
	)

	assert.Equal(2, prog.Len())
	assert.Equal(2, prog.Debug(1).LineNo)

	var ips []int
	for ip, inst := range prog.Listing() {
		ips = append(ips, ip)
		assert.Equal(prog.Instructions()[ip], inst)
	}
	assert.Equal([]int{0, 1}, ips)
}
