// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates, updated for every line.
var sysEquate = map[string]string{
	"LINENO":    "0",
	"IP":        "0",
	"REGISTERS": fmt.Sprintf("%d", REGISTER_COUNT),
}

var (
	reParen  = regexp.MustCompile(`\$\([^\$]*\)`)
	reEquate = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]+$`)
)

// Assembler is a single pass assembler for duet listings.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate, before
// any listing is parsed.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseValue(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 int64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine expands a single line into the words of an instruction.
// Lines that produce no instruction return no words.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		name := words[1]
		_, is_op := LookupOp(name)
		if !reEquate.MatchString(name) || is_op {
			err = ErrEquateName
			return
		}
		_, ok := asm.Equate[name]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[name] = words[2]
		words = nil
		return
	}

	// Only the arguments are subject to equates.
	for n := 1; n < len(words); n++ {
		equate, ok := asm.Equate[words[n]]
		if !ok {
			continue
		}
		if value, err := asm.valueOf(equate); err == nil {
			equate = strconv.FormatInt(value, 10)
		}
		words[n] = equate
	}

	return
}

// currentIp gets the current Ip
func (asm *Assembler) currentIp() int {
	return len(asm.Opcode)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		asm.Equate["LINENO"] = strconv.Itoa(lineno)
		asm.Equate["IP"] = strconv.Itoa(asm.currentIp())

		text_comment := strings.SplitN(text, ";", 2)
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line)
		if err != nil {
			return
		}
		if len(words) == 0 {
			continue
		}

		var inst Instruction
		inst, err = DecodeWords(words)
		if err != nil {
			return
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:      lineno,
			Ip:          asm.currentIp(),
			Words:       words,
			Instruction: inst,
		})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// ParseString parses a listing held in a string.
func (asm *Assembler) ParseString(text string) (prog *Program, err error) {
	return asm.Parse(strings.NewReader(text))
}
