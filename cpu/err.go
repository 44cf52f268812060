package cpu

import (
	"errors"

	"github.com/ezrec/duet/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrDivideByZero  = errors.New(f("modulo by zero"))
	ErrNegativeShift = errors.New(f("negative shift"))

	// Instruction decode errors
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrEquateName      = errors.New(f(".equ name invalid"))
)

// ErrRecoverIdle is the panic value of a Recover with no receive pending.
var ErrRecoverIdle = errors.New(f("recover without pending receive"))

type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad opcode '%v'", Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrUnknownOpcode string

func (err ErrUnknownOpcode) Error() string {
	return f("'%v' is not an opcode", string(err))
}

func (err ErrUnknownOpcode) Unwrap() error {
	return ErrOpcodeInvalid
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
