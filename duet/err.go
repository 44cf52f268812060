package duet

import (
	"github.com/ezrec/duet/translate"
)

var f = translate.From

// ErrProgram names the program a runtime error came from.
type ErrProgram struct {
	Name string
	Err  error
}

func (err *ErrProgram) Error() string {
	return f("program %v: %v", err.Name, err.Err)
}

func (err *ErrProgram) Unwrap() error {
	return err.Err
}
