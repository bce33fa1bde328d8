package repl

import (
	"errors"

	"github.com/ezrec/excavator/translate"
)

var f = translate.From

var (
	ErrQuit           = errors.New(f("quit"))
	ErrCommandInvalid = errors.New(f("Invalid command!"))
	ErrProgramMissing = errors.New(f("program expression missing"))
)

// ErrProgramExpression is a program expression that did not evaluate to
// a sequence of byte values.
type ErrProgramExpression string

func (err ErrProgramExpression) Error() string {
	return f("'%v' is not a program", string(err))
}

// ErrProgramValue is a program element that is not a byte value.
type ErrProgramValue struct {
	Index int
	Value string
}

func (err ErrProgramValue) Error() string {
	return f("program[%d] = %v is not a byte", err.Index, err.Value)
}

// ErrImmediateRange is an imm16() argument outside the 16-bit range.
type ErrImmediateRange int

func (err ErrImmediateRange) Error() string {
	return f("immediate %d does not fit in 16 bits", int(err))
}

// ErrConfigValue is a configuration value outside its permitted range.
type ErrConfigValue struct {
	Key   string
	Value int
}

func (err ErrConfigValue) Error() string {
	return f("configuration key '%v' cannot be %d", err.Key, err.Value)
}

// ErrConfigKey is an unknown key in a configuration file.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("unknown configuration key '%v'", string(err))
}
