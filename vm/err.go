package vm

import (
	"errors"

	"github.com/ezrec/excavator/translate"
)

var f = translate.From

var (
	// Decode conditions. These end a run gracefully and are reported
	// through State, never returned from RunOnce or Run.
	ErrEndOfProgram = errors.New(f("end of program"))
	ErrTruncated    = errors.New(f("truncated instruction"))

	// Runtime faults
	ErrRegisterRange = errors.New(f("register out of range"))
	ErrDivideByZero  = errors.New(f("division by zero"))
	ErrJumpTarget    = errors.New(f("jump target out of range"))

	// Driver limits
	ErrStepLimit = errors.New(f("step limit reached"))
	ErrStopped   = errors.New(f("stopped"))
)

// ErrFault is a runtime fault, located at the offending instruction.
type ErrFault struct {
	Offset uint32 // Offset of the faulting instruction.
	Opcode Opcode // Opcode of the faulting instruction.
	Err    error  // Fault kind.
}

func (err *ErrFault) Error() string {
	return f("fault at 0x%04x %v: %v", err.Offset, err.Opcode, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
