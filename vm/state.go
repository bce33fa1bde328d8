package vm

import (
	"errors"
	"fmt"
)

// Status is the execution status of a machine.
type Status int

//go:generate go tool stringer -linecomment -type=Status,HaltReason -output=state_string.go
const (
	STATUS_RUNNING = Status(0) // running
	STATUS_HALTED  = Status(1) // halted
	STATUS_FAULTED = Status(2) // faulted
)

// HaltReason is why a machine halted.
type HaltReason int

const (
	HALT_END       = HaltReason(1) // end of program
	HALT_EXPLICIT  = HaltReason(2) // explicit halt
	HALT_UNKNOWN   = HaltReason(3) // unknown opcode
	HALT_TRUNCATED = HaltReason(4) // truncated instruction
)

// State is the execution state of a machine.
type State struct {
	Status Status     // Running, halted or faulted.
	Halt   HaltReason // Set when halted.
	Err    error      // Set when faulted; an *ErrFault.
}

// Running returns true if the machine has not halted or faulted.
func (st State) Running() bool {
	return st.Status == STATUS_RUNNING
}

// Reason returns the halt reason or fault kind, or an empty string
// while running.
func (st State) Reason() string {
	switch st.Status {
	case STATUS_HALTED:
		return st.Halt.String()
	case STATUS_FAULTED:
		var fault *ErrFault
		if errors.As(st.Err, &fault) {
			return fault.Err.Error()
		}
		if st.Err != nil {
			return st.Err.Error()
		}
	}
	return ""
}

func (st State) String() string {
	if st.Status == STATUS_RUNNING {
		return st.Status.String()
	}
	return fmt.Sprintf("%v(%v)", st.Status, st.Reason())
}
