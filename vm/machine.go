// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

const (
	REGISTER_COUNT = 32 // Size of the register file.
)

// Machine is the register machine state and its execution loop.
// A Machine must only be driven from one goroutine at a time.
type Machine struct {
	Verbose bool        // Set to enable tracing.
	Log     *log.Logger // Trace sink. If nil, tracing is discarded.

	register  [REGISTER_COUNT]int32
	pc        uint32
	flag      bool
	remainder uint32
	program   []byte
	state     State
	steps     int
}

// NewMachine creates a machine with zeroed registers and an empty program.
func NewMachine() (m *Machine) {
	m = &Machine{}

	return
}

// tracef sends a diagnostic message to the trace sink.
func (m *Machine) tracef(format string, args ...any) {
	if m.Verbose && m.Log != nil {
		m.Log.Printf(format, args...)
	}
}

// Reset clears the registers, flag, remainder, program counter and
// statistics. The installed program is kept.
func (m *Machine) Reset() {
	clear(m.register[:])
	m.pc = 0
	m.flag = false
	m.remainder = 0
	m.state = State{}
	m.steps = 0

	m.tracef("vm: reset")
}

// SetProgram replaces the program, and rewinds the program counter.
// Registers, flag and remainder are left unchanged.
func (m *Machine) SetProgram(program []byte) {
	m.program = slices.Clone(program)
	m.pc = 0
	m.state = State{}

	m.tracef("vm: program of %d bytes", len(program))
}

// Program returns a copy of the installed program.
func (m *Machine) Program() []byte {
	return slices.Clone(m.program)
}

// Register returns the value of register n.
func (m *Machine) Register(n int) (value int32, ok bool) {
	if n < 0 || n >= REGISTER_COUNT {
		return
	}
	return m.register[n], true
}

// Registers returns a copy of the register file.
func (m *Machine) Registers() [REGISTER_COUNT]int32 {
	return m.register
}

// SetRegister sets register n to value.
func (m *Machine) SetRegister(n int, value int32) (err error) {
	if n < 0 || n >= REGISTER_COUNT {
		err = ErrRegisterRange
		return
	}
	m.register[n] = value
	return
}

// Pc returns the program counter, as a byte offset into the program.
func (m *Machine) Pc() uint32 {
	return m.pc
}

// SetPc moves the program counter.
func (m *Machine) SetPc(pc uint32) {
	m.pc = pc
}

// Flag returns the comparison flag.
func (m *Machine) Flag() bool {
	return m.flag
}

// SetFlag sets the comparison flag.
func (m *Machine) SetFlag(flag bool) {
	m.flag = flag
}

// Remainder returns the remainder of the last division, as stored.
func (m *Machine) Remainder() uint32 {
	return m.remainder
}

// RemainderSigned returns the remainder of the last division. It has the
// sign of the dividend.
func (m *Machine) RemainderSigned() int32 {
	return int32(m.remainder)
}

// State returns the execution state after the last step.
func (m *Machine) State() State {
	return m.state
}

// Steps returns the count of instructions executed since the last reset.
func (m *Machine) Steps() int {
	return m.steps
}

// String returns the machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("% 5s: %04x\n", "pc", m.pc)
	text += fmt.Sprintf("% 5s: %v\n", "flag", m.flag)
	text += fmt.Sprintf("% 5s: %d\n", "rem", m.RemainderSigned())
	text += fmt.Sprintf("% 5s: %v\n", "state", m.state)
	for n := 0; n < REGISTER_COUNT; n += 4 {
		text += fmt.Sprintf("r%02d-r%02d: %11d %11d %11d %11d\n", n, n+3,
			m.register[n], m.register[n+1], m.register[n+2], m.register[n+3])
	}

	return
}

// halt stops the machine gracefully.
func (m *Machine) halt(reason HaltReason) {
	m.state = State{Status: STATUS_HALTED, Halt: reason}
	m.tracef("vm: %04x: halted: %v", m.pc, reason)
}

// Fetch decodes the instruction at the program counter.
func (m *Machine) Fetch() (inst Instruction, err error) {
	return DecodeInstruction(m.program, m.pc)
}

// RunOnce executes a single instruction. It returns false when the machine
// has halted or faulted. Faults are returned as an *ErrFault; halts return
// a nil error.
func (m *Machine) RunOnce() (more bool, err error) {
	m.state = State{}

	inst, err := m.Fetch()
	switch {
	case errors.Is(err, ErrEndOfProgram):
		m.halt(HALT_END)
		return false, nil
	case errors.Is(err, ErrTruncated):
		m.pc = uint32(len(m.program))
		m.halt(HALT_TRUNCATED)
		return false, nil
	case err != nil:
		return false, err
	}

	return m.Execute(inst)
}

// Execute executes a single decoded instruction. On a fault no register,
// flag or remainder is modified, and the program counter is left at the
// faulting instruction.
func (m *Machine) Execute(inst Instruction) (more bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrFault{Offset: inst.Offset, Opcode: inst.Opcode, Err: err}
			m.state = State{Status: STATUS_FAULTED, Err: err}
			m.tracef("vm: %v", err)
		}
	}()

	m.tracef("%v", inst)

	op := inst.Opcode
	for _, reg := range inst.Reg[:op.Layout().Registers()] {
		if reg >= REGISTER_COUNT {
			err = ErrRegisterRange
			return
		}
	}

	next_pc := inst.Next()
	reg := &m.register
	r0, r1, r2 := inst.Reg[0], inst.Reg[1], inst.Reg[2]

	switch op {
	case OP_HLT:
		m.pc = next_pc
		m.steps++
		m.halt(HALT_EXPLICIT)
		return false, nil
	case OP_LOAD:
		reg[r0] = int32(inst.Imm)
		m.tracef("vm: r%d <- %d", r0, inst.Imm)
	case OP_ADD:
		reg[r2] = reg[r0] + reg[r1]
	case OP_SUB:
		reg[r2] = reg[r0] - reg[r1]
	case OP_MUL:
		reg[r2] = reg[r0] * reg[r1]
	case OP_DIV:
		dividend, divisor := reg[r0], reg[r1]
		if divisor == 0 {
			err = ErrDivideByZero
			return
		}
		// Truncated division; math.MinInt32 / -1 wraps to math.MinInt32.
		reg[r2] = dividend / divisor
		m.remainder = uint32(dividend % divisor)
	case OP_JMP:
		next_pc, err = absoluteTarget(reg[r0])
		if err != nil {
			return
		}
	case OP_JMPF:
		// Relative jumps count from the jump instruction itself.
		offset := reg[r0]
		target := uint64(inst.Offset) + uint64(offset)
		if offset < 0 || target > uint64(len(m.program)) {
			err = ErrJumpTarget
			return
		}
		next_pc = uint32(target)
	case OP_JMPB:
		offset := reg[r0]
		if offset < 0 || uint32(offset) > inst.Offset {
			err = ErrJumpTarget
			return
		}
		next_pc = inst.Offset - uint32(offset)
	case OP_EQ:
		m.flag = reg[r0] == reg[r1]
	case OP_NEQ:
		m.flag = reg[r0] != reg[r1]
	case OP_GT:
		m.flag = reg[r0] > reg[r1]
	case OP_LT:
		m.flag = reg[r0] < reg[r1]
	case OP_GTQ:
		m.flag = reg[r0] >= reg[r1]
	case OP_LTQ:
		m.flag = reg[r0] <= reg[r1]
	case OP_JEQ:
		if m.flag {
			next_pc, err = absoluteTarget(reg[r0])
			if err != nil {
				return
			}
		}
	default:
		m.pc = next_pc
		m.steps++
		m.halt(HALT_UNKNOWN)
		return false, nil
	}

	m.pc = next_pc
	m.steps++

	return true, nil
}

// absoluteTarget converts a register value to a jump target.
func absoluteTarget(value int32) (target uint32, err error) {
	if value < 0 {
		err = ErrJumpTarget
		return
	}
	target = uint32(value)
	return
}
