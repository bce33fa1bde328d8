package vm

import (
	"fmt"
)

// Opcode is the operation tag decoded from the first byte of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_IGL  = Opcode(-1) // igl
	OP_HLT  = Opcode(0)  // hlt
	OP_LOAD = Opcode(1)  // load
	OP_ADD  = Opcode(2)  // add
	OP_SUB  = Opcode(3)  // sub
	OP_MUL  = Opcode(4)  // mul
	OP_DIV  = Opcode(5)  // div
	OP_JMP  = Opcode(6)  // jmp
	OP_JMPF = Opcode(7)  // jmpf
	OP_JMPB = Opcode(8)  // jmpb
	OP_EQ   = Opcode(9)  // eq
	OP_NEQ  = Opcode(10) // neq
	OP_GT   = Opcode(11) // gt
	OP_LT   = Opcode(12) // lt
	OP_GTQ  = Opcode(13) // gtq
	OP_LTQ  = Opcode(14) // ltq
	OP_JEQ  = Opcode(15) // jeq
)

// Layout is the operand layout following an opcode byte.
type Layout int

const (
	LAYOUT_NONE      = Layout(0) // no operands
	LAYOUT_REG_IMM16 = Layout(1) // register, 16-bit big-endian immediate
	LAYOUT_REG3      = Layout(2) // source, source, destination registers
	LAYOUT_REG       = Layout(3) // single register
	LAYOUT_REG2_PAD  = Layout(4) // two registers, one unread padding byte
)

// Width returns the encoded size, in bytes, of an instruction with this
// layout, including the opcode byte.
func (layout Layout) Width() int {
	switch layout {
	case LAYOUT_REG_IMM16, LAYOUT_REG3, LAYOUT_REG2_PAD:
		return 4
	case LAYOUT_REG:
		return 2
	default:
		return 1
	}
}

// Registers returns the number of register index operands in the layout.
func (layout Layout) Registers() int {
	switch layout {
	case LAYOUT_REG_IMM16, LAYOUT_REG:
		return 1
	case LAYOUT_REG2_PAD:
		return 2
	case LAYOUT_REG3:
		return 3
	default:
		return 0
	}
}

// opcodeLayout is indexed by the opcode byte. Bytes past the end decode
// to OP_IGL.
var opcodeLayout = [...]Layout{
	OP_HLT:  LAYOUT_NONE,
	OP_LOAD: LAYOUT_REG_IMM16,
	OP_ADD:  LAYOUT_REG3,
	OP_SUB:  LAYOUT_REG3,
	OP_MUL:  LAYOUT_REG3,
	OP_DIV:  LAYOUT_REG3,
	OP_JMP:  LAYOUT_REG,
	OP_JMPF: LAYOUT_REG,
	OP_JMPB: LAYOUT_REG,
	OP_EQ:   LAYOUT_REG2_PAD,
	OP_NEQ:  LAYOUT_REG2_PAD,
	OP_GT:   LAYOUT_REG2_PAD,
	OP_LT:   LAYOUT_REG2_PAD,
	OP_GTQ:  LAYOUT_REG2_PAD,
	OP_LTQ:  LAYOUT_REG2_PAD,
	OP_JEQ:  LAYOUT_REG,
}

// Decode maps any byte to its opcode. Unassigned bytes are OP_IGL.
func Decode(code byte) Opcode {
	if int(code) < len(opcodeLayout) {
		return Opcode(code)
	}
	return OP_IGL
}

// Layout returns the operand layout of the opcode.
func (op Opcode) Layout() Layout {
	if op < 0 || int(op) >= len(opcodeLayout) {
		return LAYOUT_NONE
	}
	return opcodeLayout[op]
}

// Width returns the encoded instruction size, in bytes.
func (op Opcode) Width() int {
	return op.Layout().Width()
}

// Valid returns true if the opcode is not OP_IGL.
func (op Opcode) Valid() bool {
	return op >= 0 && int(op) < len(opcodeLayout)
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Offset uint32  // Offset of the opcode byte in the program.
	Code   byte    // Raw opcode byte.
	Opcode Opcode  // Decoded opcode.
	Reg    [3]byte // Register operands, in encoding order.
	Imm    int16   // Immediate operand (OP_LOAD only).
}

// Width returns the encoded size of the instruction, in bytes.
func (inst Instruction) Width() int {
	return inst.Opcode.Width()
}

// Next returns the offset of the instruction that follows.
func (inst Instruction) Next() uint32 {
	return inst.Offset + uint32(inst.Width())
}

// String returns the disassembly of the instruction.
func (inst Instruction) String() (text string) {
	op := inst.Opcode
	switch op.Layout() {
	case LAYOUT_REG_IMM16:
		text = fmt.Sprintf("%v r%d #%d", op, inst.Reg[0], inst.Imm)
	case LAYOUT_REG3:
		text = fmt.Sprintf("%v r%d r%d r%d", op, inst.Reg[0], inst.Reg[1], inst.Reg[2])
	case LAYOUT_REG2_PAD:
		text = fmt.Sprintf("%v r%d r%d", op, inst.Reg[0], inst.Reg[1])
	case LAYOUT_REG:
		text = fmt.Sprintf("%v r%d", op, inst.Reg[0])
	default:
		if op == OP_IGL {
			text = fmt.Sprintf("%v 0x%02x", op, inst.Code)
		} else {
			text = op.String()
		}
	}

	return fmt.Sprintf("%04x: %v", inst.Offset, text)
}

// DecodeInstruction decodes the instruction at offset in program.
// ErrEndOfProgram is returned if offset is at or past the end, and
// ErrTruncated if the operands extend past the end.
func DecodeInstruction(program []byte, offset uint32) (inst Instruction, err error) {
	if uint64(offset) >= uint64(len(program)) {
		err = ErrEndOfProgram
		return
	}

	inst.Offset = offset
	inst.Code = program[offset]
	inst.Opcode = Decode(inst.Code)

	layout := inst.Opcode.Layout()
	if uint64(offset)+uint64(layout.Width()) > uint64(len(program)) {
		err = ErrTruncated
		return
	}

	args := program[offset+1 : offset+uint32(layout.Width())]
	copy(inst.Reg[:layout.Registers()], args)
	if layout == LAYOUT_REG_IMM16 {
		inst.Imm = int16(uint16(args[1])<<8 | uint16(args[2]))
	}

	return
}
