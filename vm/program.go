// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"iter"
	"slices"
)

const (
	CODE_IGL = byte(0xff) // An opcode byte that decodes to OP_IGL.
)

// MakeCode encodes an instruction with register operands. Unused operand
// bytes, including the comparison padding byte, are zero.
func MakeCode(op Opcode, regs ...byte) (code []byte) {
	layout := op.Layout()
	if layout == LAYOUT_REG_IMM16 {
		panic("use MakeLoad for instructions with immediates")
	}
	if len(regs) > layout.Registers() {
		panic("too many register operands")
	}

	code = make([]byte, layout.Width())
	if op.Valid() {
		code[0] = byte(op)
	} else {
		code[0] = CODE_IGL
	}
	copy(code[1:], regs)

	return
}

// MakeLoad encodes a load of a 16-bit immediate into a register.
func MakeLoad(reg byte, imm int16) []byte {
	return []byte{byte(OP_LOAD), reg, byte(uint16(imm) >> 8), byte(uint16(imm))}
}

// Assemble concatenates encoded instructions into a program.
func Assemble(codes ...[]byte) []byte {
	return slices.Concat(codes...)
}

// Disassemble iterates over the instructions in a program. Iteration ends
// with a non-nil error for a trailing truncated instruction.
func Disassemble(program []byte) iter.Seq2[Instruction, error] {
	return func(yield func(inst Instruction, err error) bool) {
		var offset uint32
		for {
			inst, err := DecodeInstruction(program, offset)
			if err == ErrEndOfProgram {
				return
			}
			if !yield(inst, err) || err != nil {
				return
			}
			offset = inst.Next()
		}
	}
}
