// Package vm implements the excavator register machine.
//
// The machine has 32 signed 32-bit registers (r0-r31), a byte-offset
// program counter, a comparison flag, and a remainder slot written by
// division. Programs are the raw concatenation of byte-encoded
// instructions: an opcode byte followed by its operand bytes, with
// 16-bit immediates in big-endian order.
//
// Execution stops with a halt (explicit, unknown opcode, truncated
// instruction or end of program), which is not an error, or with a
// fault (register out of range, division by zero, jump target out of
// range), which is returned as an *ErrFault.
package vm
