package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0}, MakeCode(OP_HLT))
	assert.Equal([]byte{CODE_IGL}, MakeCode(OP_IGL))
	assert.Equal([]byte{2, 1, 2, 3}, MakeCode(OP_ADD, 1, 2, 3))
	assert.Equal([]byte{9, 4, 5, 0}, MakeCode(OP_EQ, 4, 5))
	assert.Equal([]byte{6, 7}, MakeCode(OP_JMP, 7))
	assert.Equal([]byte{15, 0}, MakeCode(OP_JEQ))

	assert.Equal([]byte{1, 0, 0x01, 0xf4}, MakeLoad(0, 500))
	assert.Equal([]byte{1, 3, 0xff, 0xff}, MakeLoad(3, -1))

	assert.Panics(func() { MakeCode(OP_LOAD, 0) })
	assert.Panics(func() { MakeCode(OP_JMP, 0, 1) })
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	program := Assemble(
		MakeLoad(0, 500),
		MakeCode(OP_GTQ, 0, 1),
		MakeCode(OP_JMPF, 2),
		MakeCode(OP_IGL),
		MakeCode(OP_HLT),
	)

	var text []string
	for inst, err := range Disassemble(program) {
		assert.NoError(err)
		text = append(text, inst.String())
	}

	assert.Equal([]string{
		"0000: load r0 #500",
		"0004: gtq r0 r1",
		"0008: jmpf r2",
		"000a: igl 0xff",
		"000b: hlt",
	}, text)
}

func TestDisassemble_Truncated(t *testing.T) {
	assert := assert.New(t)

	program := Assemble(MakeCode(OP_HLT), []byte{byte(OP_ADD), 1})

	var insts []Instruction
	var last error
	for inst, err := range Disassemble(program) {
		insts = append(insts, inst)
		last = err
	}

	assert.Len(insts, 2)
	assert.ErrorIs(last, ErrTruncated)
	assert.Equal(uint32(1), insts[1].Offset)
}

func TestDisassemble_Break(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range Disassemble(countdown(1)) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}
