package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/excavator/vm"
)

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		expr    string
		program []byte
	}){
		{"list", "[1, 0, 1, 244]", []byte{1, 0, 1, 244}},
		{"tuple", "(0, 0, 0, 0)", []byte{0, 0, 0, 0}},
		{"names", "[LOAD, 0] + imm16(500) + [HLT]", vm.Assemble(vm.MakeLoad(0, 500), vm.MakeCode(vm.OP_HLT))},
		{"negative", "[LOAD, 3] + imm16(-2)", vm.MakeLoad(3, -2)},
		{"compare", "[EQ, 0, 1, 0, JEQ, 2]", vm.Assemble(vm.MakeCode(vm.OP_EQ, 0, 1), vm.MakeCode(vm.OP_JEQ, 2))},
		{"igl", "[IGL]", []byte{vm.CODE_IGL}},
		{"bytes", `b"\x06\x00"`, []byte{6, 0}},
		{"repeat", "[ADD, 0, 0, 0] * 2", []byte{2, 0, 0, 0, 2, 0, 0, 0}},
		{"empty", "[]", []byte{}},
	}

	for _, entry := range table {
		program, err := ParseProgram(entry.expr)
		assert.NoError(err, entry.name)
		assert.Equal(entry.program, program, entry.name)
	}
}

func TestParseProgram_Opcodes(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"HLT", "LOAD", "ADD", "SUB", "MUL", "DIV", "JMP", "JMPF", "JMPB",
		"EQ", "NEQ", "GT", "LT", "GTQ", "LTQ", "JEQ"} {
		program, err := ParseProgram("[" + name + "]")
		assert.NoError(err, name)
		if assert.Len(program, 1, name) {
			assert.Equal(name, vm.Decode(program[0]).String(), name)
		}
	}
}

func TestParseProgram_Error(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseProgram("  ")
	assert.ErrorIs(err, ErrProgramMissing)

	_, err = ParseProgram("[256]")
	assert.Equal(ErrProgramValue{Index: 0, Value: "256"}, err)

	_, err = ParseProgram("[0, -1]")
	assert.Equal(ErrProgramValue{Index: 1, Value: "-1"}, err)

	_, err = ParseProgram("[HLT, \"x\"]")
	assert.Equal(ErrProgramValue{Index: 1, Value: `"x"`}, err)

	_, err = ParseProgram("42")
	assert.Equal(ErrProgramExpression("42"), err)

	_, err = ParseProgram("[LOAD, 0] + imm16(0x10000)")
	var imm ErrImmediateRange
	assert.ErrorAs(err, &imm)
	assert.Equal(ErrImmediateRange(0x10000), imm)

	_, err = ParseProgram("[NOPE]")
	assert.Error(err)

	_, err = ParseProgram("[1,")
	assert.Error(err)
}
