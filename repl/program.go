// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package repl

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/excavator/vm"
)

// programPredeclared holds the opcode names, and the imm16() helper.
var programPredeclared = func() (dict starlark.StringDict) {
	dict = starlark.StringDict{
		"IGL":   starlark.MakeInt(int(vm.CODE_IGL)),
		"imm16": starlark.NewBuiltin("imm16", imm16),
	}
	for code := range 256 {
		op := vm.Decode(byte(code))
		if !op.Valid() {
			break
		}
		dict[strings.ToUpper(op.String())] = starlark.MakeInt(code)
	}
	return
}()

// imm16 splits a 16-bit immediate into its big-endian bytes.
func imm16(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var imm int
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &imm)
	if err != nil {
		return
	}
	if imm < -0x8000 || imm > 0xffff {
		err = ErrImmediateRange(imm)
		return
	}

	word := uint16(imm)
	value = starlark.NewList([]starlark.Value{
		starlark.MakeInt(int(word >> 8)),
		starlark.MakeInt(int(word & 0xff)),
	})
	return
}

// ParseProgram evaluates a Starlark expression into a byte-encoded
// program. The expression must yield a list or tuple of integers in
// [0, 255], or a bytes value. Opcode names (HLT, LOAD, ... JEQ, IGL) are
// predeclared, and imm16(n) expands to the two bytes of a Load immediate:
//
//	[LOAD, 0] + imm16(500) + [HLT]
func ParseProgram(expr string) (program []byte, err error) {
	if len(strings.TrimSpace(expr)) == 0 {
		err = ErrProgramMissing
		return
	}

	thread := starlark.Thread{Name: "program"}
	opts := syntax.FileOptions{}
	src := "program=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "program", src, programPredeclared)
	if err != nil {
		return
	}

	st_value, ok := dict["program"]
	if !ok {
		err = ErrProgramExpression(expr)
		return
	}

	if st_bytes, ok := st_value.(starlark.Bytes); ok {
		program = []byte(string(st_bytes))
		return
	}

	st_iter, ok := st_value.(starlark.Indexable)
	if !ok {
		err = ErrProgramExpression(expr)
		return
	}

	program = make([]byte, 0, st_iter.Len())
	for n := range st_iter.Len() {
		elem := st_iter.Index(n)
		code, _err := starlark.AsInt32(elem)
		if _err != nil || code < 0 || code > 0xff {
			err = ErrProgramValue{Index: n, Value: elem.String()}
			program = nil
			return
		}
		program = append(program, byte(code))
	}

	return
}
