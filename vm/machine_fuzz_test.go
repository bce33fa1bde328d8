package vm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzMachine(f *testing.F) {
	f.Add([]byte{}, int32(0), int32(0))
	f.Add([]byte{0, 0, 0, 0}, int32(0), int32(0))
	f.Add([]byte{200, 0, 0, 0}, int32(0), int32(0))
	f.Add([]byte{1, 0, 1, 244, 5, 0, 1, 2}, int32(0), int32(0))
	f.Add([]byte{6, 0}, int32(-1), int32(0))
	f.Add([]byte{8, 1}, int32(0), int32(3))
	f.Add([]byte{7, 0, 5, 0, 1, 2}, int32(0x7fffffff), int32(-1))
	f.Add(countdown(3), int32(0), int32(0))

	f.Fuzz(func(t *testing.T, program []byte, r0 int32, r1 int32) {
		assert := assert.New(t)

		run := func() (m *Machine, state State, err error) {
			m = NewMachine()
			m.SetProgram(program)
			assert.NoError(m.SetRegister(0, r0))
			assert.NoError(m.SetRegister(1, r1))
			state, err = m.Run(WithMaxSteps(256))
			return
		}

		m, state, err := run()

		switch state.Status {
		case STATUS_RUNNING:
			assert.ErrorIs(err, ErrStepLimit)
		case STATUS_HALTED:
			assert.NoError(err)
			assert.NotZero(state.Halt)
		case STATUS_FAULTED:
			var fault *ErrFault
			assert.True(errors.As(err, &fault))
			assert.True(errors.Is(err, ErrRegisterRange) ||
				errors.Is(err, ErrDivideByZero) ||
				errors.Is(err, ErrJumpTarget), "%v", err)
			assert.Less(int(fault.Offset), len(program))
			assert.Equal(fault.Offset, m.Pc())
		}

		again, state_again, err_again := run()
		assert.Equal(state, state_again)
		assert.Equal(err, err_again)
		assert.Equal(m.Registers(), again.Registers())
		assert.Equal(m.Pc(), again.Pc())
		assert.Equal(m.Flag(), again.Flag())
		assert.Equal(m.Remainder(), again.Remainder())
	})
}
