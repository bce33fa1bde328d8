// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"context"
)

type runConfig struct {
	ctx      context.Context
	maxSteps int
	stop     func(m *Machine) bool
}

// RunOption bounds the execution of Run.
type RunOption func(cfg *runConfig)

// WithMaxSteps limits Run to at most steps instructions. Run returns
// ErrStepLimit if the machine is still running once the limit is reached.
func WithMaxSteps(steps int) RunOption {
	return func(cfg *runConfig) {
		cfg.maxSteps = steps
	}
}

// WithStop checks stop before every instruction. Run returns ErrStopped
// as soon as it returns true.
func WithStop(stop func(m *Machine) bool) RunOption {
	return func(cfg *runConfig) {
		cfg.stop = stop
	}
}

// WithContext checks ctx before every instruction. Run returns ctx.Err()
// once the context is done.
func WithContext(ctx context.Context) RunOption {
	return func(cfg *runConfig) {
		cfg.ctx = ctx
	}
}

// Run executes instructions until the machine halts or faults, or a
// RunOption limit is reached. Without options a program that loops
// forever never returns.
//
// The returned state is the machine state when Run stopped. A fault
// is also returned as an *ErrFault; a halt returns a nil error.
func (m *Machine) Run(opts ...RunOption) (state State, err error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m.state = State{}

	for steps := 0; ; steps++ {
		if cfg.maxSteps > 0 && steps >= cfg.maxSteps {
			err = ErrStepLimit
			break
		}
		if cfg.stop != nil && cfg.stop(m) {
			err = ErrStopped
			break
		}
		if cfg.ctx != nil {
			err = cfg.ctx.Err()
			if err != nil {
				break
			}
		}

		var more bool
		more, err = m.RunOnce()
		if !more {
			break
		}
	}

	state = m.state

	return
}
