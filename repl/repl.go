// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package repl is an interactive shell around the excavator machine.
//
// Each input line is recorded in a History owned by the caller, then
// dispatched:
//
//	.quit               end the shell (Run returns ErrQuit)
//	.history            list prior input lines, oldest first
//	.load <expr>        install a program (see ParseProgram)
//	.step               execute one instruction
//	.run                execute until halt, fault or the step budget
//	.registers          show the machine state
//	.dis                disassemble the installed program
//	.reset              clear the machine state, keeping the program
package repl

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/ezrec/excavator/translate"
	"github.com/ezrec/excavator/vm"
)

// Repl is an interactive shell driving a single machine.
type Repl struct {
	Machine *vm.Machine // Machine driven by the shell.
	Config  Config      // Shell settings.
	Output  io.Writer   // Destination for all shell output.
}

// NewRepl creates a shell writing to output. Machine traces, when
// enabled by the configuration, are written to output as well.
func NewRepl(cfg Config, output io.Writer) (r *Repl) {
	r = &Repl{
		Machine: vm.NewMachine(),
		Config:  cfg,
		Output:  output,
	}

	r.Machine.Verbose = cfg.Verbose
	r.Machine.Log = log.New(output, "trace: ", 0)

	return
}

func (r *Repl) printf(format string, args ...any) {
	translate.Fprintf(r.Output, format, args...)
}

// Run reads commands from input until end of input or .quit. Every line
// read is added to history. ErrQuit is returned for .quit, and nil at end
// of input.
func (r *Repl) Run(input io.Reader, history *History) (err error) {
	r.printf("Welcome to Excavator VM!\n")

	scanner := bufio.NewScanner(input)
	for {
		r.printf("%v", r.Config.Prompt)
		if !scanner.Scan() {
			err = scanner.Err()
			return
		}

		err = r.Execute(scanner.Text(), history)
		if errors.Is(err, ErrQuit) {
			r.printf("Shutting down excavator VM\n")
			return
		}
		if err != nil {
			r.printf("%v\n", err)
			err = nil
		}
	}
}

// Execute records a single line in history, and runs it.
func (r *Repl) Execute(line string, history *History) (err error) {
	line = strings.TrimSpace(line)
	history.Add(line)

	command, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	m := r.Machine

	switch command {
	case "":
		// empty line
	case ".quit":
		err = ErrQuit
	case ".history":
		for _, entry := range history.Lines() {
			r.printf("%v\n", entry)
		}
	case ".load":
		var program []byte
		program, err = ParseProgram(args)
		if err != nil {
			return
		}
		m.SetProgram(program)
		r.printf("loaded %d bytes\n", len(program))
	case ".step":
		inst, fetch_err := m.Fetch()
		_, err = m.RunOnce()
		if err != nil {
			return
		}
		if fetch_err != nil {
			r.printf("%v\n", m.State())
		} else {
			r.printf("%v => %v\n", inst, m.State())
		}
	case ".run":
		var state vm.State
		state, err = m.Run(vm.WithMaxSteps(r.Config.MaxSteps))
		if err != nil && state.Status == vm.STATUS_FAULTED {
			return
		}
		if errors.Is(err, vm.ErrStepLimit) {
			r.printf("%v after %d steps\n", err, r.Config.MaxSteps)
			err = nil
			return
		}
		r.printf("%v\n", state)
	case ".registers":
		r.printf("%v", m.String())
	case ".dis":
		for inst, _err := range vm.Disassemble(m.Program()) {
			if _err != nil {
				r.printf("%04x: %v\n", inst.Offset, _err)
				break
			}
			r.printf("%v\n", inst)
		}
	case ".reset":
		m.Reset()
	default:
		err = ErrCommandInvalid
	}

	return
}
