// Package cpu implements the IntCode machine: a program store that is both
// code and data, an instruction decoder and a resumable fetch-decode-execute loop.
//
// A CPU suspends every time it writes an output value and resumes exactly
// where it left off on the next call. This lets several machines be
// interleaved by a single caller without threads.
package cpu

import (
	"io"

	"github.com/hexaflex/intcode/arch"
)

// TraceFunc represents a callback handler for debug trace output.
type TraceFunc func(*Instruction)

// State defines the execution state of a CPU.
type State int

// Known execution states.
const (
	Running   State = iota // Executing, or ready to.
	Suspended              // Stopped right after writing an output value.
	Halted                 // Reached HALT. Terminal.
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// CPU implements the runtime.
type CPU struct {
	memory Memory      // Program memory. Owned exclusively by this CPU.
	trace  TraceFunc   // Handler for debug trace output.
	instr  Instruction // Decoded instruction data.
	ip     int         // Instruction pointer.
	state  State       // Execution state.
	output int64       // Last value written by OUT.
	cycles uint64      // Number of executed instructions.
}

// New creates a new CPU for the given program.
// Optionally with the given debug trace handler.
//
// The CPU takes ownership of program and modifies it in place.
// Pass program.Clone() to keep the original intact.
func New(program Memory, trace TraceFunc) *CPU {
	if trace == nil {
		trace = func(*Instruction) { /* nop */ }
	}

	return &CPU{
		memory: program,
		trace:  trace,
	}
}

// Memory returns the cpu's memory bank.
func (c *CPU) Memory() Memory {
	return c.memory
}

// IP returns the current instruction pointer.
func (c *CPU) IP() int {
	return c.ip
}

// State returns the current execution state.
func (c *CPU) State() State {
	return c.state
}

// Output returns the value written by the most recent OUT instruction.
func (c *CPU) Output() int64 {
	return c.output
}

// Cycles returns the number of instructions executed so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Step performs a single execution step, reading from in when an
// IN instruction is executed.
//
// After an OUT instruction the CPU is Suspended and Output holds the
// written value. Returns io.EOF if the program has reached its end.
func (c *CPU) Step(in Input) error {
	if c.state == Halted {
		return io.EOF
	}

	c.state = Running

	mem := c.memory
	instr := &c.instr
	args := instr.Args[:]

	if err := instr.Fetch(mem, c.ip); err != nil {
		return err
	}

	c.trace(instr)
	c.cycles++

	next := c.ip + instr.Width()

	switch instr.Opcode {
	case arch.ADD:
		if err := c.store(args[2].Address, args[0].Value+args[1].Value); err != nil {
			return err
		}
	case arch.MUL:
		if err := c.store(args[2].Address, args[0].Value*args[1].Value); err != nil {
			return err
		}

	case arch.IN:
		if in == nil {
			return NewError(c.ip, ErrStarved, "no input source")
		}
		v, err := in.Next()
		if err == io.EOF {
			return NewError(c.ip, ErrStarved, "no value for IN")
		}
		if err != nil {
			return NewError(c.ip, err, "read input")
		}
		if err := c.store(args[0].Address, v); err != nil {
			return err
		}
	case arch.OUT:
		c.output = args[0].Value
		c.state = Suspended

	case arch.JNZ:
		if args[0].Value != 0 {
			next = int(args[1].Value)
		}
	case arch.JEZ:
		if args[0].Value == 0 {
			next = int(args[1].Value)
		}

	case arch.CLT:
		if err := c.store(args[2].Address, _bool(args[0].Value < args[1].Value)); err != nil {
			return err
		}
	case arch.CEQ:
		if err := c.store(args[2].Address, _bool(args[0].Value == args[1].Value)); err != nil {
			return err
		}

	case arch.HALT:
		c.state = Halted
		return io.EOF
	}

	c.ip = next
	return nil
}

// RunUntilOutput executes instructions until the next OUT and returns the
// written value. The CPU can be resumed by calling RunUntilOutput again.
//
// Returns io.EOF once the program has halted; every later call does the same
// without executing anything.
func (c *CPU) RunUntilOutput(in Input) (int64, error) {
	for {
		if err := c.Step(in); err != nil {
			return 0, err
		}
		if c.state == Suspended {
			return c.output, nil
		}
	}
}

// Run executes the program until it halts and returns every value it wrote,
// in order.
func (c *CPU) Run(in Input) ([]int64, error) {
	var out []int64
	for {
		v, err := c.RunUntilOutput(in)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

// store writes value to the given address.
func (c *CPU) store(addr, value int64) error {
	if err := c.memory.Set(addr, value); err != nil {
		return NewError(c.ip, err, "store")
	}
	return nil
}

func _bool(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
