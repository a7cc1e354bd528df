// Package amp chains IntCode machines into amplifier circuits.
//
// An amplifier is one CPU started with its own phase setting as its first
// input. Amplifiers are either run in series, each to completion, or wired
// into a feedback ring where they take turns until the ring halts.
package amp

import (
	"io"

	"github.com/pkg/errors"

	"github.com/hexaflex/intcode/cpu"
)

// Error causes. Test for these with errors.Is.
var (
	ErrEmptyPhases = errors.New("no phase settings")
	ErrNoSignal    = errors.New("no thruster signal")
)

// Mode computes the thruster signal for one phase setting ordering.
// The program must not be modified.
type Mode func(program cpu.Memory, phases []int64, trace cpu.TraceFunc) (int64, error)

// Series runs one amplifier per phase setting to completion, one after the
// other. Each amplifier reads its phase and then the previous amplifier's
// first output; the first amplifier reads 0.
func Series(program cpu.Memory, phases []int64, trace cpu.TraceFunc) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrEmptyPhases
	}

	var signal int64
	for i, phase := range phases {
		out, err := cpu.New(program.Clone(), trace).Run(cpu.NewQueue(phase, signal))
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", i)
		}
		if len(out) == 0 {
			return 0, errors.Wrapf(ErrNoSignal, "amplifier %d", i)
		}
		signal = out[0]
	}

	return signal, nil
}

// Feedback wires one amplifier per phase setting into a ring and runs it
// until it halts. See Ring.
func Feedback(program cpu.Memory, phases []int64, trace cpu.TraceFunc) (int64, error) {
	r, err := NewRing(program, phases, trace)
	if err != nil {
		return 0, err
	}
	return r.Run()
}

// Amplifier is one stage of a ring.
type Amplifier struct {
	Phase int64
	cpu   *cpu.CPU
	queue *cpu.Queue // Pending input.
}

// CPU returns the amplifier's machine.
func (a *Amplifier) CPU() *cpu.CPU {
	return a.cpu
}

// Pending returns the number of values queued for the amplifier.
func (a *Amplifier) Pending() int {
	return a.queue.Len()
}

// Ring drives amplifiers in a directed cycle: every output of amplifier k
// is queued as input for amplifier k+1, and the last feeds the first.
//
// Amplifiers never reference each other. The ring holds them by index and
// resumes them strictly in round-robin order, so amplifier k's output for a
// lap is always queued before amplifier k+1 runs that lap.
type Ring struct {
	amps   []*Amplifier
	signal int64
	laps   int
}

// NewRing creates a ring with one amplifier per phase setting, each running
// its own copy of program. The first amplifier's queue is seeded with its
// phase and the initial signal 0, the others with just their phase.
func NewRing(program cpu.Memory, phases []int64, trace cpu.TraceFunc) (*Ring, error) {
	if len(phases) == 0 {
		return nil, ErrEmptyPhases
	}

	r := &Ring{amps: make([]*Amplifier, len(phases))}
	for i, phase := range phases {
		r.amps[i] = &Amplifier{
			Phase: phase,
			cpu:   cpu.New(program.Clone(), trace),
			queue: cpu.NewQueue(phase),
		}
	}

	r.amps[0].queue.Push(0)
	return r, nil
}

// Amplifiers returns the ring members in order.
func (r *Ring) Amplifiers() []*Amplifier {
	return r.amps
}

// Laps returns the number of completed laps.
func (r *Ring) Laps() int {
	return r.laps
}

// Lap resumes every amplifier once, in order, until each has written one
// value. Returns io.EOF as soon as an amplifier halts.
//
// Running out of input inside the ring is reported as an error wrapping
// cpu.ErrStarved: round-robin order guarantees every amplifier has a value
// queued when it is resumed.
func (r *Ring) Lap() error {
	for i, a := range r.amps {
		v, err := a.cpu.RunUntilOutput(a.queue)
		if err == io.EOF {
			return io.EOF
		}
		if err != nil {
			return errors.Wrapf(err, "amplifier %d (lap %d)", i, r.laps)
		}

		r.amps[(i+1)%len(r.amps)].queue.Push(v)

		if i == len(r.amps)-1 {
			r.signal = v
		}
	}

	r.laps++
	return nil
}

// Run completes laps until an amplifier halts and returns the last signal
// written by the final amplifier.
func (r *Ring) Run() (int64, error) {
	for {
		err := r.Lap()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if r.laps == 0 {
		return 0, ErrNoSignal
	}
	return r.signal, nil
}
