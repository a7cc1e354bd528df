package amp

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hexaflex/intcode/cpu"
)

// Generator yields candidate phase setting orderings.
// perm.Permutations[int64] satisfies it.
type Generator interface {
	Next() ([]int64, bool)
}

// Result defines the outcome of a phase search.
type Result struct {
	Signal int64   // Highest thruster signal seen.
	Phases []int64 // First ordering producing Signal.
	Tried  int     // Number of orderings evaluated.
}

// Option configures a search.
type Option func(*search)

// Jobs sets the number of orderings evaluated at the same time.
// Every ordering gets its own machines; a ring is never split across
// goroutines. Values below 1 select runtime.NumCPU(). The default is 1.
func Jobs(n int) Option {
	return func(s *search) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		s.jobs = n
	}
}

// Trace sets the debug trace handler given to every machine.
// Only used when evaluating orderings one at a time.
func Trace(f cpu.TraceFunc) Option {
	return func(s *search) { s.trace = f }
}

type search struct {
	jobs  int
	trace cpu.TraceFunc
}

type candidate struct {
	index  int
	phases []int64
	signal int64
}

// better reports whether c beats the current best. Ties go to the earlier ordering.
func (c *candidate) better(best *candidate) bool {
	if best == nil {
		return true
	}
	if c.signal != best.signal {
		return c.signal > best.signal
	}
	return c.index < best.index
}

// MaxSignal evaluates mode for every ordering produced by gen and returns the
// highest thruster signal. gen is drained exactly once.
func MaxSignal(ctx context.Context, program cpu.Memory, gen Generator, mode Mode, opts ...Option) (*Result, error) {
	s := search{jobs: 1}
	for _, opt := range opts {
		opt(&s)
	}

	if s.jobs == 1 {
		return s.serial(ctx, program, gen, mode)
	}
	return s.parallel(ctx, program, gen, mode)
}

func (s *search) serial(ctx context.Context, program cpu.Memory, gen Generator, mode Mode) (*Result, error) {
	var best *candidate
	tried := 0

	for phases, ok := gen.Next(); ok; phases, ok = gen.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		signal, err := mode(program, phases, s.trace)
		if err != nil {
			return nil, errors.Wrapf(err, "phases %v", phases)
		}

		c := &candidate{index: tried, phases: phases, signal: signal}
		if c.better(best) {
			best = c
		}
		tried++
	}

	return result(best, tried)
}

func (s *search) parallel(ctx context.Context, program cpu.Memory, gen Generator, mode Mode) (*Result, error) {
	g, ctx := errgroup.WithContext(ctx)

	work := make(chan candidate)
	done := make(chan candidate)

	g.Go(func() error {
		defer close(work)

		index := 0
		for phases, ok := gen.Next(); ok; phases, ok = gen.Next() {
			select {
			case work <- candidate{index: index, phases: phases}:
			case <-ctx.Done():
				return ctx.Err()
			}
			index++
		}
		return nil
	})

	workers, wctx := errgroup.WithContext(ctx)
	for i := 0; i < s.jobs; i++ {
		workers.Go(func() error {
			for c := range work {
				signal, err := mode(program, c.phases, nil)
				if err != nil {
					return errors.Wrapf(err, "phases %v", c.phases)
				}

				c.signal = signal
				select {
				case done <- c:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(done)
		return workers.Wait()
	})

	var best *candidate
	tried := 0

	for c := range done {
		if c.better(best) {
			best = &c
		}
		tried++
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result(best, tried)
}

func result(best *candidate, tried int) (*Result, error) {
	if best == nil {
		return nil, errors.Wrapf(ErrEmptyPhases, "generator produced no orderings")
	}

	return &Result{
		Signal: best.signal,
		Phases: best.phases,
		Tried:  tried,
	}, nil
}
