// Package search finds program inputs that make a machine produce a given result.
package search

import (
	"github.com/pkg/errors"

	"github.com/hexaflex/intcode/cpu"
)

// ErrNoSolution is returned when no input pair produces the target.
var ErrNoSolution = errors.New("no solution found")

// DefaultLimit is the exclusive upper bound for nouns and verbs.
const DefaultLimit = 100

// Addresses patched by Run.
const (
	NounAddress = 1
	VerbAddress = 2
)

// Run runs a copy of program with noun and verb written to addresses 1 and 2,
// and returns the value left at address 0 once it halts.
func Run(program cpu.Memory, noun, verb int64) (int64, error) {
	m := program.Clone()

	if err := m.Set(NounAddress, noun); err != nil {
		return 0, errors.Wrapf(err, "noun")
	}
	if err := m.Set(VerbAddress, verb); err != nil {
		return 0, errors.Wrapf(err, "verb")
	}

	c := cpu.New(m, nil)
	if _, err := c.Run(nil); err != nil {
		return 0, err
	}

	return m.At(0)
}

// NounVerb tries every noun and verb in [0, limit), noun first, and returns
// the first pair for which Run yields target. A limit below 1 selects
// DefaultLimit.
//
// A failing run aborts the search. Exhausting all pairs returns an error
// wrapping ErrNoSolution.
func NounVerb(program cpu.Memory, target int64, limit int64) (noun, verb int64, err error) {
	if limit < 1 {
		limit = DefaultLimit
	}

	for noun = 0; noun < limit; noun++ {
		for verb = 0; verb < limit; verb++ {
			v, err := Run(program, noun, verb)
			if err != nil {
				return 0, 0, errors.Wrapf(err, "noun %d, verb %d", noun, verb)
			}
			if v == target {
				return noun, verb, nil
			}
		}
	}

	return 0, 0, errors.Wrapf(ErrNoSolution, "target %d", target)
}
