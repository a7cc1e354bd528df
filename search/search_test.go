package search

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/hexaflex/intcode/cpu"
)

func TestRun(t *testing.T) {
	program := mustParse(t, "1,9,10,3,2,3,11,0,99,30,40,50")

	have, err := Run(program, 9, 10)
	if err != nil {
		t.Fatal(err)
	}

	if have != 3500 {
		t.Fatalf("result mismatch:\nwant: 3500\nhave: %d", have)
	}

	if program[1] != 9 || program[3] != 3 {
		t.Fatalf("program modified by run: %v", program)
	}
}

func TestNounVerb(t *testing.T) {
	for _, v := range []struct {
		program    string
		target     int64
		noun, verb int64
	}{
		{"1101,0,0,0,99", 150, 51, 99},
		{"1101,0,0,0,99", 0, 0, 0},
		{"1102,0,0,0,99", 12, 1, 12},
		{"1102,0,0,0,99", 9801, 99, 99},
	} {
		noun, verb, err := NounVerb(mustParse(t, v.program), v.target, 0)
		if err != nil {
			t.Fatalf("%s -> %d: %v", v.program, v.target, err)
		}

		if noun != v.noun || verb != v.verb {
			t.Fatalf("%s -> %d: mismatch:\nwant: %d %d\nhave: %d %d",
				v.program, v.target, v.noun, v.verb, noun, verb)
		}
	}
}

func TestNounVerbNoSolution(t *testing.T) {
	_, _, err := NounVerb(mustParse(t, "1101,0,0,0,99"), 500, 0)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("expected %v; have %v", ErrNoSolution, err)
	}

	_, _, err = NounVerb(mustParse(t, "1101,0,0,0,99"), 20, 10)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("limit ignored: expected %v; have %v", ErrNoSolution, err)
	}
}

func TestNounVerbMachineError(t *testing.T) {
	_, _, err := NounVerb(mustParse(t, "1101,0,0,0,42"), 1, 0)
	if !errors.Is(err, cpu.ErrUnknownOpcode) {
		t.Fatalf("expected %v; have %v", cpu.ErrUnknownOpcode, err)
	}
	if errors.Is(err, ErrNoSolution) {
		t.Fatalf("machine error reported as exhaustion: %v", err)
	}
}

func TestRunTooShort(t *testing.T) {
	if _, err := Run(mustParse(t, "99"), 1, 2); !errors.Is(err, cpu.ErrOutOfBounds) {
		t.Fatalf("expected %v; have %v", cpu.ErrOutOfBounds, err)
	}
}

func mustParse(t *testing.T, s string) cpu.Memory {
	t.Helper()

	m, err := cpu.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}
