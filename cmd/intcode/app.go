package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/hexaflex/intcode/amp"
	"github.com/hexaflex/intcode/cpu"
	"github.com/hexaflex/intcode/perm"
	"github.com/hexaflex/intcode/search"
)

// App defines application context.
type App struct {
	config  *Config    // Application configuration.
	program cpu.Memory // Program as loaded from disk. Never run directly.
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	return &App{
		config: config,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run loads the program and runs it in the configured mode.
func (a *App) Run() error {
	if err := a.loadProgram(); err != nil {
		return err
	}

	switch a.config.Mode {
	case ModeRun:
		return a.run()
	case ModeDump:
		return dump(a.stdout, a.program)
	case ModeAmp:
		return a.amplify(amp.Series)
	case ModeFeedback:
		return a.amplify(amp.Feedback)
	case ModeNounVerb:
		return a.nounVerb()
	}

	return errors.Errorf("unknown mode %q", a.config.Mode)
}

// loadProgram loads the program from disk.
func (a *App) loadProgram() error {
	log.Println("loading", a.config.Program)

	fd, err := os.Open(a.config.Program)
	if err != nil {
		return err
	}

	defer fd.Close()

	a.program, err = cpu.Load(fd)
	if err != nil {
		return errors.Wrapf(err, "%s", a.config.Program)
	}

	log.Printf("loaded %d words", len(a.program))
	return nil
}

// run runs the program once, printing every output as soon as it is written.
func (a *App) run() error {
	var in cpu.Input
	if len(a.config.Input) > 0 {
		in = cpu.NewQueue(a.config.Input...)
	} else {
		in = newLineInput(a.stdin, a.stderr)
	}

	c := cpu.New(a.program.Clone(), a.trace())

	for {
		v, err := c.RunUntilOutput(in)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, v)
	}

	log.Printf("halted after %d instructions", c.Cycles())
	return nil
}

// amplify runs the amplifier circuit, either for the configured phase
// ordering or for every ordering of it.
func (a *App) amplify(mode amp.Mode) error {
	if a.config.Single {
		v, err := mode(a.program, a.config.Phases, a.trace())
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, v)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := amp.MaxSignal(ctx, a.program, perm.Of(a.config.Phases), mode,
		amp.Jobs(a.config.Jobs), amp.Trace(a.trace()))
	if err != nil {
		return err
	}

	log.Printf("tried %d phase orderings, best %v", res.Tried, res.Phases)
	fmt.Fprintln(a.stdout, res.Signal)
	return nil
}

// nounVerb runs the program with a fixed noun and verb, or searches for the
// pair producing the configured target.
func (a *App) nounVerb() error {
	c := a.config

	if c.Noun >= 0 && c.Verb >= 0 {
		v, err := search.Run(a.program, c.Noun, c.Verb)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, v)
		return nil
	}

	noun, verb, err := search.NounVerb(a.program, c.Target, c.Limit)
	if err != nil {
		return err
	}

	log.Printf("noun %d, verb %d", noun, verb)
	fmt.Fprintln(a.stdout, 100*noun+verb)
	return nil
}

// trace returns the instruction trace handler, or nil if tracing is off.
func (a *App) trace() cpu.TraceFunc {
	if !a.config.PrintTrace {
		return nil
	}
	return func(i *cpu.Instruction) {
		printTrace(a.stderr, i)
	}
}
