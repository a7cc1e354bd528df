package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hexaflex/intcode/cpu"
)

// Known run modes.
const (
	ModeRun      = "run"      // Run the program once, streaming outputs.
	ModeDump     = "dump"     // Print a disassembly of the program.
	ModeAmp      = "amp"      // Amplifiers in series.
	ModeFeedback = "feedback" // Amplifiers in a feedback ring.
	ModeNounVerb = "nounverb" // Patch addresses 1 and 2 and read address 0.
)

// Config defines program configuration.
type Config struct {
	Program    string  // Path to the program file to load.
	Mode       string  // Run mode.
	Input      []int64 // Queued input values for run mode. Read from stdin when empty.
	Phases     []int64 // Phase setting set for the amplifier modes.
	Single     bool    // Run Phases in the given order only, instead of searching every ordering.
	Jobs       int     // Number of phase orderings evaluated at the same time.
	Target     int64   // Value the noun/verb search looks for.
	Limit      int64   // Exclusive upper bound for nouns and verbs.
	Noun       int64   // Fixed noun. Negative to search.
	Verb       int64   // Fixed verb. Negative to search.
	PrintTrace bool    // Print instruction trace data?
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Mode = ModeRun
	c.Jobs = 1
	c.Target = 19690720
	c.Noun = -1
	c.Verb = -1

	flag.Usage = func() {
		fmt.Printf("%s [options] <program file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	modes := strings.Join([]string{ModeRun, ModeDump, ModeAmp, ModeFeedback, ModeNounVerb}, ", ")
	flag.StringVar(&c.Mode, "mode", c.Mode, "Run mode. One of: "+modes+".")
	input := flag.String("input", "", "Comma-separated input values for run mode. Prompted for or read from stdin when empty.")
	phases := flag.String("phases", "", "Comma-separated phase settings. Defaults to 0..4 for amp and 5..9 for feedback.")
	flag.BoolVar(&c.Single, "single", c.Single, "Run the phase settings in the given order only.")
	flag.IntVar(&c.Jobs, "jobs", c.Jobs, "Number of phase orderings evaluated at the same time. 0 uses every CPU.")
	flag.Int64Var(&c.Target, "target", c.Target, "Value the noun/verb search looks for at address 0.")
	flag.Int64Var(&c.Limit, "limit", c.Limit, "Exclusive upper bound for nouns and verbs. 0 selects the default of 100.")
	flag.Int64Var(&c.Noun, "noun", c.Noun, "Run once with this noun instead of searching. Requires -verb.")
	flag.Int64Var(&c.Verb, "verb", c.Verb, "Run once with this verb instead of searching. Requires -noun.")
	flag.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Print instruction trace data to stderr.")
	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.Program = flag.Arg(0)
	c.Input = mustParseList("input", *input)
	c.Phases = mustParseList("phases", *phases)

	if len(c.Phases) == 0 {
		switch c.Mode {
		case ModeAmp:
			c.Phases = []int64{0, 1, 2, 3, 4}
		case ModeFeedback:
			c.Phases = []int64{5, 6, 7, 8, 9}
		}
	}

	return &c
}

// mustParseList parses a comma-separated list of integers.
// Exits the program if the list is malformed.
func mustParseList(name, value string) []int64 {
	if len(strings.TrimSpace(value)) == 0 {
		return nil
	}

	list, err := cpu.Parse(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-%s: %v\n", name, err)
		os.Exit(1)
	}

	return list
}
