package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// lineInput reads one input value per line. When reading from an
// interactive terminal, each read is preceded by a prompt.
type lineInput struct {
	scanner *bufio.Scanner
	prompt  io.Writer // nil when not interactive.
	line    int
}

func newLineInput(r io.Reader, prompt io.Writer) *lineInput {
	in := &lineInput{scanner: bufio.NewScanner(r)}

	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		in.prompt = prompt
	}

	return in
}

// Next reads the next non-empty line. Returns io.EOF at the end of the stream.
func (in *lineInput) Next() (int64, error) {
	for {
		if in.prompt != nil {
			fmt.Fprint(in.prompt, "input> ")
		}

		if !in.scanner.Scan() {
			if err := in.scanner.Err(); err != nil {
				return 0, errors.Wrapf(err, "stdin")
			}
			return 0, io.EOF
		}
		in.line++

		text := strings.TrimSpace(in.scanner.Text())
		if len(text) == 0 {
			continue
		}

		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, errors.Errorf("stdin:%d: not an integer: %q", in.line, text)
		}
		return v, nil
	}
}
