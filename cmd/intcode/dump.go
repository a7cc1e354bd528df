package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hexaflex/intcode/arch"
	"github.com/hexaflex/intcode/cpu"
)

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) printf(f string, argv ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, f, argv...)
}

// dump writes a disassembly of m to w. Words that do not start a complete
// instruction are listed as data. Since code and data share memory, this is
// a best guess: data that happens to look like an instruction is shown as one.
func dump(w io.Writer, m cpu.Memory) error {
	ew := &errWriter{w: w}

	for ip := 0; ip < len(m); {
		instr, err := cpu.Decode(m[ip])
		width := instr.Width()

		if err != nil || ip+width > len(m) {
			ew.printf("%04d  %5s  %d\n", ip, "DATA", m[ip])
			ip++
			continue
		}

		name, _ := arch.Name(instr.Opcode)
		dst := arch.Dest(instr.Opcode)

		var sb strings.Builder
		for j := 0; j < width-1; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}

			v := m[ip+1+j]
			if instr.Modes[j] == arch.Immediate && j != dst {
				fmt.Fprintf(&sb, "#%d", v)
			} else {
				fmt.Fprintf(&sb, "[%d]", v)
			}
		}

		ew.printf("%04d  %5s  %s\n", ip, name, sb.String())
		ip += width
	}

	return ew.err
}
