package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hexaflex/intcode/arch"
	"github.com/hexaflex/intcode/cpu"
)

// printTrace prints instruction trace data: address, mnemonic and the
// resolved operands. Position operands show the address and the value
// found there.
func printTrace(w io.Writer, i *cpu.Instruction) {
	var sb strings.Builder
	sb.Grow(80)

	name, _ := arch.Name(i.Opcode)
	argc := arch.Argc(i.Opcode)
	dst := arch.Dest(i.Opcode)

	for j := 0; j < argc; j++ {
		argv := i.Args[j]

		switch {
		case j == dst:
			fmt.Fprintf(&sb, "[%d]", argv.Address)
		case argv.Mode == arch.Position:
			fmt.Fprintf(&sb, "[%d]=%d", argv.Address, argv.Value)
		default:
			fmt.Fprintf(&sb, "#%d", argv.Value)
		}

		if j < argc-1 {
			sb.WriteString(", ")
		}
	}

	fmt.Fprintf(w, "%04d %5s  %s\n", i.IP, name, sb.String())
}
