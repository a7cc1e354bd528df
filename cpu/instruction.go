package cpu

import (
	"github.com/pkg/errors"

	"github.com/hexaflex/intcode/arch"
)

// Instruction defines decoded instruction data.
type Instruction struct {
	IP     int                 // Instruction address.
	Word   int64               // Raw opcode word.
	Opcode int                 // Instruction opcode.
	Modes  [3]arch.AddressMode // Address modes for operand A, B and C.
	Args   [3]Operand          // Operand A, B and C. Only set by Fetch.
}

// Decode decodes the given opcode word. Operands are not resolved.
// The result depends on nothing but word.
func Decode(word int64) (Instruction, error) {
	var i Instruction
	i.Word = word

	if word < 0 {
		return i, errors.Wrapf(ErrUnknownOpcode, "%d", word)
	}

	i.Opcode = int(word % 100)
	if arch.Argc(i.Opcode) < 0 {
		return i, errors.Wrapf(ErrUnknownOpcode, "%d", word)
	}

	digits := word / 100
	for j := range i.Modes {
		i.Modes[j] = arch.ModeOf(digits % 10)
		digits /= 10
	}

	return i, nil
}

// Width returns the number of words occupied by the instruction.
func (i *Instruction) Width() int {
	return arch.Width(i.Opcode)
}

// Fetch decodes the instruction at address ip in m and resolves its operands.
func (i *Instruction) Fetch(m Memory, ip int) error {
	word, err := m.At(int64(ip))
	if err != nil {
		return NewError(ip, err, "fetch")
	}

	d, err := Decode(word)
	if err != nil {
		return NewError(ip, ErrUnknownOpcode, "%d", word)
	}

	*i = d
	i.IP = ip

	argc := arch.Argc(i.Opcode)
	dst := arch.Dest(i.Opcode)

	for j := 0; j < argc; j++ {
		raw, err := m.At(int64(ip + 1 + j))
		if err != nil {
			return NewError(ip, err, "operand %d", j)
		}

		// Destinations are always addresses.
		mode := i.Modes[j]
		if j == dst {
			mode = arch.Position
		}

		if err := i.Args[j].resolve(m, raw, mode, j == dst); err != nil {
			return NewError(ip, err, "operand %d", j)
		}
	}

	return nil
}

// Operand defines decoded instruction operand data.
type Operand struct {
	Address int64            // Raw operand word.
	Value   int64            // Dereferenced value behind the address, if applicable. Otherwise same as Address.
	Mode    arch.AddressMode // Address mode.
}

// resolve sets the operand from its raw word. Write destinations are not
// dereferenced; their bounds are checked when the write happens.
func (op *Operand) resolve(m Memory, raw int64, mode arch.AddressMode, isDest bool) error {
	op.Address = raw
	op.Value = raw
	op.Mode = mode

	if mode == arch.Immediate || isDest {
		return nil
	}

	v, err := m.At(raw)
	if err != nil {
		return err
	}
	op.Value = v
	return nil
}
