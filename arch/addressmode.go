package arch

// AddressMode defines instruction operand address modes.
type AddressMode byte

// Known address modes.
const (
	Position  AddressMode = 0 // x = mem[123]
	Immediate AddressMode = 1 // x = 123
)

// ModeOf returns the address mode selected by the given opcode digit.
// Any nonzero digit selects Immediate.
func ModeOf(digit int64) AddressMode {
	if digit == 0 {
		return Position
	}
	return Immediate
}

func (m AddressMode) String() string {
	if m == Position {
		return "position"
	}
	return "immediate"
}
