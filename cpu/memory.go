package cpu

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Memory defines a program's memory bank. It holds both code and data
// and its length is fixed once loaded.
type Memory []int64

// Parse parses a program from its comma-separated text form.
// No partial program is returned on failure.
func Parse(s string) (Memory, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, errors.Wrapf(ErrSyntax, "empty program")
	}

	fields := strings.Split(s, ",")
	m := make(Memory, len(fields))

	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "token %d: %q", i, f)
		}
		m[i] = v
	}

	return m, nil
}

// Load reads a program from the given stream.
func Load(r io.Reader) (Memory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "load")
	}
	return Parse(string(data))
}

// Clone returns a deep copy of m.
func (m Memory) Clone() Memory {
	out := make(Memory, len(m))
	copy(out, m)
	return out
}

// At returns the value at the given address.
func (m Memory) At(addr int64) (int64, error) {
	if addr < 0 || addr >= int64(len(m)) {
		return 0, errors.Wrapf(ErrOutOfBounds, "read at %d (size %d)", addr, len(m))
	}
	return m[addr], nil
}

// Set sets the value at the given address.
func (m Memory) Set(addr, value int64) error {
	if addr < 0 || addr >= int64(len(m)) {
		return errors.Wrapf(ErrOutOfBounds, "write at %d (size %d)", addr, len(m))
	}
	m[addr] = value
	return nil
}

// String returns the program in its comma-separated text form.
func (m Memory) String() string {
	var sb strings.Builder
	for i, v := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	return sb.String()
}
