package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error causes. Test for these with errors.Is.
var (
	ErrSyntax        = errors.New("malformed program")
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrOutOfBounds   = errors.New("address out of bounds")
	ErrStarved       = errors.New("input starved")
)

// Error defines a runtime error at a given instruction address.
type Error struct {
	IP  int   // Address of the faulting instruction.
	Err error // Underlying cause.
}

// NewError creates a new, formatted error for the instruction at ip.
func NewError(ip int, cause error, f string, argv ...interface{}) *Error {
	return &Error{
		IP:  ip,
		Err: errors.Wrapf(cause, f, argv...),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04d: %v", e.IP, e.Err)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }
