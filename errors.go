package universal

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrDivisionByZero is the cause of a division fault.
	ErrDivisionByZero = xerrors.New("division by zero")
	// ErrNaR is returned by conversions that have no NaR counterpart.
	ErrNaR = xerrors.New("not a real")
	// ErrBadFloat is returned for NaN or infinite floats a format cannot hold.
	ErrBadFloat = xerrors.New("bad float number")
	// ErrRange is returned when a value does not fit the target type.
	ErrRange = xerrors.New("value out of range")
)

// FaultPolicy selects what an operation does on an arithmetic fault
// for formats without an absorbing NaR encoding.
type FaultPolicy uint8

const (
	// FaultSignal makes the operation return an *ArithmeticFault.
	FaultSignal FaultPolicy = iota
	// FaultClamp makes the operation return a saturated result and no error.
	FaultClamp
)

func (p FaultPolicy) String() string {
	if p == FaultClamp {
		return "clamp"
	}
	return "signal"
}

// ArithmeticFault describes a failed arithmetic operation.
type ArithmeticFault struct {
	Op    string
	Err   error
	frame xerrors.Frame
}

// NewFault returns a fault for operation op caused by err.
// The caller's frame is recorded for %+v formatting.
func NewFault(op string, err error) *ArithmeticFault {
	return &ArithmeticFault{Op: op, Err: err, frame: xerrors.Caller(1)}
}

func (f *ArithmeticFault) Error() string {
	return f.Op + ": " + f.Err.Error()
}

// Unwrap returns the cause.
func (f *ArithmeticFault) Unwrap() error {
	return f.Err
}

// Format implements fmt.Formatter, %+v prints the frame.
func (f *ArithmeticFault) Format(s fmt.State, v rune) {
	xerrors.FormatError(f, s, v)
}

// FormatError implements xerrors.Formatter.
func (f *ArithmeticFault) FormatError(p xerrors.Printer) error {
	p.Print(f.Op)
	f.frame.Format(p)
	return f.Err
}
