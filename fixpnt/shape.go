package fixpnt

import (
	"fmt"

	universal "github.com/Lemurian-Labs/lemurian-universal"
)

// Arithmetic selects what happens to results outside the range.
type Arithmetic uint8

const (
	// Modulo wraps results to the low nbits bits, as two's complement
	// integers do.
	Modulo Arithmetic = iota
	// Saturate clamps results to the largest or the smallest value.
	Saturate
)

func (a Arithmetic) String() string {
	if a == Saturate {
		return "Saturate"
	}
	return "Modulo"
}

// Params are the shape parameters of a fixed-point type.
type Params struct {
	// NBits is the total width, 2..64.
	NBits int
	// RBits is the number of fraction bits, at least NBits-63.
	RBits int
	Arith Arithmetic
	// Faults selects the outcome of a division by zero.
	Faults universal.FaultPolicy
}

// Validate returns an error if p does not describe a supported fixpnt.
func (p Params) Validate() error {
	if p.NBits < 2 || p.NBits > 64 {
		return fmt.Errorf("fixpnt: nbits %d out of range [2, 64]", p.NBits)
	}
	if p.RBits < 0 || p.RBits > p.NBits {
		return fmt.Errorf("fixpnt: rbits %d out of range for nbits %d", p.RBits, p.NBits)
	}
	if p.NBits-p.RBits > 63 {
		return fmt.Errorf("fixpnt: %d integer bits, at most 63 are supported", p.NBits-p.RBits)
	}
	if p.Arith > Saturate {
		return fmt.Errorf("fixpnt: unknown arithmetic %d", p.Arith)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("fixpnt<%d,%d,%s>", p.NBits, p.RBits, p.Arith)
}

// Shape is a zero-size type naming a fixpnt configuration.
type Shape interface {
	Params() Params
}

// Predefined shapes. The M suffix is Modulo arithmetic, S is Saturate.
// Shapes ending with C clamp on division by zero instead of failing.
type (
	N4R1M   struct{}
	N8R2M   struct{}
	N8R2S   struct{}
	N8R4S   struct{}
	N8R4SC  struct{}
	N16R8M  struct{}
	N16R8S  struct{}
	N32R16S struct{}
	N64R32M struct{}
	N64R32S struct{}
)

func (N4R1M) Params() Params  { return Params{NBits: 4, RBits: 1, Arith: Modulo} }
func (N8R2M) Params() Params  { return Params{NBits: 8, RBits: 2, Arith: Modulo} }
func (N8R2S) Params() Params  { return Params{NBits: 8, RBits: 2, Arith: Saturate} }
func (N8R4S) Params() Params  { return Params{NBits: 8, RBits: 4, Arith: Saturate} }
func (N8R4SC) Params() Params { return Params{NBits: 8, RBits: 4, Arith: Saturate, Faults: universal.FaultClamp} }
func (N16R8M) Params() Params { return Params{NBits: 16, RBits: 8, Arith: Modulo} }
func (N16R8S) Params() Params { return Params{NBits: 16, RBits: 8, Arith: Saturate} }
func (N32R16S) Params() Params { return Params{NBits: 32, RBits: 16, Arith: Saturate} }
func (N64R32M) Params() Params { return Params{NBits: 64, RBits: 32, Arith: Modulo} }
func (N64R32S) Params() Params { return Params{NBits: 64, RBits: 32, Arith: Saturate} }
