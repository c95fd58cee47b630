package lns

import "fmt"

// Params are the shape parameters of a logarithmic number type.
type Params struct {
	// NBits is the total width, 2..64.
	NBits int
	// RBits is the number of fraction bits of the logarithm, 0..NBits-1.
	RBits int
}

// Validate returns an error if p does not describe a supported lns.
func (p Params) Validate() error {
	if p.NBits < 2 || p.NBits > 64 {
		return fmt.Errorf("lns: nbits %d out of range [2, 64]", p.NBits)
	}
	if p.RBits < 0 || p.RBits >= p.NBits {
		return fmt.Errorf("lns: rbits %d out of range for nbits %d", p.RBits, p.NBits)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("lns<%d,%d>", p.NBits, p.RBits)
}

// Shape is a zero-size type naming an lns configuration.
type Shape interface {
	Params() Params
}

// Predefined shapes.
type (
	N4R1   struct{}
	N5R2   struct{}
	N8R2   struct{}
	N8R4   struct{}
	N8R7   struct{}
	N12R6  struct{}
	N16R8  struct{}
	N16R10 struct{}
	N32R8  struct{}
	N32R22 struct{}
)

func (N4R1) Params() Params   { return Params{NBits: 4, RBits: 1} }
func (N5R2) Params() Params   { return Params{NBits: 5, RBits: 2} }
func (N8R2) Params() Params   { return Params{NBits: 8, RBits: 2} }
func (N8R4) Params() Params   { return Params{NBits: 8, RBits: 4} }
func (N8R7) Params() Params   { return Params{NBits: 8, RBits: 7} }
func (N12R6) Params() Params  { return Params{NBits: 12, RBits: 6} }
func (N16R8) Params() Params  { return Params{NBits: 16, RBits: 8} }
func (N16R10) Params() Params { return Params{NBits: 16, RBits: 10} }
func (N32R8) Params() Params  { return Params{NBits: 32, RBits: 8} }
func (N32R22) Params() Params { return Params{NBits: 32, RBits: 22} }
