package mdlns

import "fmt"

// MaxBBits is the widest supported ternary exponent.
const MaxBBits = 16

// Params are the shape parameters of a two-base logarithmic number type.
type Params struct {
	// NBits is the total width, 3..64.
	NBits int
	// BBits is the width of the ternary exponent, 1..MaxBBits. The binary
	// exponent takes the remaining NBits-1-BBits bits, at least one.
	BBits int
}

// Validate returns an error if p does not describe a supported mdlns.
func (p Params) Validate() error {
	if p.NBits < 3 || p.NBits > 64 {
		return fmt.Errorf("mdlns: nbits %d out of range [3, 64]", p.NBits)
	}
	if p.BBits < 1 || p.BBits > MaxBBits {
		return fmt.Errorf("mdlns: bbits %d out of range [1, %d]", p.BBits, MaxBBits)
	}
	if p.NBits-1-p.BBits < 1 {
		return fmt.Errorf("mdlns: no room for the binary exponent in %d bits with bbits %d", p.NBits, p.BBits)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("mdlns<%d,%d>", p.NBits, p.BBits)
}

// Shape is a zero-size type naming an mdlns configuration.
type Shape interface {
	Params() Params
}

// Predefined shapes.
type (
	N4B1  struct{}
	N6B2  struct{}
	N8B2  struct{}
	N8B3  struct{}
	N12B4 struct{}
	N16B4 struct{}
	N16B6 struct{}
	N32B8 struct{}
)

func (N4B1) Params() Params  { return Params{NBits: 4, BBits: 1} }
func (N6B2) Params() Params  { return Params{NBits: 6, BBits: 2} }
func (N8B2) Params() Params  { return Params{NBits: 8, BBits: 2} }
func (N8B3) Params() Params  { return Params{NBits: 8, BBits: 3} }
func (N12B4) Params() Params { return Params{NBits: 12, BBits: 4} }
func (N16B4) Params() Params { return Params{NBits: 16, BBits: 4} }
func (N16B6) Params() Params { return Params{NBits: 16, BBits: 6} }
func (N32B8) Params() Params { return Params{NBits: 32, BBits: 8} }
