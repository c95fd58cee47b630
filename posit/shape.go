package posit

import "fmt"

// MaxES is the largest supported exponent size.
const MaxES = 16

// Params are the shape parameters of a posit type.
type Params struct {
	// NBits is the total width, 2..64.
	NBits int
	// ES is the number of exponent bits, useed = 2^2^ES.
	ES int
}

// Validate returns an error if p does not describe a supported posit.
func (p Params) Validate() error {
	if p.NBits < 2 || p.NBits > 64 {
		return fmt.Errorf("posit: nbits %d out of range [2, 64]", p.NBits)
	}
	if p.ES < 0 || p.ES > MaxES || p.ES >= p.NBits {
		return fmt.Errorf("posit: es %d out of range for nbits %d", p.ES, p.NBits)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("posit<%d,%d>", p.NBits, p.ES)
}

// Shape is a zero-size type naming a posit configuration.
// Posit[S] values of different shapes are different types.
type Shape interface {
	Params() Params
}

// Predefined shapes.
type (
	N2E0  struct{}
	N3E0  struct{}
	N4E0  struct{}
	N5E1  struct{}
	N8E0  struct{}
	N8E1  struct{}
	N8E2  struct{}
	N16E1 struct{}
	N16E2 struct{}
	N32E2 struct{}
	N64E2 struct{}
)

func (N2E0) Params() Params  { return Params{NBits: 2, ES: 0} }
func (N3E0) Params() Params  { return Params{NBits: 3, ES: 0} }
func (N4E0) Params() Params  { return Params{NBits: 4, ES: 0} }
func (N5E1) Params() Params  { return Params{NBits: 5, ES: 1} }
func (N8E0) Params() Params  { return Params{NBits: 8, ES: 0} }
func (N8E1) Params() Params  { return Params{NBits: 8, ES: 1} }
func (N8E2) Params() Params  { return Params{NBits: 8, ES: 2} }
func (N16E1) Params() Params { return Params{NBits: 16, ES: 1} }
func (N16E2) Params() Params { return Params{NBits: 16, ES: 2} }
func (N32E2) Params() Params { return Params{NBits: 32, ES: 2} }
func (N64E2) Params() Params { return Params{NBits: 64, ES: 2} }

// Standard posits.
type (
	Posit8  = Posit[N8E2]
	Posit16 = Posit[N16E2]
	Posit32 = Posit[N32E2]
	Posit64 = Posit[N64E2]
)
