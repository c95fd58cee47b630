package lns

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/bitfield"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
	"github.com/Lemurian-Labs/lemurian-universal/rounding"
)

// Codec encodes and decodes lns<nbits, rbits> patterns.
//
//	nbits-1 nbits-2                   rbits      0
//	|s     |l l l l ... l l l l l l l|f f ... f f|
//	        integer part               fraction
//
// The low nbits-1 bits are the two's complement fixed-point logarithm L of
// the magnitude, scaled by 2^rbits: |v| = 2^(L/2^rbits).
// The most negative L is reserved: with a clear sign bit it is zero, with a
// set sign bit it is NaR.
type Codec struct {
	nbits, rbits int
	mask         uint64
	sign         uint64
	logMask      uint64
	// minLog is the reserved logarithm, maxLog the one of maxpos.
	minLog, maxLog int64
	unit           uint64
}

// NewCodec returns the codec for p. It panics if p is invalid.
func NewCodec(p Params) Codec {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	half := int64(1) << uint(p.NBits-2)
	return Codec{
		nbits:   p.NBits,
		rbits:   p.RBits,
		mask:    mathutil.Mask(p.NBits),
		sign:    1 << uint(p.NBits-1),
		logMask: mathutil.Mask(p.NBits - 1),
		minLog:  -half,
		maxLog:  half - 1,
		unit:    1 << uint(p.RBits),
	}
}

var _ universal.Codec = Codec{}

func (c Codec) NBits() int {
	return c.nbits
}

func (c Codec) RBits() int {
	return c.rbits
}

// Params returns the shape of c.
func (c Codec) Params() Params {
	return Params{NBits: c.nbits, RBits: c.rbits}
}

func (c Codec) String() string {
	return c.Params().String()
}

// Zero returns the zero pattern.
func (c Codec) Zero() uint64 {
	return c.sign >> 1
}

// NaR returns the not-a-real pattern.
func (c Codec) NaR() uint64 {
	return c.sign | c.sign>>1
}

// MaxPos returns the pattern of the largest positive value.
func (c Codec) MaxPos() uint64 {
	return c.pack(false, c.maxLog)
}

// MinPos returns the pattern of the smallest positive value.
func (c Codec) MinPos() uint64 {
	return c.pack(false, c.minLog+1)
}

// One returns the pattern of 1.
func (c Codec) One() uint64 {
	return 0
}

// IsSpecial reports whether bits is zero or NaR.
func (c Codec) IsSpecial(bits uint64) bool {
	return bits&c.logMask == c.sign>>1
}

// Log returns the scaled logarithm of a finite nonzero pattern.
func (c Codec) Log(bits uint64) int64 {
	return mathutil.SignExtend(bits&c.logMask, c.nbits-1)
}

// IsNeg reports whether the sign bit of bits is set.
func (c Codec) IsNeg(bits uint64) bool {
	return bits&c.sign != 0
}

func (c Codec) pack(neg bool, l int64) uint64 {
	bits := uint64(l) & c.logMask
	if neg {
		bits |= c.sign
	}
	return bits
}

// Clamp returns the pattern for the scaled logarithm l of a nonzero value.
// Above maxpos it saturates to maxpos. Below minpos it gives minpos, or zero
// when the magnitude is at most minpos/2.
func (c Codec) Clamp(neg bool, l int64) uint64 {
	switch {
	case l > c.maxLog:
		return c.pack(neg, c.maxLog)
	case l > c.minLog:
		return c.pack(neg, l)
	}
	// minLog+1-l can not overflow, l >= math.MinInt64
	if uint64(c.minLog+1-l) >= c.unit {
		return c.Zero()
	}
	return c.pack(neg, c.minLog+1)
}

// RoundLog rounds the scaled logarithm l of a nonzero value to the nearest
// integer, ties to even, and clamps it.
func (c Codec) RoundLog(neg bool, l float64) uint64 {
	if math.IsNaN(l) {
		return c.NaR()
	}
	v, err := safecast.Convert[int64](rounding.Float(l))
	if err != nil {
		if l > 0 {
			return c.pack(neg, c.maxLog)
		}
		return c.Zero()
	}
	return c.Clamp(neg, v)
}

// Decode splits bits into sign, integer and fraction parts of the logarithm.
// It panics if bits does not fit nbits.
func (c Codec) Decode(bits uint64) universal.Decoded {
	f := bitfield.FromBits(c.nbits, bits)
	if c.IsSpecial(bits) {
		if f.Get(c.nbits - 1) {
			return universal.Decoded{Special: universal.NaR}
		}
		return universal.Decoded{Special: universal.Zero}
	}
	l := c.Log(bits)
	return universal.Decoded{
		Neg:      f.Get(c.nbits - 1),
		Scale:    int(l >> uint(c.rbits)),
		Frac:     uint64(l) & mathutil.Mask(c.rbits),
		FracBits: c.rbits,
	}
}

// Encode composes a pattern from a decomposition.
// Fraction bits beyond rbits are rounded in the log domain. A logarithm
// outside the finite range gives NaR.
func (c Codec) Encode(d universal.Decoded) uint64 {
	switch d.Special {
	case universal.Zero:
		return c.Zero()
	case universal.NaR, universal.Inf:
		return c.NaR()
	}
	if d.FracBits < 0 || d.FracBits > 63 || d.Frac>>uint(d.FracBits) != 0 {
		panic(fmt.Sprintf("lns: bad fraction %#x of %d bits", d.Frac, d.FracBits))
	}
	s := int64(d.Scale)
	if s < c.minLog>>uint(c.rbits) || s > c.maxLog>>uint(c.rbits) {
		return c.NaR()
	}
	frac := d.Frac
	carry := int64(0)
	if d.FracBits > c.rbits {
		frac, _ = rounding.ShiftRight64(frac, uint(d.FracBits-c.rbits))
		if frac == c.unit {
			frac, carry = 0, 1
		}
	} else {
		frac <<= uint(c.rbits - d.FracBits)
	}
	l := s<<uint(c.rbits) + int64(frac) + carry<<uint(c.rbits)
	if l <= c.minLog || l > c.maxLog {
		return c.NaR()
	}
	return c.pack(d.Neg, l)
}

// Float64 returns the value of bits, NaR is NaN. Shapes whose range exceeds
// the float64 range give infinities and zeros.
func (c Codec) Float64(bits uint64) float64 {
	if c.IsSpecial(bits) {
		if c.IsNeg(bits) {
			return math.NaN()
		}
		return 0
	}
	v := math.Exp2(float64(c.Log(bits)) / float64(c.unit))
	if c.IsNeg(bits) {
		return -v
	}
	return v
}

// FromFloat64 returns the pattern nearest to f in the log domain.
// NaN and infinities give NaR.
func (c Codec) FromFloat64(f float64) uint64 {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return c.NaR()
	case f == 0:
		return c.Zero()
	}
	return c.RoundLog(f < 0, math.Log2(math.Abs(f))*float64(c.unit))
}
