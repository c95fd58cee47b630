// Package mdlns implements two-base logarithmic numbers ±2^a·3^b.
//
// A pattern holds a sign bit, a two's complement binary exponent a and a
// two's complement ternary exponent b of bbits bits. Multiplication and
// division add and subtract exponents and are exact while the sums stay in
// range. Every other result is rounded to the representable value nearest
// in the log domain, found by a search over b.
//
// log2(3) is irrational, so distinct exponent pairs give distinct values and
// every finite value has a single encoding.
package mdlns

import (
	"fmt"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/bitfield"
	"github.com/Lemurian-Labs/lemurian-universal/internal/wire"
)

// MDLNS is a two-base logarithmic number of the shape S.
type MDLNS[S Shape] uint64

func codec[S Shape]() Codec {
	var s S
	return NewCodec(s.Params())
}

// CodecOf returns the codec of the shape S.
func CodecOf[S Shape]() Codec {
	return codec[S]()
}

// FromBits returns the number with the given pattern.
// It panics if bits has ones above nbits.
func FromBits[S Shape](bits uint64) MDLNS[S] {
	return MDLNS[S](bitfield.FromBits(codec[S]().nbits, bits).Bits())
}

// FromExponents returns (-1)^neg * 2^a * 3^b, rounded if out of range.
func FromExponents[S Shape](neg bool, a, b int64) MDLNS[S] {
	return MDLNS[S](codec[S]().Compose(neg, a, b))
}

// Bits returns the bit pattern of x.
func (x MDLNS[S]) Bits() uint64 {
	return uint64(x)
}

// Exponents returns the binary and ternary exponents of a finite nonzero x.
func (x MDLNS[S]) Exponents() (a, b int64) {
	return codec[S]().Exponents(uint64(x))
}

// Decode returns the decomposition of x.
func (x MDLNS[S]) Decode() universal.Decoded {
	return codec[S]().Decode(uint64(x))
}

// Encode returns the number for d, see Codec.Encode.
func Encode[S Shape](d universal.Decoded) MDLNS[S] {
	return MDLNS[S](codec[S]().Encode(d))
}

func Zero[S Shape]() MDLNS[S] {
	return MDLNS[S](codec[S]().Zero())
}

// NaR returns the not-a-real value.
func NaR[S Shape]() MDLNS[S] {
	return MDLNS[S](codec[S]().NaR())
}

// One returns 1, the all-zero pattern.
func One[S Shape]() MDLNS[S] {
	return 0
}

func MaxPos[S Shape]() MDLNS[S] {
	return MDLNS[S](codec[S]().MaxPos())
}

func MinPos[S Shape]() MDLNS[S] {
	return MDLNS[S](codec[S]().MinPos())
}

func (x MDLNS[S]) IsZero() bool {
	return uint64(x) == codec[S]().Zero()
}

func (x MDLNS[S]) IsNaR() bool {
	return uint64(x) == codec[S]().NaR()
}

// IsNeg reports whether x < 0.
func (x MDLNS[S]) IsNeg() bool {
	c := codec[S]()
	return c.IsNeg(uint64(x)) && !c.IsSpecial(uint64(x))
}

// Float64 returns x as a float64, NaR is NaN.
func (x MDLNS[S]) Float64() float64 {
	return codec[S]().Float64(uint64(x))
}

func (x MDLNS[S]) String() string {
	if x.IsNaR() {
		return narString
	}
	return wire.FormatFloat(x.Float64())
}

// GoString returns the shape, the pattern and the exponents of x.
func (x MDLNS[S]) GoString() string {
	c := codec[S]()
	p := bitfield.FromBits(c.nbits, uint64(x))
	if c.IsSpecial(uint64(x)) {
		return fmt.Sprintf("%s(%s) %s", c, p, c.Decode(uint64(x)))
	}
	sign := '+'
	if c.IsNeg(uint64(x)) {
		sign = '-'
	}
	a, b := c.Exponents(uint64(x))
	return fmt.Sprintf("%s(%s) %c2^%d*3^%d", c, p, sign, a, b)
}
