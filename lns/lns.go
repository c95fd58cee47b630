// Package lns implements lns<nbits, rbits> logarithmic numbers.
//
// A value is stored as its sign and the fixed-point base-2 logarithm of its
// magnitude. Multiplication and division are exact additions and
// subtractions of logarithms. Addition and subtraction evaluate the Gaussian
// logarithms sb(x) = log2(1 + 2^x) and db(x) = log2(1 - 2^x) and round the
// result to the nearest logarithm, ties to even.
//
// There is no infinity. Results above maxpos saturate to maxpos, results
// below minpos give minpos, or zero when they are at most minpos/2.
// Division by zero and every operation on NaR give NaR.
package lns

import (
	"fmt"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/bitfield"
	"github.com/Lemurian-Labs/lemurian-universal/internal/wire"
)

// LNS is a logarithmic number of the shape S.
type LNS[S Shape] uint64

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
func FromBits[S Shape](bits uint64) LNS[S] {
	return LNS[S](bitfield.FromBits(codec[S]().nbits, bits).Bits())
}

// Bits returns the bit pattern of x.
func (x LNS[S]) Bits() uint64 {
	return uint64(x)
}

// Decode returns the decomposition of x.
func (x LNS[S]) Decode() universal.Decoded {
	return codec[S]().Decode(uint64(x))
}

// Encode returns the number for d, see Codec.Encode.
func Encode[S Shape](d universal.Decoded) LNS[S] {
	return LNS[S](codec[S]().Encode(d))
}

// Zero returns 0.
func Zero[S Shape]() LNS[S] {
	return LNS[S](codec[S]().Zero())
}

// NaR returns the not-a-real value.
func NaR[S Shape]() LNS[S] {
	return LNS[S](codec[S]().NaR())
}

// One returns 1, the all-zero pattern.
func One[S Shape]() LNS[S] {
	return 0
}

// MaxPos returns the largest positive value.
func MaxPos[S Shape]() LNS[S] {
	return LNS[S](codec[S]().MaxPos())
}

// MinPos returns the smallest positive value.
func MinPos[S Shape]() LNS[S] {
	return LNS[S](codec[S]().MinPos())
}

func (x LNS[S]) IsZero() bool {
	return uint64(x) == codec[S]().Zero()
}

func (x LNS[S]) IsNaR() bool {
	return uint64(x) == codec[S]().NaR()
}

// IsNeg reports whether x < 0.
func (x LNS[S]) IsNeg() bool {
	c := codec[S]()
	return c.IsNeg(uint64(x)) && !c.IsSpecial(uint64(x))
}

// IsFinite reports whether x is not NaR.
func (x LNS[S]) IsFinite() bool {
	return !x.IsNaR()
}

// IsInf always returns false, there is no infinity.
func (x LNS[S]) IsInf() bool {
	return false
}

// IsNormal reports whether x is finite and nonzero.
func (x LNS[S]) IsNormal() bool {
	return !codec[S]().IsSpecial(uint64(x))
}

// Classify returns universal.None for a finite nonzero value, and the special
// tag otherwise.
func (x LNS[S]) Classify() universal.Special {
	switch {
	case x.IsZero():
		return universal.Zero
	case x.IsNaR():
		return universal.NaR
	default:
		return universal.None
	}
}

// Float64 returns x as a float64, NaR is NaN.
func (x LNS[S]) Float64() float64 {
	return codec[S]().Float64(uint64(x))
}

// String returns the shortest decimal form of the float64 value of x, or "NaR".
func (x LNS[S]) String() string {
	if x.IsNaR() {
		return narString
	}
	return wire.FormatFloat(x.Float64())
}

// GoString returns the shape, the pattern and the decomposition of x.
func (x LNS[S]) GoString() string {
	c := codec[S]()
	return fmt.Sprintf("%s(%s) %s", c, bitfield.FromBits(c.nbits, uint64(x)), c.Decode(uint64(x)))
}
