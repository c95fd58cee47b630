// Package posit implements posit<nbits, es> tapered precision numbers.
//
// A Posit[S] is the nbits-wide bit pattern of the shape S, stored in the low
// bits of a uint64. All operations decode their operands into an exact
// sign/scale/significand triple, compute the exact (or sticky-jammed) result
// and round once to the nearest posit, ties to even.
//
// There is a single exceptional value, NaR (not a real), encoded as the sign
// bit alone. NaR absorbs every arithmetic operation and is unordered: it is
// not equal to any value, itself included. Use IsNaR to test for it; the ==
// operator compares bit patterns.
//
// Posits do not overflow or underflow: results are clamped to maxpos and
// minpos, only an exact zero result is zero.
package posit

import (
	"fmt"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/bitfield"
	"github.com/Lemurian-Labs/lemurian-universal/internal/wire"
)

// Posit is a posit of the shape S.
type Posit[S Shape] uint64

func codec[S Shape]() Codec {
	var s S
	return NewCodec(s.Params())
}

// CodecOf returns the codec of the shape S.
func CodecOf[S Shape]() Codec {
	return codec[S]()
}

// FromBits returns the posit with the given pattern.
// It panics if bits has ones above nbits.
func FromBits[S Shape](bits uint64) Posit[S] {
	c := codec[S]()
	return Posit[S](bitfield.FromBits(c.nbits, bits).Bits())
}

// Bits returns the bit pattern of p.
func (p Posit[S]) Bits() uint64 {
	return uint64(p)
}

// Field returns the bit pattern of p as a bit field.
func (p Posit[S]) Field() bitfield.Field {
	return bitfield.FromBits(codec[S]().nbits, uint64(p))
}

// Decode returns the decomposition of p.
func (p Posit[S]) Decode() universal.Decoded {
	return codec[S]().Decode(uint64(p))
}

// Encode returns the posit for d, see Codec.Encode.
func Encode[S Shape](d universal.Decoded) Posit[S] {
	return Posit[S](codec[S]().Encode(d))
}

// Float64 returns p as a float64, NaR is NaN.
func (p Posit[S]) Float64() float64 {
	return codec[S]().Float64(uint64(p))
}

// String returns the shortest decimal form of the float64 value of p, or "NaR".
func (p Posit[S]) String() string {
	if p.IsNaR() {
		return "NaR"
	}
	return wire.FormatFloat(p.Float64())
}

// GoString returns the shape, the pattern and the decomposition of p.
func (p Posit[S]) GoString() string {
	c := codec[S]()
	return fmt.Sprintf("%s(%s) %s", c, p.Field(), c.Decode(uint64(p)))
}
