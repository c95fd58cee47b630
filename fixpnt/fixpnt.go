// Package fixpnt implements binary fixed-point numbers fixpnt<nbits, rbits>.
//
// A value is a two's complement integer of nbits bits, scaled by 2^-rbits.
// Results out of range either wrap (Modulo) or clamp to the nearest bound
// (Saturate), as chosen by the shape. Products and quotients are rounded to
// nearest, ties to even. There are no reserved encodings: division by zero
// is reported as an error, or clamped, depending on the shape's fault policy.
package fixpnt

import (
	"fmt"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/bitfield"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
)

// Fixed is a fixed-point number of the shape S.
type Fixed[S Shape] uint64

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
func FromBits[S Shape](bits uint64) Fixed[S] {
	return Fixed[S](bitfield.FromBits(codec[S]().nbits, bits).Bits())
}

// FromRaw returns v/2^rbits, wrapped or saturated.
func FromRaw[S Shape](v int64) Fixed[S] {
	return Fixed[S](codec[S]().FromMag(v < 0, mathutil.From64(mathutil.AbsUint64(v))))
}

func (x Fixed[S]) Bits() uint64 {
	return uint64(x)
}

// Raw returns x times 2^rbits.
func (x Fixed[S]) Raw() int64 {
	return codec[S]().Raw(uint64(x))
}

// Decode returns the decomposition of x.
func (x Fixed[S]) Decode() universal.Decoded {
	return codec[S]().Decode(uint64(x))
}

// Encode returns the number for d, see Codec.Encode.
func Encode[S Shape](d universal.Decoded) Fixed[S] {
	return Fixed[S](codec[S]().Encode(d))
}

func Zero[S Shape]() Fixed[S] {
	return 0
}

// One returns 1, or the bound nearest to it when 1 is out of range.
func One[S Shape]() Fixed[S] {
	return FromInt64[S](1)
}

// MaxPos returns the largest value.
func MaxPos[S Shape]() Fixed[S] {
	return Fixed[S](codec[S]().MaxPos())
}

// MinPos returns the smallest positive value, 2^-rbits.
func MinPos[S Shape]() Fixed[S] {
	return 1
}

// MaxNeg returns the most negative value.
func MaxNeg[S Shape]() Fixed[S] {
	return Fixed[S](codec[S]().MaxNeg())
}

// MinNeg returns the negative value closest to zero, -2^-rbits.
func MinNeg[S Shape]() Fixed[S] {
	return Fixed[S](codec[S]().mask)
}

func (x Fixed[S]) IsZero() bool {
	return x == 0
}

func (x Fixed[S]) IsNeg() bool {
	return uint64(x)&codec[S]().sign != 0
}

func (x Fixed[S]) IsMaxPos() bool {
	return uint64(x) == codec[S]().MaxPos()
}

func (x Fixed[S]) IsMaxNeg() bool {
	return uint64(x) == codec[S]().MaxNeg()
}

// Sign returns -1, 0 or 1.
func (x Fixed[S]) Sign() int {
	return mathutil.Int64Sign(x.Raw())
}

// Float64 returns the nearest float64.
func (x Fixed[S]) Float64() float64 {
	return codec[S]().Float64(uint64(x))
}

// String returns the exact decimal value of x.
func (x Fixed[S]) String() string {
	return x.Decimal().String()
}

// GoString returns the shape, the pattern and the decomposition of x.
func (x Fixed[S]) GoString() string {
	c := codec[S]()
	return fmt.Sprintf("%s(%s) %s", c, bitfield.FromBits(c.nbits, uint64(x)), c.Decode(uint64(x)))
}
