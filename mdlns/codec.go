package mdlns

import (
	"fmt"
	"math"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/bitfield"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
	"github.com/Lemurian-Labs/lemurian-universal/rounding"
)

var log3 = math.Log2(3)

// Codec encodes and decodes mdlns<nbits, bbits> patterns.
//
//	nbits-1 nbits-2        bbits  bbits-1     0
//	|s     |a a a ... a a a     |b b ... b b|
//
// The value is (-1)^s * 2^a * 3^b, a and b are two's complement.
// The most negative a with b == 0 is reserved: with a clear sign bit it is
// zero, with a set sign bit it is NaR.
type Codec struct {
	nbits, bbits, abits int
	mask, sign          uint64
	aMask, bMask        uint64
	minA, maxA          int64
	minB, maxB          int64
}

// NewCodec returns the codec for p. It panics if p is invalid.
func NewCodec(p Params) Codec {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	abits := p.NBits - 1 - p.BBits
	return Codec{
		nbits: p.NBits,
		bbits: p.BBits,
		abits: abits,
		mask:  mathutil.Mask(p.NBits),
		sign:  1 << uint(p.NBits-1),
		aMask: mathutil.Mask(abits),
		bMask: mathutil.Mask(p.BBits),
		minA:  -(1 << uint(abits-1)),
		maxA:  1<<uint(abits-1) - 1,
		minB:  -(1 << uint(p.BBits-1)),
		maxB:  1<<uint(p.BBits-1) - 1,
	}
}

var _ universal.Codec = Codec{}

func (c Codec) NBits() int {
	return c.nbits
}

func (c Codec) BBits() int {
	return c.bbits
}

// Params returns the shape of c.
func (c Codec) Params() Params {
	return Params{NBits: c.nbits, BBits: c.bbits}
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

// MaxPos returns the pattern of the largest positive value, 2^maxA * 3^maxB.
func (c Codec) MaxPos() uint64 {
	return c.pack(false, c.maxA, c.maxB)
}

// MinPos returns the pattern of the smallest positive value, 2^minA * 3^minB.
func (c Codec) MinPos() uint64 {
	return c.pack(false, c.minA, c.minB)
}

// IsSpecial reports whether bits is zero or NaR.
func (c Codec) IsSpecial(bits uint64) bool {
	return bits&^c.sign == c.sign>>1
}

// IsNeg reports whether the sign bit of bits is set.
func (c Codec) IsNeg(bits uint64) bool {
	return bits&c.sign != 0
}

// Exponents returns the binary and ternary exponents of a pattern.
func (c Codec) Exponents(bits uint64) (a, b int64) {
	a = mathutil.SignExtend(bits>>uint(c.bbits)&c.aMask, c.abits)
	b = mathutil.SignExtend(bits&c.bMask, c.bbits)
	return a, b
}

func (c Codec) pack(neg bool, a, b int64) uint64 {
	bits := (uint64(a)&c.aMask)<<uint(c.bbits) | uint64(b)&c.bMask
	if neg {
		bits |= c.sign
	}
	return bits
}

func (c Codec) inRange(a, b int64) bool {
	return a >= c.minA && a <= c.maxA && b >= c.minB && b <= c.maxB && (a != c.minA || b != 0)
}

// Log returns log2 of the magnitude 2^a * 3^b.
func Log(a, b int64) float64 {
	return float64(a) + float64(b)*log3
}

// Compose returns the pattern of (-1)^neg * 2^a * 3^b, exactly when the
// exponents are in range and the nearest value otherwise.
func (c Codec) Compose(neg bool, a, b int64) uint64 {
	switch {
	case c.inRange(a, b):
		return c.pack(neg, a, b)
	case cmpMag(a, b, c.minA-1, c.minB) <= 0:
		return c.Zero()
	}
	return c.Nearest(neg, Log(a, b))
}

// Nearest returns the pattern whose magnitude has the logarithm nearest to t.
// Above maxpos it saturates to maxpos. Below minpos it gives minpos, or zero
// when the magnitude is at most minpos/2.
func (c Codec) Nearest(neg bool, t float64) uint64 {
	maxT, minT := Log(c.maxA, c.maxB), Log(c.minA, c.minB)
	switch {
	case math.IsNaN(t):
		return c.NaR()
	case t >= maxT:
		return c.pack(neg, c.maxA, c.maxB)
	case t <= minT-1:
		return c.Zero()
	case t <= minT:
		return c.pack(neg, c.minA, c.minB)
	}
	bestA, bestB, bestErr := c.maxA, c.maxB, math.Inf(1)
	for b := c.minB; b <= c.maxB; b++ {
		a := c.nearestA(t - float64(b)*log3)
		if a == c.minA && b == 0 {
			a++
		}
		if e := math.Abs(Log(a, b) - t); e < bestErr {
			bestA, bestB, bestErr = a, b, e
		}
	}
	return c.pack(neg, bestA, bestB)
}

// nearestA rounds x to the nearest binary exponent in range.
func (c Codec) nearestA(x float64) int64 {
	switch r := rounding.Float(x); {
	case r >= float64(c.maxA):
		return c.maxA
	case r <= float64(c.minA):
		return c.minA
	default:
		return int64(r)
	}
}

// Decode splits bits into the sign and both exponents. Scale holds a, Frac
// holds b as a bbits-wide two's complement number.
// It panics if bits does not fit nbits.
func (c Codec) Decode(bits uint64) universal.Decoded {
	f := bitfield.FromBits(c.nbits, bits)
	if c.IsSpecial(bits) {
		if f.Get(c.nbits - 1) {
			return universal.Decoded{Special: universal.NaR}
		}
		return universal.Decoded{Special: universal.Zero}
	}
	a, _ := c.Exponents(bits)
	return universal.Decoded{
		Neg:      f.Get(c.nbits - 1),
		Scale:    int(a),
		Frac:     f.Extract(0, c.bbits),
		FracBits: c.bbits,
	}
}

// Encode composes a pattern from a decomposition. Exponents out of range
// give NaR.
func (c Codec) Encode(d universal.Decoded) uint64 {
	switch d.Special {
	case universal.Zero:
		return c.Zero()
	case universal.NaR, universal.Inf:
		return c.NaR()
	}
	if d.FracBits < 0 || d.FracBits > 63 || d.Frac>>uint(d.FracBits) != 0 {
		panic(fmt.Sprintf("mdlns: bad ternary exponent %#x of %d bits", d.Frac, d.FracBits))
	}
	var b int64
	if d.FracBits > 0 {
		b = mathutil.SignExtend(d.Frac, d.FracBits)
	}
	a := int64(d.Scale)
	if !c.inRange(a, b) {
		return c.NaR()
	}
	return c.pack(d.Neg, a, b)
}

// Float64 returns the value of bits, NaR is NaN.
func (c Codec) Float64(bits uint64) float64 {
	if c.IsSpecial(bits) {
		if c.IsNeg(bits) {
			return math.NaN()
		}
		return 0
	}
	a, b := c.Exponents(bits)
	v := math.Ldexp(math.Pow(3, float64(b)), int(a))
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
	return c.Nearest(f < 0, math.Log2(math.Abs(f)))
}

// cmpMag compares 2^a1 * 3^b1 with 2^a2 * 3^b2. log2(3) is irrational, so
// the magnitudes are equal only when the exponents are.
func cmpMag(a1, b1, a2, b2 int64) int {
	if a1 == a2 && b1 == b2 {
		return 0
	}
	da := a1 - a2
	if mathutil.AbsInt64(da) > 1<<40 {
		return mathutil.Int64Sign(da)
	}
	if Log(da, b1-b2) > 0 {
		return 1
	}
	return -1
}
