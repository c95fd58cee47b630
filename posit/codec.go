package posit

import (
	"fmt"
	"math"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/bitfield"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
	"github.com/Lemurian-Labs/lemurian-universal/internal/triple"
	"github.com/Lemurian-Labs/lemurian-universal/rounding"
)

// Codec encodes and decodes posit<nbits, es> patterns.
//
//	nbits-1                                         0
//	|s|r r r ... r r̄|e e ... e|f f f ... f f f f f f|
//	   regime         exponent   fraction
//
// A negative posit is the two's complement of its magnitude.
// The regime is a run of equal bits ended by the opposite bit or by the end
// of the pattern. A run of m ones means k = m-1, a run of m zeros k = -m.
// The value is (-1)^s * 2^(k*2^es + e) * (1.f).
type Codec struct {
	nbits, es int
	mask      uint64
	sign      uint64
	// maxScale is the scale of maxpos, minpos has -maxScale.
	maxScale int
}

// NewCodec returns the codec for p. It panics if p is invalid.
func NewCodec(p Params) Codec {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	return Codec{
		nbits:    p.NBits,
		es:       p.ES,
		mask:     mathutil.Mask(p.NBits),
		sign:     1 << uint(p.NBits-1),
		maxScale: (p.NBits - 2) << uint(p.ES),
	}
}

var _ universal.Codec = Codec{}

func (c Codec) NBits() int {
	return c.nbits
}

func (c Codec) ES() int {
	return c.es
}

// Params returns the shape of c.
func (c Codec) Params() Params {
	return Params{NBits: c.nbits, ES: c.es}
}

func (c Codec) String() string {
	return c.Params().String()
}

// NaR returns the not-a-real pattern.
func (c Codec) NaR() uint64 {
	return c.sign
}

// MaxPos returns the pattern of the largest positive posit.
func (c Codec) MaxPos() uint64 {
	return c.sign - 1
}

// MaxScale returns the binary scale of maxpos.
func (c Codec) MaxScale() int {
	return c.maxScale
}

// Negate returns the pattern of -x. Zero and NaR are their own negation.
func (c Codec) Negate(bits uint64) uint64 {
	return -bits & c.mask
}

// Key returns a signed integer that orders non-NaR patterns like their values.
func (c Codec) Key(bits uint64) int64 {
	return mathutil.SignExtend(bits, c.nbits)
}

// regime scans the regime of a positive pattern and returns k and the number
// of bits left after the regime and its terminator.
func (c Codec) regime(f bitfield.Field) (k, rem int) {
	msb := c.nbits - 2
	run, terminated := f.Run(msb)
	if f.Get(msb) {
		k = run - 1
	} else {
		k = -run
	}
	rem = msb + 1 - run
	if terminated {
		rem--
	}
	return k, rem
}

// Decode splits bits into sign, scale and fraction. It panics if bits does not
// fit nbits.
func (c Codec) Decode(bits uint64) universal.Decoded {
	f := bitfield.FromBits(c.nbits, bits)
	switch bits {
	case 0:
		return universal.Decoded{Special: universal.Zero}
	case c.sign:
		return universal.Decoded{Special: universal.NaR}
	}
	neg := f.Get(c.nbits - 1)
	if neg {
		f = f.Negate()
	}
	k, rem := c.regime(f)
	var e uint64
	if c.es > 0 && rem > 0 {
		take := min(c.es, rem)
		e = f.Extract(rem-take, rem) << uint(c.es-take)
		rem -= take
	}
	return universal.Decoded{
		Neg:      neg,
		Scale:    k<<uint(c.es) + int(e),
		Frac:     f.Extract(0, rem),
		FracBits: rem,
	}
}

// Encode composes a pattern from a decomposition.
// A decomposition produced by Decode encodes exactly. Extra fraction bits
// are rounded, a scale outside [-maxScale, maxScale] gives NaR.
func (c Codec) Encode(d universal.Decoded) uint64 {
	switch d.Special {
	case universal.Zero:
		return 0
	case universal.NaR, universal.Inf:
		return c.sign
	}
	if d.FracBits < 0 || d.FracBits > 63 || d.Frac>>uint(d.FracBits) != 0 {
		panic(fmt.Sprintf("posit: bad fraction %#x of %d bits", d.Frac, d.FracBits))
	}
	if d.Scale > c.maxScale || d.Scale < -c.maxScale {
		return c.sign
	}
	return c.Round(triple.FromSignificand(d.Neg, d.Scale, d.Frac, d.FracBits))
}

// Round returns the posit nearest to t, ties to even.
// Magnitudes above maxpos give maxpos and magnitudes below minpos give minpos:
// only an exact zero encodes to zero.
func (c Codec) Round(t triple.Triple) uint64 {
	if t.IsZero() {
		return 0
	}
	var mag uint64
	switch {
	case t.Scale >= c.maxScale:
		mag = c.sign - 1
	case t.Scale < -c.maxScale:
		mag = 1
	default:
		mag = c.roundMagnitude(t)
	}
	if t.Neg {
		return c.Negate(mag)
	}
	return mag
}

// roundMagnitude builds the unbounded regime|exponent|fraction string of |t|
// left aligned in 128 bits and rounds it to nbits-1 bits.
func (c Codec) roundMagnitude(t triple.Triple) uint64 {
	es := uint(c.es)
	k := t.Scale >> es
	e := uint64(t.Scale - k<<es)
	var regime uint64
	var rlen int
	if k >= 0 {
		regime, rlen = (uint64(1)<<uint(k+1)-1)<<1, k+2
	} else {
		regime, rlen = 1, 1-k
	}
	str := mathutil.Uint128{Lo: regime}.Lsh(uint(128 - rlen))
	str = str.Or(mathutil.Uint128{Lo: e}.Lsh(uint(128-rlen) - es))
	// drop the hidden bit, the sticky bit of Sig survives the jam
	str = str.Or(t.Sig.Lsh(1).RshJam(uint(rlen) + es))
	kept, guard, sticky := rounding.Split(str, uint(128-c.nbits+1))
	mag := kept.Lo
	if rounding.Up(mag&1 == 1, guard, sticky) {
		mag++
	}
	return mag
}

// Unpack returns the exact triple of a pattern. bits must not be NaR.
func (c Codec) Unpack(bits uint64) triple.Triple {
	d := c.Decode(bits)
	if d.Special == universal.Zero {
		return triple.Triple{}
	}
	return triple.FromSignificand(d.Neg, d.Scale, d.Frac, d.FracBits)
}

// Float64 returns the value of bits, NaR is NaN.
func (c Codec) Float64(bits uint64) float64 {
	d := c.Decode(bits)
	switch d.Special {
	case universal.Zero:
		return 0
	case universal.NaR:
		return math.NaN()
	}
	m := uint64(1)<<uint(d.FracBits) | d.Frac
	v := math.Ldexp(float64(m), d.Scale-d.FracBits)
	if d.Neg {
		return -v
	}
	return v
}

// FromFloat64 rounds f to the nearest pattern. NaN and infinities give NaR.
func (c Codec) FromFloat64(f float64) uint64 {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return c.sign
	case f == 0:
		return 0
	}
	sig, exp := mathutil.SplitFloat64(f)
	return c.Round(triple.Triple{Neg: f < 0, Scale: exp, Sig: sig})
}
