package fixpnt

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/bitfield"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
	"github.com/Lemurian-Labs/lemurian-universal/rounding"
)

var maxMag = mathutil.Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}

// Codec implements fixpnt<nbits, rbits> arithmetic on bit patterns.
// A pattern is a two's complement integer v and its value is v/2^rbits.
//
//	nbits-1                rbits        0
//	|i i i i ... i i i i i|f f ... f f f|
//	 integer part          fraction
type Codec struct {
	nbits, rbits int
	arith        Arithmetic
	faults       universal.FaultPolicy
	mask, sign   uint64
}

// NewCodec returns the codec for p. It panics if p is invalid.
func NewCodec(p Params) Codec {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	return Codec{
		nbits:  p.NBits,
		rbits:  p.RBits,
		arith:  p.Arith,
		faults: p.Faults,
		mask:   mathutil.Mask(p.NBits),
		sign:   1 << uint(p.NBits-1),
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
	return Params{NBits: c.nbits, RBits: c.rbits, Arith: c.arith, Faults: c.faults}
}

func (c Codec) String() string {
	return c.Params().String()
}

// MaxPos returns the pattern of the largest value.
func (c Codec) MaxPos() uint64 {
	return c.sign - 1
}

// MaxNeg returns the pattern of the most negative value.
func (c Codec) MaxNeg() uint64 {
	return c.sign
}

// Raw returns the pattern as a signed integer, the value times 2^rbits.
func (c Codec) Raw(bits uint64) int64 {
	return mathutil.SignExtend(bits, c.nbits)
}

// split returns the sign and the magnitude of the raw integer.
func (c Codec) split(bits uint64) (neg bool, mag uint64) {
	r := c.Raw(bits)
	return r < 0, mathutil.AbsUint64(r)
}

// finish turns a signed magnitude into a pattern, wrapping or saturating it.
func (c Codec) finish(neg bool, mag mathutil.Uint128) uint64 {
	if mag.IsZero() {
		return 0
	}
	if c.arith == Saturate {
		return c.saturate(neg, mag)
	}
	v := mag.Lo
	if neg {
		v = -v
	}
	return v & c.mask
}

func (c Codec) saturate(neg bool, mag mathutil.Uint128) uint64 {
	if neg {
		if mag.Cmp(mathutil.From64(c.sign)) >= 0 {
			return c.sign
		}
		return -mag.Lo & c.mask
	}
	if mag.Cmp(mathutil.From64(c.sign-1)) > 0 {
		return c.sign - 1
	}
	return mag.Lo
}

func (c Codec) addMag(na bool, ma uint64, nb bool, mb uint64) uint64 {
	if na == nb {
		lo, hi := bits.Add64(ma, mb, 0)
		return c.finish(na, mathutil.Uint128{Hi: hi, Lo: lo})
	}
	if ma >= mb {
		return c.finish(na, mathutil.From64(ma-mb))
	}
	return c.finish(nb, mathutil.From64(mb-ma))
}

// Add returns a+b.
func (c Codec) Add(a, b uint64) uint64 {
	na, ma := c.split(a)
	nb, mb := c.split(b)
	return c.addMag(na, ma, nb, mb)
}

// Sub returns a-b.
func (c Codec) Sub(a, b uint64) uint64 {
	na, ma := c.split(a)
	nb, mb := c.split(b)
	return c.addMag(na, ma, !nb, mb)
}

// Mul returns a*b rounded to nearest even.
func (c Codec) Mul(a, b uint64) uint64 {
	na, ma := c.split(a)
	nb, mb := c.split(b)
	p, _ := rounding.ShiftRight(mathutil.Mul64(ma, mb), uint(c.rbits))
	return c.finish(na != nb, p)
}

// Div returns a/b rounded to nearest even. Division by zero is handled
// according to policy.
func (c Codec) Div(a, b uint64, policy universal.FaultPolicy) (uint64, error) {
	if b == 0 {
		if policy == universal.FaultClamp {
			return c.clamp(a), nil
		}
		return 0, universal.NewFault(c.String()+" division", universal.ErrDivisionByZero)
	}
	na, ma := c.split(a)
	nb, mb := c.split(b)
	n := mathutil.From64(ma).Lsh(uint(c.rbits))
	hi, r := bits.Div64(0, n.Hi, mb)
	lo, r := bits.Div64(r, n.Lo, mb)
	q := rounding.Quotient(mathutil.Uint128{Hi: hi, Lo: lo}, r, mb)
	return c.finish(na != nb, q), nil
}

// clamp returns the bound with the sign of a, or zero for a zero a.
func (c Codec) clamp(a uint64) uint64 {
	switch r := c.Raw(a); {
	case r > 0:
		return c.MaxPos()
	case r < 0:
		return c.MaxNeg()
	default:
		return 0
	}
}

// Neg returns -a.
func (c Codec) Neg(a uint64) uint64 {
	n, m := c.split(a)
	return c.finish(!n, mathutil.From64(m))
}

// Abs returns |a|.
func (c Codec) Abs(a uint64) uint64 {
	_, m := c.split(a)
	return c.finish(false, mathutil.From64(m))
}

// Cmp compares a and b, the result is never universal.Unordered.
func (c Codec) Cmp(a, b uint64) universal.Ordering {
	return universal.Compare(c.Raw(a), c.Raw(b))
}

// Decode splits bits into the sign, the integer part and the fraction of
// the magnitude. It panics if bits does not fit nbits.
func (c Codec) Decode(bits uint64) universal.Decoded {
	bitfield.FromBits(c.nbits, bits)
	if bits == 0 {
		return universal.Decoded{Special: universal.Zero}
	}
	neg, m := c.split(bits)
	return universal.Decoded{
		Neg:      neg,
		Scale:    int(m >> uint(c.rbits)),
		Frac:     m & mathutil.Mask(c.rbits),
		FracBits: c.rbits,
	}
}

// Encode composes a pattern from a decomposition. Fraction bits beyond rbits
// are rounded to nearest even, magnitudes out of range saturate. NaR and
// infinities give the bound of their sign.
func (c Codec) Encode(d universal.Decoded) uint64 {
	switch d.Special {
	case universal.Zero:
		return 0
	case universal.NaR, universal.Inf:
		if d.Neg {
			return c.MaxNeg()
		}
		return c.MaxPos()
	}
	if d.Scale < 0 || d.FracBits < 0 || d.FracBits > 64 || d.FracBits < 64 && d.Frac>>uint(d.FracBits) != 0 {
		panic(fmt.Sprintf("fixpnt: bad decomposition %v", d))
	}
	m := mathutil.From64(uint64(d.Scale)).Lsh(uint(d.FracBits)).Or(mathutil.From64(d.Frac))
	if d.FracBits > c.rbits {
		m, _ = rounding.ShiftRight(m, uint(d.FracBits-c.rbits))
	} else {
		m = m.Lsh(uint(c.rbits - d.FracBits))
	}
	if m.IsZero() {
		return 0
	}
	return c.saturate(d.Neg, m)
}

// Float64 returns the value of bits. Patterns wider than 53 bits are rounded.
func (c Codec) Float64(bits uint64) float64 {
	return math.Ldexp(float64(c.Raw(bits)), -c.rbits)
}

// FromMag returns the pattern for (-1)^neg * mag/2^rbits, wrapped or
// saturated.
func (c Codec) FromMag(neg bool, mag mathutil.Uint128) uint64 {
	return c.finish(neg, mag)
}

// FromFloat64 returns the pattern nearest to f. NaN and infinities give
// universal.ErrBadFloat.
func (c Codec) FromFloat64(f float64) (uint64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, universal.ErrBadFloat
	}
	if f == 0 {
		return 0, nil
	}
	sig, e := mathutil.SplitFloat64(f)
	s := e - 127 + c.rbits
	var m mathutil.Uint128
	switch {
	case s < 0:
		m, _ = rounding.ShiftRight(sig, uint(-s))
	case c.arith == Saturate && sig.BitLen()+s > 128:
		m = maxMag
	default:
		m = sig.Lsh(uint(s))
	}
	return c.finish(f < 0, m), nil
}

// FromRat returns the pattern nearest to r, ties to even.
func (c Codec) FromRat(r *big.Rat) uint64 {
	num := new(big.Int).Abs(r.Num())
	num.Lsh(num, uint(c.rbits))
	q, rem := num.QuoRem(num, r.Denom(), new(big.Int))
	switch rem.Lsh(rem, 1).Cmp(r.Denom()) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	m, ok := mathutil.FromBig(q)
	if !ok {
		if c.arith == Saturate {
			m = maxMag
		} else {
			m, _ = mathutil.FromBig(q.And(q, maxMag.Big()))
		}
	}
	return c.finish(r.Sign() < 0, m)
}

// Rat returns the exact value of bits.
func (c Codec) Rat(bits uint64) *big.Rat {
	neg, m := c.split(bits)
	return mathutil.BinaryRat(neg, new(big.Int).SetUint64(m), -c.rbits)
}
