// Package triple implements an unrounded sign/scale/significand number used
// as the intermediate result of tapered arithmetic.
package triple

import (
	"math/bits"

	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
)

// Triple is (-1)^Neg * Sig * 2^(Scale-127).
// A nonzero Sig always has bit 127 set. Bits lost by an operation are jammed
// into bit 0 of Sig, so a rounder looking at fewer than 126 bits below the
// leading one sees the correct sticky bit.
// Mul and Div use the top 64 bits of each significand, lower bits only
// contribute to the sticky bit.
type Triple struct {
	Neg   bool
	Scale int
	Sig   mathutil.Uint128
}

// New returns a normalized triple for the magnitude sig * 2^(scale-127).
func New(neg bool, scale int, sig mathutil.Uint128) Triple {
	if sig.IsZero() {
		return Triple{}
	}
	sig, lz := sig.Normalize()
	return Triple{Neg: neg, Scale: scale - lz, Sig: sig}
}

// FromSignificand returns the triple for (1 + frac/2^fracBits) * 2^scale.
func FromSignificand(neg bool, scale int, frac uint64, fracBits int) Triple {
	m := uint64(1)<<uint(fracBits) | frac
	return Triple{Neg: neg, Scale: scale, Sig: mathutil.Uint128{Hi: m << uint(63-fracBits)}}
}

func (t Triple) IsZero() bool {
	return t.Sig.IsZero()
}

// Negated returns -t.
func (t Triple) Negated() Triple {
	if t.IsZero() {
		return t
	}
	t.Neg = !t.Neg
	return t
}

// cmpAbs compares |a| and |b|.
func cmpAbs(a, b Triple) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return -1
	case b.IsZero():
		return 1
	case a.Scale > b.Scale:
		return 1
	case a.Scale < b.Scale:
		return -1
	default:
		return a.Sig.Cmp(b.Sig)
	}
}

// Add returns a+b.
func Add(a, b Triple) Triple {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	// keep |a| >= |b|
	if cmpAbs(a, b) < 0 {
		a, b = b, a
	}
	d := uint(a.Scale - b.Scale)
	// one bit of headroom for the carry
	x := a.Sig.RshJam(1)
	y := b.Sig.RshJam(d + 1)
	if a.Neg == b.Neg {
		// a+b or -a+(-b) = -(a+b)
		return New(a.Neg, a.Scale+1, x.Add(y))
	}
	// a+(-b) = a-b, |a| >= |b|
	diff := x.Sub(y)
	if diff.IsZero() {
		return Triple{}
	}
	return New(a.Neg, a.Scale+1, diff)
}

// Sub returns a-b.
func Sub(a, b Triple) Triple {
	return Add(a, b.Negated())
}

// Mul returns a*b.
func Mul(a, b Triple) Triple {
	if a.IsZero() || b.IsZero() {
		return Triple{}
	}
	p := mathutil.Mul64(a.Sig.Hi, b.Sig.Hi)
	if a.Sig.Lo|b.Sig.Lo != 0 {
		p.Lo |= 1
	}
	// the product of two numbers in [2^63, 2^64) is in [2^126, 2^128)
	return New(a.Neg != b.Neg, a.Scale+b.Scale+1, p)
}

// Div returns a/b. b must not be zero.
func Div(a, b Triple) Triple {
	if a.IsZero() {
		return Triple{}
	}
	n, d := a.Sig.Hi, b.Sig.Hi
	// n*2^63/d is in (2^62, 2^64), n>>1 < d holds.
	hi, r := bits.Div64(n>>1, n<<63, d)
	lo, r := bits.Div64(r, 0, d)
	q := mathutil.Uint128{Hi: hi, Lo: lo}
	if r != 0 || a.Sig.Lo|b.Sig.Lo != 0 {
		q.Lo |= 1
	}
	// a/b = q * 2^(-63-64) * 2^(a.Scale-b.Scale)
	return New(a.Neg != b.Neg, a.Scale-b.Scale, q)
}
