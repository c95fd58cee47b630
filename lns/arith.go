package lns

import (
	"math"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
	"github.com/Lemurian-Labs/lemurian-universal/rounding"
)

// offset returns the pattern for the scaled logarithm l+off rounded to
// nearest even.
func (c Codec) offset(neg bool, l int64, off float64) uint64 {
	r := rounding.Float(off)
	if math.Abs(r) < 1<<62 {
		return c.Clamp(neg, l+int64(r))
	}
	return c.RoundLog(neg, float64(l)+off)
}

// Add returns x+y.
func (x LNS[S]) Add(y LNS[S]) LNS[S] {
	c := codec[S]()
	switch {
	case x.IsNaR() || y.IsNaR():
		return NaR[S]()
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	}
	lx, ly := c.Log(uint64(x)), c.Log(uint64(y))
	nx, ny := c.IsNeg(uint64(x)), c.IsNeg(uint64(y))
	// keep |x| >= |y|
	if lx < ly {
		lx, ly = ly, lx
		nx, ny = ny, nx
	}
	unit := float64(c.unit)
	d := float64(ly-lx) / unit
	if nx == ny {
		return LNS[S](c.offset(nx, lx, mathutil.GaussSum(d)*unit))
	}
	if lx == ly {
		return Zero[S]()
	}
	return LNS[S](c.offset(nx, lx, mathutil.GaussDiff(d)*unit))
}

// Sub returns x-y.
func (x LNS[S]) Sub(y LNS[S]) LNS[S] {
	return x.Add(y.Neg())
}

// Mul returns x*y. The product of two finite numbers is exact unless it is
// out of range.
func (x LNS[S]) Mul(y LNS[S]) LNS[S] {
	c := codec[S]()
	switch {
	case x.IsNaR() || y.IsNaR():
		return NaR[S]()
	case x.IsZero() || y.IsZero():
		return Zero[S]()
	}
	neg := c.IsNeg(uint64(x)) != c.IsNeg(uint64(y))
	return LNS[S](c.Clamp(neg, c.Log(uint64(x))+c.Log(uint64(y))))
}

// Div returns x/y. Division by zero gives NaR.
func (x LNS[S]) Div(y LNS[S]) LNS[S] {
	c := codec[S]()
	switch {
	case x.IsNaR() || y.IsNaR() || y.IsZero():
		return NaR[S]()
	case x.IsZero():
		return Zero[S]()
	}
	neg := c.IsNeg(uint64(x)) != c.IsNeg(uint64(y))
	return LNS[S](c.Clamp(neg, c.Log(uint64(x))-c.Log(uint64(y))))
}

// Reciprocal returns 1/x, which is exact for every finite nonzero x.
func (x LNS[S]) Reciprocal() LNS[S] {
	return One[S]().Div(x)
}

// Neg returns -x.
func (x LNS[S]) Neg() LNS[S] {
	c := codec[S]()
	if c.IsSpecial(uint64(x)) {
		return x
	}
	return LNS[S](uint64(x) ^ c.sign)
}

// Abs returns |x|.
func (x LNS[S]) Abs() LNS[S] {
	if x.IsNeg() {
		return x.Neg()
	}
	return x
}

// key returns an integer ordered like the value of a non-NaR pattern.
func (c Codec) key(bits uint64) int64 {
	if c.IsSpecial(bits) {
		return 0
	}
	k := c.Log(bits) - c.minLog
	if c.IsNeg(bits) {
		return -k
	}
	return k
}

// Cmp compares x and y. It returns universal.Unordered if any of them is NaR.
func (x LNS[S]) Cmp(y LNS[S]) universal.Ordering {
	c := codec[S]()
	if x.IsNaR() || y.IsNaR() {
		return universal.Unordered
	}
	return universal.Compare(c.key(uint64(x)), c.key(uint64(y)))
}

// Eq reports whether x == y. NaR is not equal to anything.
func (x LNS[S]) Eq(y LNS[S]) bool {
	return x.Cmp(y) == universal.Equal
}

// Ne reports whether x != y.
func (x LNS[S]) Ne(y LNS[S]) bool {
	return !x.Eq(y)
}

func (x LNS[S]) Lt(y LNS[S]) bool {
	return x.Cmp(y) == universal.Less
}

func (x LNS[S]) Le(y LNS[S]) bool {
	o := x.Cmp(y)
	return o == universal.Less || o == universal.Equal
}

func (x LNS[S]) Gt(y LNS[S]) bool {
	return x.Cmp(y) == universal.Greater
}

func (x LNS[S]) Ge(y LNS[S]) bool {
	o := x.Cmp(y)
	return o == universal.Greater || o == universal.Equal
}
