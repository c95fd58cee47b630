package mdlns

import (
	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
)

// Add returns x+y rounded to the nearest value in the log domain.
func (x MDLNS[S]) Add(y MDLNS[S]) MDLNS[S] {
	c := codec[S]()
	switch {
	case x.IsNaR() || y.IsNaR():
		return NaR[S]()
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	}
	ax, bx := c.Exponents(uint64(x))
	ay, by := c.Exponents(uint64(y))
	nx, ny := c.IsNeg(uint64(x)), c.IsNeg(uint64(y))
	m := cmpMag(ax, bx, ay, by)
	if m < 0 {
		ax, bx, ay, by = ay, by, ax, bx
		nx, ny = ny, nx
	}
	d := Log(ay-ax, by-bx)
	if nx == ny {
		return MDLNS[S](c.Nearest(nx, Log(ax, bx)+mathutil.GaussSum(d)))
	}
	if m == 0 {
		return Zero[S]()
	}
	return MDLNS[S](c.Nearest(nx, Log(ax, bx)+mathutil.GaussDiff(d)))
}

// Sub returns x-y.
func (x MDLNS[S]) Sub(y MDLNS[S]) MDLNS[S] {
	return x.Add(y.Neg())
}

// Mul returns x*y, exact while the exponent sums are in range.
func (x MDLNS[S]) Mul(y MDLNS[S]) MDLNS[S] {
	c := codec[S]()
	switch {
	case x.IsNaR() || y.IsNaR():
		return NaR[S]()
	case x.IsZero() || y.IsZero():
		return Zero[S]()
	}
	ax, bx := c.Exponents(uint64(x))
	ay, by := c.Exponents(uint64(y))
	neg := c.IsNeg(uint64(x)) != c.IsNeg(uint64(y))
	return MDLNS[S](c.Compose(neg, ax+ay, bx+by))
}

// Div returns x/y, exact while the exponent differences are in range.
// Division by zero gives NaR.
func (x MDLNS[S]) Div(y MDLNS[S]) MDLNS[S] {
	c := codec[S]()
	switch {
	case x.IsNaR() || y.IsNaR() || y.IsZero():
		return NaR[S]()
	case x.IsZero():
		return Zero[S]()
	}
	ax, bx := c.Exponents(uint64(x))
	ay, by := c.Exponents(uint64(y))
	neg := c.IsNeg(uint64(x)) != c.IsNeg(uint64(y))
	return MDLNS[S](c.Compose(neg, ax-ay, bx-by))
}

// Reciprocal returns 1/x.
func (x MDLNS[S]) Reciprocal() MDLNS[S] {
	return One[S]().Div(x)
}

// Neg returns -x. Zero and NaR are unchanged.
func (x MDLNS[S]) Neg() MDLNS[S] {
	c := codec[S]()
	if c.IsSpecial(uint64(x)) {
		return x
	}
	return MDLNS[S](uint64(x) ^ c.sign)
}

// Abs returns |x|.
func (x MDLNS[S]) Abs() MDLNS[S] {
	if x.IsNeg() {
		return x.Neg()
	}
	return x
}

// Cmp compares x and y. It returns universal.Unordered if any of them is NaR.
func (x MDLNS[S]) Cmp(y MDLNS[S]) universal.Ordering {
	c := codec[S]()
	switch {
	case x.IsNaR() || y.IsNaR():
		return universal.Unordered
	case x == y:
		return universal.Equal
	}
	sx, sy := sign(c, uint64(x)), sign(c, uint64(y))
	if sx != sy || sx == 0 {
		return universal.Compare(sx, sy)
	}
	ax, bx := c.Exponents(uint64(x))
	ay, by := c.Exponents(uint64(y))
	m := cmpMag(ax, bx, ay, by)
	if sx < 0 {
		m = -m
	}
	return universal.Ordering(m)
}

func sign(c Codec, bits uint64) int64 {
	switch {
	case c.IsSpecial(bits):
		return 0
	case c.IsNeg(bits):
		return -1
	default:
		return 1
	}
}

// Eq reports whether x == y. NaR is not equal to anything.
func (x MDLNS[S]) Eq(y MDLNS[S]) bool {
	return x.Cmp(y) == universal.Equal
}

// Ne reports whether x != y.
func (x MDLNS[S]) Ne(y MDLNS[S]) bool {
	return !x.Eq(y)
}

func (x MDLNS[S]) Lt(y MDLNS[S]) bool {
	return x.Cmp(y) == universal.Less
}

func (x MDLNS[S]) Le(y MDLNS[S]) bool {
	o := x.Cmp(y)
	return o == universal.Less || o == universal.Equal
}

func (x MDLNS[S]) Gt(y MDLNS[S]) bool {
	return x.Cmp(y) == universal.Greater
}

func (x MDLNS[S]) Ge(y MDLNS[S]) bool {
	o := x.Cmp(y)
	return o == universal.Greater || o == universal.Equal
}
