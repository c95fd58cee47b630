package posit

import (
	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/triple"
)

// binary applies op to the unpacked operands and rounds the result.
// NaR operands short-circuit to NaR.
func binary[S Shape](p, q Posit[S], op func(a, b triple.Triple) triple.Triple) Posit[S] {
	c := codec[S]()
	if uint64(p) == c.sign || uint64(q) == c.sign {
		return Posit[S](c.sign)
	}
	return Posit[S](c.Round(op(c.Unpack(uint64(p)), c.Unpack(uint64(q)))))
}

// Add returns p+q.
func (p Posit[S]) Add(q Posit[S]) Posit[S] {
	switch {
	case p == 0:
		return q
	case q == 0:
		return p
	}
	return binary(p, q, triple.Add)
}

// Sub returns p-q.
func (p Posit[S]) Sub(q Posit[S]) Posit[S] {
	return p.Add(q.Neg())
}

// Mul returns p*q.
func (p Posit[S]) Mul(q Posit[S]) Posit[S] {
	return binary(p, q, triple.Mul)
}

// Div returns p/q. Division by zero gives NaR.
func (p Posit[S]) Div(q Posit[S]) Posit[S] {
	if q == 0 {
		return NaR[S]()
	}
	return binary(p, q, triple.Div)
}

// Neg returns -p. The negation of a posit is exact.
func (p Posit[S]) Neg() Posit[S] {
	return Posit[S](codec[S]().Negate(uint64(p)))
}

// Abs returns |p|. The absolute value of NaR is NaR.
func (p Posit[S]) Abs() Posit[S] {
	if p.IsNeg() {
		return p.Neg()
	}
	return p
}

// Reciprocal returns 1/p.
func (p Posit[S]) Reciprocal() Posit[S] {
	return One[S]().Div(p)
}

// Cmp compares p and q. It returns universal.Unordered if any of them is NaR.
//
// The patterns of non-NaR posits, read as two's complement integers, are
// ordered like their values, so no decoding is needed.
func (p Posit[S]) Cmp(q Posit[S]) universal.Ordering {
	c := codec[S]()
	if uint64(p) == c.sign || uint64(q) == c.sign {
		return universal.Unordered
	}
	return universal.Compare(c.Key(uint64(p)), c.Key(uint64(q)))
}

// Eq reports whether p == q. NaR is not equal to anything.
func (p Posit[S]) Eq(q Posit[S]) bool {
	return p.Cmp(q) == universal.Equal
}

// Ne reports whether p != q. NaR is not equal to anything, itself included.
func (p Posit[S]) Ne(q Posit[S]) bool {
	return !p.Eq(q)
}

func (p Posit[S]) Lt(q Posit[S]) bool {
	return p.Cmp(q) == universal.Less
}

func (p Posit[S]) Le(q Posit[S]) bool {
	o := p.Cmp(q)
	return o == universal.Less || o == universal.Equal
}

func (p Posit[S]) Gt(q Posit[S]) bool {
	return p.Cmp(q) == universal.Greater
}

func (p Posit[S]) Ge(q Posit[S]) bool {
	o := p.Cmp(q)
	return o == universal.Greater || o == universal.Equal
}

// Min returns the smaller of p and q, NaR if any of them is NaR.
func Min[S Shape](p, q Posit[S]) Posit[S] {
	switch p.Cmp(q) {
	case universal.Unordered:
		return NaR[S]()
	case universal.Greater:
		return q
	default:
		return p
	}
}

// Max returns the larger of p and q, NaR if any of them is NaR.
func Max[S Shape](p, q Posit[S]) Posit[S] {
	switch p.Cmp(q) {
	case universal.Unordered:
		return NaR[S]()
	case universal.Less:
		return q
	default:
		return p
	}
}

// Next returns the posit following p on the projective circle.
// Next(maxpos) is NaR and Next(NaR) is maxneg.
func (p Posit[S]) Next() Posit[S] {
	c := codec[S]()
	return Posit[S]((uint64(p) + 1) & c.mask)
}

// Prev returns the posit preceding p on the projective circle.
func (p Posit[S]) Prev() Posit[S] {
	c := codec[S]()
	return Posit[S]((uint64(p) - 1) & c.mask)
}
