package posit

// Zero returns 0.
func Zero[S Shape]() Posit[S] {
	return 0
}

// NaR returns the not-a-real posit.
func NaR[S Shape]() Posit[S] {
	return Posit[S](codec[S]().sign)
}

// One returns 1.
func One[S Shape]() Posit[S] {
	return Posit[S](codec[S]().sign >> 1)
}

// MaxPos returns the largest positive posit, useed^(nbits-2).
func MaxPos[S Shape]() Posit[S] {
	return Posit[S](codec[S]().sign - 1)
}

// MinPos returns the smallest positive posit, useed^(2-nbits).
func MinPos[S Shape]() Posit[S] {
	return 1
}

// MaxNeg returns the negative posit of the largest magnitude, -maxpos.
func MaxNeg[S Shape]() Posit[S] {
	return Posit[S](codec[S]().sign + 1)
}

// MinNeg returns the negative posit of the smallest magnitude, -minpos.
func MinNeg[S Shape]() Posit[S] {
	return Posit[S](codec[S]().mask)
}

func (p Posit[S]) IsZero() bool {
	return p == 0
}

func (p Posit[S]) IsNaR() bool {
	return uint64(p) == codec[S]().sign
}

// IsNeg reports whether p < 0. NaR is not negative.
func (p Posit[S]) IsNeg() bool {
	s := codec[S]().sign
	return uint64(p)&s != 0 && uint64(p) != s
}

// IsPos reports whether p > 0.
func (p Posit[S]) IsPos() bool {
	return p != 0 && uint64(p)&codec[S]().sign == 0
}

// Sign returns -1, 0 or 1 like the sign of p, and 0 for NaR.
func (p Posit[S]) Sign() int {
	switch {
	case p.IsPos():
		return 1
	case p.IsNeg():
		return -1
	default:
		return 0
	}
}
