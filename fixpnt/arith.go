package fixpnt

import universal "github.com/Lemurian-Labs/lemurian-universal"

// Add returns x+y.
func (x Fixed[S]) Add(y Fixed[S]) Fixed[S] {
	return Fixed[S](codec[S]().Add(uint64(x), uint64(y)))
}

// Sub returns x-y.
func (x Fixed[S]) Sub(y Fixed[S]) Fixed[S] {
	return Fixed[S](codec[S]().Sub(uint64(x), uint64(y)))
}

// Mul returns x*y, rounded to nearest even.
func (x Fixed[S]) Mul(y Fixed[S]) Fixed[S] {
	return Fixed[S](codec[S]().Mul(uint64(x), uint64(y)))
}

// Div returns x/y, rounded to nearest even. Division by zero follows the
// fault policy of S: FaultSignal returns zero and an *universal.ArithmeticFault
// wrapping universal.ErrDivisionByZero, FaultClamp returns the bound with the
// sign of x, or zero for 0/0.
func (x Fixed[S]) Div(y Fixed[S]) (Fixed[S], error) {
	return x.DivPolicy(y, codec[S]().faults)
}

// DivPolicy is like Div, but uses policy for division by zero.
func (x Fixed[S]) DivPolicy(y Fixed[S], policy universal.FaultPolicy) (Fixed[S], error) {
	q, err := codec[S]().Div(uint64(x), uint64(y), policy)
	return Fixed[S](q), err
}

// MustDiv is like Div, but panics on error.
func (x Fixed[S]) MustDiv(y Fixed[S]) Fixed[S] {
	q, err := x.Div(y)
	if err != nil {
		panic(err)
	}
	return q
}

// Neg returns -x. With Modulo arithmetic the most negative value is its own
// negation, with Saturate it negates to the largest value.
func (x Fixed[S]) Neg() Fixed[S] {
	return Fixed[S](codec[S]().Neg(uint64(x)))
}

// Abs returns |x|, see Neg for the most negative value.
func (x Fixed[S]) Abs() Fixed[S] {
	return Fixed[S](codec[S]().Abs(uint64(x)))
}

// Cmp compares x and y.
func (x Fixed[S]) Cmp(y Fixed[S]) universal.Ordering {
	return codec[S]().Cmp(uint64(x), uint64(y))
}

func (x Fixed[S]) Eq(y Fixed[S]) bool {
	return x == y
}

func (x Fixed[S]) Ne(y Fixed[S]) bool {
	return x != y
}

func (x Fixed[S]) Lt(y Fixed[S]) bool {
	return x.Cmp(y) == universal.Less
}

func (x Fixed[S]) Le(y Fixed[S]) bool {
	return x.Cmp(y) != universal.Greater
}

func (x Fixed[S]) Gt(y Fixed[S]) bool {
	return x.Cmp(y) == universal.Greater
}

func (x Fixed[S]) Ge(y Fixed[S]) bool {
	return x.Cmp(y) != universal.Less
}

// Min returns the smaller of x and y.
func Min[S Shape](x, y Fixed[S]) Fixed[S] {
	if y.Lt(x) {
		return y
	}
	return x
}

// Max returns the larger of x and y.
func Max[S Shape](x, y Fixed[S]) Fixed[S] {
	if y.Gt(x) {
		return y
	}
	return x
}
