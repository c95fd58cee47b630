package posit

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"fortio.org/safecast"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
	"github.com/Lemurian-Labs/lemurian-universal/internal/triple"
	"github.com/Lemurian-Labs/lemurian-universal/internal/wire"
)

const narString = "NaR"

// FromFloat64 returns the posit nearest to f. NaN and infinities give NaR.
func FromFloat64[S Shape](f float64) Posit[S] {
	return Posit[S](codec[S]().FromFloat64(f))
}

// FromFloat returns the posit nearest to f.
func FromFloat[S Shape, T constraints.Float](f T) Posit[S] {
	return FromFloat64[S](float64(f))
}

// FromUint64 returns the posit nearest to v.
func FromUint64[S Shape](v uint64) Posit[S] {
	return fromMagnitude[S](false, v)
}

// FromInt64 returns the posit nearest to v.
func FromInt64[S Shape](v int64) Posit[S] {
	return fromMagnitude[S](v < 0, mathutil.AbsUint64(v))
}

// FromInteger returns the posit nearest to v.
func FromInteger[S Shape, T constraints.Integer](v T) Posit[S] {
	if v < 0 {
		return FromInt64[S](int64(v))
	}
	return FromUint64[S](uint64(v))
}

func fromMagnitude[S Shape](neg bool, mag uint64) Posit[S] {
	return Posit[S](codec[S]().Round(triple.New(neg, 127, mathutil.From64(mag))))
}

// FromRat returns the posit nearest to r. A nil r gives NaR.
func FromRat[S Shape](r *big.Rat) Posit[S] {
	switch {
	case r == nil:
		return NaR[S]()
	case r.Sign() == 0:
		return 0
	}
	return fromRatParts[S](r.Sign() < 0, new(big.Int).Abs(r.Num()), r.Denom())
}

// FromDecimal returns the posit nearest to d.
func FromDecimal[S Shape](d decimal.Decimal) Posit[S] {
	if d.IsZero() {
		return 0
	}
	num, den, neg := mathutil.DecimalRat(d)
	return fromRatParts[S](neg, num, den)
}

func fromRatParts[S Shape](neg bool, num, den *big.Int) Posit[S] {
	sig, exp, sticky := mathutil.SplitRat(num, den)
	if sticky {
		sig.Lo |= 1
	}
	return Posit[S](codec[S]().Round(triple.Triple{Neg: neg, Scale: exp, Sig: sig}))
}

// FromString parses a decimal number, or "NaR", and returns the nearest posit.
func FromString[S Shape](s string) (Posit[S], error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, narString) {
		return NaR[S](), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	return FromDecimal[S](d), nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString[S Shape](s string) Posit[S] {
	p, err := FromString[S](s)
	if err != nil {
		panic(err)
	}
	return p
}

// significand returns the integer significand and its binary exponent.
func (p Posit[S]) significand() (d universal.Decoded, m *big.Int, exp int) {
	d = p.Decode()
	m = new(big.Int).SetUint64(uint64(1)<<uint(d.FracBits) | d.Frac)
	return d, m, d.Scale - d.FracBits
}

// Rat returns the exact value of p. It returns universal.ErrNaR for NaR.
func (p Posit[S]) Rat() (*big.Rat, error) {
	switch {
	case p.IsNaR():
		return nil, universal.ErrNaR
	case p == 0:
		return new(big.Rat), nil
	}
	d, m, exp := p.significand()
	return mathutil.BinaryRat(d.Neg, m, exp), nil
}

// Decimal returns the exact decimal value of p. It returns universal.ErrNaR for NaR.
func (p Posit[S]) Decimal() (decimal.Decimal, error) {
	switch {
	case p.IsNaR():
		return decimal.Decimal{}, universal.ErrNaR
	case p == 0:
		return decimal.Zero, nil
	}
	d, m, exp := p.significand()
	return mathutil.BinaryDecimal(d.Neg, m, exp)
}

// Int64 returns the integer part of p, truncated toward zero.
// Values outside the int64 range saturate, NaR gives math.MinInt64.
func (p Posit[S]) Int64() int64 {
	switch {
	case p.IsNaR():
		return math.MinInt64
	case p == 0:
		return 0
	}
	d := p.Decode()
	if d.Scale < 0 {
		return 0
	}
	sat := int64(math.MaxInt64)
	if d.Neg {
		sat = math.MinInt64
	}
	if d.Scale >= 63 {
		return sat
	}
	m := uint64(1)<<uint(d.FracBits) | d.Frac
	if d.Scale >= d.FracBits {
		m <<= uint(d.Scale - d.FracBits)
	} else {
		m >>= uint(d.FracBits - d.Scale)
	}
	v, err := safecast.Conv[int64](m)
	if err != nil {
		return sat
	}
	if d.Neg {
		return -v
	}
	return v
}

// MarshalJSON returns the exact decimal value as a JSON string, or "NaR".
func (p Posit[S]) MarshalJSON() ([]byte, error) {
	if p.IsNaR() {
		return wire.Quote(narString), nil
	}
	d, err := p.Decimal()
	if err != nil {
		return nil, err
	}
	return wire.Quote(d.String()), nil
}

// UnmarshalJSON accepts a decimal string or number, or "NaR".
func (p *Posit[S]) UnmarshalJSON(data []byte) error {
	s, err := wire.Unquote(data)
	if err != nil {
		return err
	}
	v, err := FromString[S](s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalBinary returns the pattern as ceil(nbits/8) little-endian bytes.
func (p Posit[S]) MarshalBinary() ([]byte, error) {
	return wire.Append(nil, codec[S]().nbits, uint64(p)), nil
}

func (p *Posit[S]) UnmarshalBinary(data []byte) error {
	bits, err := wire.Read(codec[S]().nbits, data)
	if err != nil {
		return err
	}
	*p = Posit[S](bits)
	return nil
}
