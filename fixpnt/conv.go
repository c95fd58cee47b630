package fixpnt

import (
	"fmt"
	"math/big"
	"strings"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
	"github.com/Lemurian-Labs/lemurian-universal/internal/wire"
)

// robahoPlaces is the number of decimal places of robaho/fixed values.
const robahoPlaces = 7

// robahoMax is the largest magnitude a robaho/fixed value holds.
var robahoMax = decimal.RequireFromString("99999999999.9999999")

// FromFloat64 returns the number nearest to f, wrapped or saturated.
// NaN and infinities give universal.ErrBadFloat.
func FromFloat64[S Shape](f float64) (Fixed[S], error) {
	bits, err := codec[S]().FromFloat64(f)
	return Fixed[S](bits), err
}

// MustFromFloat64 is like FromFloat64, but panics on error.
func MustFromFloat64[S Shape](f float64) Fixed[S] {
	x, err := FromFloat64[S](f)
	if err != nil {
		panic(err)
	}
	return x
}

// FromFloat returns the number nearest to f.
func FromFloat[S Shape, T constraints.Float](f T) (Fixed[S], error) {
	return FromFloat64[S](float64(f))
}

// FromInteger returns v, wrapped or saturated.
func FromInteger[S Shape, T constraints.Integer](v T) Fixed[S] {
	if v < 0 {
		return FromInt64[S](int64(v))
	}
	return FromUint64[S](uint64(v))
}

// FromInt64 returns v, wrapped or saturated.
func FromInt64[S Shape](v int64) Fixed[S] {
	c := codec[S]()
	return Fixed[S](c.FromMag(v < 0, mathutil.From64(mathutil.AbsUint64(v)).Lsh(uint(c.rbits))))
}

// FromUint64 returns v, wrapped or saturated.
func FromUint64[S Shape](v uint64) Fixed[S] {
	c := codec[S]()
	return Fixed[S](c.FromMag(false, mathutil.From64(v).Lsh(uint(c.rbits))))
}

// FromRat returns the number nearest to r, ties to even.
func FromRat[S Shape](r *big.Rat) Fixed[S] {
	return Fixed[S](codec[S]().FromRat(r))
}

// FromDecimal returns the number nearest to d, ties to even.
func FromDecimal[S Shape](d decimal.Decimal) Fixed[S] {
	num, den, neg := mathutil.DecimalRat(d)
	if neg {
		num.Neg(num)
	}
	return FromRat[S](new(big.Rat).SetFrac(num, den))
}

// FromString parses a decimal number.
func FromString[S Shape](s string) (Fixed[S], error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	return FromDecimal[S](d), nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString[S Shape](s string) Fixed[S] {
	x, err := FromString[S](s)
	if err != nil {
		panic(err)
	}
	return x
}

// FromFixed converts a robaho/fixed value. NaN gives universal.ErrBadFloat.
func FromFixed[S Shape](f of.Fixed) (Fixed[S], error) {
	if f.IsNaN() {
		return 0, universal.ErrBadFloat
	}
	return FromString[S](f.String())
}

// ToFixed converts x to a robaho/fixed value rounded to its 7 decimal places.
// Values beyond its range give universal.ErrRange.
func (x Fixed[S]) ToFixed() (of.Fixed, error) {
	d := x.Decimal().Round(robahoPlaces)
	if d.Abs().GreaterThan(robahoMax) {
		return of.NaN, universal.ErrRange
	}
	return of.NewSErr(d.String())
}

// Rat returns the exact value of x.
func (x Fixed[S]) Rat() *big.Rat {
	return codec[S]().Rat(uint64(x))
}

// Decimal returns the exact value of x.
func (x Fixed[S]) Decimal() decimal.Decimal {
	c := codec[S]()
	neg, m := c.split(uint64(x))
	// the exponent is -rbits, it always fits an int32
	d, _ := mathutil.BinaryDecimal(neg, new(big.Int).SetUint64(m), -c.rbits)
	return d
}

// Int64 returns the integer part of x, truncated toward zero.
func (x Fixed[S]) Int64() int64 {
	c := codec[S]()
	neg, m := c.split(uint64(x))
	v := int64(m >> uint(c.rbits))
	if neg {
		return -v
	}
	return v
}

// Frac returns the fractional part of x, x - x.Int64(), with the sign of x.
func (x Fixed[S]) Frac() Fixed[S] {
	c := codec[S]()
	neg, m := c.split(uint64(x))
	return Fixed[S](c.FromMag(neg, mathutil.From64(m&mathutil.Mask(c.rbits))))
}

// MarshalJSON returns the exact decimal value as a JSON string.
func (x Fixed[S]) MarshalJSON() ([]byte, error) {
	return wire.Quote(x.String()), nil
}

// UnmarshalJSON accepts a decimal string or number.
func (x *Fixed[S]) UnmarshalJSON(data []byte) error {
	s, err := wire.Unquote(data)
	if err != nil {
		return err
	}
	v, err := FromString[S](s)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalBinary returns the pattern as ceil(nbits/8) little-endian bytes.
func (x Fixed[S]) MarshalBinary() ([]byte, error) {
	return wire.Append(nil, codec[S]().nbits, uint64(x)), nil
}

func (x *Fixed[S]) UnmarshalBinary(data []byte) error {
	bits, err := wire.Read(codec[S]().nbits, data)
	if err != nil {
		return err
	}
	*x = Fixed[S](bits)
	return nil
}
