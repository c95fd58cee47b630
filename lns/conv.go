package lns

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/wire"
)

const narString = "NaR"

// FromFloat64 returns the number nearest to f in the log domain.
// NaN and infinities give NaR.
func FromFloat64[S Shape](f float64) LNS[S] {
	return LNS[S](codec[S]().FromFloat64(f))
}

// FromFloat returns the number nearest to f.
func FromFloat[S Shape, T constraints.Float](f T) LNS[S] {
	return FromFloat64[S](float64(f))
}

// FromInteger returns the number nearest to v.
func FromInteger[S Shape, T constraints.Integer](v T) LNS[S] {
	return FromFloat64[S](float64(v))
}

// FromInt64 returns the number nearest to v.
func FromInt64[S Shape](v int64) LNS[S] {
	return FromInteger[S](v)
}

// FromUint64 returns the number nearest to v.
func FromUint64[S Shape](v uint64) LNS[S] {
	return FromInteger[S](v)
}

// FromDecimal returns the number nearest to d.
func FromDecimal[S Shape](d decimal.Decimal) LNS[S] {
	f, _ := d.Float64()
	return FromFloat64[S](f)
}

// FromString parses a decimal number, or "NaR".
func FromString[S Shape](s string) (LNS[S], error) {
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
func MustFromString[S Shape](s string) LNS[S] {
	x, err := FromString[S](s)
	if err != nil {
		panic(err)
	}
	return x
}

// Decimal returns the float64 value of x as a decimal.
// It returns universal.ErrNaR for NaR and universal.ErrRange if the value
// does not fit a float64.
func (x LNS[S]) Decimal() (decimal.Decimal, error) {
	if x.IsNaR() {
		return decimal.Decimal{}, universal.ErrNaR
	}
	f := x.Float64()
	if math.IsInf(f, 0) {
		return decimal.Decimal{}, universal.ErrRange
	}
	return decimal.NewFromFloat(f), nil
}

// Int64 returns the integer part of x, truncated toward zero.
// Values outside the int64 range saturate, NaR gives math.MinInt64.
func (x LNS[S]) Int64() int64 {
	if x.IsNaR() {
		return math.MinInt64
	}
	f := x.Float64()
	v, err := safecast.Convert[int64](math.Trunc(f))
	if err != nil {
		if f < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return v
}

// MarshalJSON returns the value as a JSON string, or "NaR".
func (x LNS[S]) MarshalJSON() ([]byte, error) {
	return wire.Quote(x.String()), nil
}

// UnmarshalJSON accepts a decimal string or number, or "NaR".
func (x *LNS[S]) UnmarshalJSON(data []byte) error {
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
func (x LNS[S]) MarshalBinary() ([]byte, error) {
	return wire.Append(nil, codec[S]().nbits, uint64(x)), nil
}

func (x *LNS[S]) UnmarshalBinary(data []byte) error {
	bits, err := wire.Read(codec[S]().nbits, data)
	if err != nil {
		return err
	}
	*x = LNS[S](bits)
	return nil
}
