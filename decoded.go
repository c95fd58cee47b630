// Package universal holds the vocabulary shared by the number formats of this
// module: the field decomposition produced by a codec, the special-value tags,
// comparison results and arithmetic fault handling.
//
// The formats themselves live in sub-packages:
//
//	posit   tapered precision numbers, posit<nbits, es>
//	lns     logarithmic numbers, lns<nbits, rbits>
//	mdlns   two-base logarithmic numbers, ±2^a·3^b
//	fixpnt  binary fixed-point numbers, fixpnt<nbits, rbits, Modulo|Saturate>
//
// Every value is a bit pattern stored in the low nbits bits of a uint64.
// The pattern is the only state, so values are copied, never shared, and are
// safe to use from multiple goroutines.
package universal

import "fmt"

// Special tags exceptional encodings.
type Special uint8

const (
	// None marks an ordinary finite nonzero value.
	None Special = iota
	// Zero marks the zero encoding.
	Zero
	// Inf marks an infinity. No format of this module encodes one, but
	// conversions from native floats report it.
	Inf
	// NaR marks the single "not a real" encoding.
	NaR
)

func (s Special) String() string {
	switch s {
	case None:
		return ""
	case Zero:
		return "zero"
	case Inf:
		return "inf"
	case NaR:
		return "NaR"
	default:
		return fmt.Sprintf("special(%d)", uint8(s))
	}
}

// Decoded is the decomposition of an encoding into its semantic fields.
// It is produced by Codec.Decode and consumed by Codec.Encode.
// The meaning of Scale and Frac depends on the format:
//
//	posit:  |v| = 2^Scale * (1 + Frac/2^FracBits), Scale = k*2^es + e
//	lns:    log2|v| = Scale + Frac/2^FracBits
//	fixpnt: |v| = Scale + Frac/2^FracBits
//	mdlns:  |v| = 2^Scale * 3^b, b is the FracBits-wide two's complement Frac
//
// For a Special other than None the other fields are zero.
type Decoded struct {
	Special  Special
	Neg      bool
	Scale    int
	Frac     uint64
	FracBits int
}

// IsSpecial reports whether d is a zero or an exceptional encoding.
func (d Decoded) IsSpecial() bool {
	return d.Special != None
}

func (d Decoded) String() string {
	if d.Special != None {
		return d.Special.String()
	}
	sign := '+'
	if d.Neg {
		sign = '-'
	}
	return fmt.Sprintf("%c scale=%d frac=%0*b", sign, d.Scale, d.FracBits, d.Frac)
}

// Codec maps bit patterns to decompositions and back.
// Decode is total: every pattern of NBits bits decodes.
// Encode is exact for a decomposition that came from Decode; it does not
// round. A decomposition outside the format's dynamic range encodes to the
// format's invalid pattern (NaR), or to a saturation bound for formats
// without one.
type Codec interface {
	NBits() int
	Decode(bits uint64) Decoded
	Encode(d Decoded) uint64
	Float64(bits uint64) float64
	String() string
}

// Ordering is the result of comparing two values.
type Ordering int8

const (
	// Less means a < b.
	Less Ordering = -1
	// Equal means a == b.
	Equal Ordering = 0
	// Greater means a > b.
	Greater Ordering = 1
	// Unordered means that one of the operands is NaR.
	Unordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Equal:
		return "=="
	case Greater:
		return ">"
	default:
		return "unordered"
	}
}

// Compare returns the ordering of two ordered keys.
func Compare[T int64 | uint64 | float64](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
