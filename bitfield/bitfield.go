// Package bitfield implements a fixed-width block of bits.
//
// A Field is a value type holding up to 64 bits. Its width is set at
// construction and never changes. Every index and range argument is checked
// against the width, an access outside [0, width) panics.
package bitfield

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
)

// MaxWidth is the widest supported field.
const MaxWidth = 64

// Field is a block of width bits.
//
//	width-1                      0
//	|____________________________|
//	msb                        lsb
type Field struct {
	bits  uint64
	width uint8
}

// New returns a zero field of the given width.
func New(width int) Field {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("bitfield: bad width %d", width))
	}
	return Field{width: uint8(width)}
}

// FromBits returns a field holding bits.
// It panics if bits has ones at or above width.
func FromBits(width int, bits uint64) Field {
	f := New(width)
	if bits&^f.Mask() != 0 {
		panic(fmt.Sprintf("bitfield: %#x does not fit %d bits", bits, width))
	}
	f.bits = bits
	return f
}

// FromInteger returns the two's complement of v in a field of the given width.
// It panics if v is not representable in width bits, either as a signed or as
// an unsigned number.
func FromInteger[T constraints.Integer](width int, v T) Field {
	f := New(width)
	if v < 0 {
		s := int64(v)
		if width < 64 && s < -(1<<(width-1)) {
			panic(fmt.Sprintf("bitfield: %d does not fit %d bits", s, width))
		}
		f.bits = uint64(s) & f.Mask()
		return f
	}
	return FromBits(width, uint64(v))
}

// FromFloat64 returns a field holding the integral value of v.
// It is meant for literals, v must be an integer representable in width bits.
func FromFloat64(width int, v float64) Field {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		panic(fmt.Sprintf("bitfield: %v is not an integral literal", v))
	}
	if v < 0 {
		if v < math.MinInt64 {
			panic(fmt.Sprintf("bitfield: %v does not fit %d bits", v, width))
		}
		return FromInteger(width, int64(v))
	}
	if v >= 1<<64 {
		panic(fmt.Sprintf("bitfield: %v does not fit %d bits", v, width))
	}
	return FromInteger(width, uint64(v))
}

// Width returns the number of bits in f.
func (f Field) Width() int {
	return int(f.width)
}

// Bits returns the raw bits.
func (f Field) Bits() uint64 {
	return f.bits
}

// Mask returns the mask of all valid bits.
func (f Field) Mask() uint64 {
	return mathutil.Mask(int(f.width))
}

func (f Field) check(i int) {
	if i < 0 || i >= int(f.width) {
		panic(fmt.Sprintf("bitfield: index %d out of range [0, %d)", i, f.width))
	}
}

func (f Field) checkRange(lo, hi int) {
	if lo < 0 || hi > int(f.width) || lo > hi {
		panic(fmt.Sprintf("bitfield: range [%d, %d) out of range [0, %d)", lo, hi, f.width))
	}
}

// Get returns bit i.
func (f Field) Get(i int) bool {
	f.check(i)
	return f.bits>>uint(i)&1 == 1
}

// Set returns f with bit i set to bit.
func (f Field) Set(i int, bit bool) Field {
	f.check(i)
	if bit {
		f.bits |= 1 << uint(i)
	} else {
		f.bits &^= 1 << uint(i)
	}
	return f
}

// Extract returns bits [lo, hi) as an unsigned number.
func (f Field) Extract(lo, hi int) uint64 {
	f.checkRange(lo, hi)
	return f.bits >> uint(lo) & mathutil.Mask(hi-lo)
}

// Insert returns f with bits [lo, hi) replaced by the low bits of v.
// It panics if v does not fit hi-lo bits.
func (f Field) Insert(lo, hi int, v uint64) Field {
	f.checkRange(lo, hi)
	m := mathutil.Mask(hi - lo)
	if v&^m != 0 {
		panic(fmt.Sprintf("bitfield: %#x does not fit range [%d, %d)", v, lo, hi))
	}
	f.bits = f.bits&^(m<<uint(lo)) | v<<uint(lo)
	return f
}

// Shl shifts f left by n, bits moved past the width are lost.
func (f Field) Shl(n int) Field {
	if n >= 64 {
		f.bits = 0
		return f
	}
	f.bits = f.bits << uint(n) & f.Mask()
	return f
}

// Shr shifts f right by n.
func (f Field) Shr(n int) Field {
	if n >= 64 {
		f.bits = 0
		return f
	}
	f.bits >>= uint(n)
	return f
}

// Negate returns the two's complement of f.
func (f Field) Negate() Field {
	f.bits = -f.bits & f.Mask()
	return f
}

// SignExtend interprets f as a two's complement number.
func (f Field) SignExtend() int64 {
	return mathutil.SignExtend(f.bits, int(f.width))
}

// Run scans from bit 'from' towards bit 0 and counts the bits equal to bit
// 'from'. terminated reports whether an opposite bit stopped the run before
// bit 0 was passed.
func (f Field) Run(from int) (length int, terminated bool) {
	f.check(from)
	lead := f.bits >> uint(from) & 1
	for i := from; i >= 0; i-- {
		if f.bits>>uint(i)&1 != lead {
			return length, true
		}
		length++
	}
	return length, false
}

// String returns the bits from msb to lsb, like "0b0110".
func (f Field) String() string {
	var b strings.Builder
	b.Grow(int(f.width) + 2)
	b.WriteString("0b")
	for i := int(f.width) - 1; i >= 0; i-- {
		if f.bits>>uint(i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
