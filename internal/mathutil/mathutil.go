package mathutil

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"
	"unsafe"

	"fortio.org/safecast"
	"github.com/shopspring/decimal"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// From64 returns v as a Uint128.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Mul64 returns the full 128-bit product a*b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

func (u Uint128) IsZero() bool {
	return u.Hi|u.Lo == 0
}

// Add returns u+v, the carry out of bit 127 is lost.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, c := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, c)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns u-v, the borrow is lost.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, b := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Or returns u|v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// Inc returns u+1.
func (u Uint128) Inc() Uint128 {
	return u.Add(Uint128{Lo: 1})
}

// Cmp returns -1 if u < v, 0 if u == v, 1 if u > v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi > v.Hi:
		return 1
	case u.Hi < v.Hi:
		return -1
	case u.Lo > v.Lo:
		return 1
	case u.Lo < v.Lo:
		return -1
	default:
		return 0
	}
}

// Lsh returns u<<n.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Rsh returns u>>n.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// RshJam returns u>>n with bit 0 set if any one bit was shifted out.
func (u Uint128) RshJam(n uint) Uint128 {
	if n == 0 {
		return u
	}
	r := u.Rsh(n)
	if r.Lsh(n) != u {
		r.Lo |= 1
	}
	return r
}

// Bit returns bit i of u.
func (u Uint128) Bit(i uint) bool {
	if i >= 64 {
		return u.Hi>>(i-64)&1 == 1
	}
	return u.Lo>>i&1 == 1
}

// LowBitsZero reports whether bits [0, n) of u are all zero.
func (u Uint128) LowBitsZero(n uint) bool {
	if n == 0 {
		return true
	}
	return u.Rsh(n).Lsh(n) == u
}

func (u Uint128) LeadingZeros() int {
	if u.Hi != 0 {
		return bits.LeadingZeros64(u.Hi)
	}
	return 64 + bits.LeadingZeros64(u.Lo)
}

// BitLen returns the minimum number of bits to represent u.
func (u Uint128) BitLen() int {
	return 128 - u.LeadingZeros()
}

// Normalize shifts u left until bit 127 is set and returns the shift.
// u must not be zero.
func (u Uint128) Normalize() (Uint128, int) {
	lz := u.LeadingZeros()
	return u.Lsh(uint(lz)), lz
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], u.Hi)
	binary.BigEndian.PutUint64(buf[8:], u.Lo)
	return new(big.Int).SetBytes(buf[:])
}

// FromBig returns x as a Uint128, ok is false if x is negative or does not fit.
func FromBig(x *big.Int) (u Uint128, ok bool) {
	if x.Sign() < 0 || x.BitLen() > 128 {
		return Uint128{}, false
	}
	var buf [16]byte
	x.FillBytes(buf[:])
	return Uint128{Hi: binary.BigEndian.Uint64(buf[:8]), Lo: binary.BigEndian.Uint64(buf[8:])}, true
}

// SplitRat returns sig and exp such that num/den = (sig + rest) * 2^(exp-127),
// where sig has bit 127 set and 0 <= rest < 1. sticky reports rest != 0.
// num and den must be positive.
func SplitRat(num, den *big.Int) (sig Uint128, exp int, sticky bool) {
	shift := 128 - (num.BitLen() - den.BitLen())
	n, d := new(big.Int).Set(num), new(big.Int).Set(den)
	if shift >= 0 {
		n.Lsh(n, uint(shift))
	} else {
		d.Lsh(d, uint(-shift))
	}
	q, r := n.QuoRem(n, d, new(big.Int))
	sticky = r.Sign() != 0
	// q is in [2^127, 2^129)
	if q.BitLen() > 128 {
		sticky = sticky || q.Bit(0) == 1
		q.Rsh(q, 1)
		shift--
	}
	sig, _ = FromBig(q)
	return sig, 127 - shift, sticky
}

// DecimalRat returns num/den == |d| and the sign of d.
func DecimalRat(d decimal.Decimal) (num, den *big.Int, neg bool) {
	num = new(big.Int).Abs(d.Coefficient())
	den = big.NewInt(1)
	exp := d.Exponent()
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(AbsInt(int(exp)))), nil)
	if exp >= 0 {
		num.Mul(num, p)
	} else {
		den = p
	}
	return num, den, d.Sign() < 0
}

// BinaryDecimal returns (-1)^neg * m * 2^exp as an exact decimal.
func BinaryDecimal(neg bool, m *big.Int, exp int) (decimal.Decimal, error) {
	c := new(big.Int).Set(m)
	if neg {
		c.Neg(c)
	}
	if exp >= 0 {
		return decimal.NewFromBigInt(c.Lsh(c, uint(exp)), 0), nil
	}
	// 2^-n = 5^n * 10^-n
	e, err := safecast.Conv[int32](exp)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromBigInt(c.Mul(c, Pow5(-exp)), e), nil
}

// BinaryRat returns (-1)^neg * m * 2^exp as a rational number.
func BinaryRat(neg bool, m *big.Int, exp int) *big.Rat {
	num, den := new(big.Int).Set(m), big.NewInt(1)
	if neg {
		num.Neg(num)
	}
	if exp >= 0 {
		num.Lsh(num, uint(exp))
	} else {
		den.Lsh(den, uint(-exp))
	}
	return new(big.Rat).SetFrac(num, den)
}

// Pow5 returns 5^n.
func Pow5(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(n)), nil)
}

// SplitFloat64 returns sig and exp such that |f| = sig * 2^(exp-127), sig has bit 127 set.
// f must be finite and nonzero.
func SplitFloat64(f float64) (sig Uint128, exp int) {
	frac, e := math.Frexp(math.Abs(f))
	m := uint64(frac * (1 << 53))
	return Uint128{Hi: m << 11}, e - 1
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// AbsUint64 returns |val| as an unsigned number, correct for math.MinInt64.
func AbsUint64(val int64) uint64 {
	if val < 0 {
		return uint64(-val)
	}
	return uint64(val)
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// SignExtend interprets the low n bits of v as a two's complement number.
func SignExtend(v uint64, n int) int64 {
	s := uint(64 - n)
	return int64(v<<s) >> s
}

// Mask returns a mask of the low n bits, n in [0, 64].
func Mask(n int) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(n) - 1
}

// GaussSum returns log2(1 + 2^x).
func GaussSum(x float64) float64 {
	return math.Log1p(math.Exp2(x)) / math.Ln2
}

// GaussDiff returns log2(1 - 2^x) for x < 0.
func GaussDiff(x float64) float64 {
	return math.Log(-math.Expm1(x*math.Ln2)) / math.Ln2
}
