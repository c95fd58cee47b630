package lns

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/verify"
)

func TestParamsValidate(t *testing.T) {
	a := assert.New(t)
	a.NoError(Params{NBits: 2, RBits: 0}.Validate())
	a.NoError(Params{NBits: 8, RBits: 7}.Validate())
	a.NoError(Params{NBits: 64, RBits: 63}.Validate())
	a.Error(Params{NBits: 1, RBits: 0}.Validate())
	a.Error(Params{NBits: 8, RBits: 8}.Validate())
	a.Error(Params{NBits: 8, RBits: -1}.Validate())
	a.Error(Params{NBits: 65, RBits: 8}.Validate())
	a.Panics(func() { NewCodec(Params{NBits: 8, RBits: 8}) })
}

func TestOneRoundTrip(t *testing.T) {
	a := assert.New(t)
	x := FromFloat64[N16R8](1.0)
	a.Equal(One[N16R8](), x)
	a.Equal(uint64(0), x.Bits())
	a.Equal(1.0, x.Float64())
	for _, f := range []float64{2, 4, 0.5, 0.25, 1024, -8} {
		a.Equal(f, FromFloat64[N16R8](f).Float64())
	}
}

func TestSpecials(t *testing.T) {
	a := assert.New(t)
	c := CodecOf[N8R2]()
	a.Equal(uint64(0x40), c.Zero())
	a.Equal(uint64(0xc0), c.NaR())
	a.Equal(uint64(0x3f), c.MaxPos())
	a.Equal(uint64(0x41), c.MinPos())
	a.Equal(math.Exp2(63.0/4), MaxPos[N8R2]().Float64())
	a.Equal(math.Exp2(-63.0/4), MinPos[N8R2]().Float64())

	z, n := Zero[N8R2](), NaR[N8R2]()
	a.True(z.IsZero())
	a.Equal(0.0, z.Float64())
	a.True(n.IsNaR())
	a.True(math.IsNaN(n.Float64()))
	a.False(n.IsNeg())
	a.False(z.IsNeg())
	a.Equal(z, z.Neg())
	a.Equal(n, n.Neg())
	a.Equal(n, n.Abs())

	tests := []struct {
		x                   LNS[N8R2]
		finite, inf, normal bool
		class               universal.Special
	}{
		{z, true, false, false, universal.Zero},
		{n, false, false, false, universal.NaR},
		{MinPos[N8R2](), true, false, true, universal.None},
		{One[N8R2](), true, false, true, universal.None},
		{MaxPos[N8R2]().Neg(), true, false, true, universal.None},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.finite, test.x.IsFinite())
			a.Equal(test.inf, test.x.IsInf())
			a.Equal(test.normal, test.x.IsNormal())
			a.Equal(test.class, test.x.Classify())
		})
	}
}

func TestDecode(t *testing.T) {
	c := NewCodec(Params{NBits: 8, RBits: 2})
	tests := []struct {
		bits uint64
		want universal.Decoded
	}{
		{0x00, universal.Decoded{FracBits: 2}},
		{0x04, universal.Decoded{Scale: 1, FracBits: 2}},
		{0x06, universal.Decoded{Scale: 1, Frac: 2, FracBits: 2}},
		{0x7c, universal.Decoded{Scale: -1, FracBits: 2}},
		{0x7f, universal.Decoded{Scale: -1, Frac: 3, FracBits: 2}},
		{0x84, universal.Decoded{Neg: true, Scale: 1, FracBits: 2}},
		{0x3f, universal.Decoded{Scale: 15, Frac: 3, FracBits: 2}},
		{0x41, universal.Decoded{Scale: -16, Frac: 1, FracBits: 2}},
		{0x40, universal.Decoded{Special: universal.Zero}},
		{0xc0, universal.Decoded{Special: universal.NaR}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			got := c.Decode(test.bits)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("decode %#x mismatch (-want +got):\n%s", test.bits, diff)
			}
		})
	}
	assert.Panics(t, func() { c.Decode(0x100) })
}

func TestEncode(t *testing.T) {
	a := assert.New(t)
	c := NewCodec(Params{NBits: 8, RBits: 2})
	for _, bits := range verify.Patterns(8) {
		a.Equal(bits, c.Encode(c.Decode(bits)), "%#x", bits)
	}
	a.Equal(c.NaR(), c.Encode(universal.Decoded{Special: universal.Inf}))
	a.Equal(c.NaR(), c.Encode(universal.Decoded{Scale: 16}))
	a.Equal(c.NaR(), c.Encode(universal.Decoded{Scale: -16}))
	// 1.101b rounds to 1.10b, 1.111b carries into the integer part
	a.Equal(uint64(0x06), c.Encode(universal.Decoded{Scale: 1, Frac: 0b101, FracBits: 3}))
	a.Equal(uint64(0x08), c.Encode(universal.Decoded{Scale: 1, Frac: 0b111, FracBits: 3}))
	a.Equal(uint64(0x02), c.Encode(universal.Decoded{Frac: 1, FracBits: 1}))
	a.Panics(func() { c.Encode(universal.Decoded{Frac: 2, FracBits: 1}) })
}

func TestFromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    float64
		bits uint64
	}{
		{1, 0x00},
		{2, 0x04},
		{0.5, 0x7c},
		{-2, 0x84},
		{math.Sqrt2, 0x02},
		{3, 0x06},
		{0, 0x40},
		{1e9, 0x3f},
		{-1e9, 0xbf},
		{math.Exp2(-63.0 / 4), 0x41},
		// a quarter binade below minpos still rounds to minpos
		{math.Exp2(-64.0 / 4), 0x41},
		{math.Exp2(-67.0 / 4), 0x40},
		{1e-30, 0x40},
		{math.NaN(), 0xc0},
		{math.Inf(1), 0xc0},
		{math.Inf(-1), 0xc0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.bits, FromFloat64[N8R2](test.f).Bits(), "%v", test.f)
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := assert.New(t)
	f := FromFloat64[N8R2]
	a.Equal(f(2), f(1).Add(f(1)))
	a.Equal(f(4), f(2).Mul(f(2)))
	a.Equal(f(0.5), f(2).Div(f(4)))
	a.True(f(2).Sub(f(2)).IsZero())
	a.Equal(f(-1), f(1).Sub(f(2)))
	// log2(3) = 1.585 rounds to 1.5
	a.Equal(uint64(0x06), f(1).Add(f(2)).Bits())
	a.Equal(f(-4), f(-2).Mul(f(2)))
	a.Equal(f(4), f(-2).Mul(f(-2)))
	a.Equal(f(0.25), f(4).Reciprocal())
	a.True(f(4).Div(Zero[N8R2]()).IsNaR())
	a.True(Zero[N8R2]().Div(Zero[N8R2]()).IsNaR())
	a.True(Zero[N8R2]().Div(f(3)).IsZero())
	a.True(Zero[N8R2]().Mul(f(3)).IsZero())
	a.Equal(f(3), Zero[N8R2]().Add(f(3)))
	a.Equal(f(-3), Zero[N8R2]().Sub(f(3)))

	max, min := MaxPos[N8R2](), MinPos[N8R2]()
	a.Equal(max, max.Mul(max))
	a.Equal(max, max.Add(max))
	a.Equal(max.Neg(), max.Neg().Sub(max))
	a.True(min.Mul(min).IsZero())
	a.Equal(min, min.Mul(f(0.9)))
	a.True(min.Div(max).IsZero())
	a.Equal(max, f(1).Div(min))
}

func TestNaR(t *testing.T) {
	a := assert.New(t)
	n := NaR[N12R6]()
	for _, x := range []LNS[N12R6]{n, Zero[N12R6](), One[N12R6](), MaxPos[N12R6](), MinPos[N12R6]().Neg()} {
		a.True(n.Add(x).IsNaR())
		a.True(x.Add(n).IsNaR())
		a.True(n.Sub(x).IsNaR())
		a.True(x.Sub(n).IsNaR())
		a.True(n.Mul(x).IsNaR())
		a.True(x.Mul(n).IsNaR())
		a.True(n.Div(x).IsNaR())
		a.True(x.Div(n).IsNaR())
		a.Equal(universal.Unordered, n.Cmp(x))
		a.Equal(universal.Unordered, x.Cmp(n))
		a.False(n.Eq(x))
		a.True(n.Ne(x))
		a.False(n.Lt(x) || n.Le(x) || n.Gt(x) || n.Ge(x))
	}
}

func TestTotalOrder(t *testing.T) {
	a := assert.New(t)
	c := CodecOf[N8R2]()
	for _, x := range verify.Patterns(8) {
		for _, y := range verify.Patterns(8) {
			p, q := FromBits[N8R2](x), FromBits[N8R2](y)
			if p.IsNaR() || q.IsNaR() {
				continue
			}
			n := 0
			for _, ok := range []bool{p.Lt(q), p.Eq(q), p.Gt(q)} {
				if ok {
					n++
				}
			}
			if !a.Equal(1, n, "%#x %#x", x, y) {
				return
			}
			a.Equal(universal.Compare(c.Float64(x), c.Float64(y)), p.Cmp(q), "%#x %#x", x, y)
		}
	}
	a.True(One[N8R2]().Le(One[N8R2]()))
	a.True(One[N8R2]().Ge(One[N8R2]()))
}

// float returns a reference operator computing op in float64 and rounding
// the result.
func float[S Shape](op func(x, y float64) float64, zeroDivisor bool) verify.Op {
	return func(a, b uint64) uint64 {
		x, y := FromBits[S](a), FromBits[S](b)
		if x.IsNaR() || y.IsNaR() || (zeroDivisor && y.IsZero()) {
			return NaR[S]().Bits()
		}
		return FromFloat64[S](op(x.Float64(), y.Float64())).Bits()
	}
}

func verifyAll[S Shape](t *testing.T, run func(name string, op, ref verify.Op) verify.Report) {
	c := CodecOf[S]()
	tests := []struct {
		name    string
		op, ref verify.Op
	}{
		{"add", func(a, b uint64) uint64 { return FromBits[S](a).Add(FromBits[S](b)).Bits() },
			float[S](func(x, y float64) float64 { return x + y }, false)},
		{"sub", func(a, b uint64) uint64 { return FromBits[S](a).Sub(FromBits[S](b)).Bits() },
			float[S](func(x, y float64) float64 { return x - y }, false)},
		{"mul", func(a, b uint64) uint64 { return FromBits[S](a).Mul(FromBits[S](b)).Bits() },
			float[S](func(x, y float64) float64 { return x * y }, false)},
		{"div", func(a, b uint64) uint64 { return FromBits[S](a).Div(FromBits[S](b)).Bits() },
			float[S](func(x, y float64) float64 { return x / y }, true)},
	}
	for _, test := range tests {
		r := run(c.String()+" "+test.name, test.op, test.ref)
		assert.True(t, r.OK(), r.String())
	}
}

func TestExhaustive(t *testing.T) {
	exhaustive := func(nbits int) func(string, verify.Op, verify.Op) verify.Report {
		return func(name string, op, ref verify.Op) verify.Report {
			return verify.Exhaustive(name, nbits, op, ref)
		}
	}
	verifyAll[N4R1](t, exhaustive(4))
	verifyAll[N5R2](t, exhaustive(5))
	verifyAll[N8R2](t, exhaustive(8))
	verifyAll[N8R4](t, exhaustive(8))
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	verifyAll[N16R8](t, func(name string, op, ref verify.Op) verify.Report {
		return verify.Random(name, 16, 20000, rng, op, ref)
	})
}

func TestProperties(t *testing.T) {
	a := assert.New(t)
	for _, x := range verify.Patterns(8) {
		p := FromBits[N8R4](x)
		if p.IsNaR() {
			continue
		}
		a.True(p.Add(p.Neg()).IsZero(), "%#x", x)
		for _, y := range verify.Patterns(8) {
			q := FromBits[N8R4](y)
			if !a.Equal(p.Add(q), q.Add(p)) || !a.Equal(p.Mul(q), q.Mul(p)) {
				return
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	a := assert.New(t)
	c := CodecOf[N16R10]()
	for _, bits := range verify.Patterns(16) {
		if bits == c.NaR() {
			continue
		}
		if !a.Equal(bits, c.FromFloat64(c.Float64(bits)), "%#x", bits) {
			return
		}
	}
}

func TestConversions(t *testing.T) {
	a := assert.New(t)
	a.Equal(FromFloat64[N16R8](3), FromInt64[N16R8](3))
	a.Equal(FromFloat64[N16R8](1000), FromUint64[N16R8](1000))
	a.Equal(FromFloat64[N16R8](-3), FromInteger[N16R8](int16(-3)))
	a.Equal(FromFloat64[N16R8](0.75), FromFloat[N16R8](float32(0.75)))
	a.Equal(FromFloat64[N16R8](0.1), FromDecimal[N16R8](decimal.RequireFromString("0.1")))

	d, err := FromFloat64[N16R8](4).Decimal()
	a.NoError(err)
	a.Equal("4", d.String())
	_, err = NaR[N16R8]().Decimal()
	a.ErrorIs(err, universal.ErrNaR)

	a.Equal(int64(4), FromFloat64[N16R8](4).Int64())
	a.Equal(int64(-2), FromFloat64[N16R8](-2.9).Int64())
	a.Equal(int64(math.MinInt64), NaR[N16R8]().Int64())
	a.Equal(int64(0), Zero[N16R8]().Int64())

	x, err := FromString[N16R8]("0.5")
	a.NoError(err)
	a.Equal(0.5, x.Float64())
	x, err = FromString[N16R8]("nar")
	a.NoError(err)
	a.True(x.IsNaR())
	_, err = FromString[N16R8]("1.2.3")
	a.Error(err)
	a.Panics(func() { MustFromString[N16R8]("x") })
}

func TestSerialization(t *testing.T) {
	a := assert.New(t)
	type doc struct {
		V LNS[N16R8]
		N LNS[N16R8]
	}
	data, err := json.Marshal(doc{V: FromFloat64[N16R8](0.25), N: NaR[N16R8]()})
	a.NoError(err)
	a.Equal(`{"V":"0.25","N":"NaR"}`, string(data))
	var d doc
	a.NoError(json.Unmarshal(data, &d))
	a.Equal(FromFloat64[N16R8](0.25), d.V)
	a.True(d.N.IsNaR())

	x := FromFloat64[N16R8](-2)
	b, err := x.MarshalBinary()
	a.NoError(err)
	a.Equal([]byte{0x00, 0x81}, b)
	var y LNS[N16R8]
	a.NoError(y.UnmarshalBinary(b))
	a.Equal(x, y)
	a.Error(y.UnmarshalBinary([]byte{1, 2, 3}))
}

func TestFormatting(t *testing.T) {
	a := assert.New(t)
	x := FromFloat64[N8R2](2)
	a.Equal("2", x.String())
	a.Equal("NaR", NaR[N8R2]().String())
	a.Equal("lns<8,2>(0b00000100) + scale=1 frac=00", x.GoString())
}

func TestComplex(t *testing.T) {
	a := assert.New(t)
	z := FromComplex128[N16R8](complex(1, 2))
	w := NewComplex(FromFloat64[N16R8](2), FromFloat64[N16R8](-1))
	a.Equal(FromFloat64[N16R8](1), z.Real())
	a.Equal(FromFloat64[N16R8](2), z.Imag())
	a.Equal(FromFloat64[N16R8](-2), z.Conj().Imag())
	u := FromComplex128[N16R8](complex(2, 2))
	v := FromComplex128[N16R8](complex(2, -2))
	a.Equal(complex(4, 0), u.Add(v).Complex128())
	a.Equal(complex(0, 4), u.Sub(v).Complex128())
	// (1+2i)(2-i) = 4+3i
	p := z.Mul(w)
	a.InDelta(4, real(p.Complex128()), 0.02)
	a.InDelta(3, imag(p.Complex128()), 0.02)
	a.Equal("(1+2i)", z.String())
	a.Equal("(1-2i)", z.Conj().String())
	a.Equal("(0+4i)", u.Sub(v).String())
	a.Equal("(NaR+1i)", NewComplex(NaR[N16R8](), One[N16R8]()).String())
	a.False(z.IsNaR())
	a.True(NewComplex(NaR[N16R8](), One[N16R8]()).IsNaR())
}

func BenchmarkMul(b *testing.B) {
	x, y := FromFloat64[N32R22](1.2345), FromFloat64[N32R22](0.0067)
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkAdd(b *testing.B) {
	x, y := FromFloat64[N32R22](1.2345), FromFloat64[N32R22](0.0067)
	for i := 0; i < b.N; i++ {
		x.Add(y)
	}
}
