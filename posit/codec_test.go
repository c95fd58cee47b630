package posit

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/verify"
)

func TestParamsValidate(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		p   Params
		err bool
	}{
		{Params{NBits: 2, ES: 0}, false},
		{Params{NBits: 8, ES: 2}, false},
		{Params{NBits: 64, ES: 16}, false},
		{Params{NBits: 1, ES: 0}, true},
		{Params{NBits: 65, ES: 2}, true},
		{Params{NBits: 8, ES: -1}, true},
		{Params{NBits: 8, ES: 8}, true},
		{Params{NBits: 32, ES: 17}, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			err := test.p.Validate()
			if test.err {
				a.Error(err)
				a.Panics(func() { NewCodec(test.p) })
			} else {
				a.NoError(err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		p    Params
		bits uint64
		want universal.Decoded
	}{
		{Params{3, 0}, 0b000, universal.Decoded{Special: universal.Zero}},
		{Params{3, 0}, 0b001, universal.Decoded{Scale: -1}},
		{Params{3, 0}, 0b010, universal.Decoded{Scale: 0}},
		{Params{3, 0}, 0b011, universal.Decoded{Scale: 1}},
		{Params{3, 0}, 0b100, universal.Decoded{Special: universal.NaR}},
		{Params{3, 0}, 0b101, universal.Decoded{Neg: true, Scale: 1}},
		{Params{3, 0}, 0b110, universal.Decoded{Neg: true, Scale: 0}},
		{Params{3, 0}, 0b111, universal.Decoded{Neg: true, Scale: -1}},
		{Params{8, 0}, 0x40, universal.Decoded{Scale: 0, FracBits: 5}},
		{Params{8, 0}, 0x50, universal.Decoded{Scale: 0, Frac: 0b10000, FracBits: 5}},
		{Params{8, 0}, 0x68, universal.Decoded{Scale: 1, Frac: 0b1000, FracBits: 4}},
		{Params{8, 0}, 0x7f, universal.Decoded{Scale: 6}},
		{Params{8, 0}, 0x01, universal.Decoded{Scale: -6}},
		{Params{8, 2}, 0x7f, universal.Decoded{Scale: 24}},
		{Params{8, 2}, 0x01, universal.Decoded{Scale: -24}},
		// the exponent is cut short: 0 111110 1 reads as e = 0b10
		{Params{8, 2}, 0x7d, universal.Decoded{Scale: 18}},
		{Params{8, 2}, 0x7e, universal.Decoded{Scale: 20}},
		{Params{16, 1}, 0x5922, universal.Decoded{Scale: 1, Frac: 0x922, FracBits: 12}},
		{Params{16, 1}, 0xa6de, universal.Decoded{Neg: true, Scale: 1, Frac: 0x922, FracBits: 12}},
		{Params{5, 1}, 0b01011, universal.Decoded{Scale: 1, Frac: 1, FracBits: 1}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			got := NewCodec(test.p).Decode(test.bits)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("%v decode %#x mismatch (-want +got):\n%s", test.p, test.bits, diff)
			}
		})
	}
}

func TestDecodePanics(t *testing.T) {
	assert.Panics(t, func() { NewCodec(Params{3, 0}).Decode(0b1000) })
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, p := range []Params{{2, 0}, {3, 0}, {4, 0}, {5, 1}, {8, 0}, {8, 1}, {8, 2}, {10, 3}, {16, 1}} {
		c := NewCodec(p)
		for _, bits := range verify.Patterns(p.NBits) {
			if !a.Equal(bits, c.Encode(c.Decode(bits)), "%v %#x", p, bits) {
				return
			}
			if bits != c.NaR() && !a.Equal(bits, c.FromFloat64(c.Float64(bits)), "%v %#x", p, bits) {
				return
			}
		}
	}
}

func TestEncode(t *testing.T) {
	a := assert.New(t)
	c := NewCodec(Params{8, 0})
	a.Equal(uint64(0x80), c.Encode(universal.Decoded{Special: universal.Inf}))
	a.Equal(uint64(0x80), c.Encode(universal.Decoded{Scale: 7}))
	a.Equal(uint64(0x80), c.Encode(universal.Decoded{Scale: -7}))
	// extra fraction bits are rounded, 1+1/64 is a tie between 0x40 and 0x41
	a.Equal(uint64(0x40), c.Encode(universal.Decoded{Frac: 1, FracBits: 6}))
	a.Equal(uint64(0x41), c.Encode(universal.Decoded{Frac: 0b11, FracBits: 7}))
	a.Panics(func() { c.Encode(universal.Decoded{Frac: 4, FracBits: 2}) })
}

func TestCodecFromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		p    Params
		f    float64
		bits uint64
	}{
		{Params{8, 0}, 0, 0},
		{Params{8, 0}, 1, 0x40},
		{Params{8, 0}, 1.5, 0x50},
		{Params{8, 0}, 2, 0x60},
		{Params{8, 0}, 3, 0x68},
		{Params{8, 0}, -1, 0xc0},
		{Params{8, 0}, 0.5, 0x20},
		{Params{8, 0}, 1 + 3.0/64, 0x42},
		{Params{8, 0}, 1 + 1.0/64, 0x40},
		{Params{8, 0}, 1 + 3.0/64 - 1.0/1024, 0x41},
		{Params{8, 0}, 1000, 0x7f},
		{Params{8, 0}, -1000, 0x81},
		{Params{8, 0}, 1e-9, 0x01},
		{Params{8, 0}, -1e-9, 0xff},
		{Params{8, 0}, math.NaN(), 0x80},
		{Params{8, 0}, math.Inf(1), 0x80},
		{Params{8, 0}, math.Inf(-1), 0x80},
		{Params{3, 0}, 1.5, 0b010},
		{Params{3, 0}, 1.75, 0b011},
		{Params{3, 0}, 0.75, 0b010},
		{Params{3, 0}, 0.25, 0b001},
		{Params{3, 0}, 3, 0b011},
		{Params{5, 1}, 3, 0b01011},
		{Params{2, 0}, 1e6, 0b01},
		{Params{2, 0}, -1e-6, 0b11},
		{Params{16, 1}, math.Pi, 0x5922},
		{Params{16, 1}, -math.Pi, 0xa6de},
		{Params{8, 2}, 1 << 24, 0x7f},
		{Params{8, 2}, 1 << 30, 0x7f},
		{Params{32, 2}, 1, 0x40000000},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.bits, NewCodec(test.p).FromFloat64(test.f), "%v %v", test.p, test.f)
		})
	}
}

func TestCodecFloat64(t *testing.T) {
	a := assert.New(t)
	c := NewCodec(Params{8, 2})
	a.Equal(float64(1<<24), c.Float64(c.MaxPos()))
	a.Equal(math.Ldexp(1, -24), c.Float64(1))
	a.True(math.IsNaN(c.Float64(c.NaR())))
	a.Equal(float64(0), c.Float64(0))
	a.Equal(-1.0, c.Float64(0xc0))
}

func TestKeyOrdersValues(t *testing.T) {
	a := assert.New(t)
	c := NewCodec(Params{8, 1})
	prev := math.Inf(-1)
	// from maxneg up to maxpos
	for i := int64(-127); i <= 127; i++ {
		bits := uint64(i) & 0xff
		a.Equal(i, c.Key(bits))
		f := c.Float64(bits)
		a.Less(prev, f, "%#x", bits)
		prev = f
	}
}

func TestCodecString(t *testing.T) {
	assert.Equal(t, "posit<16,1>", NewCodec(Params{16, 1}).String())
	assert.Equal(t, Params{8, 2}, CodecOf[N8E2]().Params())
}
