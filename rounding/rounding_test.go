package rounding

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
)

func TestUp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		lsb, guard, sticky bool
		up                 bool
	}{
		{false, false, false, false},
		{false, false, true, false},
		{true, false, true, false},
		{false, true, false, false},
		{true, true, false, true},
		{false, true, true, true},
		{true, true, true, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.up, Up(test.lsb, test.guard, test.sticky))
		})
	}
}

func TestShiftRight64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v       uint64
		n       uint
		r       uint64
		inexact bool
	}{
		{0b1000, 3, 1, false},
		{0b1100, 3, 2, true},  // 1.5 -> 2
		{0b10100, 3, 2, true}, // 2.5 -> 2
		{0b11100, 3, 4, true}, // 3.5 -> 4
		{0b1011, 3, 1, true},  // 1.375 -> 1
		{0b1101, 3, 2, true},  // 1.625 -> 2
		{0b101, 0, 0b101, false},
		{math.MaxUint64, 64, 1, true},
		{1 << 63, 64, 0, true}, // 0.5 -> 0
		{math.MaxUint64, 1, 1 << 63, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, inexact := ShiftRight64(test.v, test.n)
			a.Equal(test.r, r)
			a.Equal(test.inexact, inexact)
		})
	}
}

func TestSplit(t *testing.T) {
	a := assert.New(t)
	u := mathutil.Uint128{Hi: 1, Lo: 1}
	kept, guard, sticky := Split(u, 200)
	a.True(kept.IsZero())
	a.False(guard)
	a.True(sticky)
	kept, guard, sticky = Split(u, 64)
	a.Equal(mathutil.From64(1), kept)
	a.False(guard)
	a.True(sticky)
	kept, guard, sticky = Split(mathutil.Uint128{Hi: 1, Lo: 1 << 63}, 64)
	a.Equal(mathutil.From64(1), kept)
	a.True(guard)
	a.False(sticky)
	r, inexact := ShiftRight(mathutil.Uint128{Hi: 1, Lo: 1 << 63}, 64)
	a.Equal(mathutil.From64(2), r)
	a.True(inexact)
}

func TestQuotient(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		q, r, d uint64
		res     uint64
	}{
		{3, 0, 7, 3},
		{3, 3, 7, 3},
		{3, 4, 7, 4},
		{2, 1, 2, 2}, // 2.5 -> 2
		{3, 1, 2, 4}, // 3.5 -> 4
		{5, math.MaxUint64 / 2, math.MaxUint64, 5},
		{5, math.MaxUint64/2 + 1, math.MaxUint64, 6},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(mathutil.From64(test.res), Quotient(mathutil.From64(test.q), test.r, test.d))
		})
	}
}

func TestFloat(t *testing.T) {
	a := assert.New(t)
	a.Equal(2.0, Float(2.5))
	a.Equal(4.0, Float(3.5))
	a.Equal(-2.0, Float(-2.5))
	a.Equal(3.0, Float(2.6))
}
