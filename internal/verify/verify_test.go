package verify

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatterns(t *testing.T) {
	a := assert.New(t)
	a.Equal([]uint64{0, 1, 2, 3}, Patterns(2))
	a.Len(Patterns(10), 1024)
	a.Panics(func() { Patterns(17) })
}

func TestExhaustive(t *testing.T) {
	a := assert.New(t)
	add := func(a, b uint64) uint64 { return (a + b) & 0xf }
	r := Exhaustive("add", 4, add, add)
	a.True(r.OK())
	a.Equal(256, r.Tested)
	a.Equal("add: 0 of 256 failed", r.String())

	wrong := func(a, b uint64) uint64 { return (a + b) & 0x7 }
	r = Exhaustive("add", 4, add, wrong)
	a.False(r.OK())
	a.Equal(128, r.Failed)
	a.Len(r.Failures, MaxFailures)
	a.Equal(Case{A: 0, B: 8, Got: 8, Want: 0}, r.Failures[0])
	a.Contains(r.String(), "a=0000 b=1000 got=1000 want=0000")
}

func TestRandom(t *testing.T) {
	a := assert.New(t)
	rng := rand.New(rand.NewSource(1))
	or := func(a, b uint64) uint64 { return a | b }
	r := Random("or", 32, 1000, rng, or, or)
	a.True(r.OK())
	a.Equal(1000, r.Tested)
	r = Random("or", 32, 100, rng, or, func(a, b uint64) uint64 { return a | b | 1<<32 })
	a.Equal(100, r.Failed)
}

func TestUnary(t *testing.T) {
	a := assert.New(t)
	neg := func(a uint64) uint64 { return -a & 0xff }
	r := Unary("neg", 8, neg, func(a uint64) uint64 { return (^a + 1) & 0xff })
	a.True(r.OK())
	a.Equal(256, r.Tested)
	r = Unary("neg", 8, neg, func(a uint64) uint64 { return a })
	a.Equal(254, r.Failed)
}
