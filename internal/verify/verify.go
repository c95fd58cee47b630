// Package verify runs an operator over bit patterns and compares it with a
// reference. Small formats are checked exhaustively, wide ones by sampling.
package verify

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/samber/lo"

	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
)

// MaxFailures is the number of failing cases kept in a report.
const MaxFailures = 16

// Op is a binary operator on bit patterns.
type Op func(a, b uint64) uint64

// Case is a failed evaluation.
type Case struct {
	A, B, Got, Want uint64
}

// Report summarizes a verification run.
type Report struct {
	Name     string
	NBits    int
	Tested   int
	Failed   int
	Failures []Case
}

// OK reports whether every evaluation matched the reference.
func (r Report) OK() bool {
	return r.Failed == 0
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d of %d failed", r.Name, r.Failed, r.Tested)
	for _, c := range r.Failures {
		fmt.Fprintf(&b, "\n\ta=%0*b b=%0*b got=%0*b want=%0*b",
			r.NBits, c.A, r.NBits, c.B, r.NBits, c.Got, r.NBits, c.Want)
	}
	return b.String()
}

func (r *Report) check(a, b uint64, op, ref Op) {
	r.Tested++
	got, want := op(a, b), ref(a, b)
	if got == want {
		return
	}
	r.Failed++
	if len(r.Failures) < MaxFailures {
		r.Failures = append(r.Failures, Case{A: a, B: b, Got: got, Want: want})
	}
}

// Patterns returns all nbits patterns in increasing order.
func Patterns(nbits int) []uint64 {
	if nbits > 16 {
		panic(fmt.Sprintf("verify: %d bits is too wide to enumerate", nbits))
	}
	return lo.Map(lo.Range(1<<uint(nbits)), func(i int, _ int) uint64 {
		return uint64(i)
	})
}

// Exhaustive compares op with ref for every pair of nbits patterns.
func Exhaustive(name string, nbits int, op, ref Op) Report {
	r := Report{Name: name, NBits: nbits}
	all := Patterns(nbits)
	for _, a := range all {
		for _, b := range all {
			r.check(a, b, op, ref)
		}
	}
	return r
}

// Random compares op with ref for n pairs of random nbits patterns.
func Random(name string, nbits, n int, rng *rand.Rand, op, ref Op) Report {
	r := Report{Name: name, NBits: nbits}
	mask := mathutil.Mask(nbits)
	for i := 0; i < n; i++ {
		r.check(rng.Uint64()&mask, rng.Uint64()&mask, op, ref)
	}
	return r
}

// Unary compares a one-operand op with ref over every nbits pattern.
// B is zero in the reported cases.
func Unary(name string, nbits int, op, ref func(a uint64) uint64) Report {
	r := Report{Name: name, NBits: nbits}
	for _, a := range Patterns(nbits) {
		r.check(a, 0,
			func(a, _ uint64) uint64 { return op(a) },
			func(a, _ uint64) uint64 { return ref(a) })
	}
	return r
}
