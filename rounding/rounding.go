// Package rounding implements round-to-nearest, ties-to-even, on binary
// integers whose low bits are being dropped.
package rounding

import (
	"math"

	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
)

// Up reports whether a truncated value must be incremented.
// lsb is the lowest kept bit, guard the first dropped bit,
// sticky the OR of all the other dropped bits.
func Up(lsb, guard, sticky bool) bool {
	return guard && (sticky || lsb)
}

// Split returns u>>n together with the guard and sticky bits of the dropped part.
func Split(u mathutil.Uint128, n uint) (kept mathutil.Uint128, guard, sticky bool) {
	if n == 0 {
		return u, false, false
	}
	if n > 128 {
		return mathutil.Uint128{}, false, !u.IsZero()
	}
	kept = u.Rsh(n)
	guard = u.Bit(n - 1)
	sticky = !u.LowBitsZero(n - 1)
	return kept, guard, sticky
}

// ShiftRight returns u>>n rounded to nearest even, and whether it is inexact.
func ShiftRight(u mathutil.Uint128, n uint) (mathutil.Uint128, bool) {
	kept, guard, sticky := Split(u, n)
	if Up(kept.Lo&1 == 1, guard, sticky) {
		kept = kept.Inc()
	}
	return kept, guard || sticky
}

// ShiftRight64 is ShiftRight for a 64-bit value.
func ShiftRight64(v uint64, n uint) (uint64, bool) {
	r, inexact := ShiftRight(mathutil.From64(v), n)
	return r.Lo, inexact
}

// Quotient rounds the quotient q of a division by d with remainder r.
// r must be less than d.
func Quotient(q mathutil.Uint128, r, d uint64) mathutil.Uint128 {
	if r == 0 {
		return q
	}
	// compare 2r with d without overflowing
	half := d - r
	guard := r >= half
	sticky := r != half
	if Up(q.Lo&1 == 1, guard, sticky) {
		return q.Inc()
	}
	return q
}

// Float returns f rounded to the nearest integer, ties to even.
func Float(f float64) float64 {
	return math.RoundToEven(f)
}
