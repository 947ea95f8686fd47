// Package conv provides checked integer narrowing for the automaton core.
//
// State identifiers are stored as uint32; these helpers panic on overflow
// since an out-of-range value indicates a programming error rather than a
// recoverable condition.
package conv

import "math"

// IntToUint32 converts an int to uint32, panicking if n is negative or does
// not fit.
func IntToUint32(n int) uint32 {
	// Compare as uint so the bound holds on 32-bit platforms too.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
