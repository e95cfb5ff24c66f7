// Package bitutil holds the small generic helpers shared by the board, search
// and evaluation packages: bitboard iteration and the min/max/clamp trio that
// alpha-beta pruning leans on constantly.
package bitutil

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// PopLSB clears and returns the index of the least significant set bit of
// *mask. Callers iterate a bitboard piece-by-piece with it. Undefined if
// *mask is zero.
func PopLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

// Count returns the population count of mask.
func Count(mask uint64) int {
	return bits.OnesCount64(mask)
}

// Bit returns a bitboard with only the given square set.
func Bit(sq int) uint64 {
	return uint64(1) << uint(sq)
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}
