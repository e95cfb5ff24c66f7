package board

import (
	"math/bits"

	"chessbot/internal/bitutil"
)

// trailingZeros locates the least-significant set bit, used throughout for
// LSB-first bitboard iteration. Matches original_source's __builtin_ctzll.
func trailingZeros(bb uint64) int { return bits.TrailingZeros64(bb) }

func popcount(bb uint64) int { return bitutil.Count(bb) }
