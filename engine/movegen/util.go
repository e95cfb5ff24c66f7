package movegen

import (
	"chessbot/engine/board"
	"chessbot/internal/bitutil"
)

func popLSB(bb *uint64) int { return bitutil.PopLSB(bb) }

// friendAndFoeKinds returns the color-union kinds owning and opposing pk.
func friendAndFoeKinds(pk board.PieceKind) (friendly, enemy board.PieceKind) {
	if pk.IsWhite() {
		return board.WhitePieces, board.BlackPieces
	}
	return board.BlackPieces, board.WhitePieces
}

// capturedKindAt scans the enemy side's twelve piece kinds for the one
// occupying sq. Exactly one should match, since piece boards never overlap.
func capturedKindAt(p *board.Position, enemySide board.PieceKind, sq board.Square) board.PieceKind {
	start, end := board.BlackPawn, board.PieceKind(board.NumPieceKinds)
	if enemySide == board.WhitePieces {
		start, end = board.WhitePawn, board.WhiteKing+1
	}
	for k := start; k < end; k++ {
		if p.Board(k)&sq.Bit() != 0 {
			return k
		}
	}
	return board.NoPiece
}
