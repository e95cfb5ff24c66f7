// Package movegen produces pseudo-legal move lists for one side from a
// board position plus its threat map. Friendly-occupancy and
// sliding-blocker rules are enforced here; whether a move leaves the
// mover's own king in check is left to the search, which re-examines the
// position after Apply.
package movegen

import (
	"chessbot/engine/board"
	"chessbot/engine/threat"
)

// Generate produces the pseudo-legal move list for side (board.WhitePieces
// or board.BlackPieces). Kinds are generated in the order original_source's
// GenerateMoves uses (pawn, rook, bishop, knight, queen, king); since each
// move is prepended, the list holds them in reverse of that order, and
// SortCapturesFirst then moves every capture ahead of the quiet moves.
func Generate(p *board.Position, tm *threat.Map, side board.PieceKind) *board.MoveList {
	list := board.NewMoveList()
	switch side {
	case board.WhitePieces:
		genPawnMoves(p, list, board.WhitePawn)
		genRookMoves(p, list, board.WhiteRook)
		genBishopMoves(p, list, board.WhiteBishop)
		genKnightMoves(p, list, board.WhiteKnight)
		genQueenMoves(p, list, board.WhiteQueen)
		genKingMoves(p, tm, list, board.WhiteKing)
	case board.BlackPieces:
		genPawnMoves(p, list, board.BlackPawn)
		genRookMoves(p, list, board.BlackRook)
		genBishopMoves(p, list, board.BlackBishop)
		genKnightMoves(p, list, board.BlackKnight)
		genQueenMoves(p, list, board.BlackQueen)
		genKingMoves(p, tm, list, board.BlackKing)
	default:
		panic("movegen: Generate called with a piece kind that is not a color union")
	}
	list.SortCapturesFirst()
	return list
}
