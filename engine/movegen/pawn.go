package movegen

import "chessbot/engine/board"

// promotionKindsWhite and promotionKindsBlack list the four pieces a pawn
// may promote to, in the order
// original_source's GeneratePawnMoves emits them (queen first).
var promotionKindsWhite = [4]board.PieceKind{board.WhiteQueen, board.WhiteRook, board.WhiteBishop, board.WhiteKnight}
var promotionKindsBlack = [4]board.PieceKind{board.BlackQueen, board.BlackRook, board.BlackBishop, board.BlackKnight}

func genPawnMoves(p *board.Position, list *board.MoveList, kind board.PieceKind) {
	friendly, enemy := friendAndFoeKinds(kind)
	friendlyBB := p.Board(friendly)
	enemyBB := p.Board(enemy)
	occ := p.Occupied()

	forward := 1
	startRank := 1
	promoteRank := 7
	promotions := promotionKindsWhite
	if kind.IsBlack() {
		forward = -1
		startRank = 6
		promoteRank = 0
		promotions = promotionKindsBlack
	}

	bb := p.Board(kind)
	for bb != 0 {
		from := board.Square(popLSB(&bb))
		file, rank := from.File(), from.Rank()

		// Single push.
		r1 := rank + forward
		if r1 >= 0 && r1 <= 7 {
			to := board.Square(r1*8 + file)
			if occ&to.Bit() == 0 {
				emitPawnMove(list, kind, from, to, board.NoPiece, to.Rank() == promoteRank, promotions)

				// Double push, only from the starting rank and only if the
				// single-push square was itself empty.
				if rank == startRank {
					r2 := rank + 2*forward
					to2 := board.Square(r2*8 + file)
					if occ&to2.Bit() == 0 {
						list.Prepend(&board.Move{Start: from, End: to2, Kind: kind, Captured: board.NoPiece, Flags: board.FlagValid, Legal: true})
					}
				}
			}
		}

		// Diagonal captures, including en passant.
		for _, df := range [2]int{-1, 1} {
			f := file + df
			if f < 0 || f > 7 {
				continue
			}
			r := rank + forward
			if r < 0 || r > 7 {
				continue
			}
			to := board.Square(r*8 + f)
			bit := to.Bit()
			if enemyBB&bit != 0 {
				captured := capturedKindAt(p, enemy, to)
				emitPawnMove(list, kind, from, to, captured, to.Rank() == promoteRank, promotions)
				continue
			}
			if to == p.EnPassantTarget() && friendlyBB&bit == 0 {
				capturedKind := board.BlackPawn
				if kind.IsBlack() {
					capturedKind = board.WhitePawn
				}
				list.Prepend(&board.Move{Start: from, End: to, Kind: kind, Captured: capturedKind, Flags: board.FlagValid | board.FlagValidAttack | board.FlagEnPassant, Legal: true})
			}
		}
	}
}

// emitPawnMove appends either a single ordinary/capture move or, on the
// last rank, the four promotion variants sharing the same start/end/capture.
func emitPawnMove(list *board.MoveList, kind board.PieceKind, from, to board.Square, captured board.PieceKind, promotes bool, promotions [4]board.PieceKind) {
	flags := board.FlagValid
	if captured != board.NoPiece {
		flags |= board.FlagValidAttack
	}
	if !promotes {
		list.Prepend(&board.Move{Start: from, End: to, Kind: kind, Captured: captured, Flags: flags, Legal: true})
		return
	}
	for _, promo := range promotions {
		list.Prepend(&board.Move{Start: from, End: to, Kind: kind, Captured: captured, PromoteTo: promo, Flags: flags | board.FlagPromotion, Legal: true})
	}
}
