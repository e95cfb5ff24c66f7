package movegen

import (
	"chessbot/engine/board"
	"chessbot/engine/threat"
)

func genKingMoves(p *board.Position, tm *threat.Map, list *board.MoveList, kind board.PieceKind) {
	friendly, enemy := friendAndFoeKinds(kind)
	friendlyBB := p.Board(friendly)
	enemyBB := p.Board(enemy)

	bb := p.Board(kind)
	from := board.Square(popLSB(&bb))
	file, rank := from.File(), from.Rank()

	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			f, r := file+df, rank+dr
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			to := board.Square(r*8 + f)
			bit := to.Bit()
			if friendlyBB&bit != 0 {
				continue
			}
			if tm.IsIndexUnderThreatByColor(to, enemy) {
				continue
			}
			if enemyBB&bit != 0 {
				captured := capturedKindAt(p, enemy, to)
				list.Prepend(&board.Move{Start: from, End: to, Kind: kind, Captured: captured, Flags: board.FlagValid | board.FlagValidAttack, Legal: true})
				continue
			}
			list.Prepend(&board.Move{Start: from, End: to, Kind: kind, Captured: board.NoPiece, Flags: board.FlagValid, Legal: true})
		}
	}

	genCastlingMoves(p, tm, list, kind, from, friendly, enemy)
}

// genCastlingMoves appends the king-side and queen-side castling moves when
// neither the king nor the relevant rook has moved, the squares between
// them are empty, and the king's start/transit/destination squares are not
// under threat. The b-file square the rook crosses when castling queen-side
// is not checked for threat, matching standard castling legality.
func genCastlingMoves(p *board.Position, tm *threat.Map, list *board.MoveList, kind board.PieceKind, from board.Square, friendly, enemy board.PieceKind) {
	occ := p.Occupied()
	rank := from.Rank()

	if tm.IsIndexUnderThreatByColor(from, enemy) {
		return
	}

	if p.CanCastle(friendly, board.FlagCastleKing) {
		transit := board.Square(5 + rank*8)
		dest := board.Square(6 + rank*8)
		if occ&(transit.Bit()|dest.Bit()) == 0 &&
			!tm.IsIndexUnderThreatByColor(transit, enemy) &&
			!tm.IsIndexUnderThreatByColor(dest, enemy) {
			list.Prepend(&board.Move{Start: from, End: dest, Kind: kind, Captured: board.NoPiece, Flags: board.FlagValid | board.FlagCastleKing, Legal: true})
		}
	}

	if p.CanCastle(friendly, board.FlagCastleQueen) {
		bishopSq := board.Square(3 + rank*8) // d-file: king's transit square
		dest := board.Square(2 + rank*8)     // c-file: king's destination
		knightSq := board.Square(1 + rank*8) // b-file: must be empty, not checked for threat
		if occ&(bishopSq.Bit()|dest.Bit()|knightSq.Bit()) == 0 &&
			!tm.IsIndexUnderThreatByColor(bishopSq, enemy) &&
			!tm.IsIndexUnderThreatByColor(dest, enemy) {
			list.Prepend(&board.Move{Start: from, End: dest, Kind: kind, Captured: board.NoPiece, Flags: board.FlagValid | board.FlagCastleQueen, Legal: true})
		}
	}
}
