package movegen

import "chessbot/engine/board"

// knightOffsets are the eight (file, rank) deltas a knight may move by.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func genKnightMoves(p *board.Position, list *board.MoveList, kind board.PieceKind) {
	friendly, enemy := friendAndFoeKinds(kind)
	friendlyBB := p.Board(friendly)
	enemyBB := p.Board(enemy)

	bb := p.Board(kind)
	for bb != 0 {
		from := board.Square(popLSB(&bb))
		file, rank := from.File(), from.Rank()
		for _, off := range knightOffsets {
			f, r := file+off[0], rank+off[1]
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			to := board.Square(r*8 + f)
			bit := to.Bit()
			if friendlyBB&bit != 0 {
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
}
