package movegen

import "chessbot/engine/board"

var rookDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// walkAndBuild walks one piece's rays in the given directions, appending a
// quiet move for every empty square and a single attacking move for the
// first enemy-occupied square in that direction (stopping there); a
// friendly occupant stops the ray with no move emitted. Mirrors
// original_source's GenerateRookMoves/GenerateBishopMoves loop structure.
func walkAndBuild(p *board.Position, list *board.MoveList, kind board.PieceKind, from board.Square, dirs [4][2]int) {
	friendly, enemy := friendAndFoeKinds(kind)
	friendlyBB := p.Board(friendly)
	enemyBB := p.Board(enemy)
	file, rank := from.File(), from.Rank()

	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			to := board.Square(r*8 + f)
			bit := to.Bit()
			if friendlyBB&bit != 0 {
				break
			}
			if enemyBB&bit != 0 {
				captured := capturedKindAt(p, enemy, to)
				list.Prepend(&board.Move{Start: from, End: to, Kind: kind, Captured: captured, Flags: board.FlagValid | board.FlagValidAttack, Legal: true})
				break
			}
			list.Prepend(&board.Move{Start: from, End: to, Kind: kind, Captured: board.NoPiece, Flags: board.FlagValid, Legal: true})
			f += d[0]
			r += d[1]
		}
	}
}

func genRookMoves(p *board.Position, list *board.MoveList, kind board.PieceKind) {
	bb := p.Board(kind)
	for bb != 0 {
		sq := board.Square(popLSB(&bb))
		walkAndBuild(p, list, kind, sq, rookDirs)
	}
}

func genBishopMoves(p *board.Position, list *board.MoveList, kind board.PieceKind) {
	bb := p.Board(kind)
	for bb != 0 {
		sq := board.Square(popLSB(&bb))
		walkAndBuild(p, list, kind, sq, bishopDirs)
	}
}

func genQueenMoves(p *board.Position, list *board.MoveList, kind board.PieceKind) {
	bb := p.Board(kind)
	for bb != 0 {
		sq := board.Square(popLSB(&bb))
		walkAndBuild(p, list, kind, sq, rookDirs)
		walkAndBuild(p, list, kind, sq, bishopDirs)
	}
}
