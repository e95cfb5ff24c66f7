package eval

import (
	"chessbot/engine/board"
	"chessbot/internal/bitutil"
)

// Evaluate scores a position from white's perspective: positive favors
// white. Each piece contributes its material value plus its piece-square
// table entry; white pieces add, black pieces subtract. Kings contribute
// only their positional term, since a king's material value is zero.
func Evaluate(p *board.Position) int32 {
	var score int32
	for kind := board.WhitePawn; kind < board.NumPieceKinds; kind++ {
		bb := p.Board(kind)
		contribution := pieceValue[kind.Type()]
		for bb != 0 {
			sq := board.Square(bitutil.PopLSB(&bb))
			term := contribution + squareValue(kind, sq)
			if kind.IsWhite() {
				score += term
			} else {
				score -= term
			}
		}
	}
	return score
}
