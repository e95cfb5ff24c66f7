package notation

import (
	"strconv"

	"chessbot/engine/board"
)

// pieceLetters maps a colorless piece type (board.PieceKind.Type()) to its
// algebraic letter. Grounded on original_source's convertPieceTypeToChar,
// corrected for that function's knight/king collision (both mapped to 'k'
// there); standard notation uses N for knight and K for king.
var pieceLetters = [6]byte{'P', 'R', 'B', 'N', 'Q', 'K'}

// FormatMove renders a move in a compact debug form: piece letter followed
// by start and end square indices as decimals.
// Pawn moves omit the leading letter, matching standard algebraic usage.
// A promotion move appends "=" and the promoted piece's letter.
func FormatMove(m *board.Move) string {
	out := ""
	if m.Kind.Type() != board.WhitePawn.Type() {
		out += string(pieceLetters[m.Kind.Type()])
	}
	out += strconv.Itoa(int(m.Start)) + "-" + strconv.Itoa(int(m.End))
	if m.Flags&board.FlagPromotion != 0 {
		out += "=" + string(pieceLetters[m.PromoteTo.Type()])
	}
	if m.Flags&board.FlagCastleKing != 0 {
		out = "O-O"
	}
	if m.Flags&board.FlagCastleQueen != 0 {
		out = "O-O-O"
	}
	return out
}
