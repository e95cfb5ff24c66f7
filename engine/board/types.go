package board

import "chessbot/internal/bitutil"

// PieceKind tags one of the twelve color/type combinations plus the two
// aggregate per-color unions. Indices 0..5 are white, 6..11 are black;
// kind%6 maps same-type pieces of either color to shared behavior.
type PieceKind uint8

const (
	WhitePawn PieceKind = iota
	WhiteRook
	WhiteBishop
	WhiteKnight
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackRook
	BlackBishop
	BlackKnight
	BlackQueen
	BlackKing
	WhitePieces
	BlackPieces

	// NumPieceKinds is the count of the twelve real piece kinds; the two
	// aggregate unions live at indices NumPieceKinds and NumPieceKinds+1.
	NumPieceKinds = 12

	// NoPiece is the sentinel used for Move.Captured and Move.PromoteTo
	// when no piece applies.
	NoPiece PieceKind = 0xF
)

// Type collapses a piece kind to its colorless type in [0, 6): pawn, rook,
// bishop, knight, queen, king, matching the ordering of the kind constants.
func (pk PieceKind) Type() int { return int(pk) % 6 }

// IsWhite reports whether pk is one of the six white piece kinds.
func (pk PieceKind) IsWhite() bool { return pk < 6 }

// IsBlack reports whether pk is one of the six black piece kinds.
func (pk PieceKind) IsBlack() bool { return pk >= 6 && pk < NumPieceKinds }

// Side returns the aggregate union tag (WhitePieces/BlackPieces) owning pk.
func (pk PieceKind) Side() PieceKind {
	if pk.IsWhite() {
		return WhitePieces
	}
	return BlackPieces
}

// String names a piece kind for debug output.
func (pk PieceKind) String() string {
	switch pk {
	case WhitePawn:
		return "P"
	case WhiteRook:
		return "R"
	case WhiteBishop:
		return "B"
	case WhiteKnight:
		return "N"
	case WhiteQueen:
		return "Q"
	case WhiteKing:
		return "K"
	case BlackPawn:
		return "p"
	case BlackRook:
		return "r"
	case BlackBishop:
		return "b"
	case BlackKnight:
		return "n"
	case BlackQueen:
		return "q"
	case BlackKing:
		return "k"
	case WhitePieces:
		return "white"
	case BlackPieces:
		return "black"
	default:
		return "-"
	}
}

// friendAndFoe returns the color-union kinds that own pk and oppose it.
// Grounded on original_source's Util_AssignFriendAndFoe, which every
// generator and ApplyMoveToBoard call in the C++ source leans on to avoid
// repeating the "kind >= 6" ternary inline.
func friendAndFoe(pk PieceKind) (friendly, enemy PieceKind) {
	if pk.IsWhite() {
		return WhitePieces, BlackPieces
	}
	return BlackPieces, WhitePieces
}

// kindRangeForSide returns the half-open [start, end) range of the twelve
// real piece kinds belonging to side (WhitePieces or BlackPieces).
func kindRangeForSide(side PieceKind) (start, end PieceKind) {
	if side == WhitePieces {
		return WhitePawn, WhiteKing + 1
	}
	return BlackPawn, BlackKing + 1
}

// Square is a board index in [0, 64). File = idx%8, rank = idx/8; rank 0 is
// the white back rank, bit 0 is the a1-equivalent corner used throughout.
type Square int8

// NoSquare is the sentinel for "no en passant target" and similar optional
// square fields.
const NoSquare Square = -1

// File returns the file (column), a1=0 .. h1=7.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank (row), rank0 .. rank7.
func (s Square) Rank() int { return int(s) / 8 }

// Bit returns the 64-bit mask with only this square set.
func (s Square) Bit() uint64 { return bitutil.Bit(int(s)) }

func newSquare(file, rank int) Square { return Square(rank*8 + file) }
