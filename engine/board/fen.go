package board

import (
	"fmt"
	"strings"
)

var fenPieceKind = map[rune]PieceKind{
	'P': WhitePawn, 'R': WhiteRook, 'B': WhiteBishop, 'N': WhiteKnight, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'r': BlackRook, 'b': BlackBishop, 'n': BlackKnight, 'q': BlackQueen, 'k': BlackKing,
}

// FromFEN builds a Position from Forsyth-Edwards Notation: piece
// placement, castling rights, and en passant target. The side-to-move
// field is validated but not stored on the Position (SideToMoveFromFEN
// returns it). Move counters (halfmove clock, fullmove number) are
// accepted but not stored, since nothing in this engine tracks them.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: fen: expected at least 4 space-separated fields, got %d", len(fields))
	}

	p := &Position{enPassantTarget: NoSquare}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := fenPieceKind[c]
			if !ok {
				return nil, fmt.Errorf("board: fen: unrecognized piece character %q", c)
			}
			if file > 7 {
				return nil, fmt.Errorf("board: fen: rank %q overflows 8 files", rankStr)
			}
			p.boards[kind] |= newSquare(file, rank).Bit()
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("board: fen: rank %q does not sum to 8 files", rankStr)
		}
	}
	p.recomputeUnions()

	switch fields[1] {
	case "w", "b":
	default:
		return nil, fmt.Errorf("board: fen: side to move must be 'w' or 'b', got %q", fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
			case 'Q':
			case 'k':
			case 'q':
			default:
				return nil, fmt.Errorf("board: fen: unrecognized castling character %q", c)
			}
		}
		p.castle[0].kingRookMoved = !strings.ContainsRune(fields[2], 'K')
		p.castle[0].queenRookMoved = !strings.ContainsRune(fields[2], 'Q')
		p.castle[1].kingRookMoved = !strings.ContainsRune(fields[2], 'k')
		p.castle[1].queenRookMoved = !strings.ContainsRune(fields[2], 'q')
	} else {
		p.castle[0].kingRookMoved, p.castle[0].queenRookMoved = true, true
		p.castle[1].kingRookMoved, p.castle[1].queenRookMoved = true, true
	}

	if fields[3] != "-" {
		file, rank, err := parseFENSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: fen: en passant target: %w", err)
		}
		p.enPassantTarget = newSquare(file, rank)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("board: fen: resulting position violates invariants: %w", err)
	}
	return p, nil
}

func parseFENSquare(s string) (file, rank int, err error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("square %q is not two characters", s)
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return 0, 0, fmt.Errorf("square %q out of range", s)
	}
	return int(f - 'a'), int(r - '1'), nil
}

// SideToMoveFromFEN extracts just the side-to-move field, used by callers
// that need it alongside FromFEN's Position.
func SideToMoveFromFEN(fen string) (PieceKind, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return 0, fmt.Errorf("board: fen: expected at least 2 space-separated fields, got %d", len(fields))
	}
	switch fields[1] {
	case "w":
		return WhitePieces, nil
	case "b":
		return BlackPieces, nil
	default:
		return 0, fmt.Errorf("board: fen: side to move must be 'w' or 'b', got %q", fields[1])
	}
}
