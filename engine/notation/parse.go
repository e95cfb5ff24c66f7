package notation

import (
	"fmt"

	"chessbot/engine/board"
)

// letterToType maps an algebraic piece letter to the colorless type index
// used by board.PieceKind.Type() (pawn=0, rook=1, bishop=2, knight=3,
// queen=4, king=5).
var letterToType = map[byte]int{
	'R': board.WhiteRook.Type(),
	'B': board.WhiteBishop.Type(),
	'N': board.WhiteKnight.Type(),
	'Q': board.WhiteQueen.Type(),
	'K': board.WhiteKing.Type(),
}

// ParsedMove is the intermediate form Parse produces: a description of the
// requested move that has not yet been matched against the legal move
// list for the position it applies to.
type ParsedMove struct {
	PieceType          int // board.PieceKind.Type() value; pawn by default
	DestFile, DestRank int
	SrcFile, SrcRank   int // -1 when the input left that part unspecified
	Capture            bool
	CastleKing         bool
	CastleQueen        bool
	PromoteTo          byte // 0 if the input carries no promotion suffix
}

// Parse accepts a subset of algebraic notation: pawn pushes ("e4"), pawn
// captures ("exd5"), piece moves with optional disambiguation ("Nf3",
// "Nbd7", "N1d2"), and castling tokens ("O-O", "O-O-O").
func Parse(text string) (ParsedMove, error) {
	if text == "O-O" {
		return ParsedMove{CastleKing: true, SrcFile: -1, SrcRank: -1}, nil
	}
	if text == "O-O-O" {
		return ParsedMove{CastleQueen: true, SrcFile: -1, SrcRank: -1}, nil
	}
	if len(text) < 2 {
		return ParsedMove{}, fmt.Errorf("notation: move %q too short", text)
	}

	pm := ParsedMove{SrcFile: -1, SrcRank: -1}

	body := text
	if t, ok := letterToType[body[0]]; ok {
		pm.PieceType = t
		body = body[1:]
	}

	// Strip an optional promotion suffix ("=Q") before locating the
	// destination square, which always occupies the last two characters.
	if len(body) >= 2 && body[len(body)-2] == '=' {
		pm.PromoteTo = body[len(body)-1]
		body = body[:len(body)-2]
	}

	if idx := indexByte(body, 'x'); idx >= 0 {
		pm.Capture = true
		prefix := body[:idx]
		body = body[idx+1:]
		if err := parseDisambiguation(prefix, &pm); err != nil {
			return ParsedMove{}, err
		}
	} else if len(body) > 2 {
		prefix := body[:len(body)-2]
		if err := parseDisambiguation(prefix, &pm); err != nil {
			return ParsedMove{}, err
		}
		body = body[len(body)-2:]
	}

	if len(body) != 2 {
		return ParsedMove{}, fmt.Errorf("notation: could not locate destination square in %q", text)
	}
	file, rank, err := parseSquare(body)
	if err != nil {
		return ParsedMove{}, fmt.Errorf("notation: %w", err)
	}
	pm.DestFile, pm.DestRank = file, rank
	return pm, nil
}

// parseDisambiguation reads an optional leading source file and/or rank
// from prefix, e.g. "b" in "Nbd7" or "1" in "N1d2".
func parseDisambiguation(prefix string, pm *ParsedMove) error {
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		switch {
		case c >= 'a' && c <= 'h':
			pm.SrcFile = int(c - 'a')
		case c >= '1' && c <= '8':
			pm.SrcRank = int(c - '1')
		default:
			return fmt.Errorf("notation: unexpected disambiguation character %q", c)
		}
	}
	return nil
}

func parseSquare(s string) (file, rank int, err error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("square %q is not two characters", s)
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return 0, 0, fmt.Errorf("square %q out of range", s)
	}
	return int(f - 'a'), int(r - '1'), nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// Resolve matches a ParsedMove against the legal move list generated for
// the side to move, returning the unique *board.Move it identifies. An
// ambiguous or unmatched ParsedMove is an input error, not a programmer
// error, so Resolve returns it rather than panicking.
func Resolve(pm ParsedMove, candidates *board.MoveList, side board.PieceKind) (*board.Move, error) {
	destSq := board.Square(pm.DestRank*8 + pm.DestFile)

	var match *board.Move
	for m := candidates.Head(); m.Legal; m = m.Next {
		if pm.CastleKing {
			if m.Flags&board.FlagCastleKing != 0 {
				match = m
				break
			}
			continue
		}
		if pm.CastleQueen {
			if m.Flags&board.FlagCastleQueen != 0 {
				match = m
				break
			}
			continue
		}
		if m.End != destSq {
			continue
		}
		if m.Kind.Type() != pm.PieceType {
			continue
		}
		if pm.SrcFile >= 0 && m.Start.File() != pm.SrcFile {
			continue
		}
		if pm.SrcRank >= 0 && m.Start.Rank() != pm.SrcRank {
			continue
		}
		if pm.PromoteTo != 0 {
			letter := pieceLetters[m.PromoteTo.Type()]
			if m.Flags&board.FlagPromotion == 0 || letter != pm.PromoteTo {
				continue
			}
		}
		if match != nil {
			return nil, fmt.Errorf("notation: move is ambiguous among legal moves for this position")
		}
		match = m
	}
	if match == nil {
		return nil, fmt.Errorf("notation: no legal move matches the given notation")
	}
	return match, nil
}
