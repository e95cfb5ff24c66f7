package movegen

import (
	"testing"

	"chessbot/engine/board"
	"chessbot/engine/threat"
)

func generate(t *testing.T, fen string, side board.PieceKind) *board.MoveList {
	p, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	tm := threat.New(0)
	tm.Generate(p)
	return Generate(p, tm, side)
}

func TestInitialPositionMoveCount(t *testing.T) {
	list := generate(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", board.WhitePieces)
	if got, want := list.Len(), 20; got != want {
		t.Errorf("initial position: got %d pseudo-legal moves, want %d", got, want)
	}
}

func TestRookOpenFileMobility(t *testing.T) {
	// Rook on a1 with both kings kept off its file and rank has 14 moves:
	// 7 along the a-file, 7 along rank 1.
	list := generate(t, "7k/8/8/8/3K4/8/8/R7 w - - 0 1", board.WhitePieces)
	rookMoves := 0
	for m := list.Head(); m.Legal; m = m.Next {
		if m.Kind == board.WhiteRook {
			rookMoves++
		}
	}
	if rookMoves != 14 {
		t.Errorf("rook mobility: got %d moves, want 14", rookMoves)
	}
}

func TestCastlingMoveGenerated(t *testing.T) {
	list := generate(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", board.WhitePieces)
	found := false
	for m := list.Head(); m.Legal; m = m.Next {
		if m.Flags&board.FlagCastleKing != 0 {
			found = true
			if m.Start != board.Square(4) || m.End != board.Square(6) {
				t.Errorf("castle king move = %d->%d, want 4->6", m.Start, m.End)
			}
		}
	}
	if !found {
		t.Error("expected a king-side castling move in the generated list")
	}
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	list := generate(t, "8/P3k3/8/8/8/8/8/4K3 w - - 0 1", board.WhitePieces)
	promotions := 0
	for m := list.Head(); m.Legal; m = m.Next {
		if m.Flags&board.FlagPromotion != 0 {
			promotions++
		}
	}
	if promotions != 4 {
		t.Errorf("promotion: got %d promotion moves, want 4", promotions)
	}
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	list := generate(t, "4k3/8/8/Pp6/8/8/8/4K3 w - b6 0 1", board.WhitePieces)
	found := false
	for m := list.Head(); m.Legal; m = m.Next {
		if m.Flags&board.FlagEnPassant != 0 {
			found = true
			if m.Captured != board.BlackPawn {
				t.Errorf("en passant move captured kind = %v, want BlackPawn", m.Captured)
			}
		}
	}
	if !found {
		t.Error("expected an en passant capture in the generated list")
	}
}

func TestGeneratedMovesMatchPieceGeometry(t *testing.T) {
	p, err := board.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	tm := threat.New(0)
	tm.Generate(p)
	list := Generate(p, tm, board.WhitePieces)
	for m := list.Head(); m.Legal; m = m.Next {
		if m.Flags&(board.FlagCastleKing|board.FlagCastleQueen) != 0 {
			continue // castling is not a normal step for the piece kind moved.
		}
		if m.Kind.Type() == board.WhitePawn.Type() {
			continue // Attacks models a pawn's diagonal capture pattern, not its push.
		}
		if !p.Attacks(m.Kind, m.Start, m.End) {
			t.Errorf("generated move %v->%v for %v does not satisfy that piece's movement geometry", m.Start, m.End, m.Kind)
		}
	}
}

func TestSortCapturesFirst(t *testing.T) {
	// Black pawn on a5 sits on the rook's own file, giving it exactly one
	// capture among its otherwise-quiet moves.
	list := generate(t, "4k3/8/8/p7/8/8/8/R3K3 w - - 0 1", board.WhitePieces)
	seenQuiet := false
	for m := list.Head(); m.Legal; m = m.Next {
		if !m.IsCapture() {
			seenQuiet = true
			continue
		}
		if seenQuiet {
			t.Fatal("found a capture after a quiet move; captures-first ordering violated")
		}
	}
}
