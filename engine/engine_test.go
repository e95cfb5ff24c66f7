package engine

import (
	"testing"

	"chessbot/engine/board"
)

func mustPosition(t *testing.T, fen string) *board.Position {
	p, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("fen %q: %v", fen, err)
	}
	return p
}

func TestParseMoveRejectsMoveThatExposesOwnKing(t *testing.T) {
	// White king on e1, white rook on e2, black rook on e8: the rook is
	// pinned along the e-file. Sliding it to d2 is pseudo-legal but would
	// leave the white king in check.
	p := mustPosition(t, "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	e := NewFromPosition(p, board.WhitePieces, 2)

	if _, err := e.ParseMove("Rd2"); err == nil {
		t.Fatal("expected Rd2 to be rejected as illegal (it exposes the white king to the e8 rook)")
	}
}

func TestParseMoveAcceptsPinnedPieceMovingAlongThePin(t *testing.T) {
	p := mustPosition(t, "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	e := NewFromPosition(p, board.WhitePieces, 2)

	m, err := e.ParseMove("Re5")
	if err != nil {
		t.Fatalf("expected Re5 (staying on the e-file) to be legal: %v", err)
	}
	if m.Start.File() != 4 || m.End.File() != 4 {
		t.Errorf("resolved move = %v->%v, want a move that stays on the e-file", m.Start, m.End)
	}
}

func TestLegalMovesExcludesSelfCheckAndLeavesPositionUnchanged(t *testing.T) {
	p := mustPosition(t, "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	e := NewFromPosition(p, board.WhitePieces, 2)
	occupiedBefore := e.Position().Occupied()

	legal := e.LegalMoves()
	for m := legal.Head(); m.Legal; m = m.Next {
		if m.Kind.Type() == board.WhiteRook.Type() && m.End.File() != 4 {
			t.Errorf("legal move list includes %v->%v, which pulls the rook off the pin file", m.Start, m.End)
		}
	}
	if occupiedAfter := e.Position().Occupied(); occupiedAfter != occupiedBefore {
		t.Error("LegalMoves left the position mutated")
	}
}

func TestParseMoveAcceptsOrdinaryMove(t *testing.T) {
	e := New(2)
	m, err := e.ParseMove("e4")
	if err != nil {
		t.Fatalf("parse e4: %v", err)
	}
	if m.Kind != board.WhitePawn {
		t.Errorf("resolved piece = %v, want a white pawn", m.Kind)
	}
}
