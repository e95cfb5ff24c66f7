package threat

import (
	"testing"

	"chessbot/engine/board"
)

func TestGenerateCoversInitialPosition(t *testing.T) {
	p := board.NewInitial()
	tm := New(0)
	tm.Generate(p)

	if !tm.IsIndexUnderThreatByColor(newSquareForTest(5, 2), board.WhitePieces) {
		t.Errorf("f3 should be attacked by white's g1 knight at the start")
	}
	if !tm.IsIndexUnderThreatByColor(newSquareForTest(2, 5), board.BlackPieces) {
		t.Errorf("c6 should be attacked by black's b8 knight at the start")
	}
}

func TestUpdateDeletesStaleSliderEntry(t *testing.T) {
	// Rook on a1 with an open file; moving it to a4 should stop it from
	// threatening a8 and start it threatening b4/c4/etc on its new rank.
	p, err := board.FromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	tm := New(1)
	tm.Generate(p)

	a1 := newSquareForTest(0, 0)
	a4 := newSquareForTest(0, 3)
	a8 := newSquareForTest(0, 7)

	if !tm.IsIndexUnderThreatByColor(a8, board.WhitePieces) {
		t.Fatalf("a8 should start out threatened by the rook on a1")
	}

	m := &board.Move{Start: a1, End: a4, Kind: board.WhiteRook, Captured: board.NoPiece, Flags: board.FlagValid, Legal: true}
	if err := p.Apply(m); err != nil {
		t.Fatalf("apply: %v", err)
	}
	tm.Update(m, p, true)

	if tm.IsIndexUnderThreatByColor(a8, board.WhitePieces) {
		t.Errorf("a8 still shows as threatened after the rook left a1")
	}
	if tm.IsIndexUnderThreatByColor(a4, board.WhitePieces) {
		t.Errorf("rook's own square should not be self-threatened")
	}
	if !tm.IsIndexUnderThreatByColor(newSquareForTest(1, 3), board.WhitePieces) {
		t.Errorf("b4 should be threatened by the rook's new rank on a4")
	}
}

func newSquareForTest(file, rank int) board.Square {
	return board.Square(rank*8 + file)
}
