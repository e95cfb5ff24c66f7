package board

import "testing"

func TestNewInitialMatchesDocumentedOccupancy(t *testing.T) {
	p := NewInitial()
	if p.Occupied() != startOccupied {
		t.Errorf("occupied = %#x, want %#x", p.Occupied(), startOccupied)
	}
	if p.Empty() != startEmpty {
		t.Errorf("empty = %#x, want %#x", p.Empty(), startEmpty)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("initial position invalid: %v", err)
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	p := NewInitial()
	before := *p

	m := &Move{Start: newSquare(4, 1), End: newSquare(4, 3), Kind: WhitePawn, Captured: NoPiece, Flags: FlagValid, Legal: true}
	if err := p.Apply(m); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.Board(WhitePawn)&newSquare(4, 1).Bit() != 0 {
		t.Errorf("pawn still on e2 after push")
	}
	if p.Board(WhitePawn)&newSquare(4, 3).Bit() == 0 {
		t.Errorf("pawn not on e4 after push")
	}

	if err := p.Undo(m); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if p.boards != before.boards {
		t.Errorf("boards after undo = %v, want %v", p.boards, before.boards)
	}
	if p.occupied != before.occupied || p.empty != before.empty {
		t.Errorf("occupied/empty not restored by undo")
	}
}

func TestApplyRejectsMissingMover(t *testing.T) {
	p := NewInitial()
	m := &Move{Start: newSquare(4, 4), End: newSquare(4, 5), Kind: WhitePawn, Captured: NoPiece, Flags: FlagValid, Legal: true}
	if err := p.Apply(m); err == nil {
		t.Fatal("expected an error applying a move from an empty square")
	}
}

func TestApplyRejectsFriendlyCollision(t *testing.T) {
	p := NewInitial()
	m := &Move{Start: newSquare(0, 0), End: newSquare(1, 0), Kind: WhiteRook, Captured: NoPiece, Flags: FlagValid, Legal: true}
	if err := p.Apply(m); err == nil {
		t.Fatal("expected an error applying a move onto a friendly-occupied square")
	}
}

func TestCastlingRoundTrip(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	before := *p

	m := &Move{Start: newSquare(4, 0), End: newSquare(6, 0), Kind: WhiteKing, Captured: NoPiece, Flags: FlagValid | FlagCastleKing, Legal: true}
	if err := p.Apply(m); err != nil {
		t.Fatalf("apply castle: %v", err)
	}
	if p.Board(WhiteKing)&newSquare(6, 0).Bit() == 0 {
		t.Errorf("king did not land on g1")
	}
	if p.Board(WhiteRook)&newSquare(5, 0).Bit() == 0 {
		t.Errorf("rook did not land on f1")
	}
	if !p.castle[0].kingMoved || !p.castle[0].kingRookMoved {
		t.Errorf("castling rights not updated: %+v", p.castle[0])
	}

	if err := p.Undo(m); err != nil {
		t.Fatalf("undo castle: %v", err)
	}
	if p.boards != before.boards {
		t.Errorf("boards after undo = %v, want %v", p.boards, before.boards)
	}
	if p.castle != before.castle {
		t.Errorf("castle rights after undo = %+v, want %+v", p.castle, before.castle)
	}
}

func TestPromotionRewritesDestinationKind(t *testing.T) {
	p, err := FromFEN("8/P7/8/8/4k3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	m := &Move{Start: newSquare(0, 6), End: newSquare(0, 7), Kind: WhitePawn, Captured: NoPiece, PromoteTo: WhiteQueen, Flags: FlagValid | FlagPromotion, Legal: true}
	if err := p.Apply(m); err != nil {
		t.Fatalf("apply promotion: %v", err)
	}
	if p.Board(WhitePawn)&newSquare(0, 6).Bit() != 0 {
		t.Errorf("pawn bit still set at a7")
	}
	if p.Board(WhiteQueen)&newSquare(0, 7).Bit() == 0 {
		t.Errorf("queen bit not set at a8")
	}
	if p.Board(WhitePawn)&newSquare(0, 7).Bit() != 0 {
		t.Errorf("pawn bit incorrectly set at a8")
	}

	if err := p.Undo(m); err != nil {
		t.Fatalf("undo promotion: %v", err)
	}
	if p.Board(WhitePawn)&newSquare(0, 6).Bit() == 0 {
		t.Errorf("pawn not restored at a7 after undo")
	}
	if p.Board(WhiteQueen) != 0 {
		t.Errorf("queen board not cleared after undo")
	}
}

func TestEnPassantCapturesBehindTarget(t *testing.T) {
	// White pawn a5, black pawn b5 (just double-pushed from b7), white to
	// capture en passant from a5 to b6, removing the pawn on b5 rather
	// than b6.
	p, err := FromFEN("4k3/8/8/Pp6/8/8/8/4K3 w - b6 0 1")
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	m := &Move{Start: newSquare(0, 4), End: newSquare(1, 5), Kind: WhitePawn, Captured: BlackPawn, Flags: FlagValid | FlagValidAttack | FlagEnPassant, Legal: true}
	if err := p.Apply(m); err != nil {
		t.Fatalf("apply en passant: %v", err)
	}
	if p.Board(BlackPawn)&newSquare(1, 4).Bit() != 0 {
		t.Errorf("captured black pawn still present on b5")
	}
	if p.Board(BlackPawn)&newSquare(1, 5).Bit() != 0 {
		t.Errorf("black pawn incorrectly present on b6")
	}
	if err := p.Undo(m); err != nil {
		t.Fatalf("undo en passant: %v", err)
	}
	if p.Board(BlackPawn)&newSquare(1, 4).Bit() == 0 {
		t.Errorf("black pawn not restored to b5 after undo")
	}
}
