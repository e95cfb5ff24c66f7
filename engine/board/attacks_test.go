package board

import "testing"

func TestAttacksRookGeometry(t *testing.T) {
	p := NewInitial()
	if !p.Attacks(WhiteRook, newSquare(0, 0), newSquare(0, 7)) {
		t.Error("rook on a1 should geometrically reach a8")
	}
	if p.Attacks(WhiteRook, newSquare(0, 0), newSquare(1, 1)) {
		t.Error("rook on a1 should not reach b2")
	}
}

func TestAttacksBishopGeometry(t *testing.T) {
	p := NewInitial()
	if !p.Attacks(WhiteBishop, newSquare(0, 0), newSquare(7, 7)) {
		t.Error("bishop on a1 should geometrically reach h8")
	}
	if p.Attacks(WhiteBishop, newSquare(0, 0), newSquare(0, 7)) {
		t.Error("bishop on a1 should not reach a8")
	}
}

func TestAttacksKnightGeometry(t *testing.T) {
	p := NewInitial()
	if !p.Attacks(WhiteKnight, newSquare(1, 0), newSquare(2, 2)) {
		t.Error("knight on b1 should geometrically reach c3")
	}
	if p.Attacks(WhiteKnight, newSquare(1, 0), newSquare(1, 2)) {
		t.Error("knight on b1 should not reach b3")
	}
}

func TestAttacksKingGeometry(t *testing.T) {
	p := NewInitial()
	if !p.Attacks(WhiteKing, newSquare(4, 0), newSquare(5, 1)) {
		t.Error("king on e1 should geometrically reach f2")
	}
	if p.Attacks(WhiteKing, newSquare(4, 0), newSquare(4, 2)) {
		t.Error("king on e1 should not reach e3")
	}
}

func TestAttacksPawnGeometry(t *testing.T) {
	p := NewInitial()
	if !p.Attacks(WhitePawn, newSquare(4, 1), newSquare(5, 2)) {
		t.Error("white pawn on e2 should geometrically attack f3")
	}
	if p.Attacks(WhitePawn, newSquare(4, 1), newSquare(4, 2)) {
		t.Error("a straight push is not an attack for a pawn")
	}
	if !p.Attacks(BlackPawn, newSquare(4, 6), newSquare(3, 5)) {
		t.Error("black pawn on e7 should geometrically attack d6")
	}
}

func TestAttacksRejectsSameSquare(t *testing.T) {
	p := NewInitial()
	if p.Attacks(WhiteQueen, newSquare(3, 0), newSquare(3, 0)) {
		t.Error("a piece does not attack its own square")
	}
}
