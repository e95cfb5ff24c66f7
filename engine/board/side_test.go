package board

import "testing"

func TestParseSideRoundTrip(t *testing.T) {
	w, err := ParseSide("white")
	if err != nil || w.PieceKind() != WhitePieces {
		t.Errorf("ParseSide(white) = %v, %v; want White, nil", w, err)
	}
	b, err := ParseSide("black")
	if err != nil || b.PieceKind() != BlackPieces {
		t.Errorf("ParseSide(black) = %v, %v; want Black, nil", b, err)
	}
}

func TestParseSideRejectsUnknown(t *testing.T) {
	if _, err := ParseSide("purple"); err == nil {
		t.Error("expected an error parsing an unrecognized side")
	}
}

func TestSideString(t *testing.T) {
	if White.String() != "white" || Black.String() != "black" {
		t.Errorf("side strings = %q, %q; want \"white\", \"black\"", White, Black)
	}
}
