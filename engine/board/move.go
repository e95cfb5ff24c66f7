package board

// MoveFlags is a bit set describing the kind of a move, matching the
// MOVE_VALID* family in original_source/inc/chessboard_defs.h.
type MoveFlags uint16

const (
	FlagValid MoveFlags = 1 << iota
	FlagValidAttack
	FlagCastleKing
	FlagCastleQueen
	FlagCheck
	FlagMate
	FlagUndo
	FlagEnPassant
	FlagPromotion
)

// Move is one candidate or applied move. Moves form a singly-linked list
// terminated by a sentinel node whose Legal field is false; that sentinel
// is what callers test for when walking a move list to its end.
type Move struct {
	Start, End Square
	Kind       PieceKind
	Captured   PieceKind // NoPiece when the move is not a capture
	PromoteTo  PieceKind // NoPiece unless Flags&FlagPromotion is set
	Flags      MoveFlags
	Legal      bool
	Next       *Move
}

// endSentinel returns a fresh tail node for a move list: Legal is false, so
// callers walking the list with `for m := list; m.Legal; m = m.Next` stop
// here without a separate nil check.
func endSentinel() *Move {
	return &Move{Legal: false}
}

// IsCapture reports whether the move captures an enemy piece, including en
// passant.
func (m *Move) IsCapture() bool { return m.Flags&FlagValidAttack != 0 }

// MoveList is a linked chain of candidate moves, most recently added first,
// terminated by a not-Legal sentinel. Prepending is how generators build
// the list, matching original_source's BuildMove.
type MoveList struct {
	head *Move
}

// NewMoveList returns an empty move list (just the sentinel tail).
func NewMoveList() *MoveList {
	return &MoveList{head: endSentinel()}
}

// Head returns the first move in the list, or the sentinel if the list is
// empty. Callers walk with `for m := list.Head(); m.Legal; m = m.Next`.
func (l *MoveList) Head() *Move { return l.head }

// Len counts the legal entries in the list. O(n); intended for tests and
// diagnostics, not the search hot path.
func (l *MoveList) Len() int {
	n := 0
	for m := l.head; m.Legal; m = m.Next {
		n++
	}
	return n
}

// Prepend adds a new move to the front of the list. Mirrors
// ChessBoard::BuildMove's `newMove->adjMove = *moveList; *moveList = newMove`.
func (l *MoveList) Prepend(m *Move) {
	m.Next = l.head
	l.head = m
}

// SortCapturesFirst stably reorders the list so every FlagValidAttack move
// precedes every quiet move, without otherwise disturbing relative order:
// captures first, everything else in its existing list order.
func (l *MoveList) SortCapturesFirst() {
	var captures, quiets []*Move
	for m := l.head; m.Legal; m = m.Next {
		if m.IsCapture() {
			captures = append(captures, m)
		} else {
			quiets = append(quiets, m)
		}
	}
	ordered := append(captures, quiets...)
	sentinel := endSentinel()
	for i := len(ordered) - 1; i >= 0; i-- {
		if i == len(ordered)-1 {
			ordered[i].Next = sentinel
		} else {
			ordered[i].Next = ordered[i+1]
		}
	}
	if len(ordered) == 0 {
		l.head = sentinel
		return
	}
	l.head = ordered[0]
}
