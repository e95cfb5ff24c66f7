package board

import "fmt"

// snapshot is one frame of the undo stack: exactly the bits one Apply call
// touches, so Undo is a structural pop rather than a restore of the whole
// 14-board array. Grows and shrinks with search depth, in place of the
// single-level prev_boards backup original_source used.
type snapshot struct {
	kind, destKind   PieceKind
	friendly, enemy  PieceKind
	moverBoardBefore uint64
	destBoardBefore  uint64
	friendlyBefore   uint64

	captured            PieceKind // NoPiece if this move captured nothing
	capturedSquare      Square
	capturedBoardBefore uint64
	enemyBefore         uint64

	occupiedBefore uint64
	emptyBefore    uint64
	valueBefore    int32

	enPassantBefore Square
	castleBefore    [2]castleRights

	isCastle       bool
	rookKind       PieceKind
	rookFrom       Square
	rookTo         Square
	rookBoardBefore uint64
}

// rookHomeSquares returns the king-side and queen-side rook starting
// squares for the given back rank.
func rookHomeSquares(rank int) (kingSide, queenSide Square) {
	return newSquare(7, rank), newSquare(0, rank)
}

// Apply validates and performs one move in place. On success it pushes an
// undo frame onto the position's snapshot stack; on failure it returns an
// error and leaves the position unchanged.
func (p *Position) Apply(m *Move) error {
	if m == nil {
		return fmt.Errorf("board: apply: move was nil")
	}
	if m.Start < 0 || int(m.Start) >= 64 || m.End < 0 || int(m.End) >= 64 {
		return fmt.Errorf("board: apply: square index out of range (start=%d end=%d)", m.Start, m.End)
	}
	if m.Kind >= NumPieceKinds {
		return fmt.Errorf("board: apply: piece kind %d out of range", m.Kind)
	}
	if p.boards[m.Kind]&m.Start.Bit() == 0 {
		return fmt.Errorf("board: apply: no piece of kind %v at start square %d", m.Kind, m.Start)
	}

	friendly, enemy := friendAndFoe(m.Kind)
	if p.boards[friendly]&m.End.Bit() != 0 {
		return fmt.Errorf("board: apply: friendly piece already occupies end square %d", m.End)
	}
	if p.boards[WhitePieces]^p.boards[BlackPieces] != p.occupied {
		return fmt.Errorf("board: apply: color unions incoherent with occupied before move")
	}

	destKind := m.Kind
	if m.Flags&FlagPromotion != 0 {
		destKind = m.PromoteTo
	}

	capSq := m.End
	if m.Flags&FlagValidAttack != 0 {
		if m.Flags&FlagEnPassant != 0 {
			capSq = newSquare(m.End.File(), m.Start.Rank())
		}
		if m.Captured >= NumPieceKinds || p.boards[m.Captured]&capSq.Bit() == 0 {
			return fmt.Errorf("board: apply: no enemy piece of kind %v at capture square %d", m.Captured, capSq)
		}
	}

	snap := snapshot{
		kind:             m.Kind,
		destKind:         destKind,
		friendly:         friendly,
		enemy:            enemy,
		moverBoardBefore: p.boards[m.Kind],
		destBoardBefore:  p.boards[destKind],
		friendlyBefore:   p.boards[friendly],
		captured:         NoPiece,
		occupiedBefore:   p.occupied,
		emptyBefore:       p.empty,
		valueBefore:       p.value,
		enPassantBefore:   p.enPassantTarget,
		castleBefore:      p.castle,
	}

	// Move the piece: clear the start bit from its own board and the
	// friendly union, set the end bit on the destination board (which
	// differs from the mover's board only for a promotion) and the union.
	p.boards[m.Kind] &^= m.Start.Bit()
	p.boards[friendly] &^= m.Start.Bit()
	p.boards[destKind] |= m.End.Bit()
	p.boards[friendly] |= m.End.Bit()

	if m.Flags&FlagValidAttack != 0 {
		capturedKind := m.Captured
		snap.captured = capturedKind
		snap.capturedSquare = capSq
		snap.capturedBoardBefore = p.boards[capturedKind]
		snap.enemyBefore = p.boards[enemy]

		p.boards[capturedKind] &^= capSq.Bit()
		p.boards[enemy] &^= capSq.Bit()
	}

	if m.Flags&(FlagCastleKing|FlagCastleQueen) != 0 {
		rookKind := WhiteRook
		if friendly == BlackPieces {
			rookKind = BlackRook
		}
		kingSide, queenSide := rookHomeSquares(m.Start.Rank())
		rookFrom, rookTo := kingSide, newSquare(5, m.Start.Rank())
		if m.Flags&FlagCastleQueen != 0 {
			rookFrom, rookTo = queenSide, newSquare(3, m.Start.Rank())
		}
		snap.isCastle = true
		snap.rookKind = rookKind
		snap.rookFrom = rookFrom
		snap.rookTo = rookTo
		snap.rookBoardBefore = p.boards[rookKind]

		p.boards[rookKind] &^= rookFrom.Bit()
		p.boards[rookKind] |= rookTo.Bit()
		p.boards[friendly] &^= rookFrom.Bit()
		p.boards[friendly] |= rookTo.Bit()
	}

	p.occupied = p.boards[WhitePieces] | p.boards[BlackPieces]
	p.empty = ^p.occupied

	p.updateCastleRights(m, snap.captured, snap.capturedSquare)
	p.updateEnPassantTarget(m)

	if p.boards[WhitePieces]&p.boards[BlackPieces] != 0 {
		panic("board: apply: color unions overlap after move, invariant violated")
	}
	if p.boards[WhitePieces]^p.boards[BlackPieces] != p.occupied {
		panic("board: apply: color unions incoherent with occupied after move")
	}

	m.Captured = snap.captured
	p.stack = append(p.stack, snap)
	return nil
}

// updateCastleRights marks the king or a rook as moved, including the rook
// a castling move carries along and a rook captured on its home square.
func (p *Position) updateCastleRights(m *Move, captured PieceKind, capturedSquare Square) {
	sideIdx := 0
	if m.Kind.IsBlack() {
		sideIdx = 1
	}
	switch m.Kind.Type() {
	case WhiteKing.Type():
		p.castle[sideIdx].kingMoved = true
		if m.Flags&FlagCastleKing != 0 {
			p.castle[sideIdx].kingRookMoved = true
		}
		if m.Flags&FlagCastleQueen != 0 {
			p.castle[sideIdx].queenRookMoved = true
		}
	case WhiteRook.Type():
		kingSide, queenSide := rookHomeSquares(m.Start.Rank())
		switch m.Start {
		case kingSide:
			p.castle[sideIdx].kingRookMoved = true
		case queenSide:
			p.castle[sideIdx].queenRookMoved = true
		}
	}
	if captured.Type() == WhiteRook.Type() {
		capSideIdx := 0
		if captured.IsBlack() {
			capSideIdx = 1
		}
		kingSide, queenSide := rookHomeSquares(capturedSquare.Rank())
		switch capturedSquare {
		case kingSide:
			p.castle[capSideIdx].kingRookMoved = true
		case queenSide:
			p.castle[capSideIdx].queenRookMoved = true
		}
	}
}

// updateEnPassantTarget records the square behind a fresh double pawn push,
// or clears it for every other move. Threaded through the position itself
// rather than read from the move list, so a capturing pawn generator never
// needs history beyond the current position.
func (p *Position) updateEnPassantTarget(m *Move) {
	isPawn := m.Kind.Type() == WhitePawn.Type()
	delta := int(m.End) - int(m.Start)
	if isPawn && (delta == 16 || delta == -16) {
		p.enPassantTarget = Square((int(m.Start) + int(m.End)) / 2)
		return
	}
	p.enPassantTarget = NoSquare
}

// Undo reverses the most recent Apply call. Callers must respect strict
// LIFO apply/undo discipline; Undo panics if there is nothing to undo.
func (p *Position) Undo(m *Move) error {
	if m == nil {
		return fmt.Errorf("board: undo: move was nil")
	}
	if len(p.stack) == 0 {
		panic("board: undo: snapshot stack empty, apply/undo called out of order")
	}
	n := len(p.stack) - 1
	snap := p.stack[n]
	p.stack = p.stack[:n]

	p.boards[snap.kind] = snap.moverBoardBefore
	p.boards[snap.destKind] = snap.destBoardBefore
	p.boards[snap.friendly] = snap.friendlyBefore

	if snap.captured != NoPiece {
		p.boards[snap.captured] = snap.capturedBoardBefore
		p.boards[snap.enemy] = snap.enemyBefore
	}

	if snap.isCastle {
		p.boards[snap.rookKind] = snap.rookBoardBefore
	}

	p.occupied = snap.occupiedBefore
	p.empty = snap.emptyBefore
	p.value = snap.valueBefore
	p.enPassantTarget = snap.enPassantBefore
	p.castle = snap.castleBefore

	m.Captured = snap.captured
	return nil
}
