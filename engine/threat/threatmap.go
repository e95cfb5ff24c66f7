// Package threat maintains, for every square, the list of pieces currently
// attacking it. The map is indexed by simulated search depth so that
// recursive search can push a new layer on top of the real position (depth
// 0) and pop it again on backtrack, instead of rebuilding the whole index
// from scratch at every node.
package threat

import "chessbot/engine/board"

// Opcode selects how a per-kind updater mutates the entries at a visited
// square. Mirrors original_source/inc/threatmap.h's threatOpcode_e.
type Opcode int

const (
	// Delete removes the entry {kind, square} wherever it currently sits.
	Delete Opcode = iota
	// Create appends the entry unconditionally.
	Create
	// Update appends the entry only if it is not already present.
	Update
)

// Entry records that a piece of Kind sitting at Square attacks the square
// this entry is filed under.
type Entry struct {
	Kind   board.PieceKind
	Square board.Square
}

// Map is the process-wide (per-Engine) threat index. Slot 0 always
// corresponds to the real position; slot k>=1 is the simulated state after
// k plies of search.
type Map struct {
	depth int
	slots [][64][]Entry
}

// New allocates a Map with room for maxDepth+1 slots (slot 0 plus one per
// ply of search).
func New(maxDepth int) *Map {
	m := &Map{slots: make([][64][]Entry, maxDepth+1)}
	return m
}

// Depth returns the current simulated-ply depth; 0 is the real position.
func (m *Map) Depth() int { return m.depth }

// entries returns the entry list at (depth, sq) for mutation.
func (m *Map) entries(depth int, sq board.Square) []Entry {
	return m.slots[depth][sq]
}

// Generate builds the depth-0 map from scratch by iterating every piece on
// the position and invoking its kind's updater with Create. Called once at
// engine construction and whenever the map must be rebuilt (e.g. after
// installing a position from FEN rather than incremental play).
func (m *Map) Generate(p *board.Position) {
	m.WipeMap()
	for kind := board.WhitePawn; kind < board.NumPieceKinds; kind++ {
		bb := p.Board(kind)
		for bb != 0 {
			sq := board.Square(popLSB(&bb))
			updaters[kind.Type()](m, 0, kind, sq, p.Occupied(), Create)
		}
	}
}

// Update incrementally adjusts the map for one applied move. If real is
// true the write lands in slot 0 (the actual game position); otherwise a
// new simulated slot is pushed by copying the previous depth's entries and
// incrementing the depth counter.
func (m *Map) Update(mv *board.Move, p *board.Position, real bool) {
	depth := m.depth
	if !real {
		depth = m.depth + 1
		m.slots[depth] = m.slots[m.depth]
		for sq := range m.slots[depth] {
			if m.slots[m.depth][sq] != nil {
				cp := make([]Entry, len(m.slots[m.depth][sq]))
				copy(cp, m.slots[m.depth][sq])
				m.slots[depth][sq] = cp
			}
		}
		m.depth = depth
	}

	occ := p.Occupied()
	updater := updaters[mv.Kind.Type()]

	// Step 1 deletes the entries created when this piece last moved, which
	// were computed against the occupancy as it stood before this Apply.
	// Sliders need that exact occupancy back (not the post-move one) or the
	// ray walk truncates early at the piece's own destination square and
	// leaves stale entries beyond it.
	occBefore := occ &^ mv.End.Bit() | mv.Start.Bit()
	if mv.Flags&board.FlagValidAttack != 0 && mv.Flags&board.FlagEnPassant == 0 {
		occBefore |= mv.End.Bit()
	}
	var rookKind board.PieceKind
	var rookFrom, rookTo board.Square
	isCastle := mv.Flags&(board.FlagCastleKing|board.FlagCastleQueen) != 0
	if isCastle {
		rank := mv.Start.Rank()
		rookKind = board.WhiteRook
		if mv.Kind.IsBlack() {
			rookKind = board.BlackRook
		}
		rookFrom, rookTo = board.Square(7+rank*8), board.Square(5+rank*8)
		if mv.Flags&board.FlagCastleQueen != 0 {
			rookFrom, rookTo = board.Square(0+rank*8), board.Square(3+rank*8)
		}
		occBefore = occBefore&^rookTo.Bit() | rookFrom.Bit()
	}

	updater(m, depth, mv.Kind, mv.Start, occBefore, Delete)
	if isCastle {
		updaters[rookKind.Type()](m, depth, rookKind, rookFrom, occBefore, Delete)
	}

	rayKinds := m.attackThroughPiecesTargeting(depth, mv.Start)
	for _, k := range allSliderKinds {
		if rayKinds&(1<<uint(k)) != 0 {
			bb := p.Board(k)
			for bb != 0 {
				sq := board.Square(popLSB(&bb))
				updaters[k.Type()](m, depth, k, sq, occ, Update)
			}
		}
	}

	destKind := mv.Kind
	if mv.Flags&board.FlagPromotion != 0 {
		destKind = mv.PromoteTo
	}
	updaters[destKind.Type()](m, depth, destKind, mv.End, occ, Create)
	if isCastle {
		updaters[rookKind.Type()](m, depth, rookKind, rookTo, occ, Create)
	}
}

// RevertState pops the current simulated depth, discarding its entries so
// the next sibling branch does not see stale state.
func (m *Map) RevertState() {
	if m.depth == 0 {
		panic("threat: revert below depth 0")
	}
	for sq := range m.slots[m.depth] {
		m.slots[m.depth][sq] = nil
	}
	m.depth--
}

// WipeMap clears every slot and resets the depth counter to 0.
func (m *Map) WipeMap() {
	for d := range m.slots {
		for sq := range m.slots[d] {
			m.slots[d][sq] = nil
		}
	}
	m.depth = 0
}

// IsSquareUnderThreat reports whether any piece attacks sq at the given
// depth, regardless of color.
func (m *Map) IsSquareUnderThreat(depth int, sq board.Square) bool {
	return len(m.entries(depth, sq)) > 0
}

// IsIndexUnderThreatByColor reports whether sq is attacked, at the current
// depth, by a piece of the given color union (board.WhitePieces or
// board.BlackPieces).
func (m *Map) IsIndexUnderThreatByColor(sq board.Square, attacker board.PieceKind) bool {
	for _, e := range m.entries(m.depth, sq) {
		if e.Kind.Side() == attacker {
			return true
		}
	}
	return false
}

var allSliderKinds = []board.PieceKind{
	board.WhiteRook, board.WhiteBishop, board.WhiteQueen,
	board.BlackRook, board.BlackBishop, board.BlackQueen,
}

// attackThroughPiecesTargeting returns a bitmask (bit i set for piece kind
// i) of the rook/bishop/queen kinds currently threatening idx at depth.
// Used by Update to know which sliders' rays might now pass through the
// square the moving piece just vacated.
func (m *Map) attackThroughPiecesTargeting(depth int, idx board.Square) uint16 {
	var mask uint16
	for _, e := range m.entries(depth, idx) {
		switch e.Kind.Type() {
		case board.WhiteRook.Type(), board.WhiteBishop.Type(), board.WhiteQueen.Type():
			mask |= 1 << uint(e.Kind)
		}
	}
	return mask
}

// IsKingInCheckAt reports whether the king square is attacked by the given
// threatening color at the current depth.
func (m *Map) IsKingInCheckAt(kingSq board.Square, threatColor board.PieceKind) bool {
	return m.IsIndexUnderThreatByColor(kingSq, threatColor)
}

// IsKingInCheckmateAt reports check plus every neighbor of the king being
// either friendly-occupied or itself under threat: a cheap approximation
// that does not account for a blocking or capturing move by another piece,
// matching original_source's is_king_in_checkmate_at.
func (m *Map) IsKingInCheckmateAt(kingSq board.Square, threatColor board.PieceKind, p *board.Position) bool {
	if !m.IsKingInCheckAt(kingSq, threatColor) {
		return false
	}
	friendly := board.WhitePieces
	if threatColor == board.WhitePieces {
		friendly = board.BlackPieces
	}
	friendlyBB := p.Board(friendly)
	for _, sq := range kingNeighbors(kingSq) {
		if friendlyBB&sq.Bit() != 0 {
			continue
		}
		if m.IsIndexUnderThreatByColor(sq, threatColor) {
			continue
		}
		return false
	}
	return true
}

func kingNeighbors(sq board.Square) []board.Square {
	file, rank := sq.File(), sq.Rank()
	var out []board.Square
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			f, r := file+df, rank+dr
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			out = append(out, board.Square(r*8+f))
		}
	}
	return out
}
