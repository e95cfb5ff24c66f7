package threat

import (
	"chessbot/engine/board"
	"chessbot/internal/bitutil"
)

func popLSB(bb *uint64) int { return bitutil.PopLSB(bb) }

// updater enumerates the squares a piece of the given kind attacks from sq
// given the current occupancy, and applies opcode to the map's entry list
// at each of them. One updater per colorless piece type, matching
// original_source/inc/threatmap.h's ThreatMap_Update*Threat family.
type updater func(m *Map, depth int, kind board.PieceKind, sq board.Square, occupied uint64, op Opcode)

var updaters [6]updater

func init() {
	updaters[board.WhitePawn.Type()] = updatePawnThreat
	updaters[board.WhiteRook.Type()] = updateRookThreat
	updaters[board.WhiteBishop.Type()] = updateBishopThreat
	updaters[board.WhiteKnight.Type()] = updateKnightThreat
	updaters[board.WhiteQueen.Type()] = updateQueenThreat
	updaters[board.WhiteKing.Type()] = updateKingThreat
}

// apply mutates the entry list at (depth, target) per opcode.
func (m *Map) apply(depth int, target board.Square, entry Entry, op Opcode) {
	list := m.slots[depth][target]
	switch op {
	case Delete:
		for i, e := range list {
			if e == entry {
				m.slots[depth][target] = append(list[:i], list[i+1:]...)
				return
			}
		}
		panic("threat: delete of an entry that does not exist")
	case Create:
		m.slots[depth][target] = append(list, entry)
	case Update:
		for _, e := range list {
			if e == entry {
				return
			}
		}
		m.slots[depth][target] = append(list, entry)
	}
}

func updatePawnThreat(m *Map, depth int, kind board.PieceKind, sq board.Square, occupied uint64, op Opcode) {
	file, rank := sq.File(), sq.Rank()
	dir := 1
	if kind.IsBlack() {
		dir = -1
	}
	r := rank + dir
	if r < 0 || r > 7 {
		return
	}
	entry := Entry{Kind: kind, Square: sq}
	if file > 0 {
		m.apply(depth, board.Square(r*8+file-1), entry, op)
	}
	if file < 7 {
		m.apply(depth, board.Square(r*8+file+1), entry, op)
	}
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func updateKnightThreat(m *Map, depth int, kind board.PieceKind, sq board.Square, occupied uint64, op Opcode) {
	file, rank := sq.File(), sq.Rank()
	entry := Entry{Kind: kind, Square: sq}
	for _, off := range knightOffsets {
		f, r := file+off[0], rank+off[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		m.apply(depth, board.Square(r*8+f), entry, op)
	}
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func updateKingThreat(m *Map, depth int, kind board.PieceKind, sq board.Square, occupied uint64, op Opcode) {
	file, rank := sq.File(), sq.Rank()
	entry := Entry{Kind: kind, Square: sq}
	for _, off := range kingOffsets {
		f, r := file+off[0], rank+off[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		m.apply(depth, board.Square(r*8+f), entry, op)
	}
}

// rookDirs and bishopDirs are (df, dr) steps; walkRay visits squares along
// one ray until (and including) the first occupied square: the blocker
// itself is attacked, and nothing past it, matching original_source's
// generator.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func walkRay(sq board.Square, occupied uint64, dirs [4][2]int, visit func(board.Square)) {
	file, rank := sq.File(), sq.Rank()
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			target := board.Square(r*8 + f)
			visit(target)
			if occupied&target.Bit() != 0 {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
}

func updateRookThreat(m *Map, depth int, kind board.PieceKind, sq board.Square, occupied uint64, op Opcode) {
	entry := Entry{Kind: kind, Square: sq}
	walkRay(sq, occupied, rookDirs, func(t board.Square) { m.apply(depth, t, entry, op) })
}

func updateBishopThreat(m *Map, depth int, kind board.PieceKind, sq board.Square, occupied uint64, op Opcode) {
	entry := Entry{Kind: kind, Square: sq}
	walkRay(sq, occupied, bishopDirs, func(t board.Square) { m.apply(depth, t, entry, op) })
}

func updateQueenThreat(m *Map, depth int, kind board.PieceKind, sq board.Square, occupied uint64, op Opcode) {
	updateRookThreat(m, depth, kind, sq, occupied, op)
	updateBishopThreat(m, depth, kind, sq, occupied, op)
}
