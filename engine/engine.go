// Package engine bundles a position, its threat map, and the search
// configuration into a single value, so the process-wide state the
// original design called for (a depth-indexed threat map, a best-move
// slot) becomes ordinary struct fields on an object callers instantiate
// rather than package-level globals.
package engine

import (
	"fmt"

	"chessbot/engine/board"
	"chessbot/engine/movegen"
	"chessbot/engine/notation"
	"chessbot/engine/search"
	"chessbot/engine/threat"
)

// DefaultSearchDepth is the fixed ply depth used when nothing else is
// configured.
const DefaultSearchDepth = 5

// Engine owns one chess position plus the threat map incrementally
// maintained alongside it, and the depth search runs at. It is not safe
// for concurrent use; every public operation runs to completion on the
// caller's goroutine, matching the single-threaded, synchronous model.
type Engine struct {
	position    *board.Position
	threats     *threat.Map
	searchDepth int
	toMove      board.PieceKind

	bestMove *board.Move
}

// New constructs an Engine over the standard starting position.
func New(searchDepth int) *Engine {
	return NewFromPosition(board.NewInitial(), board.WhitePieces, searchDepth)
}

// NewFromPosition constructs an Engine over an already-built position
// (e.g. loaded from FEN), with the given side to move.
func NewFromPosition(p *board.Position, side board.PieceKind, searchDepth int) *Engine {
	tm := threat.New(searchDepth)
	tm.Generate(p)
	return &Engine{position: p, threats: tm, searchDepth: searchDepth, toMove: side}
}

// Position exposes the underlying position for read-only inspection (tests,
// FEN export, CLI board printing).
func (e *Engine) Position() *board.Position { return e.position }

// ToMove returns the color union to move.
func (e *Engine) ToMove() board.PieceKind { return e.toMove }

// BestMove returns the move recorded by the most recently completed Search
// call at the root, or nil if none has run yet.
func (e *Engine) BestMove() *board.Move { return e.bestMove }

// Generate produces the pseudo-legal move list for the side to move.
func (e *Engine) Generate() *board.MoveList {
	return movegen.Generate(e.position, e.threats, e.toMove)
}

// LegalMoves filters the pseudo-legal move list down to moves that do not
// leave the mover's own king in check, applying and undoing each candidate
// on a simulated layer pushed over the real threat map. This mirrors the apply-check-undo discipline
// search.Search runs internally, so a human's move entered at the CLI is
// held to the same legality standard as the engine's own replies.
func (e *Engine) LegalMoves() *board.MoveList {
	opp := opponent(e.toMove)
	legal := board.NewMoveList()
	for m := e.Generate().Head(); m.Legal; {
		next := m.Next

		if err := e.position.Apply(m); err != nil {
			panic("engine: apply failed on a move the generator produced: " + err.Error())
		}
		e.threats.Update(m, e.position, false)
		inCheck := e.threats.IsKingInCheckAt(e.position.KingSquare(e.toMove), opp)
		e.threats.RevertState()
		if err := e.position.Undo(m); err != nil {
			panic("engine: undo failed: " + err.Error())
		}

		if !inCheck {
			legal.Prepend(m)
		}
		m = next
	}
	return legal
}

// Apply performs m against the engine's position, incrementally updates
// the real (depth-0) threat map, and flips the side to move. Returns an
// error on a malformed or inapplicable move; the engine is left unchanged
// on failure.
func (e *Engine) Apply(m *board.Move) error {
	if err := e.position.Apply(m); err != nil {
		return fmt.Errorf("engine: apply: %w", err)
	}
	e.threats.Update(m, e.position, true)
	e.toMove = opponent(e.toMove)
	return nil
}

// Undo reverses the most recently applied move and restores the side to
// move. Callers must respect strict LIFO apply/undo discipline; violating
// it panics inside board.Position.Undo.
func (e *Engine) Undo(m *board.Move) error {
	if err := e.position.Undo(m); err != nil {
		return fmt.Errorf("engine: undo: %w", err)
	}
	e.threats.Generate(e.position)
	e.toMove = opponent(e.toMove)
	return nil
}

// Search runs alpha-beta to the engine's configured depth from the current
// position and side to move, recording and returning the chosen root move
// alongside its score.
func (e *Engine) Search() search.Result {
	maximizing := e.toMove == board.WhitePieces
	moves := e.Generate()
	result := search.Search(e.position, e.threats, e.searchDepth, maximizing, moves, -search.MaxScore, search.MaxScore, e.toMove, 0)
	e.bestMove = result.BestMove
	return result
}

// ParseMove parses text in the engine's algebraic notation subset and
// resolves it against the engine's current legal move list.
func (e *Engine) ParseMove(text string) (*board.Move, error) {
	parsed, err := notation.Parse(text)
	if err != nil {
		return nil, err
	}
	return notation.Resolve(parsed, e.LegalMoves(), e.toMove)
}

// FormatMove renders m in the engine's debug output form.
func (e *Engine) FormatMove(m *board.Move) string {
	return notation.FormatMove(m)
}

func opponent(side board.PieceKind) board.PieceKind {
	if side == board.WhitePieces {
		return board.BlackPieces
	}
	return board.WhitePieces
}
