// Package search implements the negamax-variant alpha-beta tree walk that
// picks the engine's move, plus the mate/checkmate/draw scoring around it.
package search

import (
	"chessbot/engine/board"
	"chessbot/engine/eval"
	"chessbot/engine/movegen"
	"chessbot/engine/threat"
	"chessbot/internal/bitutil"
)

// Score constants, matching the magnitudes a mating search needs: large
// enough that no static evaluation can reach them, but small enough to
// leave headroom for the ply-distance adjustment below.
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

// Stats counts nodes visited and beta cutoffs taken during a Search call,
// surfaced for benchmarking. Grounded in original_source's numMoves
// counter in move_traversal.cpp.
type Stats struct {
	NodesVisited int
	CutoffsTaken int
}

// Result carries the outcome of a Search call: the score (the maximizing
// side prefers higher values, so a mated maximizing side scores near
// -Checkmate and a mated minimizing side near +Checkmate), the chosen move
// at the root, and the accumulated node/cutoff counts for the whole subtree
// walked.
type Result struct {
	Score    int32
	BestMove *board.Move
	Stats    Stats
}

// Search walks moveList under alpha-beta pruning to depth plies. maximizing
// selects whether this node picks the max or the min of its children's
// scores; side is the color union to move at this node (needed to generate
// the opponent's replies and to run the king-in-check legality filter after
// each candidate Apply). ply counts plies from the root and is used only to
// bias the mate-distance sentinel so a shallower mate scores better than a
// deeper one.
func Search(p *board.Position, tm *threat.Map, depth int, maximizing bool, moveList *board.MoveList, alpha, beta int32, side board.PieceKind, ply int) Result {
	var stats Stats
	stats.NodesVisited++

	if depth == 0 {
		return Result{Score: -eval.Evaluate(p), Stats: stats}
	}

	opponent := board.WhitePieces
	if side == board.WhitePieces {
		opponent = board.BlackPieces
	}

	best := Result{}
	if maximizing {
		best.Score = -MaxScore
	} else {
		best.Score = MaxScore
	}

	legalMoves := 0
	inCheck := tm.IsKingInCheckAt(p.KingSquare(side), opponent)

	for m := moveList.Head(); m.Legal; m = m.Next {
		if err := p.Apply(m); err != nil {
			panic("search: apply failed on a move the generator produced: " + err.Error())
		}

		tm.Update(m, p, false)

		if tm.IsKingInCheckAt(p.KingSquare(side), opponent) {
			tm.RevertState()
			if err := p.Undo(m); err != nil {
				panic("search: undo failed: " + err.Error())
			}
			continue
		}
		legalMoves++

		var childScore int32
		if depth > 1 {
			children := movegen.Generate(p, tm, opponent)
			child := Search(p, tm, depth-1, !maximizing, children, alpha, beta, opponent, ply+1)
			childScore = child.Score
			stats.NodesVisited += child.Stats.NodesVisited
			stats.CutoffsTaken += child.Stats.CutoffsTaken
		} else {
			childScore = -eval.Evaluate(p)
		}

		tm.RevertState()
		if err := p.Undo(m); err != nil {
			panic("search: undo failed: " + err.Error())
		}

		if maximizing {
			if childScore > best.Score {
				best.Score = childScore
				best.BestMove = m
			}
			alpha = bitutil.Max(alpha, best.Score)
		} else {
			if childScore < best.Score {
				best.Score = childScore
				best.BestMove = m
			}
			beta = bitutil.Min(beta, best.Score)
		}

		if beta <= alpha {
			stats.CutoffsTaken++
			break
		}
	}

	if legalMoves == 0 {
		if inCheck {
			if maximizing {
				return Result{Score: -Checkmate + int32(ply), Stats: stats}
			}
			return Result{Score: Checkmate - int32(ply), Stats: stats}
		}
		return Result{Score: DrawScore, Stats: stats}
	}

	best.Stats = stats
	return best
}
