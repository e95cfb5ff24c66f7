// Command chessbot is the thin CLI collaborator around the engine: it
// loads a position, reads move tokens from stdin, applies each one,
// searches for a reply, prints it, and loops. It supplements
// original_source's main.cpp, whose loop was an infinite spin with no
// actual interaction.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"chessbot/engine"
	"chessbot/engine/board"
	"chessbot/internal/config"
	"chessbot/internal/enginelog"
)

func main() {
	cfg := config.Parse(os.Args[1:])
	logger := enginelog.New(cfg.Verbose)

	var eng *engine.Engine
	if cfg.FEN != "" {
		p, err := board.FromFEN(cfg.FEN)
		if err != nil {
			fmt.Fprintln(os.Stderr, "chessbot: invalid FEN:", err)
			os.Exit(1)
		}
		side, err := board.SideToMoveFromFEN(cfg.FEN)
		if err != nil {
			fmt.Fprintln(os.Stderr, "chessbot: invalid FEN:", err)
			os.Exit(1)
		}
		eng = engine.NewFromPosition(p, side, cfg.SearchDepth)
	} else {
		eng = engine.New(cfg.SearchDepth)
	}

	fmt.Println("chessbot ready, search depth", cfg.SearchDepth, "- you are playing", cfg.HumanSide)
	fmt.Println("enter moves (e.g. e4, Nf3, O-O); ctrl-d to quit")

	if eng.ToMove() != cfg.HumanSide.PieceKind() {
		if !playEngineReply(eng, logger, cfg) {
			return
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		move, err := eng.ParseMove(text)
		if err != nil {
			fmt.Println("could not resolve move:", err)
			continue
		}
		if err := eng.Apply(move); err != nil {
			fmt.Println("could not apply move:", err)
			continue
		}
		fmt.Println("you played:", eng.FormatMove(move))

		if !playEngineReply(eng, logger, cfg) {
			break
		}
	}
}

// playEngineReply searches for and applies the engine's reply, printing it.
// Returns false when there is no legal reply (game over) or the chosen
// move could not be applied.
func playEngineReply(eng *engine.Engine, logger *enginelog.Logger, cfg config.EngineConfig) bool {
	start := time.Now()
	result := eng.Search()
	logger.Searchf("depth=%d elapsed=%s score=%d nodes=%d cutoffs=%d",
		cfg.SearchDepth, time.Since(start), result.Score, result.Stats.NodesVisited, result.Stats.CutoffsTaken)

	reply := eng.BestMove()
	if reply == nil {
		fmt.Println("no legal reply; game over")
		return false
	}
	if err := eng.Apply(reply); err != nil {
		fmt.Println("engine produced an inapplicable move:", err)
		return false
	}
	fmt.Println("engine plays:", eng.FormatMove(reply), "score", result.Score)
	return true
}
