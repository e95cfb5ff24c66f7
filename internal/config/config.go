// Package config parses the handful of process-start settings the engine
// needs: search depth and log verbosity, reading os.Args/flag directly
// rather than through a framework like cobra or viper.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"chessbot/engine/board"
)

// EngineConfig holds settings that were compile-time constants in
// original_source (SEARCH_DEPTH among them), generalized here to
// process start so they can be tuned without a rebuild.
type EngineConfig struct {
	SearchDepth int
	Verbose     bool
	FEN         string
	HumanSide   board.Side
}

const defaultSearchDepth = 5

// Parse reads flags from args (normally os.Args[1:]) and applies
// environment-variable overrides for the same settings, so a depth or log
// level can be tuned without recompiling.
func Parse(args []string) EngineConfig {
	fs := flag.NewFlagSet("chessbot", flag.ContinueOnError)
	depth := fs.Int("depth", defaultSearchDepth, "search depth in plies")
	verbose := fs.Bool("verbose", false, "enable search diagnostics logging")
	fen := fs.String("fen", "", "starting position in FEN (default: standard initial position)")
	side := fs.String("side", "white", "side the human plays: \"white\" or \"black\"")
	fs.Parse(args)

	cfg := EngineConfig{SearchDepth: *depth, Verbose: *verbose, FEN: *fen, HumanSide: board.White}
	if s, err := board.ParseSide(*side); err == nil {
		cfg.HumanSide = s
	} else {
		fmt.Fprintln(os.Stderr, "chessbot:", err, "- defaulting to white")
	}

	if v := os.Getenv("CHESSBOT_SEARCH_DEPTH"); v != "" {
		if d, err := strconv.Atoi(v); err == nil && d > 0 {
			cfg.SearchDepth = d
		}
	}
	if v := os.Getenv("CHESSBOT_VERBOSE"); v != "" {
		cfg.Verbose = v != "0"
	}
	return cfg
}
