// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"
	"time"

	"github.com/lgbarn/chessrules/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Write replay reports in JSON format")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Engine options
	startFEN  = flag.String("fen", "", "Start new games from this FEN position")
	undoLimit = flag.Int("undo", 0, "Maximum undo depth per game (0 = unlimited)")

	// Server options
	listenAddr   = flag.String("addr", ":8080", "Listen address for serve")
	allowOrigins = flag.String("origins", "", "Comma-separated origin patterns allowed to connect")
	maxGames     = flag.Int("maxgames", 1000, "Maximum concurrent games (0 = unlimited)")
	pingInterval = flag.Duration("ping", 30*time.Second, "Ping interval for idle connections (0 = off)")

	// Replay options
	workers    = flag.Int("workers", 1, "Number of games replayed in parallel")
	bufferSize = flag.Int("buffer", 10, "Replay work queue size")
	stopOnErr  = flag.Bool("stop", false, "Stop replay at the first game with an illegal move")
	phrases    = flag.Bool("phrases", false, "Read moves as spoken phrases (comma separated in scripts)")
	duplicates = flag.Bool("D", false, "Flag replayed games that end in an already seen position")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config) {
	applyEngineFlags(cfg)
	applyServerFlags(cfg)
	applyReplayFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyEngineFlags configures per-game settings.
func applyEngineFlags(cfg *config.Config) {
	cfg.Engine.StartFEN = *startFEN
	cfg.Engine.MaxUndoDepth = *undoLimit
}

// applyServerFlags configures the websocket server.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *listenAddr
	cfg.Server.AllowOrigins = splitList(*allowOrigins)
	cfg.Server.MaxSessions = *maxGames
	cfg.Server.PingInterval = *pingInterval
}

// applyReplayFlags configures scripted replay.
func applyReplayFlags(cfg *config.Config) {
	cfg.Replay.Workers = *workers
	cfg.Replay.BufferSize = *bufferSize
	cfg.Replay.JSON = *jsonOutput
	cfg.Replay.StopOnError = *stopOnErr
	cfg.Replay.Phrases = *phrases
	cfg.Replay.CheckDuplicates = *duplicates
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
