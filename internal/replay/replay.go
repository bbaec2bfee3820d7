// Package replay plays scripted games through the rules engine and reports
// how each one ended, or the first move the engine refused.
package replay

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/notation"
	"github.com/lgbarn/chessrules/internal/worker"
)

// Report is the outcome of replaying one scripted game.
type Report struct {
	Index int
	Name  string
	Line  int

	StartFEN string
	FinalFEN string

	// Plies is the number of moves applied before the script ended or a
	// move was refused.
	Plies  int
	Moves  []chess.MoveRecord
	Status game.StatusReport

	// Duplicate is set when an earlier game in the run reached the same
	// final position. Only checked when duplicate detection is enabled.
	Duplicate bool

	// Err is nil if every move was applied, otherwise a *errors.MoveError
	// naming the first refused ply.
	Err error
}

// Failed returns true if the script contained a move the engine refused.
func (r *Report) Failed() bool {
	return r.Err != nil
}

// Replayer replays scripted games using a shared configuration.
type Replayer struct {
	cfg      *config.Config
	detector *hashing.ThreadSafeDuplicateDetector
}

// NewReplayer creates a replayer. Duplicate detection is enabled by
// cfg.Replay.CheckDuplicates.
func NewReplayer(cfg *config.Config) *Replayer {
	r := &Replayer{cfg: cfg}
	if cfg.Replay.CheckDuplicates {
		r.detector = hashing.NewThreadSafeDuplicateDetector(false, 0)
	}
	return r
}

// ReplayGame plays one script from its starting position. It stops at the
// first move that cannot be parsed or is refused by the engine.
func (r *Replayer) ReplayGame(item worker.WorkItem) *Report {
	rep := &Report{Index: item.Index, Name: item.Name, Line: item.Line}
	fail := func(ply int, text string, err error) *Report {
		rep.Err = &errors.MoveError{
			Err:      err,
			GameID:   item.Name,
			Line:     item.Line,
			PlyNum:   ply,
			MoveText: text,
		}
		r.cfg.Logf(2, "%v\n", rep.Err)
		return rep
	}

	g, err := r.newGame(item.FEN)
	if err != nil {
		return fail(0, "", err)
	}
	rep.StartFEN = g.FEN()

	for i, text := range item.Moves {
		ply := i + 1
		move, err := r.parse(text)
		if err != nil {
			r.finish(rep, g)
			return fail(ply, text, err)
		}

		res, err := g.AttemptMove(move.From, move.To, move.Promotion)
		if err == nil && res.PendingPromotion {
			err = fmt.Errorf("%s-%s needs a promotion piece: %w", move.From, move.To, errors.ErrInvalidPromotion)
		}
		if err != nil {
			r.finish(rep, g)
			return fail(ply, text, err)
		}
	}

	r.finish(rep, g)
	if r.detector != nil {
		rep.Duplicate = r.detector.CheckAndAdd(g.State())
	}
	r.cfg.Logf(2, "%s:%d: %d plies, %s\n", item.Name, item.Line, rep.Plies, rep.Status.Status)
	return rep
}

// newGame creates the game a script starts from: its own FEN if it has
// one, otherwise the configured start position.
func (r *Replayer) newGame(fen string) (*game.Game, error) {
	if fen == "" {
		return game.FromConfig(r.cfg.Engine)
	}
	return game.NewGameFromFEN(fen, game.WithUndoLimit(r.cfg.Engine.MaxUndoDepth))
}

func (r *Replayer) parse(text string) (notation.Move, error) {
	if r.cfg.Replay.Phrases {
		return notation.ParsePhrase(text)
	}
	return notation.ParseMove(text)
}

// finish copies the game's final state into the report.
func (r *Replayer) finish(rep *Report, g *game.Game) {
	rep.Moves = g.MoveHistory()
	rep.Plies = len(rep.Moves)
	rep.FinalFEN = g.FEN()
	rep.Status = g.Status()
}

// Run replays items on the configured number of workers and returns the
// reports in input order. With StopOnError set, games not yet started when
// a script fails are skipped and have no report.
func (r *Replayer) Run(items []worker.WorkItem) []*Report {
	process := func(item worker.WorkItem) worker.ProcessResult {
		rep := r.ReplayGame(item)
		return worker.ProcessResult{
			Index:  item.Index,
			Name:   item.Name,
			Report: rep,
			Failed: rep.Failed(),
			Error:  rep.Err,
		}
	}

	pool := worker.NewPool(process,
		worker.WithWorkers(r.cfg.Replay.Workers),
		worker.WithBufferSize(r.cfg.Replay.BufferSize),
	)
	results := pool.Run(items, r.cfg.Replay.StopOnError)

	reports := make([]*Report, 0, len(results))
	for _, res := range results {
		if rep, ok := res.Report.(*Report); ok {
			reports = append(reports, rep)
		}
	}
	return reports
}

// Duplicates returns how many games so far ended in a position already
// reached by another game. It is 0 when detection is disabled.
func (r *Replayer) Duplicates() int {
	if r.detector == nil {
		return 0
	}
	return r.detector.DuplicateCount()
}

// Summary counts the outcomes of a set of reports.
type Summary struct {
	Games      int `json:"games"`
	Failed     int `json:"failed"`
	Checkmates int `json:"checkmates"`
	Stalemates int `json:"stalemates"`
	Unfinished int `json:"unfinished"`
	Duplicates int `json:"duplicates,omitempty"`
}

// Summarize counts outcomes across reports.
func Summarize(reports []*Report) Summary {
	var s Summary
	for _, rep := range reports {
		s.Games++
		switch {
		case rep.Failed():
			s.Failed++
		case rep.Status.Status == chess.Checkmate:
			s.Checkmates++
		case rep.Status.Status == chess.Stalemate:
			s.Stalemates++
		default:
			s.Unfinished++
		}
		if rep.Duplicate {
			s.Duplicates++
		}
	}
	return s
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("%d games: %d checkmate, %d stalemate, %d unfinished, %d failed, %d duplicate",
		s.Games, s.Checkmates, s.Stalemates, s.Unfinished, s.Failed, s.Duplicates)
}
