// Package game is the boundary a user interface drives: it owns one game's
// position and undo stack and exposes highlighting, move attempts with
// two-phase promotion, undo, status and the move log.
package game

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Game is a single game in progress. A Game is not safe for concurrent use;
// wrap it in a Session when several callers share it.
type Game struct {
	state   *chess.GameState
	history *engine.History
	undoCap int
}

// Option configures a Game.
type Option func(*Game)

// WithUndoLimit caps the number of moves that can be undone (0 = unbounded).
func WithUndoLimit(n int) Option {
	return func(g *Game) {
		if n >= 0 {
			g.undoCap = n
		}
	}
}

// NewGame starts a game from the standard initial position.
func NewGame(opts ...Option) *Game {
	return newGame(engine.NewInitialState(), opts)
}

// NewGameFromFEN starts a game from a FEN position.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	state, err := engine.NewStateFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(state, opts), nil
}

func newGame(state *chess.GameState, opts []Option) *Game {
	g := &Game{state: state}
	for _, opt := range opts {
		opt(g)
	}
	g.history = engine.NewHistory(g.undoCap)
	return g
}

// MoveResult reports the outcome of AttemptMove.
type MoveResult struct {
	// Applied is true if the move was executed.
	Applied bool

	// PendingPromotion is true if the move is a legal promotion that needs a
	// promotion choice; nothing was changed and the caller should try again
	// with one.
	PendingPromotion bool

	// Record is the log entry of an applied move.
	Record chess.MoveRecord
}

// LegalDestinations returns the squares the piece on from may move to. It is
// empty if from is empty, holds a piece of the side not to move, or the game
// is over.
func (g *Game) LegalDestinations(from chess.Square) []chess.Square {
	if g.state.GameOver || !g.state.Board.Get(from).IsColour(g.state.ToMove) {
		return nil
	}
	return engine.LegalDestinations(g.state, from)
}

// AttemptMove tries to move the piece on from to to. A legal move is applied
// unless it is a promotion and promotion is chess.Empty, in which case the
// result is pending and the position is unchanged. Rejected moves return an
// error wrapping ErrGameOver, ErrNotYourTurn, ErrInvalidPromotion or
// ErrIllegalMove and leave the position unchanged.
func (g *Game) AttemptMove(from, to chess.Square, promotion chess.Kind) (MoveResult, error) {
	state := g.state
	if state.GameOver {
		return MoveResult{}, fmt.Errorf("%s-%s after %s: %w", from, to, state.Status, errors.ErrGameOver)
	}

	piece := state.Board.Get(from)
	switch {
	case piece.IsEmpty():
		return MoveResult{}, fmt.Errorf("no piece on %s: %w", from, errors.ErrIllegalMove)
	case piece.Colour != state.ToMove:
		return MoveResult{}, fmt.Errorf("%s on %s, %s to move: %w", piece, from, state.ToMove, errors.ErrNotYourTurn)
	case !engine.IsValidMove(state, from, to):
		return MoveResult{}, fmt.Errorf("%s %s-%s: %w", piece, from, to, errors.ErrIllegalMove)
	}

	if engine.NeedsPromotion(state, from, to) {
		if promotion == chess.Empty {
			return MoveResult{PendingPromotion: true}, nil
		}
		if !promotion.IsPromotionChoice() {
			return MoveResult{}, fmt.Errorf("%s-%s=%s: %w", from, to, promotion, errors.ErrInvalidPromotion)
		}
	}

	g.history.Snapshot(state)
	if !engine.ApplyMove(state, from, to, promotion) {
		g.history.Discard()
		return MoveResult{}, fmt.Errorf("%s-%s: %w", from, to, errors.ErrIllegalMove)
	}
	return MoveResult{Applied: true, Record: state.History[len(state.History)-1]}, nil
}

// Undo takes back the last move. It returns false if there is nothing to undo.
func (g *Game) Undo() bool {
	return g.history.Undo(g.state)
}

// UndoDepth returns how many moves can currently be undone.
func (g *Game) UndoDepth() int {
	return g.history.Depth()
}

// StatusReport describes the game from the point of view of the side to move.
type StatusReport struct {
	Status     chess.Status
	ToMove     chess.Colour
	MoveNumber uint
	GameOver   bool

	// Winner is only meaningful when HasWinner is true (checkmate).
	Winner    chess.Colour
	HasWinner bool
}

// Status returns the current status report.
func (g *Game) Status() StatusReport {
	winner, ok := engine.Winner(g.state)
	return StatusReport{
		Status:     g.state.Status,
		ToMove:     g.state.ToMove,
		MoveNumber: g.state.MoveNumber,
		GameOver:   g.state.GameOver,
		Winner:     winner,
		HasWinner:  ok,
	}
}

// MoveHistory returns a copy of the move log, oldest first.
func (g *Game) MoveHistory() []chess.MoveRecord {
	return append([]chess.MoveRecord(nil), g.state.History...)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.StateToFEN(g.state)
}

// State returns a deep copy of the current position.
func (g *Game) State() *chess.GameState {
	return g.state.Clone()
}
