package game

import (
	"sync"

	"github.com/lgbarn/chessrules/internal/chess"
)

// Session wraps a Game with mutex protection so that several callers (for
// example the websocket clients of one game) can share it. Mutating calls are
// serialized; reads share the lock.
type Session struct {
	ID string

	game *Game
	mu   sync.RWMutex
}

// NewSession wraps game under the given identifier.
func NewSession(id string, game *Game) *Session {
	return &Session{ID: id, game: game}
}

// AttemptMove is Game.AttemptMove under the write lock.
func (s *Session) AttemptMove(from, to chess.Square, promotion chess.Kind) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.AttemptMove(from, to, promotion)
}

// Undo is Game.Undo under the write lock.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Undo()
}

// LegalDestinations is Game.LegalDestinations under the read lock.
func (s *Session) LegalDestinations(from chess.Square) []chess.Square {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.LegalDestinations(from)
}

// Status is Game.Status under the read lock.
func (s *Session) Status() StatusReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Status()
}

// MoveHistory is Game.MoveHistory under the read lock.
func (s *Session) MoveHistory() []chess.MoveRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.MoveHistory()
}

// FEN is Game.FEN under the read lock.
func (s *Session) FEN() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.FEN()
}

// State is Game.State under the read lock.
func (s *Session) State() *chess.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.State()
}

// View runs fn with the read lock held, for callers that need several
// reads to describe the same position.
func (s *Session) View(fn func(g *Game)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.game)
}
