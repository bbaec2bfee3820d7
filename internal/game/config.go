package game

import "github.com/lgbarn/chessrules/internal/config"

// FromConfig starts a game from the configured position and undo limit.
func FromConfig(cfg *config.EngineConfig) (*Game, error) {
	opts := []Option{WithUndoLimit(cfg.MaxUndoDepth)}
	if cfg.StartFEN == "" {
		return NewGame(opts...), nil
	}
	return NewGameFromFEN(cfg.StartFEN, opts...)
}
