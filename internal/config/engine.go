package config

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// EngineConfig holds settings for each game the engine runs.
type EngineConfig struct {
	// MaxUndoDepth caps the undo stack of a game (0 = unbounded).
	MaxUndoDepth int

	// StartFEN is the position new games start from ("" = standard start).
	StartFEN string
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{}
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if e.MaxUndoDepth < 0 {
		return fmt.Errorf("max undo depth (%d) is negative: %w", e.MaxUndoDepth, errors.ErrInvalidConfig)
	}
	return nil
}
