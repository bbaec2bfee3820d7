package config

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// ReplayConfig holds settings for replaying scripted games.
type ReplayConfig struct {
	// Workers is the number of games replayed in parallel.
	Workers int

	// BufferSize is the worker pool channel buffer size.
	BufferSize int

	// JSON selects JSON reports instead of text.
	JSON bool

	// StopOnError stops at the first game containing an illegal move.
	StopOnError bool

	// Phrases treats each move as a spoken phrase instead of coordinate notation.
	Phrases bool

	// CheckDuplicates flags games whose final position was already reached
	// by an earlier game in the same run.
	CheckDuplicates bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    1,
		BufferSize: 10,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be at least 1: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
