package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules/internal/errors"
)

// ServerConfig holds settings for the websocket game server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowOrigins lists host patterns allowed to open cross-origin
	// websocket connections. Empty means same origin only.
	AllowOrigins []string

	// MaxSessions caps the number of concurrent games (0 = unbounded).
	MaxSessions int

	// PingInterval is how often idle connections are pinged.
	PingInterval time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		MaxSessions:  1000,
		PingInterval: 30 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxSessions < 0 {
		return fmt.Errorf("max sessions (%d) is negative: %w", s.MaxSessions, errors.ErrInvalidConfig)
	}
	if s.PingInterval < 0 {
		return fmt.Errorf("ping interval (%s) is negative: %w", s.PingInterval, errors.ErrInvalidConfig)
	}
	return nil
}
