package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithUndoLimit caps the undo stack of every game.
func (b *ConfigBuilder) WithUndoLimit(depth int) *ConfigBuilder {
	b.cfg.Engine.MaxUndoDepth = depth
	return b
}

// WithStartFEN sets the position new games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Engine.StartFEN = fen
	return b
}

// WithAddr sets the server listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithAllowOrigins sets the cross-origin patterns accepted by the server.
func (b *ConfigBuilder) WithAllowOrigins(patterns ...string) *ConfigBuilder {
	b.cfg.Server.AllowOrigins = patterns
	return b
}

// WithMaxSessions caps concurrent server games.
func (b *ConfigBuilder) WithMaxSessions(n int) *ConfigBuilder {
	b.cfg.Server.MaxSessions = n
	return b
}

// WithPingInterval sets the server keepalive interval.
func (b *ConfigBuilder) WithPingInterval(d time.Duration) *ConfigBuilder {
	b.cfg.Server.PingInterval = d
	return b
}

// WithWorkers sets the number of parallel replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithJSONOutput enables JSON reports.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Replay.JSON = enabled
	return b
}

// WithStopOnError stops replay at the first failing game.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Replay.StopOnError = enabled
	return b
}

// WithPhrases makes replay read spoken phrases.
func (b *ConfigBuilder) WithPhrases(enabled bool) *ConfigBuilder {
	b.cfg.Replay.Phrases = enabled
	return b
}

// WithDuplicateCheck makes replay flag repeated final positions.
func (b *ConfigBuilder) WithDuplicateCheck(enabled bool) *ConfigBuilder {
	b.cfg.Replay.CheckDuplicates = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
