package config

import (
	"bytes"
	"errors"
	"testing"
	"time"

	chesserrors "github.com/lgbarn/chessrules/internal/errors"
)

// TestEngineConfig_Defaults verifies EngineConfig has sensible defaults
func TestEngineConfig_Defaults(t *testing.T) {
	cfg := NewEngineConfig()

	if cfg.MaxUndoDepth != 0 {
		t.Errorf("MaxUndoDepth = %d, want 0 (unbounded)", cfg.MaxUndoDepth)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
}

// TestServerConfig_Defaults verifies ServerConfig has sensible defaults
func TestServerConfig_Defaults(t *testing.T) {
	cfg := NewServerConfig()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.MaxSessions != 1000 {
		t.Errorf("MaxSessions = %d, want 1000", cfg.MaxSessions)
	}
	if cfg.PingInterval != 30*time.Second {
		t.Errorf("PingInterval = %v, want 30s", cfg.PingInterval)
	}
	if len(cfg.AllowOrigins) != 0 {
		t.Errorf("AllowOrigins = %v, want none", cfg.AllowOrigins)
	}
}

// TestReplayConfig_Defaults verifies ReplayConfig has sensible defaults
func TestReplayConfig_Defaults(t *testing.T) {
	cfg := NewReplayConfig()

	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.BufferSize != 10 {
		t.Errorf("BufferSize = %d, want 10", cfg.BufferSize)
	}
	if cfg.JSON || cfg.StopOnError || cfg.Phrases {
		t.Error("JSON, StopOnError and Phrases should be false by default")
	}
}

// TestConfig_Validate verifies validation of every section
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"bounded undo", func(c *Config) { c.Engine.MaxUndoDepth = 5 }, false},
		{"negative undo depth", func(c *Config) { c.Engine.MaxUndoDepth = -1 }, true},
		{"empty address", func(c *Config) { c.Server.Addr = "" }, true},
		{"negative sessions", func(c *Config) { c.Server.MaxSessions = -2 }, true},
		{"unbounded sessions", func(c *Config) { c.Server.MaxSessions = 0 }, false},
		{"negative ping", func(c *Config) { c.Server.PingInterval = -time.Second }, true},
		{"zero workers", func(c *Config) { c.Replay.Workers = 0 }, true},
		{"zero buffer", func(c *Config) { c.Replay.BufferSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logf verifies verbosity gating of diagnostics
func TestConfig_Logf(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(1).Build()

	cfg.Logf(1, "summary %d\n", 1)
	cfg.Logf(2, "commentary\n")

	if got := buf.String(); got != "summary 1\n" {
		t.Errorf("log = %q, want %q", got, "summary 1\n")
	}

	cfg.LogFile = nil
	cfg.Logf(0, "dropped\n")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithUndoLimit(20).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithAddr("127.0.0.1:9000").
		WithAllowOrigins("localhost:*", "example.com").
		WithMaxSessions(8).
		WithPingInterval(time.Second).
		WithWorkers(4).
		WithJSONOutput(true).
		WithStopOnError(true).
		WithPhrases(true).
		WithDuplicateCheck(true).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if cfg.Engine.MaxUndoDepth != 20 {
		t.Errorf("MaxUndoDepth = %d, want 20", cfg.Engine.MaxUndoDepth)
	}
	if cfg.Engine.StartFEN == "" {
		t.Error("StartFEN should be set")
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.MaxSessions != 8 || cfg.Server.PingInterval != time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if len(cfg.Server.AllowOrigins) != 2 {
		t.Errorf("AllowOrigins = %v", cfg.Server.AllowOrigins)
	}
	if cfg.Replay.Workers != 4 || !cfg.Replay.JSON || !cfg.Replay.StopOnError || !cfg.Replay.Phrases || !cfg.Replay.CheckDuplicates {
		t.Errorf("Replay = %+v", cfg.Replay)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
