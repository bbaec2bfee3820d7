// Package config provides configuration for the chess rules engine and its
// server, replay and interactive front ends.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Sub-configurations
	Engine *EngineConfig
	Server *ServerConfig
	Replay *ReplayConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Engine:     NewEngineConfig(),
		Server:     NewServerConfig(),
		Replay:     NewReplayConfig(),
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Replay.Validate()
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile if Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
