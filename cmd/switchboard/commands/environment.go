// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/config"
	"github.com/bureau-foundation/switchboard/lib/table"
)

// tableParams are the flags shared by commands that read a table.
type tableParams struct {
	ConfigPath string `flag:"config" desc:"configuration file (default: $SWITCHBOARD_CONFIG)"`
	TablePath  string `flag:"table,t" desc:"command table file (.yaml, .yml, .json, .jsonc, .swb)"`
	LogLevel   string `flag:"log-level" desc:"log level: debug, info, warn, error (default: from config)"`
	NoCache    bool   `flag:"no-cache" desc:"read the table source without the compiled-table cache"`
}

// session is the loaded configuration and logger for one command.
type session struct {
	config *config.Config
	logger *slog.Logger
}

// open loads configuration, applies flag overrides, and creates the
// logger on the error stream.
func (p *tableParams) open(command string, streams cli.Streams) (*session, error) {
	cfg, err := p.loadConfig()
	if err != nil {
		return nil, err
	}
	if p.LogLevel != "" {
		cfg.Log.Level = p.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	logger := streams.Logger(level).With("command", command)
	return &session{config: cfg, logger: logger}, nil
}

func (p *tableParams) loadConfig() (*config.Config, error) {
	switch {
	case p.ConfigPath != "":
		return config.LoadFile(p.ConfigPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		return config.Load()
	default:
		cfg := config.Default()
		cfg.ExpandVariables()
		return cfg, nil
	}
}

// tablePath returns the table named by --table or the config.
func (s *session) tablePath(p *tableParams) (string, error) {
	if p.TablePath != "" {
		return p.TablePath, nil
	}
	if s.config.Table != "" {
		return s.config.Table, nil
	}
	return "", errors.New("no command table: pass --table or set table in the configuration file")
}

// loadTable loads and validates the table, through the cache when
// enabled.
func (s *session) loadTable(p *tableParams) (*table.Table, error) {
	path, err := s.tablePath(p)
	if err != nil {
		return nil, err
	}
	if p.NoCache || !s.config.Cache.Enabled {
		return table.Load(path)
	}

	compression, err := table.ParseCompression(s.config.Cache.Compression)
	if err != nil {
		return nil, err
	}
	cache := &table.Cache{
		Directory:   s.config.Cache.Directory,
		Compression: compression,
		Logger:      s.logger,
	}
	return cache.Load(path)
}

// build loads the table and prepares a dispatcher writing to out.
func (s *session) build(p *tableParams, out io.Writer) (*table.Dispatcher, error) {
	loaded, err := s.loadTable(p)
	if err != nil {
		return nil, err
	}
	return table.Build(loaded, table.BuildOptions{
		Output: out,
		Logger: s.logger.With("table", loaded.Name),
	})
}
