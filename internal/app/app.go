// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/vk/tsconv/internal/batch"
	"github.com/vk/tsconv/internal/config"
	"github.com/vk/tsconv/internal/ctxlog"
	"github.com/vk/tsconv/internal/fsutil"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	ctx        context.Context
	config     *Config
	store      *fsutil.Store
	httpServer *http.Server

	running atomic.Bool
	summary *batch.Summary
}

// NewApp is the constructor for the main application. It reads the optional
// configuration file through loader, merges it under the command-line values
// and applies defaults.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	merged := *cfg
	if cfg.ConfigPath != "" {
		settings, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		merged = merged.Merge(settings)
		logger.Debug("Configuration file merged.", "path", cfg.ConfigPath)
	}

	merged, err := merged.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &App{
		outW:   outW,
		logger: logger,
		ctx:    ctx,
		config: &merged,
		store:  fsutil.NewStore(nil),
	}, nil
}

// Config returns the effective configuration.
func (app *App) Config() Config {
	return *app.config
}

// Summary returns the result of the last Run, or nil.
func (app *App) Summary() *batch.Summary {
	return app.summary
}
