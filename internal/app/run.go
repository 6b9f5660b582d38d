// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"

	"github.com/vk/tsconv/internal/batch"
	"github.com/vk/tsconv/internal/ctxlog"
	"github.com/vk/tsconv/internal/fsutil"
	"github.com/vk/tsconv/internal/report"
)

// Run converts the configured input location and writes the optional summary.
func (app *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, app.logger)
	app.ctx = ctx
	app.logger.Debug("App.Run method started.")

	app.healthCheckServer()
	defer app.closeHealthCheckServer()

	reporter := app.openReporter(ctx)
	defer func() {
		if err := reporter.Close(); err != nil {
			app.logger.Warn("Closing progress reporter failed.", "error", err)
		}
	}()

	runner := batch.NewRunner(app.store, batch.Options{
		Workers:   app.config.Workers,
		Extension: app.config.Extension,
		Reporter:  reporter,
	})

	app.running.Store(true)
	summary, err := runner.Run(ctx, fsutil.Locate(app.config.InputDir), fsutil.Locate(app.config.OutputDir))
	app.running.Store(false)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	app.summary = summary

	if app.config.Summary != "" {
		if err := app.writeSummary(ctx, summary); err != nil {
			return err
		}
	}

	app.logger.Debug("App.Run method finished.")
	return nil
}

// openReporter connects the socket.io reporter when one is configured.
// Progress reporting is best effort: a failed connection is logged and the
// batch runs without it.
func (app *App) openReporter(ctx context.Context) report.Reporter {
	if app.config.Report == nil {
		return report.Nop{}
	}
	r, err := report.Dial(ctx, report.Options{
		URL:                app.config.Report.URL,
		Namespace:          app.config.Report.Namespace,
		InsecureSkipVerify: app.config.Report.InsecureSkipVerify,
	})
	if err != nil {
		app.logger.Warn("Progress reporter unavailable, continuing without it.", "error", err)
		return report.Nop{}
	}
	return r
}

func (app *App) writeSummary(ctx context.Context, summary *batch.Summary) error {
	data, err := summary.YAML()
	if err != nil {
		return err
	}
	location := fsutil.Locate(app.config.Summary)
	if err := app.store.Write(ctx, location, data); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", location, err)
	}
	app.logger.Info("Summary written.", "path", location)
	return nil
}
