// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/vk/tsconv/internal/ctxlog"
	"github.com/vk/tsconv/internal/fsutil"
	"github.com/vk/tsconv/internal/instance"
	"github.com/vk/tsconv/internal/normalize"
	"github.com/vk/tsconv/internal/report"
)

// DefaultExtension selects input files and names output files.
const DefaultExtension = ".txt"

// Store is the storage the runner reads inputs from and writes outputs to.
// *fsutil.Store satisfies it.
type Store interface {
	FindFilesByExtension(ctx context.Context, dirURL string, extension string) ([]string, error)
	Read(ctx context.Context, URL string) ([]byte, error)
	Write(ctx context.Context, URL string, data []byte) error
	EnsureDir(ctx context.Context, URL string) error
}

var _ Store = (*fsutil.Store)(nil)

// Options tune a Runner.
type Options struct {
	// Workers is the number of files converted concurrently. Values below 1
	// mean 1.
	Workers int
	// Extension selects input files, compared case-insensitively. Empty
	// means DefaultExtension.
	Extension string
	// Reporter receives progress events. Nil means report.Nop.
	Reporter report.Reporter
}

// Runner converts batches of files.
type Runner struct {
	store Store
	opts  Options
}

// NewRunner creates a runner over store.
func NewRunner(store Store, opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Reporter == nil {
		opts.Reporter = report.Nop{}
	}
	return &Runner{store: store, opts: opts}
}

// Run converts every matching file directly under inputURL into outputURL.
// Per-file failures are recorded in the summary; Run itself fails only when
// the input cannot be listed, the output location cannot be created, or ctx
// is cancelled.
func (r *Runner) Run(ctx context.Context, inputURL, outputURL string) (*Summary, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := r.store.FindFilesByExtension(ctx, inputURL, r.opts.Extension)
	if err != nil {
		return nil, &IOError{Op: "list", URL: inputURL, Err: err}
	}
	if err := r.store.EnsureDir(ctx, outputURL); err != nil {
		return nil, &IOError{Op: "mkdir", URL: outputURL, Err: err}
	}

	workers := max(1, min(r.opts.Workers, len(files)))
	logger.Info("Starting batch.", "input", inputURL, "output", outputURL, "files", len(files), "workers", workers)

	outcomes := make([]Outcome, len(files))
	indexes := make(chan int)
	var wg sync.WaitGroup
	for id := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, id, files, outputURL, indexes, outcomes)
		}()
	}

dispatch:
	for i := range files {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}

	summary := &Summary{Input: inputURL, Output: outputURL, Files: make([]Outcome, 0, len(outcomes))}
	for _, o := range outcomes {
		summary.add(o)
	}

	t := summary.Totals
	r.opts.Reporter.BatchFinished(ctx, report.BatchEvent{
		Total:        t.Files,
		Converted:    t.Converted,
		Skipped:      t.Skipped,
		Unrecognized: t.Unrecognized,
		Failed:       t.Failed,
	})
	logger.Info("Batch finished.",
		"files", t.Files,
		"converted", t.Converted,
		"skipped", t.Skipped,
		"unrecognized", t.Unrecognized,
		"failed", t.Failed,
	)
	return summary, nil
}

// worker converts the files whose indexes arrive on indexes. Each index is
// handled by exactly one worker, so outcomes needs no locking.
func (r *Runner) worker(ctx context.Context, workerID int, files []string, outputURL string, indexes <-chan int, outcomes []Outcome) {
	ctx = ctxlog.With(ctx, "workerID", workerID)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.")

	for i := range indexes {
		if ctx.Err() != nil {
			continue
		}
		fileCtx := ctxlog.With(ctx, "file", path.Base(files[i]))
		outcomes[i] = r.ProcessFile(fileCtx, files[i], outputURL)
	}
	logger.Debug("Worker finished.")
}

// ProcessFile converts a single file at inputURL into outputDir.
func (r *Runner) ProcessFile(ctx context.Context, inputURL, outputDir string) Outcome {
	logger := ctxlog.FromContext(ctx)
	o := r.convert(ctx, inputURL, outputDir)

	switch o.Status {
	case StatusConverted:
		logger.Info("Converted.", "output", o.Output, "M", o.M, "C", o.C, "N", o.N, "strategy", o.Strategy)
		for _, w := range o.Warnings {
			logger.Warn("Conversion warning.", "warning", w)
		}
	case StatusSkipped:
		logger.Info("Skipped, already canonical.")
	case StatusUnrecognized:
		logger.Warn("Unrecognized format.")
	case StatusIOFailure:
		logger.Error("I/O failure.", "error", o.Err)
	}

	r.opts.Reporter.FileProcessed(ctx, report.FileEvent{
		File:     o.File,
		Status:   string(o.Status),
		Strategy: o.Strategy,
		M:        o.M,
		C:        o.C,
		N:        o.N,
		Warnings: len(o.Warnings),
		Error:    o.Error,
	})
	return o
}

func (r *Runner) convert(ctx context.Context, inputURL, outputDir string) Outcome {
	name := path.Base(inputURL)
	o := Outcome{File: name}

	data, err := r.store.Read(ctx, inputURL)
	if err != nil {
		o.fail(StatusIOFailure, &IOError{Op: "read", URL: inputURL, Err: err})
		return o
	}

	res, err := normalize.Normalize(string(data))
	switch {
	case errors.Is(err, normalize.ErrAlreadyCanonical):
		o.Status = StatusSkipped
		return o
	case err != nil:
		o.fail(StatusUnrecognized, err)
		return o
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Recovered instance.", "strategy", res.Trace.Strategy, "hypothesis", res.Trace.Hypothesis.String())
	for _, note := range res.Trace.Notes {
		logger.Debug("Recovery note.", "note", note)
	}

	rendered := instance.Format(res.Instance)
	outputURL := fsutil.Join(outputDir, OutputName(name, DefaultExtension))
	if err := verify(rendered); err != nil {
		o.fail(StatusIOFailure, &IOError{Op: "verify", URL: outputURL, Err: err})
		return o
	}
	if err := r.store.Write(ctx, outputURL, rendered); err != nil {
		o.fail(StatusIOFailure, &IOError{Op: "write", URL: outputURL, Err: err})
		return o
	}

	o.Status = StatusConverted
	o.Output = outputURL
	o.Strategy = res.Trace.Strategy
	if res.Trace.Hypothesis != 0 {
		o.Hypothesis = res.Trace.Hypothesis.String()
	}
	o.M, o.C, o.N = res.Instance.M, res.Instance.C, res.Instance.N
	o.Warnings = res.Trace.Warnings
	return o
}

// verify reads rendered back and checks it. Out-of-range tool ids are
// tolerated; they were already reported as warnings.
func verify(rendered []byte) error {
	parsed, err := instance.Read(bytes.NewReader(rendered))
	if err != nil {
		return err
	}
	return instance.StructuralErrors(parsed.Validate())
}

// OutputName replaces the extension of name with ext.
func OutputName(name, ext string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ext
}
