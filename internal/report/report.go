// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package report publishes batch progress events. The default reporter does
// nothing; a socket.io reporter streams one event per processed file to a
// dashboard or collector.
package report

import "context"

// Event names emitted by reporters.
const (
	EventFileProcessed = "file_processed"
	EventBatchFinished = "batch_finished"
)

// FileEvent describes the outcome of one input file.
type FileEvent struct {
	File     string
	Status   string
	Strategy string
	M        int
	C        int
	N        int
	Warnings int
	Error    string
}

// Payload returns the event body as sent on the wire.
func (e FileEvent) Payload() map[string]any {
	p := map[string]any{
		"file":   e.File,
		"status": e.Status,
	}
	if e.Strategy != "" {
		p["strategy"] = e.Strategy
		p["m"] = e.M
		p["c"] = e.C
		p["n"] = e.N
		p["warnings"] = e.Warnings
	}
	if e.Error != "" {
		p["error"] = e.Error
	}
	return p
}

// BatchEvent carries the totals of a finished batch.
type BatchEvent struct {
	Total        int
	Converted    int
	Skipped      int
	Unrecognized int
	Failed       int
}

// Payload returns the event body as sent on the wire.
func (e BatchEvent) Payload() map[string]any {
	return map[string]any{
		"total":        e.Total,
		"converted":    e.Converted,
		"skipped":      e.Skipped,
		"unrecognized": e.Unrecognized,
		"failed":       e.Failed,
	}
}

// Reporter receives batch progress. Implementations must be safe for
// concurrent use; delivery is best effort and never fails the batch.
type Reporter interface {
	FileProcessed(ctx context.Context, e FileEvent)
	BatchFinished(ctx context.Context, e BatchEvent)
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) FileProcessed(context.Context, FileEvent)  {}
func (Nop) BatchFinished(context.Context, BatchEvent) {}
func (Nop) Close() error                              { return nil }
