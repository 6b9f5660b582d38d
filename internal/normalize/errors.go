// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package normalize

import "errors"

var (
	// ErrAlreadyCanonical is returned for input that already starts with the
	// canonical header. It is a skip condition, not a failure.
	ErrAlreadyCanonical = errors.New("already-converted file; skipping")

	// ErrUnrecognizedFormat is returned when no strategy recovered any job.
	ErrUnrecognizedFormat = errors.New("unrecognized instance format: no jobs found")

	// ErrTooManyTools is returned when the recovered tool count exceeds
	// MaxTools. Such a file is rejected before its cost vector is built.
	ErrTooManyTools = errors.New("tool count exceeds limit")
)
