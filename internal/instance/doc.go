// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package instance holds the finalized tool switching problem instance and its
// canonical text form.
//
// # Canonical format
//
// Every normalized instance is written in exactly one layout:
//
//	# Converted instance (txt-only robust)
//	M=<tool count>
//	C=<capacity>
//	N=<job count>
//	costs: <c_1> ... <c_M>
//	jobs:
//	<tool ids of job 1>
//	...
//	<tool ids of job N>
//
// The header line marks a file as already converted. Feeding a canonical file
// back into the normalizer is therefore a no-op: it is recognized by its first
// line and skipped. Job lines may be empty when the source explicitly encoded a
// job without tools.
//
// Write produces the format and Read parses it back. Read is strict about the
// layout and lenient about tool ranges, since out-of-range ids are flagged by
// the normalizer rather than dropped.
package instance
