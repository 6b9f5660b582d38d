// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package normalize recovers a tool switching instance from loosely structured
// source text whose grammar is not known in advance.
//
// # Pipeline
//
// Source text goes through the following stages:
//
//   - Lines strips `#` and `//` comments and blank lines, and rejects files
//     that already start with the canonical header (ErrAlreadyCanonical).
//
//   - The sections strategy scans labeled scalars (`n=`, `m=`, `k=` ...),
//     labeled arrays (`setup_times:`, `processing_times:`, `costs:`) and the
//     job lines under a `jobs:` header, in a single pass.
//
//   - The triple strategy runs when no jobs were found. It reads the first line
//     as three unlabeled integers and weighs two field orders against the rest
//     of the token stream; see Hypothesis.
//
//   - The loose strategy collects every job-shaped line of the file.
//
// The first strategy that recovers at least one job wins. Its jobs, together
// with every field collected along the way, are assembled into an
// instance.Instance with documented defaults for whatever is still missing.
// When no strategy recovers a job the file is rejected with
// ErrUnrecognizedFormat.
//
// Fields are collected into a FieldSet. A field, once set, is never replaced by
// a later stage: earlier evidence wins.
package normalize
