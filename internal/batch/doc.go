// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package batch converts every instance file of an input location into the
// canonical format.
//
// Files are independent: a read failure, an unrecognized layout or an
// already-canonical input is recorded as that file's Outcome and the batch
// moves on. Output is written only after the whole instance has been
// rendered, so a failed file never leaves a partial result behind.
package batch
