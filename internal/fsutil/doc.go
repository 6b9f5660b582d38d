// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package fsutil provides storage helpers over github.com/viant/afs, so
// input and output locations can be plain local paths or any URL scheme afs
// understands (file://, mem://, s3://, gs://).
package fsutil
