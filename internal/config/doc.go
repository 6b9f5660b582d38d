// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic settings of a conversion run and
// the Loader interface that reads them from a file.
//
// Concrete implementations live in separate packages; the HCL loader is in
// internal/hcl.
package config
