// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "context"

// Settings are the values a configuration file may provide. Zero values mean
// "not set" so that command-line flags and defaults can fill them in.
type Settings struct {
	InputDir  string
	OutputDir string
	Extension string
	Workers   int
	Summary   string
	Report    *Report
}

// Report configures the socket.io progress reporter.
type Report struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration file at path.
	Load(ctx context.Context, path string) (*Settings, error)
}
