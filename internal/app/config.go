// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/tsconv/internal/config"
)

// Defaults applied when neither a flag nor the configuration file sets a value.
const (
	DefaultInputDir  = "../raw_data_for_tests/tux"
	DefaultOutputDir = "tests_txt"
	DefaultExtension = ".txt"
	DefaultWorkers   = 1
)

// Config holds all the necessary configuration for an App instance to run.
// Zero values mean "not set" until defaults are applied.
type Config struct {
	ConfigPath string // optional hcl file

	InputDir  string
	OutputDir string
	Extension string
	Workers   int
	Summary   string
	Report    *config.Report

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates the values that can be checked before the
// configuration file is read.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port %d is out of range", cfg.HealthcheckPort)
	}
	if cfg.Extension != "" && !strings.HasPrefix(cfg.Extension, ".") {
		return nil, errors.New("extension must start with a dot")
	}
	return &cfg, nil
}

// Merge fills every unset field of c from s. Values already set on c, usually
// from command-line flags, win.
func (c Config) Merge(s *config.Settings) Config {
	if s == nil {
		return c
	}
	if c.InputDir == "" {
		c.InputDir = s.InputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = s.OutputDir
	}
	if c.Extension == "" {
		c.Extension = s.Extension
	}
	if c.Workers == 0 {
		c.Workers = s.Workers
	}
	if c.Summary == "" {
		c.Summary = s.Summary
	}
	if c.Report == nil {
		c.Report = s.Report
	}
	return c
}

// withDefaults fills the remaining unset fields and validates the result.
func (c Config) withDefaults() (Config, error) {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if !strings.HasPrefix(c.Extension, ".") {
		return c, fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	if c.Workers < 1 {
		return c, fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return c, nil
}
