// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/viant/afs"
	"github.com/vk/tsconv/internal/config"
	"github.com/vk/tsconv/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
// It reads through afs, so the configuration may live at any afs URL.
type Loader struct {
	fs afs.Service
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{fs: afs.New()}
}

// fileRoot is the top-level schema of a configuration file.
type fileRoot struct {
	InputDir  *string      `hcl:"input_dir,optional"`
	OutputDir *string      `hcl:"output_dir,optional"`
	Extension *string      `hcl:"extension,optional"`
	Workers   *int         `hcl:"workers,optional"`
	Summary   *string      `hcl:"summary,optional"`
	Report    *reportBlock `hcl:"report,block"`
}

type reportBlock struct {
	URL                string  `hcl:"url"`
	Namespace          *string `hcl:"namespace,optional"`
	InsecureSkipVerify *bool   `hcl:"insecure_skip_verify,optional"`
}

var _ config.Loader = (*Loader)(nil)

// Load reads and parses the HCL file at location.
func (l *Loader) Load(ctx context.Context, location string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", location)

	src, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read HCL file %s: %w", location, err)
	}

	settings, err := Parse(src, location)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", location, err)
	}
	logger.Debug("HCL loading complete.", "path", location, "report", settings.Report != nil)
	return settings, nil
}

// Parse decodes configuration from source bytes. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*config.Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return decode(file)
}

func decode(file *hcl.File) (*config.Settings, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &root); diags.HasErrors() {
		return nil, diags
	}

	s := &config.Settings{
		InputDir:  deref(root.InputDir),
		OutputDir: deref(root.OutputDir),
		Extension: deref(root.Extension),
		Summary:   deref(root.Summary),
	}
	if root.Workers != nil {
		if *root.Workers < 1 {
			return nil, fmt.Errorf("workers must be at least 1, got %d", *root.Workers)
		}
		s.Workers = *root.Workers
	}
	if root.Report != nil {
		if root.Report.URL == "" {
			return nil, fmt.Errorf("report block requires a non-empty url")
		}
		s.Report = &config.Report{
			URL:       root.Report.URL,
			Namespace: deref(root.Report.Namespace),
		}
		if root.Report.InsecureSkipVerify != nil {
			s.Report.InsecureSkipVerify = *root.Report.InsecureSkipVerify
		}
	}
	return s, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
