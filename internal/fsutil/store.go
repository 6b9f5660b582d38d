// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package fsutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// Store reads and writes instance files through an afs.Service.
type Store struct {
	fs afs.Service
}

// NewStore wraps fs. A nil fs selects afs.New().
func NewStore(fs afs.Service) *Store {
	if fs == nil {
		fs = afs.New()
	}
	return &Store{fs: fs}
}

// Locate turns a local path into an absolute one and leaves URLs untouched.
func Locate(location string) string {
	if location == "" || strings.Contains(location, "://") {
		return location
	}
	if abs, err := filepath.Abs(location); err == nil {
		return abs
	}
	return location
}

// Join appends a file name to a directory location.
func Join(dir, name string) string {
	return strings.TrimRight(dir, "/") + "/" + name
}

// FindFilesByExtension lists the files directly under dirURL whose extension
// matches extension, compared case-insensitively. Subdirectories are not
// descended into. The result is sorted.
func (s *Store) FindFilesByExtension(ctx context.Context, dirURL string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	objects, err := s.fs.List(ctx, dirURL)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dirURL, err)
	}

	var files []string
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		if strings.EqualFold(path.Ext(object.Name()), extension) {
			files = append(files, object.URL())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Read returns the full content at URL.
func (s *Store) Read(ctx context.Context, URL string) ([]byte, error) {
	return s.fs.DownloadWithURL(ctx, URL)
}

// Write replaces the content at URL with data.
func (s *Store) Write(ctx context.Context, URL string, data []byte) error {
	return s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data))
}

// EnsureDir creates the directory at URL unless it already exists.
func (s *Store) EnsureDir(ctx context.Context, URL string) error {
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("stat %s: %w", URL, err)
	}
	if exists {
		return nil
	}
	if err := s.fs.Create(ctx, URL, os.ModeDir|0o755, true); err != nil {
		return fmt.Errorf("create %s: %w", URL, err)
	}
	return nil
}
