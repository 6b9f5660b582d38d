// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package batch

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Totals counts outcomes by status.
type Totals struct {
	Files        int `yaml:"files"`
	Converted    int `yaml:"converted"`
	Skipped      int `yaml:"skipped"`
	Unrecognized int `yaml:"unrecognized"`
	Failed       int `yaml:"failed"`
}

// Summary is the result of one batch run. Files are in input order.
type Summary struct {
	Input  string    `yaml:"input"`
	Output string    `yaml:"output"`
	Totals Totals    `yaml:"totals"`
	Files  []Outcome `yaml:"files"`
}

func (s *Summary) add(o Outcome) {
	s.Files = append(s.Files, o)
	s.Totals.Files++
	switch o.Status {
	case StatusConverted:
		s.Totals.Converted++
	case StatusSkipped:
		s.Totals.Skipped++
	case StatusUnrecognized:
		s.Totals.Unrecognized++
	case StatusIOFailure:
		s.Totals.Failed++
	}
}

// YAML renders the summary document.
func (s *Summary) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	return buf.Bytes(), nil
}
