// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package batch

import "fmt"

// Status is the result category of one file.
type Status string

const (
	StatusConverted    Status = "converted"
	StatusSkipped      Status = "skipped"
	StatusUnrecognized Status = "unrecognized"
	StatusIOFailure    Status = "io_failure"
)

// Outcome records what happened to one input file.
type Outcome struct {
	File       string   `yaml:"file"`
	Output     string   `yaml:"output,omitempty"`
	Status     Status   `yaml:"status"`
	Strategy   string   `yaml:"strategy,omitempty"`
	Hypothesis string   `yaml:"hypothesis,omitempty"`
	M          int      `yaml:"m,omitempty"`
	C          int      `yaml:"c,omitempty"`
	N          int      `yaml:"n,omitempty"`
	Warnings   []string `yaml:"warnings,omitempty"`
	Error      string   `yaml:"error,omitempty"`

	Err error `yaml:"-"`
}

func (o *Outcome) fail(status Status, err error) {
	o.Status = status
	o.Err = err
	o.Error = err.Error()
}

// IOError is a storage failure while handling one file.
type IOError struct {
	Op  string
	URL string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
