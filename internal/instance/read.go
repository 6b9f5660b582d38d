// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError wraps a failure to read the canonical format together with the
// line it occurred on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read parses an instance in the canonical format.
func Read(r io.Reader) (*Instance, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0

	next := func(what string) (string, error) {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return "", err
			}
			return "", &ParseError{Line: lineNo + 1, Err: fmt.Errorf("unexpected EOF before %s", what)}
		}
		lineNo++
		return strings.TrimRight(s.Text(), "\r"), nil
	}
	fail := func(format string, args ...any) error {
		return &ParseError{Line: lineNo, Err: fmt.Errorf(format, args...)}
	}

	line, err := next("header")
	if err != nil {
		return nil, err
	}
	if !IsHeader(line) {
		return nil, fail("expected %q header, got %q", Header, line)
	}

	inst := &Instance{}
	for _, field := range []struct {
		label string
		dst   *int
	}{
		{"M=", &inst.M},
		{"C=", &inst.C},
		{"N=", &inst.N},
	} {
		if line, err = next(field.label); err != nil {
			return nil, err
		}
		rest, ok := strings.CutPrefix(line, field.label)
		if !ok {
			return nil, fail("expected %q, got %q", field.label+"<int>", line)
		}
		v, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return nil, fail("malformed %s value: %w", strings.TrimSuffix(field.label, "="), err)
		}
		*field.dst = v
	}
	if inst.M < 0 || inst.N < 0 {
		return nil, fail("negative M or N (M=%d, N=%d)", inst.M, inst.N)
	}

	if line, err = next("costs"); err != nil {
		return nil, err
	}
	rest, ok := strings.CutPrefix(line, "costs:")
	if !ok {
		return nil, fail("expected 'costs:', got %q", line)
	}
	if inst.Costs, err = fieldsToInts(rest); err != nil {
		return nil, fail("malformed costs: %w", err)
	}
	if len(inst.Costs) != inst.M {
		return nil, fail("costs line has %d values, want M=%d", len(inst.Costs), inst.M)
	}

	if line, err = next("jobs"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(line) != "jobs:" {
		return nil, fail("expected 'jobs:', got %q", line)
	}

	// N comes from the input; the slice grows with the records actually read.
	inst.Jobs = make([]Job, 0, min(inst.N, 1024))
	for i := 0; i < inst.N; i++ {
		if line, err = next(fmt.Sprintf("job %d", i+1)); err != nil {
			return nil, err
		}
		ids, err := fieldsToInts(line)
		if err != nil {
			return nil, fail("malformed job %d: %w", i+1, err)
		}
		inst.Jobs = append(inst.Jobs, Job(ids))
	}

	for s.Scan() {
		lineNo++
		if strings.TrimSpace(s.Text()) != "" {
			return nil, fail("trailing data after %d jobs", inst.N)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return inst, nil
}

func fieldsToInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.New("non-integer token " + strconv.Quote(f))
		}
		out = append(out, v)
	}
	return out, nil
}
