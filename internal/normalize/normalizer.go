// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package normalize

import (
	"github.com/vk/tsconv/internal/instance"
)

// pass is the state shared by the strategies of one file.
type pass struct {
	lines  []string
	fields FieldSet
	trace  Trace
}

// strategy is one way of recovering jobs from normalized lines. Strategies may
// record fields on the pass even when they find no jobs.
type strategy interface {
	name() string
	attempt(p *pass) ([]instance.Job, bool)
}

// strategies are tried in order; the first to recover jobs wins.
var strategies = []strategy{
	sectionStrategy{},
	tripleStrategy{},
	looseStrategy{},
}

// Result is a recovered instance together with the trace of its recovery.
type Result struct {
	Instance *instance.Instance
	Trace    Trace
}

// Normalize recovers an instance from source text.
//
// It returns ErrAlreadyCanonical for text that starts with the canonical
// header, ErrUnrecognizedFormat when no strategy finds a job and
// ErrTooManyTools when the tool count is above MaxTools.
func Normalize(text string) (*Result, error) {
	lines, err := Lines(text)
	if err != nil {
		return nil, err
	}

	p := &pass{lines: lines}
	for _, s := range strategies {
		jobs, ok := s.attempt(p)
		if !ok {
			continue
		}
		p.trace.Strategy = s.name()
		inst, err := assemble(&p.fields, jobs, &p.trace)
		if err != nil {
			return nil, err
		}
		return &Result{Instance: inst, Trace: p.trace}, nil
	}
	return nil, ErrUnrecognizedFormat
}
