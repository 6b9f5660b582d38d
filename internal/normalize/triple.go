// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package normalize

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/vk/tsconv/internal/instance"
)

// HypothesisKind names one reading of an unlabeled `a b c` header line.
type HypothesisKind int

const (
	// ToolsFirst reads the header as M C N.
	ToolsFirst HypothesisKind = iota + 1
	// JobsFirst reads the header as N C M.
	JobsFirst
)

func (k HypothesisKind) String() string {
	switch k {
	case ToolsFirst:
		return "tools-first"
	case JobsFirst:
		return "jobs-first"
	default:
		return ""
	}
}

// Hypothesis is one candidate interpretation of an unlabeled header together
// with the job records it yields from the count-prefixed token stream.
type Hypothesis struct {
	Kind     HypothesisKind
	Tools    int
	Capacity int
	Jobs     int
	Records  []instance.Job
	Valid    bool
}

// MaxTool is the largest tool id across the records, 0 when there are none.
func (h Hypothesis) MaxTool() int {
	highest := 0
	for _, r := range h.Records {
		if m := r.Max(); m > highest {
			highest = m
		}
	}
	return highest
}

// OutOfRange counts tool ids that do not fit in [1, Tools].
func (h Hypothesis) OutOfRange() int {
	count := 0
	for _, r := range h.Records {
		for _, id := range r {
			if id < 1 || id > h.Tools {
				count++
			}
		}
	}
	return count
}

var tripleHeaderPattern = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s+(\d+)\s*$`)

// Hypotheses builds both readings of the first line. It reports false when
// the first line is not exactly three integers.
func Hypotheses(lines []string) ([]Hypothesis, bool) {
	if len(lines) == 0 {
		return nil, false
	}
	m := tripleHeaderPattern.FindStringSubmatch(lines[0])
	if m == nil {
		return nil, false
	}
	var abc [3]int
	for i := range abc {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return nil, false
		}
		abc[i] = v
	}
	a, b, c := abc[0], abc[1], abc[2]

	stream := tokenStream(lines[1:])
	return []Hypothesis{
		newHypothesis(ToolsFirst, a, b, c, stream),
		newHypothesis(JobsFirst, c, b, a, stream),
	}, true
}

func newHypothesis(kind HypothesisKind, tools, capacity, jobs int, stream []int) Hypothesis {
	h := Hypothesis{Kind: kind, Tools: tools, Capacity: capacity, Jobs: jobs}
	h.Records, h.Valid = readCountPrefixed(stream, jobs)
	return h
}

// readCountPrefixed reads count records of the form `<k> t_1 .. t_k`. It fails
// when the stream runs out or when any record is empty.
func readCountPrefixed(stream []int, count int) ([]instance.Job, bool) {
	records := make([]instance.Job, 0, min(count, len(stream)))
	idx := 0
	for range count {
		if idx >= len(stream) {
			return nil, false
		}
		k := stream[idx]
		idx++
		if k <= 0 || k > len(stream)-idx {
			return nil, false
		}
		records = append(records, instance.Job(slices.Clone(stream[idx:idx+k])))
		idx += k
	}
	return records, true
}

// tokenStream collects every integer token of lines in source order.
// Non-integer tokens are ignored.
func tokenStream(lines []string) []int {
	var stream []int
	for _, line := range lines {
		for _, tok := range listSeparator.Split(strings.TrimSpace(line), -1) {
			if v, err := strconv.Atoi(tok); err == nil {
				stream = append(stream, v)
			}
		}
	}
	return stream
}

// SelectHypothesis reduces the candidates to the one to keep.
//
// Invalid candidates are discarded. A single valid candidate wins outright.
// When both readings are valid, ToolsFirst is kept if its ids fit its tool
// count and either JobsFirst's ids overflow JobsFirst's tool count or
// ToolsFirst's tool count is at least JobsFirst's; otherwise JobsFirst wins.
// The rule is asymmetric between the two readings.
func SelectHypothesis(candidates []Hypothesis) (Hypothesis, bool) {
	var chosen Hypothesis
	found := false
	for _, h := range candidates {
		if !h.Valid {
			continue
		}
		if !found {
			chosen, found = h, true
			continue
		}
		chosen = prefer(chosen, h)
	}
	return chosen, found
}

// prefer breaks a tie between two valid readings, first being the one listed
// earlier (ToolsFirst).
func prefer(first, second Hypothesis) Hypothesis {
	max1, max2 := first.MaxTool(), second.MaxTool()
	if max1 <= first.Tools && (max2 > second.Tools || first.Tools >= second.Tools) {
		return first
	}
	return second
}

// tripleStrategy resolves files whose first line is an unlabeled triple.
type tripleStrategy struct{}

func (tripleStrategy) name() string { return "triple" }

func (tripleStrategy) attempt(p *pass) ([]instance.Job, bool) {
	candidates, ok := Hypotheses(p.lines)
	if !ok {
		return nil, false
	}
	chosen, ok := SelectHypothesis(candidates)
	if !ok || len(chosen.Records) == 0 {
		return nil, false
	}
	for _, h := range candidates {
		if h.Valid && h.Kind != chosen.Kind {
			p.trace.notef("%s reading rejected: %d ids out of range 1..%d", h.Kind, h.OutOfRange(), h.Tools)
		}
	}
	p.fields.setTools(chosen.Tools)
	p.fields.setCapacity(chosen.Capacity)
	p.fields.setJobs(chosen.Jobs)
	p.trace.Hypothesis = chosen.Kind
	return chosen.Records, true
}
