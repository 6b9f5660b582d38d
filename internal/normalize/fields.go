// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// FieldSet accumulates optionally present instance fields. A nil pointer or
// nil slice means the field has not been seen. Setters never overwrite a
// field that is already present.
type FieldSet struct {
	Tools    *int // M
	Capacity *int // C
	Jobs     *int // N

	SetupTimes      []int
	ProcessingTimes []int
}

func (f *FieldSet) setTools(v int) {
	if f.Tools == nil {
		f.Tools = &v
	}
}

func (f *FieldSet) setCapacity(v int) {
	if f.Capacity == nil {
		f.Capacity = &v
	}
}

func (f *FieldSet) setJobs(v int) {
	if f.Jobs == nil {
		f.Jobs = &v
	}
}

func (f *FieldSet) setSetupTimes(v []int) {
	if f.SetupTimes == nil {
		f.SetupTimes = v
	}
}

func (f *FieldSet) setProcessingTimes(v []int) {
	if f.ProcessingTimes == nil {
		f.ProcessingTimes = v
	}
}

var (
	// Scalar labels accept `=`, `:` or bare whitespace before the value.
	scalarPattern = regexp.MustCompile(`(?i)^\s*(n|m|k|c|capacity|tools|num_tools|num_jobs|jobs_count)\s*(?:[=:]|\s)\s*(\d+)\s*$`)
	arrayPattern  = regexp.MustCompile(`(?i)^\s*(setup[_\s]*times|costs?|processing[_\s]*times)\s*[:=]\s*(.*)$`)
)

// scan tries to read a labeled field from lines[i]. It returns the number of
// lines consumed: 0 when lines[i] carries no recognized label, 2 when an array
// label took its values from the following line, 1 otherwise.
func (f *FieldSet) scan(lines []string, i int) int {
	line := lines[i]

	if m := scalarPattern.FindStringSubmatch(line); m != nil {
		v, err := strconv.Atoi(m[2])
		if err != nil {
			// Out of int range; the label is recognized but carries nothing usable.
			return 1
		}
		switch strings.ToLower(m[1]) {
		case "n", "num_jobs", "jobs_count":
			f.setJobs(v)
		case "m", "tools", "num_tools":
			f.setTools(v)
		default:
			f.setCapacity(v)
		}
		return 1
	}

	m := arrayPattern.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	set := f.setSetupTimes
	if strings.HasPrefix(strings.ToLower(m[1]), "processing") {
		set = f.setProcessingTimes
	}

	if rest := strings.TrimSpace(m[2]); rest != "" {
		if values, ok := parseIntList(rest); ok && len(values) > 0 {
			set(values)
		}
		return 1
	}
	if i+1 < len(lines) {
		if values, ok := parseIntList(lines[i+1]); ok && len(values) > 0 {
			set(values)
			return 2
		}
	}
	return 1
}

var listSeparator = regexp.MustCompile(`[,\s]+`)

// parseIntList parses a comma and/or whitespace separated list of integers.
// The result is never nil; an empty or blank input yields an empty list.
func parseIntList(s string) ([]int, bool) {
	tokens := listSeparator.Split(strings.TrimSpace(s), -1)
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
