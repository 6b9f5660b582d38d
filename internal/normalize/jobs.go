// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package normalize

import (
	"regexp"
	"strings"

	"github.com/vk/tsconv/internal/instance"
)

var (
	jobsHeaderPattern = regexp.MustCompile(`(?i)^\s*jobs\s*[:=]?\s*$`)
	jobLinePattern    = regexp.MustCompile(`^\s*(?:\{([^}]*)\}|([\d\s,]+))\s*$`)
)

// parseJobLine reads a job-shaped line: either a brace-delimited list
// `{1, 2, 3}` or a bare comma/whitespace separated integer list. Braces may
// enclose nothing, which encodes a job without tools; a bare list must hold
// at least one id.
func parseJobLine(line string) (instance.Job, bool) {
	m := jobLinePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	if strings.HasPrefix(strings.TrimSpace(line), "{") {
		ids, ok := parseIntList(m[1])
		if !ok {
			return nil, false
		}
		return instance.Job(ids), true
	}
	ids, ok := parseIntList(m[2])
	if !ok || len(ids) == 0 {
		return nil, false
	}
	return instance.Job(ids), true
}

// sectionStrategy is the primary pass: labeled fields anywhere in the file and
// one job per line below a `jobs:` header. Labels are checked before job
// lines, so a labeled scalar inside the jobs section is still a field.
type sectionStrategy struct{}

func (sectionStrategy) name() string { return "sections" }

func (sectionStrategy) attempt(p *pass) ([]instance.Job, bool) {
	var jobs []instance.Job
	inJobs := false

	for i := 0; i < len(p.lines); i++ {
		if n := p.fields.scan(p.lines, i); n > 0 {
			i += n - 1
			continue
		}
		line := p.lines[i]
		if jobsHeaderPattern.MatchString(line) {
			inJobs = true
			continue
		}
		if !inJobs {
			continue
		}
		if job, ok := parseJobLine(line); ok {
			jobs = append(jobs, job)
		}
	}
	return jobs, len(jobs) > 0
}
