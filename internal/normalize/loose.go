// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package normalize

import "github.com/vk/tsconv/internal/instance"

// looseStrategy is the last resort: every job-shaped line of the file is a
// job, section markers are ignored.
type looseStrategy struct{}

func (looseStrategy) name() string { return "loose" }

func (looseStrategy) attempt(p *pass) ([]instance.Job, bool) {
	var jobs []instance.Job
	for _, line := range p.lines {
		if job, ok := parseJobLine(line); ok {
			jobs = append(jobs, job)
		}
	}
	return jobs, len(jobs) > 0
}
