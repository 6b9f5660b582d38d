// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package normalize

import (
	"fmt"
	"slices"

	"github.com/vk/tsconv/internal/instance"
)

// maxDefaultCapacity caps the capacity picked when the source names none.
const maxDefaultCapacity = 10

// MaxTools is the largest tool count an instance may have. The cost vector
// holds one entry per tool, so M is checked against it before allocation.
const MaxTools = 1 << 20

// assemble turns the recovered evidence into a complete instance. Missing
// fields get deterministic defaults and inconsistencies are recorded as trace
// warnings. The only rejection is a tool count above MaxTools.
func assemble(fields *FieldSet, jobs []instance.Job, trace *Trace) (*instance.Instance, error) {
	inst := &instance.Instance{Jobs: jobs, N: len(jobs)}

	switch {
	case fields.Tools != nil:
		inst.M = *fields.Tools
	default:
		inst.M = defaultTools(inst, fields.SetupTimes)
	}
	if inst.M > MaxTools {
		return nil, fmt.Errorf("%w: M=%d, limit %d", ErrTooManyTools, inst.M, MaxTools)
	}

	switch {
	case fields.Capacity != nil:
		inst.C = *fields.Capacity
		if inst.C < 1 || inst.C > inst.M {
			trace.warnf("capacity %d outside 1..%d", inst.C, inst.M)
		}
	default:
		inst.C = max(1, min(inst.M-1, maxDefaultCapacity))
	}

	// N follows the emitted job list so the output stays self-consistent.
	if fields.Jobs != nil && *fields.Jobs != inst.N {
		trace.warnf("declared job count %d differs from %d recovered jobs", *fields.Jobs, inst.N)
	}

	inst.Costs = costVector(fields.SetupTimes, inst.M)

	for _, ref := range inst.OutOfRange() {
		trace.warnf("%s out of range 1..%d", ref, inst.M)
	}
	return inst, nil
}

// defaultTools picks M from the largest referenced tool id, then from the
// length of the setup-times array, then 1.
func defaultTools(inst *instance.Instance, setup []int) int {
	if highest := inst.MaxTool(); highest > 0 {
		return highest
	}
	if len(setup) > 0 {
		return len(setup)
	}
	return 1
}

// costVector sizes setup to exactly m entries: truncated when longer, padded
// with its last value when shorter, all ones when absent.
func costVector(setup []int, m int) []int {
	if m <= 0 {
		return []int{}
	}
	if len(setup) == 0 {
		costs := make([]int, m)
		for i := range costs {
			costs[i] = 1
		}
		return costs
	}
	if len(setup) >= m {
		return slices.Clone(setup[:m])
	}
	costs := make([]int, m)
	copy(costs, setup)
	last := setup[len(setup)-1]
	for i := len(setup); i < m; i++ {
		costs[i] = last
	}
	return costs
}

// Trace records how an instance was recovered.
type Trace struct {
	// Strategy names the stage that produced the jobs.
	Strategy string
	// Hypothesis is set when the triple strategy decided the header reading.
	Hypothesis HypothesisKind
	// Warnings lists inconsistencies that were kept rather than repaired.
	Warnings []string
	// Notes explain decisions that needed no repair, such as why a header
	// reading was passed over.
	Notes []string
}

func (t *Trace) notef(format string, args ...any) {
	t.Notes = append(t.Notes, fmt.Sprintf(format, args...))
}

func (t *Trace) warnf(format string, args ...any) {
	t.Warnings = append(t.Warnings, fmt.Sprintf(format, args...))
}
