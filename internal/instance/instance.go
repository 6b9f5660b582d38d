// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package instance

import (
	"errors"
	"fmt"
)

// Job is the ordered set of tool ids required by one job. Order is kept as
// listed in the source.
type Job []int

// Max returns the largest tool id of the job, or 0 for an empty job.
func (j Job) Max() int {
	highest := 0
	for _, id := range j {
		if id > highest {
			highest = id
		}
	}
	return highest
}

// Instance is a fully assembled tool switching problem instance.
type Instance struct {
	M     int   // number of tools
	C     int   // magazine capacity
	N     int   // number of jobs, always len(Jobs) once assembled
	Costs []int // per-tool setup cost, len(Costs) == M
	Jobs  []Job
}

// ToolRef points at a single tool id inside a job. Job is 1-based, matching
// the job numbering of the canonical format.
type ToolRef struct {
	Job  int
	Tool int
}

func (r ToolRef) String() string {
	return fmt.Sprintf("job %d: tool %d", r.Job, r.Tool)
}

// MaxTool returns the largest tool id referenced by any job.
func (inst *Instance) MaxTool() int {
	highest := 0
	for _, job := range inst.Jobs {
		if m := job.Max(); m > highest {
			highest = m
		}
	}
	return highest
}

// OutOfRange lists every tool id that falls outside [1, M].
func (inst *Instance) OutOfRange() []ToolRef {
	var refs []ToolRef
	for i, job := range inst.Jobs {
		for _, id := range job {
			if id < 1 || id > inst.M {
				refs = append(refs, ToolRef{Job: i + 1, Tool: id})
			}
		}
	}
	return refs
}

// RangeError reports a tool id outside 1..M.
type RangeError struct {
	Ref ToolRef
	M   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range 1..%d", e.Ref, e.M)
}

// Validate checks the invariants of the canonical format: the job count
// matches the job list and the cost vector has one entry per tool. Every tool
// id outside 1..M adds a *RangeError, so callers that tolerate such ids can
// tell them apart with errors.As.
func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	var errs []error
	if inst.M < 0 {
		errs = append(errs, fmt.Errorf("tool count must be >= 0 (got %d)", inst.M))
	}
	if inst.N != len(inst.Jobs) {
		errs = append(errs, fmt.Errorf("job count %d does not match %d job records", inst.N, len(inst.Jobs)))
	}
	if len(inst.Costs) != inst.M {
		errs = append(errs, fmt.Errorf("cost vector has %d entries, want %d", len(inst.Costs), inst.M))
	}
	for _, ref := range inst.OutOfRange() {
		errs = append(errs, &RangeError{Ref: ref, M: inst.M})
	}
	return errors.Join(errs...)
}

// StructuralErrors returns the errors of err other than *RangeError. It
// returns nil when nothing else is left.
func StructuralErrors(err error) error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		var re *RangeError
		if errors.As(err, &re) {
			return nil
		}
		return err
	}
	var rest []error
	for _, e := range joined.Unwrap() {
		var re *RangeError
		if !errors.As(e, &re) {
			rest = append(rest, e)
		}
	}
	return errors.Join(rest...)
}
