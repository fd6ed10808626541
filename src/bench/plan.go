// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"fmt"

	"github.com/eapache/queue"
)

// Case is one scenario at one size on one backend.
type Case struct {
	Scenario Scenario
	Backend  Backend
	Size     int
}

// String identifies the case in logs.
func (c Case) String() string {
	return fmt.Sprintf("%s/%s/%d", c.Scenario.Name, c.Backend.Name, c.Size)
}

// Plan is a FIFO of pending cases.
//
// Plan is not safe for concurrent use.
type Plan struct {
	pending *queue.Queue
	total   int
}

// NewPlan queues every combination of the selected scenarios, backends and
// sizes. Cases are ordered by scenario, then backend, then size, so one
// scenario's results end up next to each other in the report.
func NewPlan(scenarios, backends []string, sizes []int) (*Plan, error) {
	ss, err := SelectScenarios(scenarios)
	if err != nil {
		return nil, err
	}
	bs, err := SelectBackends(backends)
	if err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("bench: no buffer sizes given")
	}
	for _, size := range sizes {
		if size < 0 {
			return nil, fmt.Errorf("bench: negative buffer size %d", size)
		}
	}

	p := &Plan{pending: queue.New()}
	for _, s := range ss {
		for _, b := range bs {
			for _, size := range sizes {
				p.pending.Add(Case{Scenario: s, Backend: b, Size: size})
				p.total++
			}
		}
	}
	return p, nil
}

// Total returns the number of cases the plan was built with.
func (p *Plan) Total() int { return p.total }

// Len returns the number of cases still pending.
func (p *Plan) Len() int { return p.pending.Length() }

// Next removes and returns the next pending case.
func (p *Plan) Next() (Case, bool) {
	if p.pending.Length() == 0 {
		return Case{}, false
	}
	return p.pending.Remove().(Case), true
}
