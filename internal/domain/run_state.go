package domain

import (
	"fmt"
	"sync"
	"time"
)

// PipelineRunState is the single busy flag and current action shared by
// every stage handler. The orchestrator is its only writer.
type PipelineRunState struct {
	mu        sync.Mutex
	busy      bool
	stage     Stage
	network   NetworkKey
	action    string
	startedAt time.Time
}

// RunSnapshot is a read-only copy of the run state.
type RunSnapshot struct {
	Busy      bool
	Stage     Stage
	Network   NetworkKey
	Action    string
	StartedAt time.Time
}

// TryBegin marks the pipeline busy, or returns ErrPipelineBusy.
func (r *PipelineRunState) TryBegin(stage Stage, network NetworkKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.busy {
		return fmt.Errorf("%w: %s on %s", ErrPipelineBusy, r.stage.Title(), r.network)
	}
	r.busy = true
	r.stage = stage
	r.network = network
	r.action = stage.Title()
	r.startedAt = time.Now()
	return nil
}

// SetAction updates the human readable description of the running action.
func (r *PipelineRunState) SetAction(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.action = action
}

// End clears the busy flag.
func (r *PipelineRunState) End() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = false
	r.action = ""
	r.stage = 0
	r.network = ""
}

// Snapshot returns the current state.
func (r *PipelineRunState) Snapshot() RunSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RunSnapshot{
		Busy:      r.busy,
		Stage:     r.stage,
		Network:   r.network,
		Action:    r.action,
		StartedAt: r.startedAt,
	}
}
