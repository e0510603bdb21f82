// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "sync"

// Priority orders dispatcher jobs. Higher priorities run first.
type Priority int

const (
	// PriorityBackground runs after all other queued work. Used for
	// self-sustaining redraw loops.
	PriorityBackground Priority = iota

	// PriorityNormal is the default for posted work.
	PriorityNormal

	// PriorityRender runs ahead of normal work, right before a frame.
	PriorityRender

	// PrioritySend runs before everything else.
	PrioritySend

	numPriorities
)

// String returns the priority name.
func (p Priority) String() string {
	switch p {
	case PriorityBackground:
		return "Background"
	case PriorityNormal:
		return "Normal"
	case PriorityRender:
		return "Render"
	case PrioritySend:
		return "Send"
	default:
		return "Unknown"
	}
}

// Dispatcher is a prioritized queue of callbacks executed on the UI
// goroutine. Post is fire-and-forget: there is no result and no
// cancellation.
//
// Post and Close are safe for concurrent use; RunPending must only be called
// from the goroutine that owns the UI.
type Dispatcher struct {
	mu     sync.Mutex
	queues [numPriorities][]func()
	closed bool
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Post queues fn at priority p. It reports false, dropping fn, when the
// dispatcher is closed, fn is nil, or p is out of range.
func (d *Dispatcher) Post(fn func(), p Priority) bool {
	if fn == nil || p < PriorityBackground || p >= numPriorities {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	d.queues[p] = append(d.queues[p], fn)
	return true
}

// Pending returns the number of queued jobs.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, q := range d.queues {
		n += len(q)
	}
	return n
}

// RunPending runs the jobs queued before the call, highest priority first
// and FIFO within a priority. Jobs posted while draining wait for the next
// call, so a job that re-posts itself cannot starve the frame. It returns
// the number of jobs run.
func (d *Dispatcher) RunPending() int {
	d.mu.Lock()
	var batch [numPriorities][]func()
	for p := range d.queues {
		batch[p] = d.queues[p]
		d.queues[p] = nil
	}
	d.mu.Unlock()

	n := 0
	for p := numPriorities - 1; p >= PriorityBackground; p-- {
		for _, fn := range batch[p] {
			fn()
			n++
		}
	}
	return n
}

// Close drops all queued jobs and rejects further posts.
// Close is idempotent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	for p := range d.queues {
		d.queues[p] = nil
	}
}
