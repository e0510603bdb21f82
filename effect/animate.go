// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gogpu/ggfx/ui"
)

// Animate returns a value that moves linearly from `from` to `to` and back,
// advancing by one every durationMs milliseconds. The full period is
// 2*(to-from)*durationMs milliseconds.
//
// Animate panics if durationMs is not positive, if to <= from, or if the
// result falls outside [from, to] (which happens for negative elapsedMs).
// These are programming errors; every caller passes constants.
func Animate(elapsedMs, durationMs int64, from, to int) int {
	if durationMs <= 0 {
		panic(fmt.Sprintf("effect: animation duration must be positive, got %d", durationMs))
	}
	if to <= from {
		panic(fmt.Sprintf("effect: animation range [%d, %d] is empty", from, to))
	}
	diff := int64(to) - int64(from)
	span := diff * 2
	step := (elapsedMs / durationMs) % span
	if step > diff {
		step = span - step
	}
	v := int64(from) + step
	if v < int64(from) || v > int64(to) {
		panic(fmt.Sprintf("effect: animation value %d out of range [%d, %d]", v, from, to))
	}
	return int(v)
}

// LightPosition returns the pseudo light centre at time t seconds: a circle
// around the bounds centre with radii W/4 and H/4, starting at angle zero
// (to the right of the centre) and turning once every 2π seconds.
func LightPosition(bounds ui.Rect, t float64) (x, y float64) {
	x = bounds.W/2 + math.Cos(t)*bounds.W/4
	y = bounds.H/2 + math.Sin(t)*bounds.H/4
	return x, y
}

// Clock measures animation time from its first use.
//
// Elapsed never decreases, even if the time source does. Clock is safe for
// concurrent use.
type Clock struct {
	mu      sync.Mutex
	now     func() time.Time
	start   time.Time
	started bool
	last    time.Duration
}

// NewClock returns a clock reading time from now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// DefaultClock is the process-wide animation clock used by RenderNow.
var DefaultClock = NewClock(nil)

// Start returns the start timestamp, capturing it on first use.
func (c *Clock) Start() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
	return c.start
}

// Elapsed returns the time since the first use of the clock.
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
	d := c.now().Sub(c.start)
	if d < c.last {
		d = c.last
	}
	c.last = d
	return d
}

// ElapsedSeconds returns Elapsed in seconds.
func (c *Clock) ElapsedSeconds() float64 {
	return c.Elapsed().Seconds()
}

func (c *Clock) startLocked() {
	if !c.started {
		c.start = c.now()
		c.started = true
	}
}
