// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package panel

import (
	"fmt"
	"io"
	"time"
)

const msPerMinute = 60_000

// FrameCounter tallies frames and reports the tally roughly once per
// wall-clock second.
//
// Timestamps are milliseconds within the current minute, so the counter
// holds no date state; a reading that is behind the last report is taken
// to have crossed a minute boundary.
//
// FrameCounter is NOT safe for concurrent use.
type FrameCounter struct {
	now   func() time.Time
	out   io.Writer
	count uint64
	last  int
}

// NewFrameCounter returns a counter writing to out. A nil now uses
// time.Now; a nil out discards reports.
func NewFrameCounter(now func() time.Time, out io.Writer) *FrameCounter {
	if now == nil {
		now = time.Now
	}
	if out == nil {
		out = io.Discard
	}
	return &FrameCounter{now: now, out: out}
}

// Tick records one frame. When more than a second has passed since the
// last report it writes the count, including this frame, as a bare integer
// line, resets the tally and returns the reported count and true.
func (c *FrameCounter) Tick() (uint64, bool) {
	c.count++

	t := c.now()
	ms := t.Second()*1000 + t.Nanosecond()/int(time.Millisecond)
	diff := ms - c.last
	if diff < 0 {
		diff += msPerMinute
	}
	if diff <= 1000 {
		return 0, false
	}

	n := c.count
	c.last = ms
	c.count = 0
	if _, err := fmt.Fprintln(c.out, n); err != nil {
		logger().Debug("panel: frame count write failed", "err", err)
	}
	logger().Debug("panel: frames per second", "fps", n)
	return n, true
}

// Pending returns the frames counted since the last report.
func (c *FrameCounter) Pending() uint64 { return c.count }
