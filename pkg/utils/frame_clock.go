// Package utils 提供两个查看器共用的帧计时工具
package utils

import "time"

// FrameClock measures the wall-clock time between frames.
type FrameClock struct {
	now      func() time.Time
	last     time.Time
	maxDelta float64
	started  bool
}

// NewFrameClock creates a clock whose deltas never exceed maxDelta seconds.
// A maxDelta of 0 disables the cap.
func NewFrameClock(maxDelta float64) *FrameClock {
	return newFrameClock(maxDelta, time.Now)
}

func newFrameClock(maxDelta float64, now func() time.Time) *FrameClock {
	return &FrameClock{now: now, maxDelta: maxDelta}
}

// Tick returns the seconds elapsed since the previous Tick.
// The first Tick returns 0.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Reset makes the next Tick return 0. Used when resuming from pause.
func (c *FrameClock) Reset() {
	c.started = false
}
