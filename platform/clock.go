package platform

import "time"

// SystemClock reads the wall clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock that starts counting now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Ticks returns milliseconds since the clock was created.
func (c *SystemClock) Ticks() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// ManualClock only moves when advanced. Used for deterministic runs.
type ManualClock struct {
	now uint64
}

// Ticks returns the current manual time in milliseconds.
func (c *ManualClock) Ticks() uint64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms uint64) {
	c.now += ms
}

// Set jumps the clock to an absolute time.
func (c *ManualClock) Set(ms uint64) {
	c.now = ms
}
