package entity

import (
	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
)

// Context is the simulation state shared with components during a tick.
// Only the frame loop writes DeltaTime.
type Context struct {
	// DeltaTime scales per-tick movement: 1 at the target tick rate,
	// above 1 when running slow, below 1 when running fast.
	DeltaTime float64

	Clock   platform.Clock
	Input   platform.InputSource
	Bullets *Pool

	// Bounds is the play-field size. The field spans [0, Bounds.X]×[0, Bounds.Y].
	Bounds geom.Vec
}

// Now returns the clock time in milliseconds.
func (c *Context) Now() uint64 {
	return c.Clock.Ticks()
}

// InBounds reports whether p lies inside the play field, edges included.
func (c *Context) InBounds(p geom.Vec) bool {
	return p.X >= 0 && p.X <= c.Bounds.X && p.Y >= 0 && p.Y <= c.Bounds.Y
}
