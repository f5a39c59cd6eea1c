package telemetry

import "log/slog"

// Population is a snapshot of live entities at the end of a window.
type Population struct {
	Players      int
	Enemies      int
	BulletsInUse int
	BulletsCap   int
}

// WindowStats summarizes gameplay over a window of ticks.
type WindowStats struct {
	WindowStart      int64   `csv:"window_start"`
	WindowEnd        int64   `csv:"window_end"`
	Players          int     `csv:"players"`
	Enemies          int     `csv:"enemies"`
	EnemiesDestroyed int     `csv:"enemies_destroyed"`
	BulletsInUse     int     `csv:"bullets_in_use"`
	BulletsCap       int     `csv:"bullets_cap"`
	Collisions       int     `csv:"collisions"`
	AvgDelta         float64 `csv:"avg_delta"`
	MaxDelta         float64 `csv:"max_delta"`
	MaxFrameMS       uint64  `csv:"max_frame_ms"`
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStart),
		slog.Int64("window_end", s.WindowEnd),
		slog.Int("players", s.Players),
		slog.Int("enemies", s.Enemies),
		slog.Int("enemies_destroyed", s.EnemiesDestroyed),
		slog.Int("bullets_in_use", s.BulletsInUse),
		slog.Int("bullets_cap", s.BulletsCap),
		slog.Int("collisions", s.Collisions),
		slog.Float64("avg_delta", s.AvgDelta),
		slog.Float64("max_delta", s.MaxDelta),
		slog.Uint64("max_frame_ms", s.MaxFrameMS),
	)
}

// Collector accumulates per-tick counters and produces WindowStats.
type Collector struct {
	windowTicks int64
	windowStart int64

	ticks      int
	collisions int
	deltaSum   float64
	maxDelta   float64
	maxFrameMS uint64

	// Enemy count at the start of the window; -1 before the first flush.
	enemiesAtStart int
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int64(windowTicks), enemiesAtStart: -1}
}

// Begin records the population the first window starts from.
func (c *Collector) Begin(pop Population) {
	c.enemiesAtStart = pop.Enemies
}

// RecordTick adds one tick's measurements.
func (c *Collector) RecordTick(collisions int, delta float64, frameMS uint64) {
	c.ticks++
	c.collisions += collisions
	c.deltaSum += delta
	c.maxDelta = max(c.maxDelta, delta)
	c.maxFrameMS = max(c.maxFrameMS, frameMS)
}

// ShouldFlush reports whether the window ending at tick is complete.
func (c *Collector) ShouldFlush(tick int64) bool {
	return tick-c.windowStart >= c.windowTicks
}

// Flush produces the stats for the window ending at tick and starts a new one.
func (c *Collector) Flush(tick int64, pop Population) WindowStats {
	s := WindowStats{
		WindowStart:  c.windowStart,
		WindowEnd:    tick,
		Players:      pop.Players,
		Enemies:      pop.Enemies,
		BulletsInUse: pop.BulletsInUse,
		BulletsCap:   pop.BulletsCap,
		Collisions:   c.collisions,
		MaxDelta:     c.maxDelta,
		MaxFrameMS:   c.maxFrameMS,
	}
	if c.ticks > 0 {
		s.AvgDelta = c.deltaSum / float64(c.ticks)
	}
	if c.enemiesAtStart >= 0 && c.enemiesAtStart > pop.Enemies {
		s.EnemiesDestroyed = c.enemiesAtStart - pop.Enemies
	}

	c.windowStart = tick
	c.enemiesAtStart = pop.Enemies
	c.ticks = 0
	c.collisions = 0
	c.deltaSum = 0
	c.maxDelta = 0
	c.maxFrameMS = 0
	return s
}
