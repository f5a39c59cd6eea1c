package game

import (
	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/platform"
	"github.com/pthm-cable/invaders/telemetry"
)

// Options configures a Game. The platform fields are required.
type Options struct {
	// Config to run with; nil uses config.Cfg().
	Config *config.Config

	Renderer platform.Renderer
	Display  platform.Display
	Input    platform.InputSource
	Assets   platform.Assets
	Clock    platform.Clock

	// Overlay, if set, is drawn on top of the entities before each present.
	Overlay Overlay

	MaxTicks       int     // stop after N ticks (0 = unlimited)
	LogStats       bool    // log window stats via slog
	StatsWindowSec float64 // stats window in seconds (0 = use config)
	OutputDir      string  // CSV logs and config snapshot (empty = disabled)

	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Status is the per-frame summary handed to an Overlay.
type Status struct {
	Tick         int64
	Delta        float64
	RenderMS     uint64
	Enemies      int
	BulletsInUse int
	BulletsCap   int
}

// Overlay draws debug information over the play field.
type Overlay interface {
	DrawOverlay(s Status)
}
