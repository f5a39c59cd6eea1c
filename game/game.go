package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
	"github.com/pthm-cable/invaders/systems"
	"github.com/pthm-cable/invaders/telemetry"
)

// State is the frame loop state.
type State int

const (
	Running State = iota
	Stopped       // terminal
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Game drives the simulation one frame at a time.
type Game struct {
	cfg   *config.Config
	world *World
	ctx   *entity.Context

	renderer platform.Renderer
	display  platform.Display
	input    platform.InputSource
	clock    platform.Clock
	overlay  Overlay

	state    State
	tick     int64
	maxTicks int64
	renderMS uint64 // duration of the last frame

	// Telemetry
	perfCollector    *telemetry.PerfCollector
	collector        *telemetry.Collector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool
	statsCallback    func(telemetry.WindowStats)
}

// NewGame builds the world and wires the platform into a simulation context.
func NewGame(opts Options) (*Game, error) {
	if opts.Renderer == nil || opts.Display == nil || opts.Input == nil || opts.Assets == nil || opts.Clock == nil {
		return nil, errors.New("game: renderer, display, input, assets and clock are required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	world, err := NewWorld(cfg, opts.Assets, opts.Clock.Ticks())
	if err != nil {
		return nil, err
	}

	statsWindow := cfg.Derived.StatsWindowTick
	if opts.StatsWindowSec > 0 {
		statsWindow = int(math.Round(opts.StatsWindowSec * float64(cfg.Screen.TargetTicksSec)))
	}

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := outputManager.WriteConfig(cfg); err != nil {
		outputManager.Close()
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		world: world,
		ctx: &entity.Context{
			DeltaTime: 1,
			Clock:     opts.Clock,
			Input:     opts.Input,
			Bullets:   world.Bullets,
			Bounds:    geom.V(cfg.Derived.ScreenW, cfg.Derived.ScreenH),
		},
		renderer:         opts.Renderer,
		display:          opts.Display,
		input:            opts.Input,
		clock:            opts.Clock,
		overlay:          opts.Overlay,
		maxTicks:         int64(opts.MaxTicks),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:        telemetry.NewCollector(statsWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		outputManager:    outputManager,
		logStats:         opts.LogStats,
		statsCallback:    opts.StatsCallback,
	}
	g.collector.Begin(g.population())

	slog.Info("world created",
		"entities", world.Registry.Len(),
		"enemies", len(world.Enemies),
		"bullet_pool", world.Bullets.Cap(),
		"stats_window_ticks", statsWindow,
		"output_dir", outputManager.Dir(),
	)
	return g, nil
}

// World returns the entities of the running round.
func (g *Game) World() *World {
	return g.world
}

// Context returns the simulation context shared with components.
func (g *Game) Context() *entity.Context {
	return g.ctx
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}

// Tick returns the number of completed frames.
func (g *Game) Tick() int64 {
	return g.tick
}

// Step runs one frame: quit check, draw then update of every active entity
// in registry order, collision pass, present, and delta-time recomputation.
// A frame that sees a quit request stops before drawing and is not presented.
func (g *Game) Step() State {
	if g.state == Stopped {
		return g.state
	}

	frameStart := g.clock.Ticks()
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	if g.input.PollQuit() {
		g.perfCollector.EndTick()
		g.state = Stopped
		slog.Info("quit requested", "tick", g.tick)
		return g.state
	}

	g.perfCollector.StartPhase(telemetry.PhaseEntities)
	g.display.Clear()
	g.world.Registry.Each(func(e entity.Entity) {
		e.Draw(g.renderer)
		e.Update(g.ctx)
	})

	g.perfCollector.StartPhase(telemetry.PhaseCollision)
	collisions := systems.CheckCollisions(g.ctx, g.world.Registry)

	g.perfCollector.StartPhase(telemetry.PhasePresent)
	if g.overlay != nil {
		g.overlay.DrawOverlay(g.status())
	}
	g.display.Present()
	g.perfCollector.EndTick()

	g.renderMS = g.clock.Ticks() - frameStart
	g.ctx.DeltaTime = ComputeDelta(g.renderMS, g.cfg.Screen.TargetTicksSec)
	g.display.SetTitle(Title(g.cfg.Screen.Title, g.ctx.DeltaTime, g.renderMS))

	g.tick++
	g.collector.RecordTick(collisions, g.ctx.DeltaTime, g.renderMS)
	g.flushTelemetry()

	return g.state
}

// Run steps until the loop stops, ctx is cancelled or the tick limit is reached.
// Cancellation returns ctx.Err().
func (g *Game) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation interrupted", "tick", g.tick)
			return ctx.Err()
		default:
		}

		if g.Step() == Stopped {
			return nil
		}
		if g.maxTicks > 0 && g.tick >= g.maxTicks {
			slog.Info("max ticks reached", "tick", g.tick)
			return nil
		}
	}
}

// Close releases telemetry output.
func (g *Game) Close() error {
	return g.outputManager.Close()
}

// ComputeDelta converts a frame duration into the movement scale: 1 when the
// frame took exactly 1/targetTPS seconds.
func ComputeDelta(elapsedMS uint64, targetTPS int) float64 {
	return float64(elapsedMS) / 1000 * float64(targetTPS)
}

// Title formats the window title shown after each frame.
func Title(prefix string, delta float64, renderMS uint64) string {
	return fmt.Sprintf("%s - Delta: %.2f, Render: %d ms", prefix, delta, renderMS)
}

func (g *Game) status() Status {
	return Status{
		Tick:         g.tick,
		Delta:        g.ctx.DeltaTime,
		RenderMS:     g.renderMS,
		Enemies:      g.activeEnemies(),
		BulletsInUse: g.world.Bullets.InUse(),
		BulletsCap:   g.world.Bullets.Cap(),
	}
}

func (g *Game) activeEnemies() int {
	n := 0
	for _, e := range g.world.Enemies {
		if e.Active() {
			n++
		}
	}
	return n
}
