package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/game"
	"github.com/pthm-cable/invaders/platform"
	"github.com/pthm-cable/invaders/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without a window, driven by the autopilot")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	hud := flag.Bool("hud", false, "Show the debug status bar")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := game.Options{
		Config:         cfg,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		MaxTicks:       *maxTicks,
	}

	var err error
	if *headless {
		err = runHeadless(ctx, cfg, opts)
	} else {
		err = runWindow(ctx, cfg, opts, *hud)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless drives the game with the autopilot on a simulated clock.
func runHeadless(ctx context.Context, cfg *config.Config, opts game.Options) error {
	clock := &platform.ManualClock{}
	backend := renderer.NewHeadless(cfg.Assets.Root, clock, cfg.Derived.HeadlessFrameMS)

	opts.Renderer = backend
	opts.Display = backend
	opts.Assets = backend
	opts.Input = game.NewAutopilot(cfg.Headless.SweepTicks)
	opts.Clock = clock

	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	slog.Info("starting headless simulation",
		"max_ticks", opts.MaxTicks,
		"frame_ms", cfg.Derived.HeadlessFrameMS,
		"sweep_ticks", cfg.Headless.SweepTicks,
	)
	err = g.Run(ctx)
	slog.Info("simulation finished", "tick", g.Tick(), "frames", backend.Frames(), "title", backend.Title())
	return err
}

// runWindow opens the raylib window and runs on the wall clock.
func runWindow(ctx context.Context, cfg *config.Config, opts game.Options, hud bool) error {
	window, err := renderer.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	opts.Renderer = window
	opts.Display = window
	opts.Assets = window
	opts.Input = window
	opts.Clock = platform.NewSystemClock()
	if hud {
		opts.Overlay = renderer.NewHUD(cfg.Screen.Width, cfg.Screen.Height)
	}

	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	slog.Info("starting simulation", "width", cfg.Screen.Width, "height", cfg.Screen.Height)
	err = g.Run(ctx)
	slog.Info("simulation finished", "tick", g.Tick(), "state", g.State().String())
	return err
}
