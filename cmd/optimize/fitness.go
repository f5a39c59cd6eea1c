package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/game"
	"github.com/pthm-cable/invaders/platform"
	"github.com/pthm-cable/invaders/renderer"
)

// survivorPenalty is added per enemy left standing when a run hits maxTicks.
const survivorPenalty = 600

// FitnessEvaluator runs headless autopilot games and scores how fast they
// clear the enemy wave.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int
	sweeps     []int // autopilot sweep lengths, one run each
	baseConfig *config.Config

	mu           sync.Mutex
	lastCleared  int // runs in the latest evaluation that cleared the wave
	lastMeanTick float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, sweeps []int, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		sweeps:     sweeps,
		baseConfig: baseCfg,
	}
}

// LastRun returns how many runs cleared the wave in the most recent
// evaluation and their mean tick count.
func (fe *FitnessEvaluator) LastRun() (cleared int, meanTicks float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastCleared, fe.lastMeanTick
}

// runResult holds the results from a single simulation run.
type runResult struct {
	ticks     int // ticks until the wave was cleared, or maxTicks
	remaining int // enemies still active at the end
	err       error
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]runResult, len(fe.sweeps))
	var wg sync.WaitGroup
	for i, sweep := range fe.sweeps {
		wg.Add(1)
		go func(idx, sweepTicks int) {
			defer wg.Done()
			results[idx] = fe.runSimulation(cfg, sweepTicks)
		}(i, sweep)
	}
	wg.Wait()

	var total float64
	var cleared, clearedTicks int
	for _, r := range results {
		if r.err != nil {
			return math.Inf(1)
		}
		total += computeFitness(r)
		if r.remaining == 0 {
			cleared++
			clearedTicks += r.ticks
		}
	}

	fe.mu.Lock()
	fe.lastCleared = cleared
	fe.lastMeanTick = 0
	if cleared > 0 {
		fe.lastMeanTick = float64(clearedTicks) / float64(cleared)
	}
	fe.mu.Unlock()

	return total / float64(len(results))
}

// computeFitness is the tick count, with a penalty per surviving enemy.
func computeFitness(r runResult) float64 {
	return float64(r.ticks + r.remaining*survivorPenalty)
}

// runSimulation plays one headless game until the wave is cleared or maxTicks.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, sweepTicks int) runResult {
	clock := &platform.ManualClock{}
	backend := renderer.NewHeadless(cfg.Assets.Root, clock, cfg.Derived.HeadlessFrameMS)

	g, err := game.NewGame(game.Options{
		Config:   cfg,
		Renderer: backend,
		Display:  backend,
		Assets:   backend,
		Input:    game.NewAutopilot(sweepTicks),
		Clock:    clock,
	})
	if err != nil {
		return runResult{err: err}
	}
	defer g.Close()

	remaining := len(g.World().Enemies)
	for int(g.Tick()) < fe.maxTicks && remaining > 0 {
		g.Step()
		remaining = countActive(g.World())
	}
	return runResult{ticks: int(g.Tick()), remaining: remaining}
}

func countActive(w *game.World) int {
	n := 0
	for _, e := range w.Enemies {
		if e.Active() {
			n++
		}
	}
	return n
}

// copyConfig creates a deep copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
