package game

import (
	"log/slog"

	"github.com/pthm-cable/invaders/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.population())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEnd); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
	}
}

// population counts active entities for telemetry.
func (g *Game) population() telemetry.Population {
	counts := g.world.Registry.ActiveByTag()
	return telemetry.Population{
		Players:      counts[TagPlayer],
		Enemies:      counts[TagEnemy],
		BulletsInUse: counts[TagBullet],
		BulletsCap:   g.world.Bullets.Cap(),
	}
}
