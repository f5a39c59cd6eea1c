package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstKill     BookmarkType = "first_kill"
	BookmarkWaveCleared   BookmarkType = "wave_cleared"
	BookmarkPoolSaturated BookmarkType = "pool_saturated"
	BookmarkFrameSpike    BookmarkType = "frame_spike"
)

// Bookmark marks a notable window in a run.
type Bookmark struct {
	Type        BookmarkType
	Tick        int64
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector flags notable windows. One-shot bookmarks fire once per run.
type BookmarkDetector struct {
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	killSeen    bool
	waveCleared bool
	saturated   bool // pool was full in the previous window
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest window and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if !bd.killSeen && stats.EnemiesDestroyed > 0 {
		bd.killSeen = true
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkFirstKill,
			Tick:        stats.WindowEnd,
			Description: fmt.Sprintf("%d enemies destroyed", stats.EnemiesDestroyed),
		})
	}

	if !bd.waveCleared && bd.killSeen && stats.Enemies == 0 {
		bd.waveCleared = true
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkWaveCleared,
			Tick:        stats.WindowEnd,
			Description: "no enemies remaining",
		})
	}

	full := stats.BulletsCap > 0 && stats.BulletsInUse >= stats.BulletsCap
	if full && !bd.saturated {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkPoolSaturated,
			Tick:        stats.WindowEnd,
			Description: fmt.Sprintf("all %d bullets in flight", stats.BulletsCap),
		})
	}
	bd.saturated = full

	if b := bd.checkFrameSpike(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkFrameSpike fires when the slowest frame exceeds 3x the rolling average
// of previous windows' slowest frames.
func (bd *BookmarkDetector) checkFrameSpike(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 2 {
		return nil
	}
	var sum uint64
	for _, h := range history {
		sum += h.MaxFrameMS
	}
	avg := float64(sum) / float64(len(history))
	if avg == 0 || float64(stats.MaxFrameMS) <= 3*avg {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkFrameSpike,
		Tick:        stats.WindowEnd,
		Description: fmt.Sprintf("frame took %d ms (avg max %.1f ms)", stats.MaxFrameMS, avg),
	}
}
