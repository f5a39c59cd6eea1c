package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/invaders/config"
)

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("WriteTelemetry on nil manager: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("WritePerf on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManager_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := int64(1); i <= 2; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEnd: i * 300, Enemies: 15}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
		perf := PerfStats{AvgTickDuration: time.Millisecond, PhasePct: map[string]float64{PhaseEntities: 50}}
		if err := om.WritePerf(perf, i*300); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	for _, tt := range []struct {
		file   string
		header string
	}{
		{"telemetry.csv", "window_start,window_end,players,enemies"},
		{"perf.csv", "window_end,avg_tick_us"},
	} {
		data, err := os.ReadFile(filepath.Join(dir, tt.file))
		if err != nil {
			t.Fatalf("reading %s: %v", tt.file, err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Errorf("%s has %d lines, want header + 2 rows", tt.file, len(lines))
		}
		if !strings.HasPrefix(lines[0], tt.header) {
			t.Errorf("%s header = %q, want prefix %q", tt.file, lines[0], tt.header)
		}
		if strings.Count(string(data), tt.header) != 1 {
			t.Errorf("%s header written more than once", tt.file)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}
