package game

import (
	"testing"

	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/platform"
	"github.com/pthm-cable/invaders/platform/platformtest"
)

type harness struct {
	cfg    *config.Config
	game   *Game
	rec    *platformtest.Recorder
	input  *platformtest.Input
	clock  *platform.ManualClock
	assets *platformtest.Assets
}

// newHarness builds a game on fakes. Each present advances the clock by frameMS.
func newHarness(t *testing.T, frameMS uint64, edit func(*Options)) *harness {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	h := &harness{
		cfg:    cfg,
		input:  platformtest.NewInput(),
		clock:  &platform.ManualClock{},
		assets: platformtest.GameAssets(),
	}
	h.rec = platformtest.NewRecorder(h.assets)
	h.rec.OnPresent = func() { h.clock.Advance(frameMS) }

	opts := Options{
		Config:   cfg,
		Renderer: h.rec,
		Display:  h.rec,
		Input:    h.input,
		Assets:   h.assets,
		Clock:    h.clock,
	}
	if edit != nil {
		edit(&opts)
	}
	h.game, err = NewGame(opts)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { h.game.Close() })
	return h
}

// trace records the calls a component receives.
type trace struct {
	name string
	log  *[]string
}

func (c *trace) Update(ctx *entity.Context) { *c.log = append(*c.log, c.name+".update") }
func (c *trace) Draw(r platform.Renderer) { *c.log = append(*c.log, c.name+".draw") }
func (c *trace) OnCollision(ctx *entity.Context, other entity.Entity) {
	*c.log = append(*c.log, c.name+".collision")
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
