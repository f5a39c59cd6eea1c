package game

import (
	"errors"
	"io/fs"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/pthm-cable/invaders/components"
	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform/platformtest"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func TestNewWorld_Counts(t *testing.T) {
	w, err := NewWorld(loadConfig(t), platformtest.GameAssets(), 0)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	if got := w.Registry.Len(); got != 46 {
		t.Errorf("registry size = %d, want 46", got)
	}
	if got := w.Bullets.Cap(); got != 30 {
		t.Errorf("pool size = %d, want 30", got)
	}
	if got := len(w.Enemies); got != 15 {
		t.Errorf("enemies = %d, want 15", got)
	}

	counts := w.Registry.ActiveByTag()
	if counts[TagPlayer] != 1 || counts[TagEnemy] != 15 || counts[TagBullet] != 0 {
		t.Errorf("active by tag = %v, want 1 player, 15 enemies, 0 bullets", counts)
	}
}

func TestNewWorld_RegistryOrder(t *testing.T) {
	w, err := NewWorld(loadConfig(t), platformtest.GameAssets(), 0)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	all := w.Registry.All()
	for i := 0; i < 30; i++ {
		if all[i].Tag() != TagBullet {
			t.Fatalf("entity %d tag = %q, want bullet", i, all[i].Tag())
		}
	}
	if all[30] != w.Player {
		t.Errorf("entity 30 = %v, want the player", all[30])
	}
	for i := 31; i < len(all); i++ {
		if all[i].Tag() != TagEnemy {
			t.Errorf("entity %d tag = %q, want enemy", i, all[i].Tag())
		}
	}
}

func TestNewWorld_Player(t *testing.T) {
	w, err := NewWorld(loadConfig(t), platformtest.GameAssets(), 0)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	pos := w.Player.Position()
	if pos.X != 300 || pos.Y != 747.5 {
		t.Errorf("player position = (%f, %f), want (300, 747.5)", pos.X, pos.Y)
	}
	if len(w.Player.Circles()) != 0 {
		t.Errorf("player has %d circles, want 0", len(w.Player.Circles()))
	}
	if _, err := entity.Get[*components.KeyboardMover](w.Player); err != nil {
		t.Errorf("player mover: %v", err)
	}
	if _, err := entity.Get[*components.KeyboardShooter](w.Player); err != nil {
		t.Errorf("player shooter: %v", err)
	}
}

func TestNewWorld_Bullets(t *testing.T) {
	w, err := NewWorld(loadConfig(t), platformtest.GameAssets(), 0)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	for i, b := range w.Bullets.Members() {
		if b.Active() {
			t.Errorf("bullet %d starts active", i)
		}
		circles := b.Circles()
		if len(circles) != 1 || circles[0].Radius != 8 {
			t.Errorf("bullet %d circles = %v, want one of radius 8", i, circles)
		}
	}
}

func TestEnemyGridPosition(t *testing.T) {
	cfg := loadConfig(t)

	tests := []struct {
		col, row int
		want     geom.Vec
	}{
		{0, 0, geom.V(52.5, 52.5)},
		{1, 0, geom.V(172.5, 52.5)},
		{2, 1, geom.V(292.5, 157.5)},
		{4, 2, geom.V(532.5, 262.5)},
	}
	for _, tt := range tests {
		got := EnemyGridPosition(cfg, tt.col, tt.row)
		if !scalar.EqualWithinAbs(got.X, tt.want.X, 1e-9) || !scalar.EqualWithinAbs(got.Y, tt.want.Y, 1e-9) {
			t.Errorf("EnemyGridPosition(%d, %d) = (%f, %f), want (%f, %f)",
				tt.col, tt.row, got.X, got.Y, tt.want.X, tt.want.Y)
		}
	}
}

func TestNewWorld_Enemies(t *testing.T) {
	cfg := loadConfig(t)
	w, err := NewWorld(cfg, platformtest.GameAssets(), 0)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	// Column-major: enemy 8 is column 2, row 2.
	e := w.Enemies[8]
	want := EnemyGridPosition(cfg, 2, 2)
	if e.Position() != want {
		t.Errorf("enemy 8 at %v, want %v", e.Position(), want)
	}
	if !scalar.EqualWithinAbs(e.Rotation(), math.Pi, 1e-12) {
		t.Errorf("enemy rotation = %f, want π", e.Rotation())
	}
	circles := e.Circles()
	if len(circles) != 1 || circles[0].Radius != 38 || circles[0].Center != want {
		t.Errorf("enemy circles = %v, want radius 38 at %v", circles, want)
	}

	animator, err := entity.Get[*components.Animator](e)
	if err != nil {
		t.Fatalf("enemy animator: %v", err)
	}
	if animator.Current() != components.SequenceIdle {
		t.Errorf("current sequence = %q, want idle", animator.Current())
	}

	// Sequences are per enemy.
	other, _ := entity.Get[*components.Animator](w.Enemies[0])
	if animator.Sequence(components.SequenceIdle) == other.Sequence(components.SequenceIdle) {
		t.Error("enemies share a sequence instance")
	}
}

func TestNewWorld_MissingAssets(t *testing.T) {
	assets := platformtest.GameAssets()
	cfg := loadConfig(t)
	cfg.Assets.EnemyDestroy = "sprites/enemy/explode"

	_, err := NewWorld(cfg, assets, 0)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("NewWorld error = %v, want fs.ErrNotExist", err)
	}
}

func TestNewWorld_NegativeGrid(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
	}{
		{"negative columns", -1, 3},
		{"negative rows", 5, -2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := loadConfig(t)
			cfg.Enemy.Columns = tc.cols
			cfg.Enemy.Rows = tc.rows

			w, err := NewWorld(cfg, platformtest.GameAssets(), 0)
			if err == nil {
				t.Fatalf("NewWorld accepted a %dx%d grid", tc.cols, tc.rows)
			}
			if w != nil {
				t.Error("NewWorld returned a world alongside an error")
			}
		})
	}
}
