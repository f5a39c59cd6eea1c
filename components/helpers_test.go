package components

import (
	"fmt"
	"testing"

	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
	"github.com/pthm-cable/invaders/platform/platformtest"
)

const (
	testWidth  = 600
	testHeight = 800
)

type fixture struct {
	reg    *entity.Registry
	clock  *platform.ManualClock
	input  *platformtest.Input
	assets *platformtest.Assets
	ctx    *entity.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		reg:    entity.NewRegistry(),
		clock:  &platform.ManualClock{},
		input:  platformtest.NewInput(),
		assets: platformtest.GameAssets(),
	}
	f.ctx = &entity.Context{
		DeltaTime: 1,
		Clock:     f.clock,
		Input:     f.input,
		Bounds:    geom.V(testWidth, testHeight),
	}
	return f
}

func (f *fixture) newBullet(t *testing.T) entity.Entity {
	t.Helper()
	b := f.reg.New(TagBullet)
	sprite, err := NewSpriteRenderer(b, f.assets, "sprites/bullet.bmp")
	if err != nil {
		t.Fatal(err)
	}
	mustAdd(t, b, sprite)
	mustAdd(t, b, NewBulletMover(b, 10))
	b.AddCircle(geom.Circle{Center: b.Position(), Radius: 8})
	return b
}

func (f *fixture) withPool(t *testing.T, size int) *entity.Pool {
	t.Helper()
	pool, err := entity.NewPool(size, func() (entity.Entity, error) {
		return f.newBullet(t), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	f.ctx.Bullets = pool
	return pool
}

func (f *fixture) newEnemy(t *testing.T, pos geom.Vec) entity.Entity {
	t.Helper()
	e := f.reg.New("enemy")
	e.SetPosition(pos)
	e.SetActive(true)

	idle := f.loadSequence(t, "sprites/enemy/idle", 5, true)
	destroy := f.loadSequence(t, "sprites/enemy/destroy", 15, false)
	animator, err := NewAnimator(e, map[string]*Sequence{
		SequenceIdle:    idle,
		SequenceDestroy: destroy,
	}, SequenceIdle, f.clock.Ticks())
	if err != nil {
		t.Fatal(err)
	}
	mustAdd(t, e, animator)

	vulnerable, err := NewVulnerableToBullets(e)
	if err != nil {
		t.Fatal(err)
	}
	mustAdd(t, e, vulnerable)
	e.AddCircle(geom.Circle{Center: pos, Radius: 38})
	return e
}

func (f *fixture) loadSequence(t *testing.T, dir string, rate int, loop bool) *Sequence {
	t.Helper()
	seq, err := LoadSequence(f.assets, dir, rate, loop)
	if err != nil {
		t.Fatal(err)
	}
	return seq
}

func mustAdd(t *testing.T, e entity.Entity, c entity.Component) {
	t.Helper()
	if err := e.AddComponent(c); err != nil {
		t.Fatal(err)
	}
}

func vecString(v geom.Vec) string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}
