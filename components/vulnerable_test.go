package components

import (
	"errors"
	"testing"

	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/geom"
)

func TestEnemyDestroyedByBullet(t *testing.T) {
	f := newFixture(t)
	enemy := f.newEnemy(t, geom.V(52.5, 52.5))
	bullet := f.newBullet(t)
	bullet.SetActive(true)
	animator, _ := entity.Get[*Animator](enemy)

	f.clock.Advance(30)
	enemy.Collision(f.ctx, bullet)
	if animator.Current() != SequenceDestroy {
		t.Fatalf("sequence = %q after bullet hit, want destroy", animator.Current())
	}

	// Six destroy frames at 15 fps: five advances reach the last frame, the
	// sixth reports completion and the enemy deactivates in that update.
	destroyFrames := animator.Sequence(SequenceDestroy).Len()
	for i := 1; i < destroyFrames; i++ {
		f.clock.Advance(100)
		enemy.Update(f.ctx)
		if !enemy.Active() {
			t.Fatalf("enemy deactivated after %d updates, before the destroy sequence finished", i)
		}
		if animator.Finished() {
			t.Fatalf("animator finished early at update %d", i)
		}
	}

	f.clock.Advance(100)
	enemy.Update(f.ctx)
	if !animator.Finished() {
		t.Fatal("animator should report the destroy sequence finished")
	}
	if enemy.Active() {
		t.Error("enemy should be inactive once the destroy sequence completes")
	}
}

func TestEnemyIgnoresNonBullets(t *testing.T) {
	f := newFixture(t)
	enemy := f.newEnemy(t, geom.V(52.5, 52.5))
	player := f.reg.New("player")
	other := f.newEnemy(t, geom.V(100, 52.5))
	animator, _ := entity.Get[*Animator](enemy)

	enemy.Collision(f.ctx, player)
	enemy.Collision(f.ctx, other)

	if animator.Current() != SequenceIdle {
		t.Errorf("sequence = %q, want idle", animator.Current())
	}
	for i := 0; i < 50; i++ {
		f.clock.Advance(100)
		enemy.Update(f.ctx)
	}
	if !enemy.Active() {
		t.Error("enemy playing idle should never deactivate")
	}
}

func TestRepeatedHitsDoNotRestartDestroy(t *testing.T) {
	f := newFixture(t)
	enemy := f.newEnemy(t, geom.V(52.5, 52.5))
	bullet := f.newBullet(t)
	animator, _ := entity.Get[*Animator](enemy)

	enemy.Collision(f.ctx, bullet)
	f.clock.Advance(70)
	enemy.Update(f.ctx)
	frame := animator.Sequence(SequenceDestroy).Frame()

	// A second bullet in a later tick must not reset the frame timer.
	f.clock.Advance(60)
	enemy.Collision(f.ctx, bullet)
	f.clock.Advance(10)
	enemy.Update(f.ctx)

	if got := animator.Sequence(SequenceDestroy).Frame(); got != frame+1 {
		t.Errorf("frame = %d, want %d", got, frame+1)
	}
}

func TestVulnerableNeedsAnimator(t *testing.T) {
	f := newFixture(t)

	bare := f.reg.New("enemy")
	if _, err := NewVulnerableToBullets(bare); !errors.Is(err, entity.ErrMissingComponent) {
		t.Errorf("without animator: %v, want ErrMissingComponent", err)
	}

	idleOnly := f.reg.New("enemy")
	idle := f.loadSequence(t, "sprites/enemy/idle", 5, true)
	a, _ := NewAnimator(idleOnly, map[string]*Sequence{SequenceIdle: idle}, SequenceIdle, 0)
	mustAdd(t, idleOnly, a)
	if _, err := NewVulnerableToBullets(idleOnly); !errors.Is(err, ErrUnknownSequence) {
		t.Errorf("without destroy sequence: %v, want ErrUnknownSequence", err)
	}
}
