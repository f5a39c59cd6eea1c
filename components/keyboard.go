package components

import (
	"fmt"
	"math"

	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
)

// KeyboardMover slides the container horizontally with the arrow keys,
// keeping its sprite inside the play field.
type KeyboardMover struct {
	container entity.Entity
	sprite    *SpriteRenderer
	Speed     float64
}

// NewKeyboardMover binds to the container's SpriteRenderer for its width.
func NewKeyboardMover(container entity.Entity, speed float64) (*KeyboardMover, error) {
	sprite, err := entity.Get[*SpriteRenderer](container)
	if err != nil {
		return nil, fmt.Errorf("keyboard mover: %w", err)
	}
	return &KeyboardMover{container: container, sprite: sprite, Speed: speed}, nil
}

func (m *KeyboardMover) Update(ctx *entity.Context) {
	con := m.container
	pos := con.Position()
	half := m.sprite.Width / 2

	// Left wins when both keys are held. The sprite edge is clamped to the
	// field so a large delta cannot push it past the border.
	switch {
	case ctx.Input.IsKeyDown(platform.KeyLeft):
		if pos.X-half <= 0 {
			return
		}
		pos.X = max(pos.X-m.Speed*ctx.DeltaTime, half)
	case ctx.Input.IsKeyDown(platform.KeyRight):
		if pos.X+half >= ctx.Bounds.X {
			return
		}
		pos.X = min(pos.X+m.Speed*ctx.DeltaTime, ctx.Bounds.X-half)
	default:
		return
	}
	con.SetPosition(pos)
}

func (m *KeyboardMover) Draw(r platform.Renderer) {}

func (m *KeyboardMover) OnCollision(ctx *entity.Context, other entity.Entity) {}

// bulletRotation points shots up the screen.
const bulletRotation = 270 * math.Pi / 180

// KeyboardShooter fires a pair of bullets from the pool while space is held.
type KeyboardShooter struct {
	container entity.Entity
	Cooldown  uint64 // ms between volleys
	// Turret is the offset of the right-hand gun from the container's
	// center; the left gun mirrors it on X.
	Turret   geom.Vec
	lastShot uint64
}

// NewKeyboardShooter creates a shooter with the given cooldown and turret offset.
func NewKeyboardShooter(container entity.Entity, cooldown uint64, turret geom.Vec) *KeyboardShooter {
	return &KeyboardShooter{container: container, Cooldown: cooldown, Turret: turret}
}

// LastShot returns the time of the last volley in ms.
func (s *KeyboardShooter) LastShot() uint64 {
	return s.lastShot
}

func (s *KeyboardShooter) Update(ctx *entity.Context) {
	if !ctx.Input.IsKeyDown(platform.KeySpace) {
		return
	}
	now := ctx.Now()
	if now-s.lastShot < s.Cooldown {
		return
	}

	pos := s.container.Position()
	s.shoot(ctx, geom.V(pos.X+s.Turret.X, pos.Y+s.Turret.Y))
	s.shoot(ctx, geom.V(pos.X-s.Turret.X, pos.Y+s.Turret.Y))
	s.lastShot = now
}

// shoot launches a pooled bullet from p. An exhausted pool drops the shot.
func (s *KeyboardShooter) shoot(ctx *entity.Context, p geom.Vec) {
	bullet, ok := ctx.Bullets.Acquire()
	if !ok {
		return
	}
	bullet.SetActive(true)
	bullet.SetPosition(p)
	bullet.SetRotation(bulletRotation)
	// Sync the collision circle before this tick's collision pass.
	bullet.Update(ctx)
}

func (s *KeyboardShooter) Draw(r platform.Renderer) {}

func (s *KeyboardShooter) OnCollision(ctx *entity.Context, other entity.Entity) {}
