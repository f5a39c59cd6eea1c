package components

import (
	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
)

// BulletMover flies the container along its rotation and consumes it on
// leaving the play field or hitting anything.
// The container must own exactly one collision circle.
type BulletMover struct {
	container entity.Entity
	Speed     float64
}

// NewBulletMover creates a mover with the given speed in pixels per tick.
func NewBulletMover(container entity.Entity, speed float64) *BulletMover {
	return &BulletMover{container: container, Speed: speed}
}

func (b *BulletMover) Update(ctx *entity.Context) {
	con := b.container
	step := geom.Heading(con.Rotation())
	pos := con.Position()
	pos.X += b.Speed * step.X * ctx.DeltaTime
	pos.Y += b.Speed * step.Y * ctx.DeltaTime
	con.SetPosition(pos)

	if !ctx.InBounds(pos) {
		con.SetActive(false)
	}

	con.SetCircleCenter(0, pos)
}

func (b *BulletMover) Draw(r platform.Renderer) {}

// OnCollision consumes the bullet on any hit.
func (b *BulletMover) OnCollision(ctx *entity.Context, other entity.Entity) {
	b.container.SetActive(false)
}
