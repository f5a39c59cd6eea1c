package components

import (
	"fmt"

	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/platform"
)

// Sequence names used by VulnerableToBullets.
const (
	SequenceIdle    = "idle"
	SequenceDestroy = "destroy"
)

// TagBullet marks entities that damage VulnerableToBullets holders.
const TagBullet = "bullet"

// VulnerableToBullets plays the destroy animation when hit by a bullet and
// deactivates the container once it has finished.
// The container must already have an Animator with a destroy sequence.
type VulnerableToBullets struct {
	container entity.Entity
	animator  *Animator
}

// NewVulnerableToBullets binds to the container's Animator.
func NewVulnerableToBullets(container entity.Entity) (*VulnerableToBullets, error) {
	animator, err := entity.Get[*Animator](container)
	if err != nil {
		return nil, fmt.Errorf("vulnerable to bullets: %w", err)
	}
	if !animator.Has(SequenceDestroy) {
		return nil, fmt.Errorf("vulnerable to bullets: %w: %q", ErrUnknownSequence, SequenceDestroy)
	}
	return &VulnerableToBullets{container: container, animator: animator}, nil
}

func (v *VulnerableToBullets) Update(ctx *entity.Context) {
	if v.animator.Finished() && v.animator.Current() == SequenceDestroy {
		v.container.SetActive(false)
	}
}

func (v *VulnerableToBullets) Draw(r platform.Renderer) {}

func (v *VulnerableToBullets) OnCollision(ctx *entity.Context, other entity.Entity) {
	if other.Tag() != TagBullet {
		return
	}
	// The constructor guarantees the destroy sequence exists.
	_ = v.animator.SetSequence(SequenceDestroy, ctx.Now())
}
