package systems

import (
	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/geom"
)

// CheckCollisions tests every unordered pair of entities once and notifies
// both sides of each overlapping circle pair, lower registry index first.
//
// Activity is re-checked before every circle pair: an entity deactivated by
// an earlier notification (a bullet consumed on its first hit) takes no
// further part in the pass. Entities with several circles may be notified
// more than once about the same partner.
//
// Returns the number of notified circle pairs.
func CheckCollisions(ctx *entity.Context, reg *entity.Registry) int {
	all := reg.All()
	hits := 0
	for i := 0; i < len(all)-1; i++ {
		e1 := all[i]
		for _, e2 := range all[i+1:] {
			hits += collidePair(ctx, e1, e2)
		}
	}
	return hits
}

func collidePair(ctx *entity.Context, e1, e2 entity.Entity) int {
	hits := 0
	for _, c1 := range e1.Circles() {
		for _, c2 := range e2.Circles() {
			if !e1.Active() || !e2.Active() {
				return hits
			}
			if geom.Overlap(c1, c2) {
				e1.Collision(ctx, e2)
				e2.Collision(ctx, e1)
				hits++
			}
		}
	}
	return hits
}
