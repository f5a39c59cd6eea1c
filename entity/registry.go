package entity

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/invaders/geom"
)

// Transform is an entity's placement in the world.
type Transform struct {
	Position geom.Vec
	Rotation float64 // radians
}

// Node holds the simulation state of an entity besides its transform.
type Node struct {
	Tag        string
	Active     bool
	Components []Component
	Circles    []geom.Circle
}

// Registry is the arena holding every entity in the simulation.
// Entities are never removed; they are deactivated instead, so handles stay
// valid for the lifetime of the registry.
type Registry struct {
	world *ecs.World

	builder    *ecs.Map2[Transform, Node]
	transforms *ecs.Map[Transform]
	nodes      *ecs.Map[Node]
	nodeFilter *ecs.Filter1[Node]

	// Insertion order. Draw, update and collision passes follow it.
	order []Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	world := ecs.NewWorld()
	return &Registry{
		world:      world,
		builder:    ecs.NewMap2[Transform, Node](world),
		transforms: ecs.NewMap[Transform](world),
		nodes:      ecs.NewMap[Node](world),
		nodeFilter: ecs.NewFilter1[Node](world),
	}
}

// New creates an inactive entity at the origin and appends it to the registry.
func (r *Registry) New(tag string) Entity {
	t := Transform{}
	n := Node{Tag: tag}
	id := r.builder.NewEntity(&t, &n)

	e := Entity{id: id, reg: r}
	r.order = append(r.order, e)
	return e
}

// All returns every entity in insertion order. The slice must not be modified.
func (r *Registry) All() []Entity {
	return r.order
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.order)
}

// Each calls fn for every active entity in insertion order.
func (r *Registry) Each(fn func(e Entity)) {
	for _, e := range r.order {
		if e.Active() {
			fn(e)
		}
	}
}

// ActiveByTag counts active entities per tag.
func (r *Registry) ActiveByTag() map[string]int {
	counts := make(map[string]int)
	query := r.nodeFilter.Query()
	for query.Next() {
		n := query.Get()
		if n.Active {
			counts[n.Tag]++
		}
	}
	return counts
}

// Contains reports whether e belongs to this registry and is still alive.
func (r *Registry) Contains(e Entity) bool {
	return e.reg == r && r.world.Alive(e.id)
}
