// Package entity implements the composite game object, the registry that
// owns every object, and the bullet pool.
package entity

import (
	"fmt"
	"reflect"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
)

// Component is a unit of behavior attached to an entity.
//
// Update advances state one tick. Draw emits visuals and must not mutate
// game state. OnCollision reacts to an overlap with other and may be called
// several times per tick, so it must be idempotent.
type Component interface {
	Update(ctx *Context)
	Draw(r platform.Renderer)
	OnCollision(ctx *Context, other Entity)
}

// Entity is a handle to an object stored in a Registry.
// The zero value refers to no entity.
type Entity struct {
	id  ecs.Entity
	reg *Registry
}

// IsZero reports whether e refers to no entity.
func (e Entity) IsZero() bool {
	return e.reg == nil
}

// ID returns the underlying ark entity.
func (e Entity) ID() ecs.Entity {
	return e.id
}

func (e Entity) transform() *Transform {
	return e.reg.transforms.Get(e.id)
}

func (e Entity) node() *Node {
	return e.reg.nodes.Get(e.id)
}

// Position returns the entity's center.
func (e Entity) Position() geom.Vec {
	return e.transform().Position
}

// SetPosition moves the entity.
func (e Entity) SetPosition(p geom.Vec) {
	e.transform().Position = p
}

// Rotation returns the entity's rotation in radians.
func (e Entity) Rotation() float64 {
	return e.transform().Rotation
}

// SetRotation sets the entity's rotation in radians.
func (e Entity) SetRotation(radians float64) {
	e.transform().Rotation = radians
}

// Tag returns the entity's classification.
func (e Entity) Tag() string {
	return e.node().Tag
}

// Active reports whether the entity takes part in the simulation.
func (e Entity) Active() bool {
	return e.node().Active
}

// SetActive toggles the entity's liveness.
func (e Entity) SetActive(active bool) {
	e.node().Active = active
}

// Circles returns the entity's collision probes. The slice must not be retained.
func (e Entity) Circles() []geom.Circle {
	return e.node().Circles
}

// AddCircle attaches a collision probe.
func (e Entity) AddCircle(c geom.Circle) {
	n := e.node()
	n.Circles = append(n.Circles, c)
}

// SetCircleCenter moves the i-th collision probe.
func (e Entity) SetCircleCenter(i int, center geom.Vec) {
	e.node().Circles[i].Center = center
}

// Components returns the attached components in attach order.
func (e Entity) Components() []Component {
	return e.node().Components
}

// AddComponent attaches c. Only one component per concrete type is allowed.
func (e Entity) AddComponent(c Component) error {
	n := e.node()
	t := reflect.TypeOf(c)
	for _, existing := range n.Components {
		if reflect.TypeOf(existing) == t {
			return fmt.Errorf("%w: %s on %q entity", ErrDuplicateComponent, t, n.Tag)
		}
	}
	n.Components = append(n.Components, c)
	return nil
}

// Get returns the component of type T attached to e.
func Get[T Component](e Entity) (T, error) {
	for _, c := range e.Components() {
		if found, ok := c.(T); ok {
			return found, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s on %q entity", ErrMissingComponent, reflect.TypeFor[T](), e.Tag())
}

// Update runs every component's Update in attach order.
func (e Entity) Update(ctx *Context) {
	for _, c := range e.Components() {
		c.Update(ctx)
	}
}

// Draw runs every component's Draw in attach order.
func (e Entity) Draw(r platform.Renderer) {
	for _, c := range e.Components() {
		c.Draw(r)
	}
}

// Collision notifies every component that e overlapped other.
func (e Entity) Collision(ctx *Context, other Entity) {
	for _, c := range e.Components() {
		c.OnCollision(ctx, other)
	}
}

// String describes the entity for logs.
func (e Entity) String() string {
	if e.IsZero() {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%q active=%v)", e.Tag(), e.Active())
}
