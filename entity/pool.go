package entity

import "fmt"

// Pool is a fixed set of reusable entities. It never grows.
type Pool struct {
	members []Entity
}

// NewPool builds size entities with create. create is expected to register
// each entity in a Registry and leave it inactive.
func NewPool(size int, create func() (Entity, error)) (*Pool, error) {
	p := &Pool{members: make([]Entity, 0, size)}
	for i := 0; i < size; i++ {
		e, err := create()
		if err != nil {
			return nil, fmt.Errorf("creating pool member %d: %w", i, err)
		}
		p.members = append(p.members, e)
	}
	return p, nil
}

// Acquire returns the first inactive member. The caller must reset position,
// rotation and activate it. ok is false when every member is in use.
func (p *Pool) Acquire() (e Entity, ok bool) {
	for _, m := range p.members {
		if !m.Active() {
			return m, true
		}
	}
	return Entity{}, false
}

// InUse counts active members.
func (p *Pool) InUse() int {
	n := 0
	for _, m := range p.members {
		if m.Active() {
			n++
		}
	}
	return n
}

// Cap returns the pool size.
func (p *Pool) Cap() int {
	return len(p.members)
}

// Members returns the pooled entities.
func (p *Pool) Members() []Entity {
	return p.members
}
