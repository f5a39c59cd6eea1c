package entity

import "errors"

var (
	// ErrDuplicateComponent is returned when attaching a second component of
	// a type the entity already has.
	ErrDuplicateComponent = errors.New("duplicate component")

	// ErrMissingComponent is returned when looking up a component type the
	// entity was assembled without.
	ErrMissingComponent = errors.New("missing component")
)
