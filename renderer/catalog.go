// Package renderer provides the raylib window backend, a windowless backend
// for headless runs, and a raygui debug HUD.
package renderer

import (
	"errors"

	"github.com/pthm-cable/invaders/platform"
)

// ErrTextureLoad is returned when raylib cannot decode a texture file.
var ErrTextureLoad = errors.New("texture could not be loaded")

// catalog maps asset paths to loaded items. IDs start at 1.
type catalog[T any] struct {
	items  []T
	byPath map[string]platform.TextureID
}

func newCatalog[T any]() *catalog[T] {
	return &catalog[T]{byPath: make(map[string]platform.TextureID)}
}

func (c *catalog[T]) lookup(path string) (platform.TextureID, bool) {
	id, ok := c.byPath[path]
	return id, ok
}

func (c *catalog[T]) add(path string, item T) platform.TextureID {
	c.items = append(c.items, item)
	id := platform.TextureID(len(c.items))
	c.byPath[path] = id
	return id
}

func (c *catalog[T]) get(id platform.TextureID) (T, bool) {
	if id < 1 || int(id) > len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[id-1], true
}

func (c *catalog[T]) len() int {
	return len(c.items)
}
