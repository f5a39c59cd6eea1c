package components

import (
	"fmt"

	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/platform"
)

// SpriteRenderer draws a single texture at the container's transform.
type SpriteRenderer struct {
	container entity.Entity
	texture   platform.TextureID

	// Size of the texture, queried once at load.
	Width, Height float64
}

// NewSpriteRenderer loads the texture at path.
func NewSpriteRenderer(container entity.Entity, assets platform.Assets, path string) (*SpriteRenderer, error) {
	tex, err := assets.LoadTexture(path)
	if err != nil {
		return nil, fmt.Errorf("sprite renderer: %w", err)
	}
	w, h := assets.TextureSize(tex)
	return &SpriteRenderer{
		container: container,
		texture:   tex,
		Width:     w,
		Height:    h,
	}, nil
}

// Texture returns the sprite's texture handle.
func (s *SpriteRenderer) Texture() platform.TextureID {
	return s.texture
}

func (s *SpriteRenderer) Update(ctx *entity.Context) {}

func (s *SpriteRenderer) Draw(r platform.Renderer) {
	r.DrawTexture(s.texture, s.container.Position(), s.container.Rotation())
}

func (s *SpriteRenderer) OnCollision(ctx *entity.Context, other entity.Entity) {}
