// Package platform defines the capabilities the simulation consumes from the
// host: drawing, presenting frames, keyboard state, asset loading and time.
package platform

import (
	"io/fs"

	"github.com/pthm-cable/invaders/geom"
)

// TextureID is an opaque handle to a loaded texture.
type TextureID int

// Key is one of the keys the simulation reads.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeySpace
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	default:
		return "unknown"
	}
}

// TextureSizer reports the pixel size of a loaded texture.
type TextureSizer interface {
	TextureSize(id TextureID) (width, height float64)
}

// Renderer draws textures.
type Renderer interface {
	TextureSizer
	// DrawTexture draws the texture centered at pos, rotated about its own
	// center by rotation radians.
	DrawTexture(id TextureID, pos geom.Vec, rotation float64)
}

// Display owns the frame the renderer draws into.
type Display interface {
	Clear()
	Present()
	SetTitle(title string)
}

// InputSource reports keyboard state.
type InputSource interface {
	IsKeyDown(k Key) bool
	// PollQuit drains pending events and reports whether a quit was requested.
	PollQuit() bool
}

// Assets loads textures by path relative to an asset root.
type Assets interface {
	TextureSizer
	LoadTexture(path string) (TextureID, error)
	// FS exposes the asset root for directory listings.
	FS() fs.FS
}

// Clock returns milliseconds elapsed since an arbitrary start.
type Clock interface {
	Ticks() uint64
}
