package renderer

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
)

// Headless runs without a window. Textures are decoded once for their size
// and dropped; each Present advances the clock by one simulated frame.
type Headless struct {
	root    string
	fsys    fs.FS
	sizes   *catalog[geom.Vec]
	clock   *platform.ManualClock
	frameMS uint64

	frames int
	draws  int
	title  string
}

// NewHeadless creates a windowless backend reading assets from root.
func NewHeadless(root string, clock *platform.ManualClock, frameMS uint64) *Headless {
	return &Headless{
		root:    root,
		fsys:    os.DirFS(root),
		sizes:   newCatalog[geom.Vec](),
		clock:   clock,
		frameMS: frameMS,
	}
}

// LoadTexture implements platform.Assets.
func (h *Headless) LoadTexture(path string) (platform.TextureID, error) {
	if id, ok := h.sizes.lookup(path); ok {
		return id, nil
	}
	full := filepath.Join(h.root, filepath.FromSlash(path))
	if _, err := os.Stat(full); err != nil {
		return 0, fmt.Errorf("loading texture %s: %w", path, err)
	}
	img := rl.LoadImage(full)
	if img == nil || img.Width == 0 || img.Height == 0 {
		return 0, fmt.Errorf("loading texture %s: %w", path, ErrTextureLoad)
	}
	size := geom.V(float64(img.Width), float64(img.Height))
	rl.UnloadImage(img)
	return h.sizes.add(path, size), nil
}

// TextureSize implements platform.TextureSizer.
func (h *Headless) TextureSize(id platform.TextureID) (float64, float64) {
	size, _ := h.sizes.get(id)
	return size.X, size.Y
}

// FS implements platform.Assets.
func (h *Headless) FS() fs.FS {
	return h.fsys
}

// DrawTexture counts the draw.
func (h *Headless) DrawTexture(id platform.TextureID, pos geom.Vec, rotation float64) {
	h.draws++
}

func (h *Headless) Clear() {}

// Present advances the clock by one frame.
func (h *Headless) Present() {
	h.frames++
	h.clock.Advance(h.frameMS)
}

// SetTitle keeps the title; it is logged at debug level.
func (h *Headless) SetTitle(title string) {
	h.title = title
	slog.Debug("title", "title", title)
}

// Title returns the last title set.
func (h *Headless) Title() string {
	return h.title
}

// Frames returns the number of presented frames.
func (h *Headless) Frames() int {
	return h.frames
}

// Draws returns the number of draw calls so far.
func (h *Headless) Draws() int {
	return h.draws
}
