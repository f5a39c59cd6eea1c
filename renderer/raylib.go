package renderer

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
)

var keyMap = map[platform.Key]int32{
	platform.KeyLeft:  rl.KeyLeft,
	platform.KeyRight: rl.KeyRight,
	platform.KeySpace: rl.KeySpace,
}

// Raylib is the windowed backend. It implements platform.Renderer,
// platform.Display, platform.InputSource and platform.Assets.
type Raylib struct {
	root     string
	fsys     fs.FS
	textures *catalog[rl.Texture2D]
}

// OpenWindow creates the game window sized from cfg.
func OpenWindow(cfg *config.Config) (*Raylib, error) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("renderer: window could not be created")
	}
	rl.SetTargetFPS(int32(cfg.Screen.TargetTicksSec))

	return &Raylib{
		root:     cfg.Assets.Root,
		fsys:     os.DirFS(cfg.Assets.Root),
		textures: newCatalog[rl.Texture2D](),
	}, nil
}

// Close unloads every texture and closes the window.
func (r *Raylib) Close() {
	for _, tex := range r.textures.items {
		rl.UnloadTexture(tex)
	}
	rl.CloseWindow()
}

// LoadTexture loads path relative to the asset root. Repeated loads of the
// same path share one texture.
func (r *Raylib) LoadTexture(path string) (platform.TextureID, error) {
	if id, ok := r.textures.lookup(path); ok {
		return id, nil
	}
	full := filepath.Join(r.root, filepath.FromSlash(path))
	if _, err := os.Stat(full); err != nil {
		return 0, fmt.Errorf("loading texture %s: %w", path, err)
	}
	tex := rl.LoadTexture(full)
	if tex.ID == 0 {
		return 0, fmt.Errorf("loading texture %s: %w", path, ErrTextureLoad)
	}
	return r.textures.add(path, tex), nil
}

// TextureSize implements platform.TextureSizer.
func (r *Raylib) TextureSize(id platform.TextureID) (float64, float64) {
	tex, ok := r.textures.get(id)
	if !ok {
		return 0, 0
	}
	return float64(tex.Width), float64(tex.Height)
}

// FS implements platform.Assets.
func (r *Raylib) FS() fs.FS {
	return r.fsys
}

// DrawTexture draws the texture centered at pos. raylib rotates in degrees.
func (r *Raylib) DrawTexture(id platform.TextureID, pos geom.Vec, rotation float64) {
	tex, ok := r.textures.get(id)
	if !ok {
		return
	}
	w, h := float32(tex.Width), float32(tex.Height)
	src := rl.Rectangle{Width: w, Height: h}
	dst := rl.Rectangle{X: float32(pos.X), Y: float32(pos.Y), Width: w, Height: h}
	origin := rl.Vector2{X: w / 2, Y: h / 2}
	rl.DrawTexturePro(tex, src, dst, origin, float32(rotation*180/math.Pi), rl.White)
}

// Clear starts a frame on a white background.
func (r *Raylib) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)
}

// Present ends the frame. With a target FPS set, raylib waits here.
func (r *Raylib) Present() {
	rl.EndDrawing()
}

// SetTitle implements platform.Display.
func (r *Raylib) SetTitle(title string) {
	rl.SetWindowTitle(title)
}

// IsKeyDown implements platform.InputSource.
func (r *Raylib) IsKeyDown(k platform.Key) bool {
	key, ok := keyMap[k]
	return ok && rl.IsKeyDown(key)
}

// PollQuit reports a window close request or escape key.
func (r *Raylib) PollQuit() bool {
	return rl.WindowShouldClose()
}
