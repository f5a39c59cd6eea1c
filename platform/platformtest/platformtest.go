// Package platformtest provides in-memory platform implementations for tests.
package platformtest

import (
	"fmt"
	"io/fs"
	"testing/fstest"

	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
)

// Size is a texture size in pixels.
type Size struct {
	W, H float64
}

// Assets serves textures from an in-memory file system.
type Assets struct {
	Files fstest.MapFS
	// Sizes maps a file path to its texture size. Unlisted files use Default.
	Sizes   map[string]Size
	Default Size

	loaded []string
}

// NewAssets returns assets backed by the given file paths.
func NewAssets(paths ...string) *Assets {
	a := &Assets{
		Files:   fstest.MapFS{},
		Sizes:   make(map[string]Size),
		Default: Size{W: 16, H: 16},
	}
	for _, p := range paths {
		a.Add(p, a.Default)
	}
	return a
}

// Add registers a file with the given size.
func (a *Assets) Add(path string, size Size) {
	a.Files[path] = &fstest.MapFile{Data: []byte(path)}
	a.Sizes[path] = size
}

// LoadTexture implements platform.Assets.
func (a *Assets) LoadTexture(path string) (platform.TextureID, error) {
	if _, ok := a.Files[path]; !ok {
		return 0, fmt.Errorf("loading texture %q: %w", path, fs.ErrNotExist)
	}
	a.loaded = append(a.loaded, path)
	return platform.TextureID(len(a.loaded) - 1), nil
}

// TextureSize implements platform.TextureSizer.
func (a *Assets) TextureSize(id platform.TextureID) (float64, float64) {
	path := a.Path(id)
	if s, ok := a.Sizes[path]; ok {
		return s.W, s.H
	}
	return a.Default.W, a.Default.H
}

// FS implements platform.Assets.
func (a *Assets) FS() fs.FS {
	return a.Files
}

// Path returns the file a texture was loaded from.
func (a *Assets) Path(id platform.TextureID) string {
	if int(id) < 0 || int(id) >= len(a.loaded) {
		return ""
	}
	return a.loaded[id]
}

// Loaded returns the number of textures loaded so far.
func (a *Assets) Loaded() int {
	return len(a.loaded)
}

// GameAssets returns the sprite layout the game factory expects.
func GameAssets() *Assets {
	a := NewAssets()
	a.Add("sprites/player.bmp", Size{W: 105, H: 105})
	a.Add("sprites/bullet.bmp", Size{W: 16, H: 16})
	for i := 0; i < 4; i++ {
		a.Add(fmt.Sprintf("sprites/enemy/idle/%02d.bmp", i), Size{W: 105, H: 105})
	}
	for i := 0; i < 6; i++ {
		a.Add(fmt.Sprintf("sprites/enemy/destroy/%02d.bmp", i), Size{W: 105, H: 105})
	}
	return a
}

// DrawCall is one recorded DrawTexture invocation.
type DrawCall struct {
	Texture  platform.TextureID
	Pos      geom.Vec
	Rotation float64
}

// Recorder is a Renderer and Display that records what it was asked to do.
type Recorder struct {
	Sizer platform.TextureSizer

	Draws    []DrawCall
	Clears   int
	Presents int
	Titles   []string

	// OnPresent runs after each Present, e.g. to advance a manual clock.
	OnPresent func()
}

// NewRecorder returns a recorder that sizes textures with sizer.
func NewRecorder(sizer platform.TextureSizer) *Recorder {
	return &Recorder{Sizer: sizer}
}

// DrawTexture implements platform.Renderer.
func (r *Recorder) DrawTexture(id platform.TextureID, pos geom.Vec, rotation float64) {
	r.Draws = append(r.Draws, DrawCall{Texture: id, Pos: pos, Rotation: rotation})
}

// TextureSize implements platform.TextureSizer.
func (r *Recorder) TextureSize(id platform.TextureID) (float64, float64) {
	if r.Sizer == nil {
		return 0, 0
	}
	return r.Sizer.TextureSize(id)
}

// Clear implements platform.Display.
func (r *Recorder) Clear() {
	r.Clears++
}

// Present implements platform.Display.
func (r *Recorder) Present() {
	r.Presents++
	if r.OnPresent != nil {
		r.OnPresent()
	}
}

// SetTitle implements platform.Display.
func (r *Recorder) SetTitle(title string) {
	r.Titles = append(r.Titles, title)
}

// LastTitle returns the most recent title, or "".
func (r *Recorder) LastTitle() string {
	if len(r.Titles) == 0 {
		return ""
	}
	return r.Titles[len(r.Titles)-1]
}

// Input is a scripted InputSource.
type Input struct {
	Down map[platform.Key]bool
	Quit bool
	// QuitAfter requests quit on the Nth poll when > 0.
	QuitAfter int

	polls int
}

// NewInput returns input with no keys held.
func NewInput() *Input {
	return &Input{Down: make(map[platform.Key]bool)}
}

// Press holds a key down.
func (in *Input) Press(k platform.Key) {
	in.Down[k] = true
}

// Release lets a key go.
func (in *Input) Release(k platform.Key) {
	delete(in.Down, k)
}

// IsKeyDown implements platform.InputSource.
func (in *Input) IsKeyDown(k platform.Key) bool {
	return in.Down[k]
}

// PollQuit implements platform.InputSource.
func (in *Input) PollQuit() bool {
	in.polls++
	if in.QuitAfter > 0 && in.polls >= in.QuitAfter {
		return true
	}
	return in.Quit
}

// Polls returns how many times PollQuit was called.
func (in *Input) Polls() int {
	return in.polls
}
