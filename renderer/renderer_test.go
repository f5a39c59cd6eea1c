package renderer

import (
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/invaders/game"
	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestCatalog(t *testing.T) {
	c := newCatalog[geom.Vec]()

	a := c.add("a.png", geom.V(1, 2))
	b := c.add("b.png", geom.V(3, 4))
	if a != 1 || b != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", a, b)
	}
	if id, ok := c.lookup("b.png"); !ok || id != b {
		t.Errorf("lookup(b.png) = %d, %v", id, ok)
	}
	if _, ok := c.lookup("c.png"); ok {
		t.Error("lookup of unknown path succeeded")
	}
	for _, id := range []platform.TextureID{0, 3, -1} {
		if _, ok := c.get(id); ok {
			t.Errorf("get(%d) succeeded", id)
		}
	}
	if v, _ := c.get(b); v != geom.V(3, 4) {
		t.Errorf("get(%d) = %v", b, v)
	}
}

func TestHeadless_LoadTexture(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "sprites", "player.png"), 105, 90)

	clock := &platform.ManualClock{}
	h := NewHeadless(root, clock, 16)

	id, err := h.LoadTexture("sprites/player.png")
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if w, ht := h.TextureSize(id); w != 105 || ht != 90 {
		t.Errorf("TextureSize = %fx%f, want 105x90", w, ht)
	}
	again, err := h.LoadTexture("sprites/player.png")
	if err != nil || again != id {
		t.Errorf("second load = %d, %v, want %d", again, err, id)
	}

	if _, err := h.LoadTexture("sprites/missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing texture error = %v, want fs.ErrNotExist", err)
	}

	entries, err := fs.ReadDir(h.FS(), "sprites")
	if err != nil || len(entries) != 1 {
		t.Errorf("ReadDir(sprites) = %v, %v", entries, err)
	}
}

func TestHeadless_Frames(t *testing.T) {
	clock := &platform.ManualClock{}
	h := NewHeadless(t.TempDir(), clock, 16)

	for i := 0; i < 3; i++ {
		h.Clear()
		h.DrawTexture(1, geom.V(0, 0), 0)
		h.Present()
	}
	h.SetTitle("Space invaders - Delta: 0.96, Render: 16 ms")

	if clock.Ticks() != 48 {
		t.Errorf("clock = %d ms, want 48", clock.Ticks())
	}
	if h.Frames() != 3 || h.Draws() != 3 {
		t.Errorf("frames = %d draws = %d, want 3 and 3", h.Frames(), h.Draws())
	}
	if h.Title() != "Space invaders - Delta: 0.96, Render: 16 ms" {
		t.Errorf("title = %q", h.Title())
	}
}

func TestKeyMap(t *testing.T) {
	for _, k := range []platform.Key{platform.KeyLeft, platform.KeyRight, platform.KeySpace} {
		if _, ok := keyMap[k]; !ok {
			t.Errorf("key %v has no raylib binding", k)
		}
	}
}

func TestStatusText(t *testing.T) {
	got := StatusText(game.Status{Tick: 120, Delta: 0.96, RenderMS: 16, Enemies: 14, BulletsInUse: 6, BulletsCap: 30})
	want := "tick 120 | delta 0.96 | render 16 ms | enemies 14 | bullets 6/30"
	if got != want {
		t.Errorf("StatusText = %q, want %q", got, want)
	}
}
