package renderer

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/invaders/game"
)

const hudHeight = 24

// HUD draws a raygui status bar along the bottom of the window.
type HUD struct {
	bounds rl.Rectangle
}

// NewHUD creates a status bar spanning a window of the given size.
func NewHUD(width, height int) *HUD {
	return &HUD{bounds: rl.Rectangle{
		Y:      float32(height - hudHeight),
		Width:  float32(width),
		Height: hudHeight,
	}}
}

// DrawOverlay implements game.Overlay.
func (h *HUD) DrawOverlay(s game.Status) {
	gui.StatusBar(h.bounds, StatusText(s))
}

// StatusText formats the status bar line.
func StatusText(s game.Status) string {
	return fmt.Sprintf("tick %d | delta %.2f | render %d ms | enemies %d | bullets %d/%d",
		s.Tick, s.Delta, s.RenderMS, s.Enemies, s.BulletsInUse, s.BulletsCap)
}
