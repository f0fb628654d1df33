// Package term draws render points onto a tcell terminal screen.
package term

import (
	"image/color"

	"github.com/decker502/sparks/pkg/components"
	"github.com/gdamore/tcell/v2"
)

// TerminalRenderer maps a world of worldWidth×worldHeight pixels onto the
// cells of a terminal screen. Later points overwrite earlier ones in the
// same cell.
type TerminalRenderer struct {
	worldWidth  float64
	worldHeight float64
}

// NewTerminalRenderer creates a renderer for the given world size.
func NewTerminalRenderer(worldWidth, worldHeight float64) *TerminalRenderer {
	return &TerminalRenderer{
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
	}
}

// Draw puts every visible point onto screen. The caller clears and shows the screen.
//
// Points that fade to black are skipped, including unlit stream particles
// waiting for their first respawn, so the terminal background shows through.
func (r *TerminalRenderer) Draw(screen tcell.Screen, points []components.Vertex) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	for _, p := range points {
		cr, cg, cb := fadeOverBlack(p.Color)
		if cr == 0 && cg == 0 && cb == 0 {
			continue
		}
		cx, cy, ok := r.WorldToCell(p.Position, cols, rows)
		if !ok {
			continue
		}
		screen.SetContent(cx, cy, glyphForAlpha(p.Color.A), nil, tcell.StyleDefault.Foreground(tcell.NewRGBColor(cr, cg, cb)))
	}
}

// WorldToCell returns the cell containing pos, or ok=false if pos is off screen.
func (r *TerminalRenderer) WorldToCell(pos components.Vec2, cols, rows int) (cx, cy int, ok bool) {
	if !(pos.X >= 0 && pos.X < r.worldWidth && pos.Y >= 0 && pos.Y < r.worldHeight) {
		return 0, 0, false
	}
	cx = int(pos.X * float64(cols) / r.worldWidth)
	cy = int(pos.Y * float64(rows) / r.worldHeight)
	return min(cx, cols-1), min(cy, rows-1), true
}

// CellToWorld returns the world position at the centre of a cell. Used to
// place emitters where the mouse was clicked.
func (r *TerminalRenderer) CellToWorld(cx, cy, cols, rows int) components.Vec2 {
	return components.Vec2{
		X: (float64(cx) + 0.5) * r.worldWidth / float64(cols),
		Y: (float64(cy) + 0.5) * r.worldHeight / float64(rows),
	}
}

// glyphForAlpha picks a denser glyph for more opaque points.
func glyphForAlpha(a uint8) rune {
	switch {
	case a > 192:
		return '@'
	case a > 128:
		return '*'
	case a > 64:
		return '+'
	default:
		return '.'
	}
}

// fadeOverBlack blends c over a black background.
func fadeOverBlack(c color.NRGBA) (r, g, b int32) {
	a := int32(c.A)
	return int32(c.R) * a / 255, int32(c.G) * a / 255, int32(c.B) * a / 255
}
