package term

import (
	"image/color"
	"testing"

	"github.com/decker502/sparks/pkg/components"
	"github.com/decker502/sparks/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminalRenderer_Draw(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(640, 480)

	r.Draw(screen, []components.Vertex{
		{Position: components.Vec2{X: 0, Y: 0}, Color: color.NRGBA{R: 255, A: 255}},
		{Position: components.Vec2{X: 639, Y: 479}, Color: color.NRGBA{G: 255, A: 100}},
		{Position: components.Vec2{X: 320, Y: 240}, Color: components.Transparent},
		{Position: components.Vec2{X: -5, Y: 10}, Color: color.NRGBA{B: 255, A: 255}},
		{Position: components.Vec2{X: 8, Y: 480 - 8}, Color: color.NRGBA{A: 255}},
	})

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != '@' {
		t.Errorf("Expected '@' at (0, 0), got %q", mainc)
	}
	if want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)); style != want {
		t.Errorf("Expected red foreground at (0, 0), got %v", style)
	}

	// Alpha 100 → '+', colour faded towards black
	mainc, _, style, _ = screen.GetContent(79, 23)
	if mainc != '+' {
		t.Errorf("Expected '+' at (79, 23), got %q", mainc)
	}
	if want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 100, 0)); style != want {
		t.Errorf("Expected faded green foreground at (79, 23), got %v", style)
	}

	// Transparent and black points leave their cells untouched
	if mainc, _, _, _ := screen.GetContent(40, 12); mainc != ' ' && mainc != 0 {
		t.Errorf("Expected empty cell at (40, 12), got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(1, 23); mainc != ' ' && mainc != 0 {
		t.Errorf("Expected empty cell at (1, 23) for a black point, got %q", mainc)
	}
}

// maxLifetimeSampler launches straight right at full speed with the longest lifetime
type maxLifetimeSampler struct{}

func (maxLifetimeSampler) SampleAngle(directional bool, base, deviation float64) float64 { return 0 }
func (maxLifetimeSampler) SampleSpeed(maxSpeed float64) float64 { return maxSpeed }
func (maxLifetimeSampler) SampleLifetime(min, max float64) float64 { return max }

// TestTerminalRenderer_UnlitStreamIsInvisible tests that stream particles stay hidden until their first respawn
func TestTerminalRenderer_UnlitStreamIsInvisible(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(640, 480)
	ps := systems.NewParticleSystem(maxLifetimeSampler{})

	_, err := ps.Add(components.EmitterParams{
		Capacity:    20,
		Position:    components.Vec2{X: 320, Y: 240},
		Color:       color.NRGBA{R: 255, A: 255},
		Speed:       0,
		MinLifetime: 0.5,
		MaxLifetime: 2,
		Permanent:   true,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	ps.Update(0.016)
	points := ps.CollectVertices()
	if points[0].Color.A == 0 {
		t.Fatal("Unlit stream particles should already carry a fading alpha")
	}

	r.Draw(screen, points)
	if mainc, _, style, _ := screen.GetContent(40, 12); mainc != ' ' && mainc != 0 {
		t.Errorf("Expected empty cell before the first respawn, got %q (%v)", mainc, style)
	}

	// Initial lifetime 2s expires: particles respawn lit at the origin
	ps.Update(2.0)
	screen.Clear()
	r.Draw(screen, ps.CollectVertices())

	mainc, _, style, _ := screen.GetContent(40, 12)
	if mainc != '@' {
		t.Errorf("Expected '@' after respawn, got %q", mainc)
	}
	if want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)); style != want {
		t.Errorf("Expected red foreground after respawn, got %v", style)
	}
}

func TestTerminalRenderer_WorldToCell(t *testing.T) {
	r := NewTerminalRenderer(640, 480)

	tests := []struct {
		name   string
		pos    components.Vec2
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"Origin", components.Vec2{X: 0, Y: 0}, 0, 0, true},
		{"Centre", components.Vec2{X: 320, Y: 240}, 40, 12, true},
		{"Last pixel", components.Vec2{X: 639.9, Y: 479.9}, 79, 23, true},
		{"Left of screen", components.Vec2{X: -1, Y: 10}, 0, 0, false},
		{"Below screen", components.Vec2{X: 10, Y: 480}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := r.WorldToCell(tt.pos, 80, 24)
			if ok != tt.wantOK || x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected (%d, %d, %v), got (%d, %d, %v)", tt.wantX, tt.wantY, tt.wantOK, x, y, ok)
			}
		})
	}
}

func TestTerminalRenderer_CellToWorldRoundTrip(t *testing.T) {
	r := NewTerminalRenderer(640, 480)

	for _, cell := range [][2]int{{0, 0}, {40, 12}, {79, 23}} {
		pos := r.CellToWorld(cell[0], cell[1], 80, 24)
		x, y, ok := r.WorldToCell(pos, 80, 24)
		if !ok || x != cell[0] || y != cell[1] {
			t.Errorf("Cell %v: round trip gave (%d, %d, %v)", cell, x, y, ok)
		}
	}
}

func TestGlyphForAlpha(t *testing.T) {
	tests := []struct {
		alpha uint8
		want  rune
	}{
		{255, '@'},
		{193, '@'},
		{192, '*'},
		{129, '*'},
		{128, '+'},
		{65, '+'},
		{64, '.'},
		{1, '.'},
	}

	for _, tt := range tests {
		if got := glyphForAlpha(tt.alpha); got != tt.want {
			t.Errorf("glyphForAlpha(%d): expected %q, got %q", tt.alpha, tt.want, got)
		}
	}
}
