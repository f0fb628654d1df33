// Package main is a window viewer for the particle system.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose       Enable verbose logging (default off)
//	--seed <n>      Seed the particle sampler (0 = wall clock)
//
// Controls:
//
//	Left Click   - Red directional burst at cursor
//	Right Click  - Green omnidirectional burst at cursor
//	F            - Permanent stream (fountain) at cursor
//	T            - Timed stream (puff) at cursor
//	X            - Remove the newest emitter
//	R            - Remove all emitters
//	P            - Toggle pause
//	H            - Toggle HUD
//	Q/Escape     - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/sparks/internal/particle"
	"github.com/decker502/sparks/pkg/components"
	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/entities"
	"github.com/decker502/sparks/pkg/input"
	"github.com/decker502/sparks/pkg/render"
	"github.com/decker502/sparks/pkg/systems"
	"github.com/decker502/sparks/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	seedFlag    = flag.Uint64("seed", 0, "Seed for the particle sampler (0 = wall clock)")
)

var errQuit = errors.New("quit requested")

// ParticleViewer implements ebiten.Game for the particle viewer
type ParticleViewer struct {
	particleSystem *systems.ParticleSystem
	sampler        *particle.Sampler
	presets        *config.PresetConfig
	renderer       *render.PointRenderer
	clock          *utils.FrameClock

	// Emitters spawned by the user, newest last (used by X)
	spawned []uint16

	// Reused per frame
	points []components.Vertex
	clicks []input.Click

	paused        bool
	showHUD       bool
	statusMessage string
}

// NewParticleViewer creates a viewer with the compiled-in presets
func NewParticleViewer(seed uint64) (*ParticleViewer, error) {
	presets, err := config.DefaultPresets()
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}

	sampler := particle.NewTimeSeededSampler()
	if seed != 0 {
		sampler = particle.NewSampler(seed)
	}

	return &ParticleViewer{
		particleSystem: systems.NewParticleSystem(sampler),
		sampler:        sampler,
		presets:        presets,
		renderer:       render.NewPointRenderer(config.PointSize),
		clock:          utils.NewFrameClock(config.MaxFrameDelta),
		showHUD:        true,
		statusMessage:  "Click to spawn particles",
	}, nil
}

// Update handles input and advances the particle system
func (v *ParticleViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.paused = !v.paused
		if v.paused {
			v.statusMessage = "PAUSED - Press P to resume"
		} else {
			v.clock.Reset()
			v.statusMessage = "Resumed"
		}
		log.Printf("[Viewer] paused=%v", v.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.showHUD = !v.showHUD
	}

	v.clicks = input.AppendClicks(v.clicks[:0])
	for _, click := range v.clicks {
		name := config.LeftClickPreset
		if click.Button == input.PointerSecondary {
			name = config.RightClickPreset
		}
		v.spawn(name, float64(click.X), float64(click.Y))
	}

	cx, cy := ebiten.CursorPosition()
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.spawn(config.StreamKeyPreset, float64(cx), float64(cy))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		v.spawn(config.TimedKeyPreset, float64(cx), float64(cy))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		v.removeNewest()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.particleSystem.RemoveAll()
		v.spawned = v.spawned[:0]
		v.statusMessage = "Cleared all emitters"
	}

	if v.paused {
		return nil
	}
	v.particleSystem.Update(v.clock.Tick())

	return nil
}

// spawn adds an emitter from the named preset
func (v *ParticleViewer) spawn(name string, x, y float64) {
	id, err := entities.CreateParticleEffect(v.particleSystem, v.presets, v.sampler, name, x, y)
	if err != nil {
		log.Printf("[Viewer] Failed to spawn %s: %v", name, err)
		v.statusMessage = fmt.Sprintf("Error: %v", err)
		return
	}
	v.spawned = append(v.spawned, id)
	v.statusMessage = fmt.Sprintf("Spawned: %s (#%d)", name, id)
}

// removeNewest removes the most recently spawned emitter that is still alive
func (v *ParticleViewer) removeNewest() {
	for len(v.spawned) > 0 {
		id := v.spawned[len(v.spawned)-1]
		v.spawned = v.spawned[:len(v.spawned)-1]

		if emitter, ok := v.particleSystem.Emitter(id); ok && emitter.Alive {
			v.particleSystem.Remove(id)
			v.statusMessage = fmt.Sprintf("Removed emitter #%d", id)
			return
		}
	}
	v.statusMessage = "Nothing to remove"
}

// Draw renders the particles and the HUD
func (v *ParticleViewer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	v.points = v.particleSystem.AppendVertices(v.points[:0])
	v.renderer.Draw(screen, v.points)

	if v.showHUD {
		v.drawHUD(screen)
	}
}

func (v *ParticleViewer) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  Emitters: %d  Points: %d",
		ebiten.ActualFPS(), v.particleSystem.EmitterCount(), len(v.points)), 10, 10)
	ebitenutil.DebugPrintAt(screen, v.statusMessage, 10, 30)

	controls := []string{
		"L/R Click = Burst  F = Fountain  T = Puff",
		"X = Remove newest  R = Clear  P = Pause  H = HUD  Q = Quit",
	}
	y := config.ScreenHeight - len(controls)*20 - 10
	for i, line := range controls {
		ebitenutil.DebugPrintAt(screen, line, 10, y+i*20)
	}
}

// Layout returns the viewer's logical screen size
func (v *ParticleViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flag.Parse()

	// 默认静音运行，如需详细日志传入 --verbose
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	viewer, err := NewParticleViewer(*seedFlag)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("Failed to initialize viewer: ", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Particles")
	ebiten.SetTPS(config.TargetFPS)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, errQuit) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
