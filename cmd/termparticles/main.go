// Package main is a terminal viewer for the particle system.
//
// Usage:
//
//	go run ./cmd/termparticles [flags]
//
// Flags:
//
//	--log <file>    Write logs to file (the terminal is owned by the viewer)
//	--seed <n>      Seed the particle sampler (0 = wall clock)
//
// Controls are the same as the window viewer: left/right click spawn bursts,
// F/T spawn streams at the last clicked cell, X removes the newest emitter,
// R clears, P pauses, H toggles the HUD, Q/Escape quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/sparks/internal/particle"
	"github.com/decker502/sparks/pkg/components"
	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/entities"
	"github.com/decker502/sparks/pkg/render/term"
	"github.com/decker502/sparks/pkg/systems"
	"github.com/decker502/sparks/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

var (
	logFlag  = flag.String("log", "", "Write logs to this file")
	seedFlag = flag.Uint64("seed", 0, "Seed for the particle sampler (0 = wall clock)")
)

// TerminalViewer runs the particle system inside a tcell screen
type TerminalViewer struct {
	screen         tcell.Screen
	particleSystem *systems.ParticleSystem
	sampler        *particle.Sampler
	presets        *config.PresetConfig
	renderer       *term.TerminalRenderer
	clock          *utils.FrameClock

	spawned []uint16
	points  []components.Vertex

	// Mouse buttons held during the previous event, to detect presses
	lastButtons tcell.ButtonMask
	cursor      components.Vec2

	paused        bool
	showHUD       bool
	statusMessage string
}

// NewTerminalViewer initializes the screen and the particle system
func NewTerminalViewer(seed uint64) (*TerminalViewer, error) {
	presets, err := config.DefaultPresets()
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	sampler := particle.NewTimeSeededSampler()
	if seed != 0 {
		sampler = particle.NewSampler(seed)
	}

	return &TerminalViewer{
		screen:         screen,
		particleSystem: systems.NewParticleSystem(sampler),
		sampler:        sampler,
		presets:        presets,
		renderer:       term.NewTerminalRenderer(config.ScreenWidth, config.ScreenHeight),
		clock:          utils.NewFrameClock(config.MaxFrameDelta),
		cursor:         components.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
		showHUD:        true,
		statusMessage:  "Click to spawn particles",
	}, nil
}

// handleEvent processes one input event; it returns false when the viewer should quit
func (v *TerminalViewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons &^ v.lastButtons
		v.lastButtons = buttons

		cx, cy := ev.Position()
		cols, rows := v.screen.Size()
		v.cursor = v.renderer.CellToWorld(cx, cy, cols, rows)

		if pressed&tcell.Button1 != 0 {
			v.spawn(config.LeftClickPreset)
		}
		if pressed&tcell.Button2 != 0 {
			v.spawn(config.RightClickPreset)
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

func (v *TerminalViewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'f', 'F':
		v.spawn(config.StreamKeyPreset)
	case 't', 'T':
		v.spawn(config.TimedKeyPreset)
	case 'x', 'X':
		v.removeNewest()
	case 'r', 'R':
		v.particleSystem.RemoveAll()
		v.spawned = v.spawned[:0]
		v.statusMessage = "Cleared all emitters"
	case 'p', 'P':
		v.paused = !v.paused
		if !v.paused {
			v.clock.Reset()
		}
		log.Printf("[Viewer] paused=%v", v.paused)
	case 'h', 'H':
		v.showHUD = !v.showHUD
	}
	return true
}

// spawn adds an emitter from the named preset at the last pointer position
func (v *TerminalViewer) spawn(name string) {
	id, err := entities.CreateParticleEffect(v.particleSystem, v.presets, v.sampler, name, v.cursor.X, v.cursor.Y)
	if err != nil {
		log.Printf("[Viewer] Failed to spawn %s: %v", name, err)
		v.statusMessage = fmt.Sprintf("Error: %v", err)
		return
	}
	v.spawned = append(v.spawned, id)
	v.statusMessage = fmt.Sprintf("Spawned: %s (#%d)", name, id)
}

// removeNewest removes the most recently spawned emitter that is still alive
func (v *TerminalViewer) removeNewest() {
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

func (v *TerminalViewer) draw() {
	v.screen.Clear()

	v.points = v.particleSystem.AppendVertices(v.points[:0])
	v.renderer.Draw(v.screen, v.points)

	if v.showHUD {
		hud := fmt.Sprintf("Emitters: %d  Points: %d  %s", v.particleSystem.EmitterCount(), len(v.points), v.statusMessage)
		if v.paused {
			hud += "  [PAUSED]"
		}
		drawText(v.screen, 0, 0, hud, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}

	v.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *TerminalViewer) run() {
	ticker := time.NewTicker(time.Second / config.TargetFPS)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			dt := v.clock.Tick()
			if !v.paused {
				v.particleSystem.Update(dt)
			}
			v.draw()
		}
	}
}

func main() {
	flag.Parse()

	// tcell 占用终端，日志只能写入文件
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	viewer, err := NewTerminalViewer(*seedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.screen.Fini()

	viewer.run()
}
