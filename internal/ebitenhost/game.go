// Package ebitenhost runs engine instances in an ebiten window: it measures
// the window as the engine's container, drives the frame queue from the game
// loop, replays display lists and turns keyboard, mouse and touch input into
// parameter changes.
package ebitenhost

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"sonoviz/internal/config"
	"sonoviz/internal/engine"
	"sonoviz/internal/modes"
	"sonoviz/internal/ui"
)

var colorBackground = color.NRGBA{R: 12, G: 14, B: 20, A: 255}

// Game adapts a Stage to ebiten.Game.
type Game struct {
	cfg      config.Config
	logger   *log.Logger
	registry *modes.Registry
	frames   *engine.FrameQueue
	stage    *engine.Stage
	panel    ui.Panel
	cues     *cuePlayer
	canvas   *screenCanvas

	outsideW, outsideH float64
	scale              float64
	tps                int

	input pointerState
}

// NewGame builds the host for cfg and mounts the configured mode.
func NewGame(cfg config.Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		cfg:      cfg,
		logger:   logger,
		registry: modes.Builtin(),
		frames:   engine.NewFrameQueue(),
		outsideW: float64(cfg.Window.Width),
		outsideH: float64(cfg.Window.Height),
		scale:    1,
		tps:      cfg.TPS,
		input:    pointerState{slider: -1},
	}
	if cfg.Audio.Enabled {
		g.cues = newCuePlayer(cfg.Audio.ClickWAV, logger)
	}
	g.stage = engine.NewStage(g, engine.Options{
		Sandbox:       cfg.Sandbox,
		Compact:       cfg.Compact,
		OnInteraction: g.cues.toggle,
		Frames:        g.frames,
		Registry:      g.registry,
		Logger:        logger,
		Debug:         cfg.Debug,
		Heights: engine.Heights{
			Regular:           cfg.Surface.RegularHeight,
			Compact:           cfg.Surface.CompactHeight,
			CompactBreakpoint: cfg.Surface.CompactBreakpoint,
		},
	})
	if _, err := g.stage.Select(modes.Mode(cfg.Mode)); err != nil {
		return nil, err
	}
	g.layoutPanel()
	return g, nil
}

// Measure reports the area above the slider panel in logical units.
func (g *Game) Measure() (float64, float64) {
	return g.outsideW, math.Max(0, g.outsideH-ui.PanelHeight)
}

// DeviceScale reports device pixels per logical unit.
func (g *Game) DeviceScale() float64 {
	return g.scale
}

// Close destroys the mounted instance.
func (g *Game) Close() {
	g.stage.Close()
}

// Update applies input, then runs the frames the instance requested.
func (g *Game) Update() error {
	if err := g.handleKeys(); err != nil {
		return err
	}
	g.layoutPanel()
	g.handlePointer()
	g.handleDebugControls()
	g.frames.Flush()
	return nil
}

// switchMode remounts the stage on the mode step entries away.
func (g *Game) switchMode(step int) error {
	current := g.stage.Current()
	if current == nil {
		return nil
	}
	next := g.registry.Next(current.Mode(), step)
	g.input.reset()
	inst, err := g.stage.Select(next)
	if err != nil {
		return fmt.Errorf("switching mode: %w", err)
	}
	g.logger.Printf("Switched to %s", inst.Descriptor().Title)
	g.cues.toggle()
	return nil
}

func (g *Game) layoutPanel() {
	inst := g.stage.Current()
	if inst == nil {
		return
	}
	g.panel.Layout(g.outsideW, inst.Surface().Height)
	g.panel.SetLabels(inst.Labels())
	g.panel.Status = statusLine(inst)
}

func statusLine(inst *engine.Instance) string {
	state := "playing"
	if !inst.Playing() {
		state = "paused"
	}
	line := fmt.Sprintf("%s (%s)  Tab mode  Space play/pause  H help  T telemetry", inst.Descriptor().Title, state)
	if inst.PointerDriven() {
		line += "  drag to steer"
	}
	return line
}

// Draw replays the latest display list and draws the slider panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	inst := g.stage.Current()
	if inst == nil {
		return
	}
	if g.canvas == nil {
		g.canvas = newScreenCanvas(screen, g.scale)
	}

	s := inst.Surface()
	if !s.Empty() {
		bw, bh := s.Backing()
		surface := screen.SubImage(image.Rect(0, 0, bw, bh)).(*ebiten.Image)
		g.canvas.reset(surface, g.scale)
		inst.DisplayList().Replay(g.canvas)
	}

	g.canvas.reset(screen, g.scale)
	g.panel.Draw(g.canvas, inst.Param(engine.Param1), inst.Param(engine.Param2))

	if g.cfg.Debug {
		g.drawDebug(screen, inst)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image, inst *engine.Instance) {
	tps := ebiten.ActualTPS()
	if tps < 0 {
		tps = 0
	}
	s := inst.Surface()
	bw, bh := s.Backing()
	debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f (target %d, +/-)\nFrame: %d (%d draws)\nSurface: %.0fx%.0f @%.2fx (%dx%d)",
		ebiten.ActualFPS(), tps, g.tps, inst.Frame(), inst.Draws(), s.Width, s.Height, s.Density, bw, bh)
	ebitenutil.DebugPrint(screen, debugMsg)
}

// Layout records the window size in logical units and returns the backing
// size so the surface is drawn at full device resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	g.outsideW = float64(outsideWidth)
	g.outsideH = float64(outsideHeight)
	g.scale = scale
	return int(math.Ceil(g.outsideW * scale)), int(math.Ceil(g.outsideH * scale))
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(cfg config.Config, logger *log.Logger) error {
	g, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
