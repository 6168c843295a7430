package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sonoviz/internal/config"
	"sonoviz/internal/engine"
)

const (
	nudgeStep      = 2.0
	tpsStep        = 10
	repeatDelay    = 24
	repeatInterval = 4
)

// pointerState tracks the press that owns the current drag, if any.
type pointerState struct {
	slider   int
	dragging bool
	touch    ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
}

func (p *pointerState) reset() {
	p.slider = -1
	p.dragging = false
	p.touching = false
}

// repeating reports a key press on its first tick and then at a steady rate
// while held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// handleKeys processes mode switching, overlay toggles and keyboard nudges.
func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = -1
		}
		if err := g.switchMode(step); err != nil {
			return err
		}
	}

	inst := g.stage.Current()
	if inst == nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		inst.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		inst.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		inst.ToggleTelemetry()
	}

	nudges := []struct {
		key   ebiten.Key
		param engine.Param
		delta float64
	}{
		{ebiten.KeyBracketLeft, engine.Param1, -nudgeStep},
		{ebiten.KeyBracketRight, engine.Param1, nudgeStep},
		{ebiten.KeySemicolon, engine.Param2, -nudgeStep},
		{ebiten.KeyQuote, engine.Param2, nudgeStep},
	}
	for _, n := range nudges {
		if !repeating(n.key) {
			continue
		}
		if err := inst.NudgeParam(n.param, n.delta); err != nil {
			return err
		}
		if inpututil.IsKeyJustPressed(n.key) {
			g.cues.param()
		}
	}
	return nil
}

// handlePointer routes mouse and touch presses to the sliders or, for
// pointer-driven modes, to the surface drag.
func (g *Game) handlePointer() {
	inst := g.stage.Current()
	if inst == nil {
		return
	}

	x, y, pressed, held, released := g.primaryPointer()
	switch {
	case pressed:
		if i := g.panel.Hit(x, y); i >= 0 {
			g.input.slider = i
			g.setSlider(inst, x)
			g.cues.param()
			return
		}
		g.input.dragging = inst.PointerDown(x, y)
	case held:
		if g.input.slider >= 0 {
			g.setSlider(inst, x)
			return
		}
		if g.input.dragging {
			g.input.dragging = inst.PointerMove(x, y)
		}
	case released:
		if g.input.slider >= 0 {
			g.input.slider = -1
			return
		}
		inst.PointerUp()
		g.input.dragging = false
	}
}

func (g *Game) setSlider(inst *engine.Instance, x float64) {
	p := engine.Param1
	if g.input.slider == 1 {
		p = engine.Param2
	}
	_ = inst.SetParam(p, g.panel.Sliders[g.input.slider].ValueAt(x))
}

// primaryPointer merges the left mouse button and the first active touch
// into one pointer in logical units.
func (g *Game) primaryPointer() (x, y float64, pressed, held, released bool) {
	if g.input.touching {
		if inpututil.IsTouchJustReleased(g.input.touch) {
			g.input.touching = false
			return 0, 0, false, false, true
		}
		x, y = g.logical(ebiten.TouchPosition(g.input.touch))
		return x, y, false, true, false
	}
	g.input.touchIDs = inpututil.AppendJustPressedTouchIDs(g.input.touchIDs[:0])
	if len(g.input.touchIDs) > 0 {
		g.input.touch = g.input.touchIDs[0]
		g.input.touching = true
		x, y = g.logical(ebiten.TouchPosition(g.input.touch))
		return x, y, true, false, false
	}

	x, y = g.logical(ebiten.CursorPosition())
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		return x, y, true, false, false
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		return x, y, false, false, true
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return x, y, false, true, false
	}
	return x, y, false, false, false
}

// logical converts backing pixels to logical units.
func (g *Game) logical(px, py int) (float64, float64) {
	return float64(px) / g.scale, float64(py) / g.scale
}

// handleDebugControls adjusts the tick rate with +/- in debug mode.
func (g *Game) handleDebugControls() {
	if !g.cfg.Debug {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustTPS(-tpsStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustTPS(tpsStep)
	}
}

// adjustTPS clamps the target tick rate within the configured bounds.
func (g *Game) adjustTPS(delta int) {
	g.tps += delta
	if g.tps < config.MinTPS {
		g.tps = config.MinTPS
	} else if g.tps > config.MaxTPS {
		g.tps = config.MaxTPS
	}
	ebiten.SetTPS(g.tps)
}
