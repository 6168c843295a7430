// Package engine hosts one visualization instance: its parameters, surface,
// frame loop, pointer adapter and overlay. Hosts create an Instance per
// mounted view and destroy it when the view goes away.
package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"sonoviz/internal/draw"
	"sonoviz/internal/modes"
)

var (
	ErrNilContainer = errors.New("nil container")
	ErrNoFrames     = errors.New("nil frame source")
	ErrDestroyed    = errors.New("instance destroyed")
	ErrNoFallback   = errors.New("registry has no fallback mode")
)

// Container is the host box the surface is laid out in.
type Container interface {
	// Measure returns the container size in logical units.
	Measure() (w, h float64)
	// DeviceScale returns device pixels per logical unit.
	DeviceScale() float64
}

// Options configure Create.
type Options struct {
	Mode modes.Mode
	// Sandbox fills the container and shows telemetry by default.
	Sandbox bool
	// Compact forces the smaller fixed height.
	Compact bool
	// OnInteraction is notified of play/pause, help and telemetry toggles.
	OnInteraction func()

	Frames   FrameSource
	Registry *modes.Registry
	Logger   *log.Logger
	Heights  Heights
	Debug    bool
}

// Instance is a mounted visualization.
type Instance struct {
	id        uuid.UUID
	container Container
	desc      modes.Descriptor

	params    *Parameters
	surfaces  *SurfaceManager
	scheduler *Scheduler
	overlay   Overlay
	pointer   *PointerAdapter

	list  *draw.List
	draws uint64

	onInteraction func()
	logger        *log.Logger
	debug         bool
	destroyed     bool
}

// Create mounts a new instance in container and starts its frame loop.
func Create(container Container, opts Options) (*Instance, error) {
	if container == nil {
		return nil, fmt.Errorf("creating instance: %w", ErrNilContainer)
	}
	if opts.Frames == nil {
		return nil, fmt.Errorf("creating instance: %w", ErrNoFrames)
	}
	registry := opts.Registry
	if registry == nil {
		registry = modes.Builtin()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	desc := registry.Lookup(opts.Mode)
	if desc.Renderer == nil {
		return nil, fmt.Errorf("creating instance for mode %q: %w", opts.Mode, ErrNoFallback)
	}

	profile := ProfileRegular
	switch {
	case opts.Sandbox:
		profile = ProfileExpanded
	case opts.Compact:
		profile = ProfileCompact
	}

	inst := &Instance{
		id:            uuid.New(),
		container:     container,
		desc:          desc,
		params:        NewParameters(),
		surfaces:      NewSurfaceManager(profile, opts.Heights),
		overlay:       Overlay{Telemetry: opts.Sandbox},
		list:          draw.NewList(),
		onInteraction: opts.OnInteraction,
		logger:        logger,
		debug:         opts.Debug,
	}
	if inst.desc.Pointer {
		inst.pointer = NewPointerAdapter(inst.params)
	}
	if opts.Mode != "" && modes.ParseMode(string(opts.Mode)) != inst.desc.Mode {
		logger.Printf("Unknown mode %q, using %s", opts.Mode, inst.desc.Mode)
	}
	inst.Resize()
	inst.scheduler = NewScheduler(opts.Frames, inst.tick)
	inst.scheduler.Start()
	logger.Printf("Created %s instance %s (profile %s)", inst.desc.Mode, inst.id, profile)
	return inst, nil
}

// Destroy stops the frame loop. Later calls do nothing.
func (in *Instance) Destroy() {
	if in.destroyed {
		return
	}
	in.destroyed = true
	in.scheduler.Stop()
	if in.pointer != nil {
		in.pointer.Release()
	}
	in.logger.Printf("Destroyed %s instance %s after %d frames", in.desc.Mode, in.id, in.scheduler.Frame())
}

// Resize re-measures the container. It runs on every tick as well.
func (in *Instance) Resize() (Surface, bool) {
	w, h := in.container.Measure()
	s, changed := in.surfaces.Resize(w, h, in.container.DeviceScale())
	if changed && in.debug {
		bw, bh := s.Backing()
		in.logger.Printf("Surface %.0fx%.0f logical, %dx%d backing", s.Width, s.Height, bw, bh)
	}
	return s, changed
}

func (in *Instance) tick(frame uint64) {
	s, _ := in.Resize()
	if s.Empty() {
		return
	}
	list := draw.NewList()
	if in.overlay.Help {
		drawHelp(list, in.desc, s)
	} else {
		p1, p2 := in.params.Normalized()
		modes.Render(list, in.desc, modes.Input{
			P1:        p1,
			P2:        p2,
			Frame:     frame,
			Width:     s.Width,
			Height:    s.Height,
			Telemetry: in.overlay.Telemetry,
		})
	}
	in.list = list
	in.draws++
}

// DisplayList returns the operations drawn by the most recent tick.
func (in *Instance) DisplayList() *draw.List { return in.list }

// Draws counts ticks that produced a display list.
func (in *Instance) Draws() uint64 { return in.draws }

func (in *Instance) ID() uuid.UUID                { return in.id }
func (in *Instance) Mode() modes.Mode             { return in.desc.Mode }
func (in *Instance) Descriptor() modes.Descriptor { return in.desc }
func (in *Instance) Surface() Surface             { return in.surfaces.Surface() }
func (in *Instance) Frame() uint64                { return in.scheduler.Frame() }
func (in *Instance) Playing() bool                { return in.scheduler.Playing() }
func (in *Instance) Destroyed() bool              { return in.destroyed }
func (in *Instance) HelpVisible() bool            { return in.overlay.Help }
func (in *Instance) TelemetryVisible() bool       { return in.overlay.Telemetry }

// Profile returns the surface profile in effect for the current width.
func (in *Instance) Profile() Profile {
	return in.surfaces.Effective(in.surfaces.Surface().Width)
}

// Labels returns the two parameter labels for the active mode.
func (in *Instance) Labels() (string, string) {
	return in.desc.Param1Label, in.desc.Param2Label
}

// Param returns a parameter value in [0,100].
func (in *Instance) Param(p Param) float64 { return in.params.Get(p) }

// SetParam writes a parameter; the next tick draws it.
func (in *Instance) SetParam(p Param, v float64) error {
	if in.destroyed {
		return ErrDestroyed
	}
	in.params.Set(p, v)
	return nil
}

// NudgeParam adds delta to a parameter.
func (in *Instance) NudgeParam(p Param, delta float64) error {
	if in.destroyed {
		return ErrDestroyed
	}
	in.params.Add(p, delta)
	return nil
}

// TogglePlay pauses or resumes the frame counter.
func (in *Instance) TogglePlay() bool {
	if in.destroyed {
		return in.scheduler.Playing()
	}
	playing := in.scheduler.TogglePlay()
	in.notify()
	return playing
}

// ToggleHelp shows or hides the help panel.
func (in *Instance) ToggleHelp() bool {
	if in.destroyed {
		return in.overlay.Help
	}
	v := in.overlay.ToggleHelp()
	in.notify()
	return v
}

// ToggleTelemetry shows or hides the numeric readouts.
func (in *Instance) ToggleTelemetry() bool {
	if in.destroyed {
		return in.overlay.Telemetry
	}
	v := in.overlay.ToggleTelemetry()
	in.notify()
	return v
}

func (in *Instance) notify() {
	if in.onInteraction != nil {
		in.onInteraction()
	}
}

// PointerDriven reports whether the mode accepts pointer drags.
func (in *Instance) PointerDriven() bool { return in.pointer != nil }

// PointerDown starts a drag at a logical point.
func (in *Instance) PointerDown(x, y float64) bool {
	if in.pointer == nil || in.destroyed {
		return false
	}
	return in.pointer.Press(in.surfaces.Surface(), x, y)
}

// PointerMove continues a drag.
func (in *Instance) PointerMove(x, y float64) bool {
	if in.pointer == nil || in.destroyed {
		return false
	}
	return in.pointer.Move(in.surfaces.Surface(), x, y)
}

// PointerUp ends a drag.
func (in *Instance) PointerUp() {
	if in.pointer != nil {
		in.pointer.Release()
	}
}

// PointerLeave ends a drag when the pointer exits the surface.
func (in *Instance) PointerLeave() {
	if in.pointer != nil {
		in.pointer.Leave()
	}
}

// Dragging reports whether a pointer drag is in progress.
func (in *Instance) Dragging() bool {
	return in.pointer != nil && in.pointer.Dragging()
}

// Telemetry returns the active mode's readouts for the current state, or
// nil when the mode defines none.
func (in *Instance) Telemetry() []modes.Reading {
	src, ok := in.desc.Renderer.(modes.TelemetrySource)
	if !ok {
		return nil
	}
	s := in.surfaces.Surface()
	p1, p2 := in.params.Normalized()
	return src.Telemetry(modes.Input{P1: p1, P2: p2, Frame: in.scheduler.Frame(), Width: s.Width, Height: s.Height})
}
