package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sonoviz/internal/engine"
	"sonoviz/internal/modes"
)

// fixedContainer is a container of constant size for headless rendering.
type fixedContainer struct {
	w, h, scale float64
}

func (c fixedContainer) Measure() (float64, float64) { return c.w, c.h }
func (c fixedContainer) DeviceScale() float64        { return c.scale }

type inspectOptions struct {
	frames    int
	width     float64
	height    float64
	density   float64
	sandbox   bool
	compact   bool
	telemetry bool
	help      bool
	paused    bool
	verbose   bool
	set       []string
}

type surfaceDTO struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Density  float64 `json:"density"`
	BackingW int     `json:"backing_width"`
	BackingH int     `json:"backing_height"`
	Profile  string  `json:"profile"`
}

type inspectDTO struct {
	Mode      string             `json:"mode"`
	Title     string             `json:"title"`
	Instance  string             `json:"instance"`
	Frame     uint64             `json:"frame"`
	Draws     uint64             `json:"draws"`
	Playing   bool               `json:"playing"`
	Params    map[string]float64 `json:"params"`
	Labels    []string           `json:"labels"`
	Surface   surfaceDTO         `json:"surface"`
	Ops       map[string]int     `json:"ops"`
	Texts     []string           `json:"texts,omitempty"`
	Telemetry []string           `json:"telemetry,omitempty"`
}

func newInspectCmd() *cobra.Command {
	var opts inspectOptions
	cmd := &cobra.Command{
		Use:   "inspect [mode]",
		Short: "Render frames headlessly and print a summary as JSON",
		Long: `Render a mode without a window, advancing the given number of frames, and
print what the last frame drew: operation counts, text, telemetry and the
surface size.

Examples:
  sonoviz inspect doppler-shift --set p1=80 --set p2=25
  sonoviz inspect beam-forming --frames 120 --width 400 --density 2
  sonoviz inspect huygens --sandbox --height 600 | jq '.ops'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := modes.Default
			if len(args) == 1 {
				mode = modes.Mode(args[0])
			}
			return inspect(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode, opts)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&opts.frames, "frames", "n", 1, "frames to advance before reporting")
	fs.Float64Var(&opts.width, "width", 800, "container width in logical units")
	fs.Float64Var(&opts.height, "height", 480, "container height in logical units")
	fs.Float64Var(&opts.density, "density", 1, "device pixels per logical unit")
	fs.BoolVar(&opts.sandbox, "sandbox", false, "fill the container and show telemetry")
	fs.BoolVar(&opts.compact, "compact", false, "use the compact surface height")
	fs.BoolVar(&opts.telemetry, "telemetry", false, "show telemetry readouts")
	fs.BoolVar(&opts.help, "help-panel", false, "render the help panel instead of the visualization")
	fs.BoolVar(&opts.paused, "paused", false, "pause before advancing frames")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log instance lifecycle to stderr")
	fs.StringArrayVar(&opts.set, "set", nil, "set a parameter, e.g. --set p1=80 (repeatable)")
	return cmd
}

// parseAssignment splits "p1=80" into a parameter and value.
func parseAssignment(s string) (engine.Param, float64, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("parameter assignment %q: expected name=value", s)
	}
	p, err := engine.ParseParam(name)
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parameter assignment %q: %w", s, err)
	}
	return p, v, nil
}

func inspect(out, errOut io.Writer, mode modes.Mode, opts inspectOptions) error {
	if opts.frames < 0 {
		return fmt.Errorf("frames %d must not be negative", opts.frames)
	}
	logOut := io.Discard
	if opts.verbose {
		logOut = errOut
	}
	frames := engine.NewFrameQueue()
	inst, err := engine.Create(fixedContainer{w: opts.width, h: opts.height, scale: opts.density}, engine.Options{
		Mode:    mode,
		Sandbox: opts.sandbox,
		Compact: opts.compact,
		Frames:  frames,
		Logger:  log.New(logOut, "", log.LstdFlags),
		Debug:   opts.verbose,
	})
	if err != nil {
		return err
	}
	defer inst.Destroy()

	for _, s := range opts.set {
		p, v, err := parseAssignment(s)
		if err != nil {
			return err
		}
		if err := inst.SetParam(p, v); err != nil {
			return err
		}
	}
	if opts.telemetry && !inst.TelemetryVisible() {
		inst.ToggleTelemetry()
	}
	if opts.help {
		inst.ToggleHelp()
	}
	if opts.paused {
		inst.TogglePlay()
	}
	for i := 0; i < opts.frames; i++ {
		frames.Flush()
	}
	return writeInspection(out, inst)
}

func writeInspection(w io.Writer, inst *engine.Instance) error {
	s := inst.Surface()
	bw, bh := s.Backing()
	p1, p2 := inst.Labels()
	list := inst.DisplayList()

	ops := make(map[string]int)
	for kind, n := range list.Counts() {
		ops[kind.String()] = n
	}
	dto := inspectDTO{
		Mode:     string(inst.Mode()),
		Title:    inst.Descriptor().Title,
		Instance: inst.ID().String(),
		Frame:    inst.Frame(),
		Draws:    inst.Draws(),
		Playing:  inst.Playing(),
		Params: map[string]float64{
			engine.Param1.String(): inst.Param(engine.Param1),
			engine.Param2.String(): inst.Param(engine.Param2),
		},
		Labels:  []string{p1, p2},
		Surface: surfaceDTO{Width: s.Width, Height: s.Height, Density: s.Density, BackingW: bw, BackingH: bh, Profile: inst.Profile().String()},
		Ops:     ops,
		Texts:   list.Texts(),
	}
	if inst.TelemetryVisible() {
		for _, r := range inst.Telemetry() {
			dto.Telemetry = append(dto.Telemetry, r.String())
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dto)
}
