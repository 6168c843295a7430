package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"sonoviz/internal/config"
	"sonoviz/internal/ebitenhost"
)

func newRunCmd(load func() (config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a visualization window",
		Long: `Open a window showing one visualization with sliders for its two
parameters.

Keys: Tab/Shift+Tab switch mode, Space play/pause, H help, T telemetry,
[ and ] adjust the first parameter, ; and ' the second, Esc quits.

Examples:
  sonoviz run --mode doppler-shift
  sonoviz run --mode beam-forming --sandbox
  SONOVIZ_MODE=huygens sonoviz run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if err := applyRunFlags(cmd, &cfg); err != nil {
				return err
			}
			return runWindow(cfg)
		},
	}

	d := config.Defaults()
	fs := cmd.Flags()
	fs.StringP("mode", "m", d.Mode, "visualization mode (see 'sonoviz modes')")
	fs.Bool("sandbox", d.Sandbox, "fill the window and show telemetry")
	fs.Bool("compact", d.Compact, "use the compact surface height")
	fs.Bool("debug", d.Debug, "show FPS/TPS overlay and enable +/- tick rate keys")
	fs.Bool("audio", d.Audio.Enabled, "play a click on interactions")
	fs.Int("tps", d.TPS, "target ticks per second")
	fs.String("cpu-profile", "", "write a CPU profile for the session to this path")
	return cmd
}

// applyRunFlags overrides cfg with every flag set on the command line and
// revalidates it.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	var err error
	if fs.Changed("mode") {
		cfg.Mode, err = fs.GetString("mode")
	}
	if err == nil && fs.Changed("sandbox") {
		cfg.Sandbox, err = fs.GetBool("sandbox")
	}
	if err == nil && fs.Changed("compact") {
		cfg.Compact, err = fs.GetBool("compact")
	}
	if err == nil && fs.Changed("debug") {
		cfg.Debug, err = fs.GetBool("debug")
	}
	if err == nil && fs.Changed("audio") {
		cfg.Audio.Enabled, err = fs.GetBool("audio")
	}
	if err == nil && fs.Changed("tps") {
		cfg.TPS, err = fs.GetInt("tps")
	}
	if err == nil && fs.Changed("cpu-profile") {
		cfg.CPUProfile, err = fs.GetString("cpu-profile")
	}
	if err != nil {
		return fmt.Errorf("reading flags: %w", err)
	}
	return cfg.Validate()
}

func runWindow(cfg config.Config) error {
	logger := log.Default()
	if cfg.CPUProfile != "" {
		profile, err := startCPUProfile(cfg.CPUProfile)
		if err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer func() {
			if err := profile.Stop(); err != nil {
				logger.Printf("Closing CPU profile failed: %v", err)
			}
		}()
		logger.Printf("Recording CPU profile to %s", cfg.CPUProfile)
	}
	return ebitenhost.Run(cfg, logger)
}
