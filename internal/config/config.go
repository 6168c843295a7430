// Package config provides configuration types, defaults, and loading for sonoviz.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SONOVIZ_MODE.
const EnvPrefix = "SONOVIZ_"

const (
	MinTPS = 1
	MaxTPS = 240
)

// Config holds all configuration options for sonoviz.
type Config struct {
	Mode       string        `mapstructure:"mode" yaml:"mode" env:"MODE"`
	Sandbox    bool          `mapstructure:"sandbox" yaml:"sandbox" env:"SANDBOX"`
	Compact    bool          `mapstructure:"compact" yaml:"compact" env:"COMPACT"`
	Debug      bool          `mapstructure:"debug" yaml:"debug" env:"DEBUG"`
	TPS        int           `mapstructure:"tps" yaml:"tps" env:"TPS"`
	CPUProfile string        `mapstructure:"cpu_profile" yaml:"cpu_profile,omitempty" env:"CPU_PROFILE"`
	Audio      AudioConfig   `mapstructure:"audio" yaml:"audio" envPrefix:"AUDIO_"`
	Window     WindowConfig  `mapstructure:"window" yaml:"window" envPrefix:"WINDOW_"`
	Surface    SurfaceConfig `mapstructure:"surface" yaml:"surface" envPrefix:"SURFACE_"`
}

// AudioConfig controls the interaction click.
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" env:"ENABLED"`
	// ClickWAV replaces the synthesized click with a WAV file.
	ClickWAV string `mapstructure:"click_wav" yaml:"click_wav,omitempty" env:"CLICK_WAV"`
}

// WindowConfig sizes the host window in logical units.
type WindowConfig struct {
	Width  int    `mapstructure:"width" yaml:"width" env:"WIDTH"`
	Height int    `mapstructure:"height" yaml:"height" env:"HEIGHT"`
	Title  string `mapstructure:"title" yaml:"title" env:"TITLE"`
}

// SurfaceConfig holds the profile heights in logical units.
type SurfaceConfig struct {
	RegularHeight     float64 `mapstructure:"regular_height" yaml:"regular_height" env:"REGULAR_HEIGHT"`
	CompactHeight     float64 `mapstructure:"compact_height" yaml:"compact_height" env:"COMPACT_HEIGHT"`
	CompactBreakpoint float64 `mapstructure:"compact_breakpoint" yaml:"compact_breakpoint" env:"COMPACT_BREAKPOINT"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Mode: "default",
		TPS:  60,
		Audio: AudioConfig{
			Enabled: true,
		},
		Window: WindowConfig{
			Width:  960,
			Height: 480,
			Title:  "sonoviz",
		},
		Surface: SurfaceConfig{
			RegularHeight:     320,
			CompactHeight:     220,
			CompactBreakpoint: 640,
		},
	}
}

// SetDefaults registers every default with v so unset keys unmarshal to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("mode", d.Mode)
	v.SetDefault("sandbox", d.Sandbox)
	v.SetDefault("compact", d.Compact)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("tps", d.TPS)
	v.SetDefault("cpu_profile", d.CPUProfile)
	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.click_wav", d.Audio.ClickWAV)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("surface.regular_height", d.Surface.RegularHeight)
	v.SetDefault("surface.compact_height", d.Surface.CompactHeight)
	v.SetDefault("surface.compact_breakpoint", d.Surface.CompactBreakpoint)
}

// Load unmarshals v over the defaults, applies environment overrides and
// validates the result.
func Load(v *viper.Viper) (Config, error) {
	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any SONOVIZ_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate rejects sizes and rates the host cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Surface.RegularHeight <= 0 {
		errs = append(errs, fmt.Errorf("surface.regular_height %.0f must be positive", c.Surface.RegularHeight))
	}
	if c.Surface.CompactHeight <= 0 {
		errs = append(errs, fmt.Errorf("surface.compact_height %.0f must be positive", c.Surface.CompactHeight))
	}
	if c.Surface.CompactBreakpoint < 0 {
		errs = append(errs, fmt.Errorf("surface.compact_breakpoint %.0f must not be negative", c.Surface.CompactBreakpoint))
	}
	if c.TPS < MinTPS || c.TPS > MaxTPS {
		errs = append(errs, fmt.Errorf("tps %d outside [%d,%d]", c.TPS, MinTPS, MaxTPS))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
