package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readYAML(t *testing.T, doc string) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(doc)))
	return v
}

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestLoadEmptyUsesDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoadFromYAML(t *testing.T) {
	v := readYAML(t, `
mode: beam-forming
sandbox: true
tps: 30
audio:
  enabled: false
  click_wav: click.wav
window:
  width: 1280
surface:
  compact_height: 180
`)
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "beam-forming", cfg.Mode)
	require.True(t, cfg.Sandbox)
	require.Equal(t, 30, cfg.TPS)
	require.False(t, cfg.Audio.Enabled)
	require.Equal(t, "click.wav", cfg.Audio.ClickWAV)
	require.Equal(t, 1280, cfg.Window.Width)
	require.Equal(t, Defaults().Window.Height, cfg.Window.Height)
	require.Equal(t, 180.0, cfg.Surface.CompactHeight)
	require.Equal(t, 320.0, cfg.Surface.RegularHeight)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SONOVIZ_MODE", "doppler-shift")
	t.Setenv("SONOVIZ_WINDOW_WIDTH", "1024")
	t.Setenv("SONOVIZ_AUDIO_ENABLED", "false")
	t.Setenv("SONOVIZ_SURFACE_REGULAR_HEIGHT", "300")

	cfg, err := Load(readYAML(t, "mode: huygens\nwindow:\n  width: 800\n"))
	require.NoError(t, err)
	require.Equal(t, "doppler-shift", cfg.Mode)
	require.Equal(t, 1024, cfg.Window.Width)
	require.False(t, cfg.Audio.Enabled)
	require.Equal(t, 300.0, cfg.Surface.RegularHeight)
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("SONOVIZ_TPS", "fast")
	_, err := Load(viper.New())
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":          func(c *Config) { c.Window.Width = 0 },
		"negative height":     func(c *Config) { c.Window.Height = -1 },
		"regular height":      func(c *Config) { c.Surface.RegularHeight = 0 },
		"compact height":      func(c *Config) { c.Surface.CompactHeight = -5 },
		"negative breakpoint": func(c *Config) { c.Surface.CompactBreakpoint = -1 },
		"tps low":             func(c *Config) { c.TPS = 0 },
		"tps high":            func(c *Config) { c.TPS = MaxTPS + 1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(readYAML(t, "tps: 1000\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# sonoviz configuration"))

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, Defaults(), decoded)

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestWriteDefaultKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: lobe\n"), 0o600))

	require.ErrorIs(t, WriteDefault(path, false), ErrExists)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "mode: lobe\n", string(data))

	require.NoError(t, WriteDefault(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "mode: default")
}
