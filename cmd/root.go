// Package cmd wires the sonoviz command line.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sonoviz/internal/config"
)

var version = "dev"

// configPaths lists where a config file is looked for when --config is not
// given, in order.
func configPaths() []string {
	paths := []string{filepath.Join(".sonoviz", "config.yaml")}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "sonoviz", "config.yaml"))
	}
	return paths
}

// newRootCmd builds the command tree. Each call returns independent
// commands and config state.
func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	root := &cobra.Command{
		Use:   "sonoviz",
		Short: "Interactive acoustic phenomenon visualizations",
		Long: `sonoviz draws animated diagrams of acoustic phenomena (wave propagation,
Huygens' principle, Doppler shift, beam forming and more), each steered by
two parameters.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .sonoviz/config.yaml or ~/.config/sonoviz/config.yaml)")

	load := func() (config.Config, error) {
		return loadConfig(v, cfgFile)
	}
	root.AddCommand(
		newRunCmd(load),
		newModesCmd(),
		newInspectCmd(),
		newConfigCmd(),
	)
	return root
}

// loadConfig reads the config file, if any, then layers the environment
// over it.
func loadConfig(v *viper.Viper, cfgFile string) (config.Config, error) {
	config.SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		for _, path := range configPaths() {
			if _, err := os.Stat(path); err == nil {
				v.SetConfigFile(path)
				break
			}
		}
	}
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	return config.Load(v)
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
}
