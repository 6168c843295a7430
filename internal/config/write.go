package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrExists is returned by WriteDefault when the target already exists.
var ErrExists = errors.New("config file already exists")

const header = `# sonoviz configuration
# Every key can be overridden with a SONOVIZ_ environment variable, e.g.
# SONOVIZ_MODE=doppler-shift or SONOVIZ_WINDOW_WIDTH=1280.
`

// Marshal encodes cfg as YAML with the standard header.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()
	return buf.Bytes(), nil
}

// WriteDefault writes the default configuration to path. An existing file is
// kept unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}
	data, err := Marshal(Defaults())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
