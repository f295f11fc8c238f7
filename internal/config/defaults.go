package config

import (
	_ "embed"
)

//go:embed defaults/wowterm.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file, suitable for
// writing out as a starting point.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
