package config

import "fmt"

// BackdropPreset represents a named backdrop density.
type BackdropPreset string

const (
	PresetCalm   BackdropPreset = "calm"
	PresetNormal BackdropPreset = "normal"
	PresetBusy   BackdropPreset = "busy"
	PresetOff    BackdropPreset = "off"
)

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(name string) (BackdropPreset, error) {
	switch p := BackdropPreset(name); p {
	case "", PresetCalm, PresetNormal, PresetBusy, PresetOff:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown backdrop preset %q (want calm, normal, busy or off)", name)
	}
}

// ApplyPreset modifies the backdrop section based on a preset.
// Normal and empty presets keep the loaded values.
func ApplyPreset(cfg *Config, preset BackdropPreset) {
	b := &cfg.Backdrop
	switch preset {
	case PresetCalm:
		b.Particles = 15
		b.Fade = 0.2
		b.IntervalMS = 100
	case PresetBusy:
		b.Particles = 150
		b.Fade = 0.05
		b.ParticleAlpha = 0.7
	case PresetOff:
		b.Particles = 0
		b.GridSpacingX = 0
		b.GridSpacingY = 0
	}
}
