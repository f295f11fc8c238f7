// Package config provides YAML-based configuration loading and backdrop
// presets for the terminal.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/wow-terminal/internal/core"
	"github.com/vovakirdan/wow-terminal/internal/shell"
)

// Config contains everything the terminal reads from its YAML file.
type Config struct {
	Theme    string         `yaml:"theme"`
	Banner   bool           `yaml:"banner"`
	PopupMS  int            `yaml:"popup_ms"`
	Backdrop BackdropConfig `yaml:"backdrop"`
}

// BackdropConfig tunes the animated background.
type BackdropConfig struct {
	IntervalMS      int     `yaml:"interval_ms"`
	Fade            float64 `yaml:"fade"`
	FadeFloor       float64 `yaml:"fade_floor"`
	GridSpacingX    int     `yaml:"grid_spacing_x"`
	GridSpacingY    int     `yaml:"grid_spacing_y"`
	GridAlpha       float64 `yaml:"grid_alpha"`
	Particles       int     `yaml:"particles"`
	MaxParticleSize float64 `yaml:"max_particle_size"`
	ParticleAlpha   float64 `yaml:"particle_alpha"`
}

// Limits for sane animation.
const (
	MinIntervalMS = 10
	MaxIntervalMS = 2000
	MaxParticles  = 2000
)

// Default returns the hardcoded configuration, matching the embedded YAML.
func Default() Config {
	p := core.DefaultBackdrop()
	return Config{
		Theme:   string(shell.ThemeMatrix),
		Banner:  true,
		PopupMS: 3000,
		Backdrop: BackdropConfig{
			IntervalMS:      50,
			Fade:            p.Fade,
			FadeFloor:       p.FadeFloor,
			GridSpacingX:    p.GridSpacingX,
			GridSpacingY:    p.GridSpacingY,
			GridAlpha:       p.GridAlpha,
			Particles:       p.Particles,
			MaxParticleSize: p.MaxParticleSize,
			ParticleAlpha:   p.ParticleAlpha,
		},
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error

	if _, err := shell.ParseTheme(c.Theme); err != nil {
		errs = append(errs, err)
	}
	if c.PopupMS <= 0 {
		errs = append(errs, fmt.Errorf("popup_ms must be positive, got %d", c.PopupMS))
	}

	b := c.Backdrop
	if b.IntervalMS < MinIntervalMS || b.IntervalMS > MaxIntervalMS {
		errs = append(errs, fmt.Errorf("backdrop.interval_ms must be in [%d,%d], got %d", MinIntervalMS, MaxIntervalMS, b.IntervalMS))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"fade", b.Fade},
		{"fade_floor", b.FadeFloor},
		{"grid_alpha", b.GridAlpha},
		{"particle_alpha", b.ParticleAlpha},
	} {
		if f.v < 0 || f.v > 1 {
			errs = append(errs, fmt.Errorf("backdrop.%s must be in [0,1], got %v", f.name, f.v))
		}
	}
	if b.GridSpacingX < 0 || b.GridSpacingY < 0 {
		errs = append(errs, errors.New("backdrop grid spacing must not be negative"))
	}
	if b.Particles < 0 || b.Particles > MaxParticles {
		errs = append(errs, fmt.Errorf("backdrop.particles must be in [0,%d], got %d", MaxParticles, b.Particles))
	}
	if b.MaxParticleSize < 0 {
		errs = append(errs, errors.New("backdrop.max_particle_size must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// StartTheme returns the configured theme, falling back to matrix.
func (c Config) StartTheme() shell.Theme {
	th, err := shell.ParseTheme(c.Theme)
	if err != nil {
		return shell.ThemeMatrix
	}
	return th
}

// Interval returns the backdrop redraw period.
func (c Config) Interval() time.Duration {
	return time.Duration(c.Backdrop.IntervalMS) * time.Millisecond
}

// PopupDuration returns how long the level-up popup stays up.
func (c Config) PopupDuration() time.Duration {
	return time.Duration(c.PopupMS) * time.Millisecond
}

// SetFPS overrides the redraw period from a frames-per-second rate.
// Non-positive rates are ignored.
func (c *Config) SetFPS(fps int) {
	if fps <= 0 {
		return
	}
	c.Backdrop.IntervalMS = max(1000/fps, 1)
}

// Params converts the backdrop section into renderer parameters.
func (c Config) Params() core.BackdropParams {
	b := c.Backdrop
	return core.BackdropParams{
		Fade:            b.Fade,
		FadeFloor:       b.FadeFloor,
		GridSpacingX:    b.GridSpacingX,
		GridSpacingY:    b.GridSpacingY,
		GridAlpha:       b.GridAlpha,
		Particles:       b.Particles,
		MaxParticleSize: b.MaxParticleSize,
		ParticleAlpha:   b.ParticleAlpha,
	}
}
