package core

// RuntimeConfig contains configuration passed to backgrounds when they are
// (re)mounted. Backgrounds use it to size their surface and seed randomness.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in cells
	ScreenH  int   // Surface height in cells
	Seed     int64 // RNG seed for deterministic rendering
	Backdrop BackdropParams
}

// BackdropParams tunes the animated backgrounds.
type BackdropParams struct {
	Fade            float64 // Opacity of the black overlay painted each tick
	FadeFloor       float64 // Intensity below which a cell goes dark
	GridSpacingX    int     // Columns between vertical grid lines
	GridSpacingY    int     // Rows between horizontal grid lines
	GridAlpha       float64
	Particles       int     // Particles painted per tick
	MaxParticleSize float64 // Particle side is drawn from [0, MaxParticleSize)
	ParticleAlpha   float64
}

// DefaultBackdrop returns the reference backdrop tuning: a 0.1 fade,
// a 30px grid (4x2 cells at 8x16px per cell) at 0.1, and 50 particles
// of side [0,3) at 0.5.
func DefaultBackdrop() BackdropParams {
	return BackdropParams{
		Fade:            0.1,
		FadeFloor:       0.02,
		GridSpacingX:    4,
		GridSpacingY:    2,
		GridAlpha:       0.1,
		Particles:       50,
		MaxParticleSize: 3,
		ParticleAlpha:   0.5,
	}
}

// HasSurface reports whether the config describes a drawable area.
func (c RuntimeConfig) HasSurface() bool {
	return c.ScreenW > 0 && c.ScreenH > 0
}
