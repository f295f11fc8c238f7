// Package grid implements the cyber backdrop: a faint grid with a field of
// flickering particles, redrawn over a slowly fading surface so that old
// frames leave motion trails.
package grid

import (
	"math/rand"

	"github.com/vovakirdan/wow-terminal/internal/core"
	"github.com/vovakirdan/wow-terminal/internal/registry"
)

// Grid glyphs
const (
	VLineChar = '│'
	HLineChar = '─'
	CrossChar = '┼'
)

// Particle glyphs. A particle smaller than a cell lights its cell with a dot
// weighted by size; larger ones are squares of whole cells.
const (
	SmallDotChar = '·'
	DotChar      = '•'
	SquareChar   = '■'
)

// Background implements the grid-and-particles renderer.
type Background struct {
	surface *core.Screen
	params  core.BackdropParams
	rng     *rand.Rand
	live    bool // Surface has a drawable area
	frames  int  // Ticks drawn since the last Reset
}

// New creates a grid background. It has no surface until Reset is called.
func New() *Background {
	return &Background{}
}

// ID returns the unique identifier for this background.
func (b *Background) ID() string {
	return "grid"
}

// Title returns the display name for this background.
func (b *Background) Title() string {
	return "Cyber Grid"
}

// Reset sizes the surface to the viewport. Like a canvas resize, the old
// frame is discarded.
func (b *Background) Reset(cfg core.RuntimeConfig) {
	b.surface = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	b.params = cfg.Backdrop
	if b.params == (core.BackdropParams{}) {
		b.params = core.DefaultBackdrop()
	}
	b.rng = rand.New(rand.NewSource(cfg.Seed))
	b.live = cfg.HasSurface()
	b.frames = 0
}

// Step paints one frame: fade overlay, grid, then particles.
func (b *Background) Step() {
	if !b.live {
		return
	}

	b.surface.Fade(b.params.Fade, b.params.FadeFloor)
	b.drawGrid()
	b.drawParticles()
	b.frames++
}

func (b *Background) drawGrid() {
	w, h := b.surface.Width(), b.surface.Height()
	sx, sy := b.params.GridSpacingX, b.params.GridSpacingY
	alpha := b.params.GridAlpha

	if sx > 0 {
		for x := 0; x < w; x += sx {
			for y := 0; y < h; y++ {
				b.surface.Light(x, y, alpha, VLineChar)
			}
		}
	}

	if sy > 0 {
		for y := 0; y < h; y += sy {
			for x := 0; x < w; x++ {
				r := HLineChar
				if sx > 0 && x%sx == 0 {
					r = CrossChar
				}
				b.surface.Light(x, y, alpha, r)
			}
		}
	}
}

func (b *Background) drawParticles() {
	w, h := float64(b.surface.Width()), float64(b.surface.Height())

	for i := 0; i < b.params.Particles; i++ {
		x := int(b.rng.Float64() * w)
		y := int(b.rng.Float64() * h)
		size := b.rng.Float64() * b.params.MaxParticleSize

		side := int(size)
		if side < 1 {
			b.surface.Light(x, y, b.params.ParticleAlpha, particleGlyph(size))
			continue
		}
		// Squares running off the edge are clipped by Light.
		for dy := 0; dy < side; dy++ {
			for dx := 0; dx < side; dx++ {
				b.surface.Light(x+dx, y+dy, b.params.ParticleAlpha, SquareChar)
			}
		}
	}
}

// particleGlyph picks the glyph for a particle of the given side length.
func particleGlyph(size float64) rune {
	switch {
	case size < 0.5:
		return SmallDotChar
	case size < 1:
		return DotChar
	default:
		return SquareChar
	}
}

// Render copies the current frame into dst.
func (b *Background) Render(dst *core.Screen) {
	if b.surface == nil {
		return
	}
	dst.Blit(b.surface)
}

func init() {
	registry.Register("grid", func() registry.Background {
		return New()
	})
}
