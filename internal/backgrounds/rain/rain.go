// Package rain implements the matrix backdrop: columns of glyphs falling down
// the screen, leaving trails that fade with the shared overlay.
package rain

import (
	"math/rand"

	"github.com/vovakirdan/wow-terminal/internal/core"
	"github.com/vovakirdan/wow-terminal/internal/registry"
)

const (
	// HeadAlpha is the opacity of the leading glyph of a drop.
	HeadAlpha = 0.9
	// RespawnChance is the per-tick chance a drop past the bottom restarts.
	RespawnChance = 0.025
	// ColumnSpacing leaves a gap between falling columns.
	ColumnSpacing = 2
)

var glyphs = []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉ0123456789")

// Background implements the digital rain renderer.
type Background struct {
	surface *core.Screen
	params  core.BackdropParams
	rng     *rand.Rand
	live    bool  // Surface has a drawable area
	drops   []int // Head row for each column
}

// New creates a rain background. It has no surface until Reset is called.
func New() *Background {
	return &Background{}
}

// ID returns the unique identifier for this background.
func (b *Background) ID() string {
	return "rain"
}

// Title returns the display name for this background.
func (b *Background) Title() string {
	return "Digital Rain"
}

// Reset sizes the surface and scatters the drops above the top edge so
// columns start falling at different times.
func (b *Background) Reset(cfg core.RuntimeConfig) {
	b.surface = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	b.params = cfg.Backdrop
	if b.params == (core.BackdropParams{}) {
		b.params = core.DefaultBackdrop()
	}
	b.rng = rand.New(rand.NewSource(cfg.Seed))
	b.live = cfg.HasSurface()

	cols := 0
	if cfg.ScreenW > 0 {
		cols = (cfg.ScreenW + ColumnSpacing - 1) / ColumnSpacing
	}
	b.drops = make([]int, cols)
	for i := range b.drops {
		b.drops[i] = -b.rng.Intn(core.Max(cfg.ScreenH, 1))
	}
}

// Step fades the previous frame and advances every drop by one row.
func (b *Background) Step() {
	if !b.live {
		return
	}

	b.surface.Fade(b.params.Fade, b.params.FadeFloor)

	h := b.surface.Height()
	for i, y := range b.drops {
		x := i * ColumnSpacing
		if y >= 0 {
			b.surface.Light(x, y, HeadAlpha, glyphs[b.rng.Intn(len(glyphs))])
		}

		if y >= h && b.rng.Float64() < RespawnChance {
			b.drops[i] = 0
			continue
		}
		b.drops[i]++
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
	registry.Register("rain", func() registry.Background {
		return New()
	})
}
