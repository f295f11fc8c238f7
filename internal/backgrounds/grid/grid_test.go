package grid

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/wow-terminal/internal/core"
)

func testConfig(w, h int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		Seed:     seed,
		Backdrop: core.DefaultBackdrop(),
	}
}

func TestStepWithoutSurfaceIsNoop(t *testing.T) {
	b := New()
	b.Step() // Should not panic before Reset
	b.Render(core.NewScreen(4, 4))

	b.Reset(testConfig(0, 0, 1))
	b.Step()
	if b.frames != 0 {
		t.Errorf("Step on a zero-area surface should be a no-op, frames = %d", b.frames)
	}
}

func TestGridLines(t *testing.T) {
	cfg := testConfig(12, 6, 1)
	cfg.Backdrop.Particles = 0

	b := New()
	b.Reset(cfg)
	b.Step()

	sx, sy := cfg.Backdrop.GridSpacingX, cfg.Backdrop.GridSpacingY
	for y := 0; y < 6; y++ {
		for x := 0; x < 12; x++ {
			cell := b.surface.GetCell(x, y)
			onV := x%sx == 0
			onH := y%sy == 0

			var want rune
			switch {
			case onV && onH:
				want = CrossChar
			case onV:
				want = VLineChar
			case onH:
				want = HLineChar
			default:
				want = ' '
			}
			if cell.Rune != want {
				t.Errorf("cell (%d, %d) = %q, expected %q", x, y, cell.Rune, want)
			}
			if (onV || onH) && cell.Color != core.ColorBackdropLo {
				t.Errorf("grid cell (%d, %d) should be in the low tier, got %d", x, y, cell.Color)
			}
		}
	}
}

func TestGridSettlesUnderFade(t *testing.T) {
	cfg := testConfig(8, 4, 1)
	cfg.Backdrop.Particles = 0

	b := New()
	b.Reset(cfg)
	for i := 0; i < 200; i++ {
		b.Step()
	}

	// Fade and redraw balance out: v = (v*(1-f)) + a*(1 - v*(1-f))
	f, a := cfg.Backdrop.Fade, cfg.Backdrop.GridAlpha
	want := a / (1 - (1-f)*(1-a))
	got := b.surface.GetCell(0, 1).Intensity
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("vertical line intensity = %v, expected steady state %v", got, want)
	}
}

func TestParticles(t *testing.T) {
	cfg := testConfig(40, 20, 7)
	cfg.Backdrop.GridSpacingX = 0
	cfg.Backdrop.GridSpacingY = 0

	b := New()
	b.Reset(cfg)
	b.Step()

	side := int(cfg.Backdrop.MaxParticleSize)
	lit := b.surface.Lit()
	if most := cfg.Backdrop.Particles * side * side; lit == 0 || lit > most {
		t.Fatalf("lit cells = %d, expected between 1 and %d", lit, most)
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			cell := b.surface.GetCell(x, y)
			if cell.Intensity == 0 {
				continue
			}
			if cell.Rune != SmallDotChar && cell.Rune != DotChar && cell.Rune != SquareChar {
				t.Errorf("unexpected particle glyph %q at (%d, %d)", cell.Rune, x, y)
			}
		}
	}

	// Particles are not stored: with none drawn, old ones fade away
	b.params.Particles = 0
	for i := 0; i < 100; i++ {
		b.Step()
	}
	if b.surface.Lit() != 0 {
		t.Errorf("old particles should fade out, %d cells still lit", b.surface.Lit())
	}
}

func TestParticleSquares(t *testing.T) {
	const w, h = 40, 20
	sawSquare := false

	for seed := int64(1); seed < 50; seed++ {
		cfg := testConfig(w, h, seed)
		cfg.Backdrop.GridSpacingX = 0
		cfg.Backdrop.GridSpacingY = 0
		cfg.Backdrop.Particles = 1
		cfg.Backdrop.MaxParticleSize = 10

		b := New()
		b.Reset(cfg)
		b.Step()

		// Replay the draws the background made for its one particle.
		r := rand.New(rand.NewSource(seed))
		x := int(r.Float64() * w)
		y := int(r.Float64() * h)
		side := int(r.Float64() * cfg.Backdrop.MaxParticleSize)

		if side < 1 {
			if b.surface.Lit() != 1 {
				t.Errorf("seed %d: sub-cell particle should light 1 cell, got %d", seed, b.surface.Lit())
			}
			continue
		}
		if side >= 2 {
			sawSquare = true
		}

		want := 0
		for dy := 0; dy < side; dy++ {
			for dx := 0; dx < side; dx++ {
				if x+dx >= w || y+dy >= h {
					continue
				}
				want++
				cell := b.surface.GetCell(x+dx, y+dy)
				if cell.Rune != SquareChar || cell.Intensity != cfg.Backdrop.ParticleAlpha {
					t.Errorf("seed %d: cell (%d, %d) = %+v, expected a square cell", seed, x+dx, y+dy, cell)
				}
			}
		}
		if got := b.surface.Lit(); got != want {
			t.Errorf("seed %d: side %d square lit %d cells, expected %d", seed, side, got, want)
		}
	}

	if !sawSquare {
		t.Error("no seed produced a particle wider than one cell")
	}
}

func TestParticleGlyph(t *testing.T) {
	tests := []struct {
		size     float64
		expected rune
	}{
		{0, SmallDotChar},
		{0.49, SmallDotChar},
		{0.5, DotChar},
		{0.99, DotChar},
		{1, SquareChar},
		{7, SquareChar},
	}

	for _, tc := range tests {
		if got := particleGlyph(tc.size); got != tc.expected {
			t.Errorf("particleGlyph(%v) = %q, expected %q", tc.size, got, tc.expected)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig(30, 10, 12345)

	b1 := New()
	b1.Reset(cfg)
	b2 := New()
	b2.Reset(cfg)

	for i := 0; i < 25; i++ {
		b1.Step()
		b2.Step()
	}

	if b1.surface.String() != b2.surface.String() {
		t.Error("same seed should produce identical frames")
	}
}

func TestResetDiscardsFrame(t *testing.T) {
	b := New()
	b.Reset(testConfig(10, 5, 3))
	b.Step()

	b.Reset(testConfig(20, 8, 3))
	if b.surface.Width() != 20 || b.surface.Height() != 8 {
		t.Errorf("surface = %dx%d, expected 20x8", b.surface.Width(), b.surface.Height())
	}
	if b.surface.Lit() != 0 || b.frames != 0 {
		t.Error("Reset should start from a blank surface")
	}
}

func TestRenderBlits(t *testing.T) {
	cfg := testConfig(8, 4, 1)
	cfg.Backdrop.Particles = 0

	b := New()
	b.Reset(cfg)
	b.Step()

	dst := core.NewScreen(8, 4)
	b.Render(dst)
	if got := dst.GetCell(0, 0).Rune; got != CrossChar {
		t.Errorf("Render should copy the frame, got %q at origin", got)
	}
}
