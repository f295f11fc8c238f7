package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wideTail marks the second column of a double-width rune.
// It is skipped when the screen is converted to text.
const wideTail rune = 0

// Cell is a single character position on the screen.
type Cell struct {
	Rune      rune
	Color     Color
	Intensity float64 // Backdrop light level in [0,1]; 0 for chrome and blank cells
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D cell buffer that backgrounds and the terminal chrome draw into.
// It decouples drawing from the terminal, allowing renderers to work with
// simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear resets every cell to a blank space.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) and returns the
// number of columns consumed. Double-width runes take two columns; runes that
// would straddle the right edge are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) int {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > s.width {
			break
		}
		s.SetCell(col, y, Cell{Rune: r, Color: c})
		if w == 2 {
			s.SetCell(col+1, y, Cell{Rune: wideTail, Color: c})
		}
		col += w
	}
	return col - x
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - runewidth.StringWidth(text)) / 2
	s.DrawText(x, y, text, c)
}

// DrawTextRight draws text so that it ends just before column right.
func (s *Screen) DrawTextRight(right, y int, text string, c Color) {
	s.DrawText(right-runewidth.StringWidth(text), y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: fill, Color: c})
		}
	}
}

// DrawBox draws a rounded box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.SetCell(r.X, r.Y, Cell{Rune: '╭', Color: c})
	s.SetCell(r.Right()-1, r.Y, Cell{Rune: '╮', Color: c})
	s.SetCell(r.X, r.Bottom()-1, Cell{Rune: '╰', Color: c})
	s.SetCell(r.Right()-1, r.Bottom()-1, Cell{Rune: '╯', Color: c})

	s.DrawHLine(r.X+1, r.Y, r.W-2, '─', c)
	s.DrawHLine(r.X+1, r.Bottom()-1, r.W-2, '─', c)
	s.DrawVLine(r.X, r.Y+1, r.H-2, '│', c)
	s.DrawVLine(r.Right()-1, r.Y+1, r.H-2, '│', c)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetCell(x+i, y, Cell{Rune: r, Color: c})
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetCell(x, y+i, Cell{Rune: r, Color: c})
	}
}

// Fade darkens every lit cell as if a black layer with the given opacity were
// painted over the whole surface. Cells that fall below floor are blanked.
func (s *Screen) Fade(opacity, floor float64) {
	keep := 1 - ClampF(opacity, 0, 1)
	for y := range s.cells {
		for x := range s.cells[y] {
			cell := &s.cells[y][x]
			if cell.Intensity == 0 {
				continue
			}
			cell.Intensity *= keep
			if cell.Intensity < floor {
				*cell = blankCell
				continue
			}
			cell.Color = Tier(cell.Intensity)
		}
	}
}

// Light paints r at (x, y) with the given opacity, compositing the new light
// over whatever is already there.
func (s *Screen) Light(x, y int, opacity float64, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	cell := &s.cells[y][x]
	v := cell.Intensity + ClampF(opacity, 0, 1)*(1-cell.Intensity)
	cell.Intensity = v
	cell.Color = Tier(v)
	cell.Rune = r
}

// Blit copies src onto this screen with its top-left corner at the origin.
func (s *Screen) Blit(src *Screen) {
	h := Min(s.height, src.height)
	w := Min(s.width, src.width)
	for y := 0; y < h; y++ {
		copy(s.cells[y][:w], src.cells[y][:w])
	}
}

// Tint recolors every non-blank cell inside r.
func (s *Screen) Tint(r Rect, c Color) {
	for y := Max(r.Y, 0); y < Min(r.Bottom(), s.height); y++ {
		for x := Max(r.X, 0); x < Min(r.Right(), s.width); x++ {
			if s.cells[y][x].Rune != ' ' {
				s.cells[y][x].Color = c
			}
		}
	}
}

// Lit returns the number of cells carrying backdrop light.
func (s *Screen) Lit() int {
	n := 0
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x].Intensity > 0 {
				n++
			}
		}
	}
	return n
}

// String converts the screen buffer to plain text.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		s.writeRow(&sb, y)
	}
	return sb.String()
}

func (s *Screen) writeRow(sb *strings.Builder, y int) {
	for x := 0; x < s.width; x++ {
		if r := s.cells[y][x].Rune; r != wideTail {
			sb.WriteRune(r)
		}
	}
}
