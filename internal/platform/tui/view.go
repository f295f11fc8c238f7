package tui

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/wow-terminal/internal/core"
)

var bannerLines = []string{
	`__      __  ___   __      __`,
	`\ \    / / / _ \  \ \    / /`,
	` \ \/\/ / | (_) |  \ \/\/ / `,
	`  \_/\_/   \___/    \_/\_/  `,
}

const (
	title        = ">_ WOW TERMINAL"
	bannerWidth  = 28
	bannerMinRow = 28 // Smallest height that still shows the banner
	headerMinRow = 12
	footerMinRow = 8
)

// layout is the geometry of the chrome drawn over the backdrop.
type layout struct {
	header     core.Rect
	banner     core.Rect
	panel      core.Rect // Transcript box including its border
	transcript core.Rect // Text area inside the panel
	input      core.Rect
	footer     core.Rect
}

// computeLayout stacks header, banner, transcript, input, and footer from top
// to bottom. Optional rows are dropped on short terminals.
func computeLayout(w, h int, banner bool) layout {
	margin := 0
	if w >= 60 {
		margin = 2
	}
	area := core.NewRect(margin, 0, core.Max(w-2*margin, 0), core.Max(h, 0))

	var l layout
	y := 0
	if h >= headerMinRow {
		l.header = core.NewRect(area.X, y, area.W, 3)
		y += 3
	}

	footerH := 0
	if h >= footerMinRow {
		footerH = 1
	}
	l.footer = core.NewRect(area.X+1, h-footerH, core.Max(area.W-2, 0), footerH)
	l.input = core.NewRect(area.X, h-footerH-3, area.W, 3)

	if banner && h >= bannerMinRow && area.W >= bannerWidth+4 {
		l.banner = core.NewRect(area.X, y, area.W, len(bannerLines)+1)
		y += l.banner.H
	}

	l.panel = core.NewRect(area.X, y, area.W, core.Max(l.input.Y-y, 0))
	l.transcript = l.panel.Inset(2, 1)
	return l
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := m.frame
	f.Clear()
	if m.background != nil {
		m.background.Render(f)
	}
	m.drawChrome(f)
	return RenderScreen(f, m.palette)
}

// drawChrome draws the terminal window over the backdrop.
func (m Model) drawChrome(f *core.Screen) {
	l := m.layout

	if !l.header.Empty() {
		f.DrawRect(l.header, ' ', core.ColorDefault)
		f.DrawBox(l.header, core.ColorBorder)
		f.DrawText(l.header.X+2, l.header.Y+1, title, core.ColorAccent)
		stats := fmt.Sprintf("★ Level %d  ⚡ %dXP", m.state.Level, m.state.XP)
		if l.header.W >= runewidth.StringWidth(title)+runewidth.StringWidth(stats)+6 {
			f.DrawTextRight(l.header.Right()-2, l.header.Y+1, stats, core.ColorText)
		}
	}

	// The layout margins are symmetric, so the banner is screen-centered.
	if !l.banner.Empty() {
		for i, line := range bannerLines {
			f.DrawTextCentered(l.banner.Y+i, line, core.ColorAccent)
		}
	}

	// The backdrop stays visible behind the transcript, dimmed.
	f.Tint(l.panel, core.ColorBackdropLo)
	f.DrawBox(l.panel, core.ColorBorder)
	for i, line := range m.visibleLines() {
		c := core.ColorText
		if line.echo {
			c = core.ColorEcho
		}
		f.DrawText(l.transcript.X, l.transcript.Y+i, line.text, c)
	}
	if !m.transcript.AtBottom() && l.panel.W > 12 {
		f.DrawTextRight(l.panel.Right()-2, l.panel.Bottom()-1, " ↓ more ", core.ColorMuted)
	}

	m.drawInput(f)

	if !l.footer.Empty() {
		f.DrawText(l.footer.X, l.footer.Y, m.help.View(m.keys), core.ColorMuted)
	}

	if m.popup.Visible() {
		m.drawPopup(f)
	}
}

// drawInput draws the prompt line, scrolled so the cursor stays visible.
func (m Model) drawInput(f *core.Screen) {
	r := m.layout.input
	if r.H < 3 || r.W < 6 {
		return
	}
	f.DrawRect(r, ' ', core.ColorDefault)
	f.DrawBox(r, core.ColorBorder)

	x := r.X + 2
	y := r.Y + 1
	x += f.DrawText(x, y, "> ", core.ColorText)
	avail := r.Right() - 2 - x - 1 // One column for the cursor
	if avail <= 0 {
		return
	}

	value := []rune(m.input.Value())
	pos := core.Clamp(m.input.Position(), 0, len(value))
	start := 0
	for start < pos && runewidth.StringWidth(string(value[start:pos])) > avail {
		start++
	}

	x += f.DrawText(x, y, string(value[start:pos]), core.ColorEcho)

	under := " "
	if pos < len(value) {
		under = string(value[pos])
	}
	x += f.DrawText(x, y, under, core.ColorCursor)

	if pos+1 < len(value) {
		rest := string(value[pos+1:])
		f.DrawText(x, y, runewidth.Truncate(rest, core.Max(r.Right()-2-x, 0), ""), core.ColorEcho)
	}
}

// drawPopup draws the level-up notice in the top right corner.
func (m Model) drawPopup(f *core.Screen) {
	text := m.popup.Text()
	w := runewidth.StringWidth(text) + 4
	y := 0
	if !m.layout.header.Empty() {
		y = m.layout.header.Bottom()
	}
	r := core.NewRect(core.Max(f.Width()-w-2, 0), y, w, 3)
	f.DrawRect(r, ' ', core.ColorPopup)
	f.DrawText(r.X+2, r.Y+1, text, core.ColorPopup)
}
