package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wow-terminal/internal/core"
	"github.com/vovakirdan/wow-terminal/internal/shell"
)

// Background ids mounted per theme.
const (
	BackgroundRain = "rain"
	BackgroundGrid = "grid"
)

// colorSet lists the concrete colors of one theme.
type colorSet struct {
	background string
	text       string
	accent     string
	echo       string
	border     string
	muted      string
	backdrop   [3]string // lo, mid, hi
	popupFg    string
	popupBg    string
}

var themeColors = map[shell.Theme]colorSet{
	shell.ThemeMatrix: {
		background: BackgroundRain,
		text:       "#4ade80",
		accent:     "#86efac",
		echo:       "#ffffff",
		border:     "#22c55e",
		muted:      "#6b7280",
		backdrop:   [3]string{"#14532d", "#15803d", "#22c55e"},
		popupFg:    "#000000",
		popupBg:    "#eab308",
	},
	shell.ThemeCyber: {
		background: BackgroundGrid,
		text:       "#22d3ee",
		accent:     "#ec4899",
		echo:       "#ffffff",
		border:     "#06b6d4",
		muted:      "#6b7280",
		backdrop:   [3]string{"#164e63", "#0e7490", "#00ffff"},
		popupFg:    "#000000",
		popupBg:    "#eab308",
	},
	shell.ThemeWow: {
		background: BackgroundGrid,
		text:       "#c084fc",
		accent:     "#ec4899",
		echo:       "#ffffff",
		border:     "#a855f7",
		muted:      "#6b7280",
		backdrop:   [3]string{"#3b0764", "#7e22ce", "#d8b4fe"},
		popupFg:    "#000000",
		popupBg:    "#eab308",
	},
}

// Palette resolves core color slots to styles for one theme.
type Palette struct {
	Theme      shell.Theme
	Background string // Registry id of the backdrop for this theme
	styles     map[core.Color]lipgloss.Style
}

// NewPalette builds the palette for theme using renderer r. A nil renderer
// means the default stdout renderer; SSH sessions pass their own so colors
// match the client's terminal.
func NewPalette(r *lipgloss.Renderer, theme shell.Theme) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	set, ok := themeColors[theme]
	if !ok {
		theme = shell.ThemeMatrix
		set = themeColors[theme]
	}

	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Palette{
		Theme:      theme,
		Background: set.background,
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:     r.NewStyle(),
			core.ColorBackdropLo:  fg(set.backdrop[0]),
			core.ColorBackdropMid: fg(set.backdrop[1]),
			core.ColorBackdropHi:  fg(set.backdrop[2]).Bold(true),
			core.ColorText:        fg(set.text),
			core.ColorAccent:      fg(set.accent).Bold(true),
			core.ColorEcho:        fg(set.echo),
			core.ColorBorder:      fg(set.border),
			core.ColorMuted:       fg(set.muted),
			core.ColorPopup: r.NewStyle().
				Foreground(lipgloss.Color(set.popupFg)).
				Background(lipgloss.Color(set.popupBg)).
				Bold(true),
			core.ColorCursor: fg(set.text).Reverse(true),
		},
	}
}

// Style returns the style for slot c, falling back to the default slot.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.styles[core.ColorDefault]
}
