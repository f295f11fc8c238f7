package core

// Color is a semantic color slot for a screen cell.
// Slots are resolved to concrete terminal colors by the active theme palette,
// so renderers never need to know which theme is on screen.
type Color uint8

// Color slots shared by backgrounds and the terminal chrome.
const (
	ColorDefault    Color = iota
	ColorBackdropLo       // Faded backdrop cells
	ColorBackdropMid
	ColorBackdropHi // Freshly lit particles
	ColorText       // Interpreter output
	ColorAccent     // Banner, highlights
	ColorEcho       // Echoed user input
	ColorBorder
	ColorMuted // Help footer, hints
	ColorPopup
	ColorCursor
)

// Tier maps a cell intensity to one of the three backdrop slots.
func Tier(intensity float64) Color {
	switch {
	case intensity >= 0.45:
		return ColorBackdropHi
	case intensity >= 0.2:
		return ColorBackdropMid
	default:
		return ColorBackdropLo
	}
}
