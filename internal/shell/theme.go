package shell

import "fmt"

// Theme names one of the three visual variants.
type Theme string

const (
	ThemeMatrix Theme = "matrix"
	ThemeCyber  Theme = "cyber"
	ThemeWow    Theme = "wow"
)

// themeOrder is the cycle walked by the theme command.
var themeOrder = []Theme{ThemeMatrix, ThemeCyber, ThemeWow}

// Themes returns every theme in cycle order.
func Themes() []Theme {
	out := make([]Theme, len(themeOrder))
	copy(out, themeOrder)
	return out
}

// Next returns the theme that follows t in the cycle matrix → cyber → wow → matrix.
// Unknown themes restart the cycle.
func (t Theme) Next() Theme {
	for i, th := range themeOrder {
		if th == t {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ParseTheme validates a theme name.
func ParseTheme(name string) (Theme, error) {
	for _, th := range themeOrder {
		if string(th) == name {
			return th, nil
		}
	}
	return "", fmt.Errorf("shell: unknown theme %q (want matrix, cyber or wow)", name)
}
