// Package shell implements the command interpreter behind the terminal:
// a small state machine over theme, experience, level and the guessing game.
//
// All operations are pure functions from (State, input) to a new State plus a
// Result, so the interpreter can be driven and tested without any UI.
package shell

import "slices"

const (
	// Version is reported by the about command.
	Version = "2.8.0"

	// WelcomeMessage opens every fresh transcript.
	WelcomeMessage = `Welcome to WOW Terminal! Type "help" to begin. Type "theme" to change theme.`

	// EchoPrefix marks transcript lines that repeat user input.
	EchoPrefix = "> "
)

// Mode is the state of the guessing game.
type Mode int

const (
	ModeIdle Mode = iota
	ModeGuessing
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeGuessing:
		return "Guessing"
	default:
		return "Unknown"
	}
}

// Game holds the guessing game. Secret is non-zero exactly while Active.
type Game struct {
	Active bool
	Secret int // In [1,100] while Active
	Tries  int // Guesses made in the current or last game
}

// State is everything the interpreter remembers for one session.
type State struct {
	Theme      Theme
	XP         int
	Level      int
	Transcript []string
	Game       Game
}

// NewState returns the state of a fresh session on the given theme.
func NewState(theme Theme) State {
	if _, err := ParseTheme(string(theme)); err != nil {
		theme = ThemeMatrix
	}
	return State{
		Theme:      theme,
		Level:      1,
		Transcript: []string{WelcomeMessage},
	}
}

// Mode reports whether a game is running.
func (s State) Mode() Mode {
	if s.Game.Active {
		return ModeGuessing
	}
	return ModeIdle
}

// NextLevelAt is the cumulative XP that triggers the next level up.
func (s State) NextLevelAt() int {
	return s.Level * 100
}

// appendTranscript returns a transcript with lines added, never sharing
// backing storage with the previous state.
func appendTranscript(t []string, lines ...string) []string {
	return append(slices.Clip(t), lines...)
}
