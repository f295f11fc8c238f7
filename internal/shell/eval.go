package shell

import (
	"fmt"
	"strings"
)

// Rand is the source of randomness for the guessing game.
// *rand.Rand satisfies it; tests inject a fixed source.
type Rand interface {
	Intn(n int) int
}

// Command names understood by the interpreter.
const (
	CmdHelp  = "help"
	CmdTheme = "theme"
	CmdClear = "clear"
	CmdAbout = "about"
	CmdStats = "stats"
	CmdGuess = "guess"
)

// Fixed replies.
const (
	MsgGameStarted    = "🎲 Guess a number between 1 and 100!"
	MsgGameInProgress = "Game already in progress!"
	MsgInvalidGuess   = "Please enter a valid number."
	MsgHigher         = "Higher! 👆"
	MsgLower          = "Lower! 👇"
	MsgUnknown        = `Unknown command. Type "help" for commands.`
)

const helpText = `Available Commands:

1. help   - Show all available commands
2. guess  - Start the number guessing game
3. theme  - Change terminal theme (matrix/cyber/wow)
4. clear  - Clear terminal screen
5. about  - Show terminal information
6. stats  - Show your level and XP progress

Type a command to begin!`

// EventKind classifies side effects a command produced.
type EventKind int

const (
	EventLevelUp EventKind = iota
	EventThemeChanged
	EventGameStarted
	EventGameWon
)

// Event describes one notable side effect of evaluating a command.
type Event struct {
	Kind  EventKind
	Level int   // EventLevelUp: the new level
	Theme Theme // EventThemeChanged: the new theme
	Tries int   // EventGameWon: guesses taken, including the winning one
}

// Result is what evaluating one line produced.
type Result struct {
	Output  string  // Reply to show; empty for clear and ignored input
	Ignored bool    // Input was blank and nothing happened
	Cleared bool    // The transcript was emptied
	Awarded int     // Total XP granted by this line
	Events  []Event // Side effects in the order they happened
}

// LeveledUp reports the level reached if this result contains a level up.
func (r Result) LeveledUp() (int, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind == EventLevelUp {
			return r.Events[i].Level, true
		}
	}
	return 0, false
}

// Eval interprets one line of input and returns the next state.
// The transcript is only touched by clear; Submit records the exchange.
func Eval(s State, input string, rng Rand) (State, Result) {
	var res Result

	cmd := strings.ToLower(strings.TrimSpace(input))
	if cmd == "" {
		res.Ignored = true
		return s, res
	}

	// Baseline XP comes first and is skipped while guessing so numeric
	// guesses are not rewarded twice.
	if !s.Game.Active {
		award(&s, &res, BaselineXP)
	}

	switch cmd {
	case CmdHelp:
		res.Output = helpText

	case CmdTheme:
		s.Theme = s.Theme.Next()
		res.Events = append(res.Events, Event{Kind: EventThemeChanged, Theme: s.Theme})
		award(&s, &res, ThemeXP)
		res.Output = fmt.Sprintf("Theme changed to %s!", s.Theme)

	case CmdClear:
		s.Transcript = nil
		res.Cleared = true

	case CmdAbout:
		res.Output = fmt.Sprintf("WOW Terminal v%s\nCurrent Level: %d\nXP: %d/%d\nTheme: %s\n\nType \"help\" for commands!",
			Version, s.Level, s.XP, s.NextLevelAt(), s.Theme)

	case CmdStats:
		res.Output = fmt.Sprintf("🏆 Level: %d | XP: %d/%d\nProgress: [%s]",
			s.Level, s.XP, s.NextLevelAt(), ProgressBar(s.XP, s.Level))

	case CmdGuess:
		if s.Game.Active {
			res.Output = MsgGameInProgress
			break
		}
		s.Game = Game{Active: true, Secret: rng.Intn(100) + 1}
		res.Events = append(res.Events, Event{Kind: EventGameStarted})
		award(&s, &res, GameStartXP)
		res.Output = MsgGameStarted

	default:
		if !s.Game.Active {
			res.Output = MsgUnknown
			break
		}
		s, res = guess(s, res, cmd)
	}

	return s, res
}

// guess scores one guess against the secret number.
func guess(s State, res Result, cmd string) (State, Result) {
	n, ok := parseGuess(cmd)
	if !ok {
		res.Output = MsgInvalidGuess
		return s, res
	}

	earlier := s.Game.Tries
	s.Game.Tries++

	switch {
	case n == s.Game.Secret:
		s.Game.Active = false
		s.Game.Secret = 0
		reward := WinReward(earlier)
		res.Events = append(res.Events, Event{Kind: EventGameWon, Tries: s.Game.Tries})
		award(&s, &res, reward)
		res.Output = fmt.Sprintf("🎉 Correct! You won in %d tries! (+%dXP)", s.Game.Tries, reward)
	case n < s.Game.Secret:
		res.Output = MsgHigher
	default:
		res.Output = MsgLower
	}
	return s, res
}

// Submit evaluates a line typed at the prompt and records the exchange in
// the transcript: the echoed input, then the reply if there is one.
// Blank input leaves the transcript untouched.
func Submit(s State, input string, rng Rand) (State, Result) {
	next, res := Eval(s, input, rng)
	if res.Ignored {
		return next, res
	}

	next.Transcript = appendTranscript(next.Transcript, EchoPrefix+input)
	if res.Output != "" {
		next.Transcript = appendTranscript(next.Transcript, res.Output)
	}
	return next, res
}

// ToggleTheme is the one-key theme switch. It runs the theme command without
// recording anything in the transcript.
func ToggleTheme(s State, rng Rand) (State, Result) {
	return Eval(s, CmdTheme, rng)
}
