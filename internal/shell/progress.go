package shell

import "strings"

// Experience rewards.
const (
	BaselineXP    = 5  // Every non-empty line while no game runs
	ThemeXP       = 10 // Switching theme
	GameStartXP   = 15 // Starting a guessing game
	WinBaseXP     = 50 // Winning a guessing game
	WinBonusXP    = 50 // Extra for a quick win, minus PenaltyPerTry per earlier guess
	PenaltyPerTry = 2

	progressSegments = 10
)

// WinReward returns the XP for a win after the given number of earlier guesses.
func WinReward(tries int) int {
	return WinBaseXP + max(0, WinBonusXP-tries*PenaltyPerTry)
}

// award adds XP and levels up at most once if the new total reaches the
// current threshold.
func award(s *State, res *Result, amount int) {
	s.XP += amount
	res.Awarded += amount
	if s.XP >= s.NextLevelAt() {
		s.Level++
		res.Events = append(res.Events, Event{Kind: EventLevelUp, Level: s.Level})
	}
}

// ProgressBar renders a ten segment bar of progress through the current level.
func ProgressBar(xp, level int) string {
	if level < 1 {
		level = 1
	}
	filled := (xp % (level * 100)) / (level * progressSegments)
	filled = min(max(filled, 0), progressSegments)
	return strings.Repeat("=", filled) + strings.Repeat(".", progressSegments-filled)
}
