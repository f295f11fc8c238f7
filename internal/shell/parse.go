package shell

import (
	"errors"
	"math"
	"strconv"
)

// parseGuess reads a decimal integer from the start of s: an optional sign
// followed by at least one digit. Anything after the digits is ignored, so
// "42abc" reads as 42. Values too large for an int saturate.
func parseGuess(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return int(n), true
}
