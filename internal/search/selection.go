package search

import (
	"strconv"
	"strings"
)

// Selection is a caller's follow-up pick from a ranked result list.
// The zero value selects nothing.
type Selection struct {
	rank int
}

// Select picks the result with the given 1-based rank.
func Select(rank int) Selection {
	return Selection{rank: rank}
}

// ParseSelection reads a rank from user input. Anything that is not a
// positive integer means "no selection".
func ParseSelection(input string) Selection {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 {
		return Selection{}
	}
	return Selection{rank: n}
}

// Rank returns the selected rank, if any.
func (s Selection) Rank() (int, bool) {
	return s.rank, s.rank > 0
}

// pick returns the match for the selected rank. Out-of-range ranks select nothing.
func (s Selection) pick(matches []Match) (Match, bool) {
	if s.rank < 1 || s.rank > len(matches) {
		return Match{}, false
	}
	return matches[s.rank-1], true
}
