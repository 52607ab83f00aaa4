package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Roll target bounds. A natural 1 always fails and a natural 6 always
// succeeds, so a modified target never leaves [MinTarget, MaxTarget] unless it
// is pushed past MaxTarget, which makes the roll impossible.
const (
	MinTarget = 2
	MaxTarget = 6
)

// ParseTarget parses a "T+" roll target such as "3+". A bare integer ("3")
// is accepted as well.
//
// Postcondition: Returns T or a descriptive error.
func ParseTarget(target string) (int, error) {
	s := strings.TrimSuffix(strings.TrimSpace(target), "+")
	if s == "" {
		return 0, fmt.Errorf("dice: empty roll target %q", target)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("dice: invalid roll target %q: %w", target, err)
	}
	return n, nil
}

// RollProbability converts a "T+" string into the probability of rolling T or
// higher on a D6, i.e. (7-T)/6 clamped into [0,1].
// Unparseable input returns 0.
//
// Postcondition: 0 <= return value <= 1.
func RollProbability(target string) float64 {
	t, err := ParseTarget(target)
	if err != nil {
		return 0
	}
	return clampProbability(float64(Faces+1-t) / Faces)
}

// TargetProbability returns the probability of meeting target on a D6 after
// modifiers: targets below MinTarget are treated as MinTarget and targets
// above MaxTarget are impossible.
//
// Postcondition: 0 <= return value <= 5/6.
func TargetProbability(target int) float64 {
	if target > MaxTarget {
		return 0
	}
	return float64(Faces+1-ClampTarget(target)) / Faces
}

// ClampTarget clamps target into [MinTarget, MaxTarget].
func ClampTarget(target int) int {
	return min(max(target, MinTarget), MaxTarget)
}

func clampProbability(p float64) float64 {
	return min(max(p, 0), 1)
}
