package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a dice expression string into an Expression.
// Supported forms: "D6", "d3", "2D6", "2D6+1", "D6-1". Matching is
// case-insensitive and surrounding whitespace is ignored.
//
// Precondition: expr must be a non-empty string.
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	raw := expr
	s := strings.ToLower(strings.ReplaceAll(expr, " ", ""))
	if s == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", raw)
	}

	// Count defaults to 1 when omitted.
	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if count <= 0 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
	}

	rest := s[dIdx+1:]

	// The modifier starts at the first sign after the sides digits.
	modOffset := strings.IndexAny(rest, "+-")

	sidesStr, modStr := rest, ""
	if modOffset >= 0 {
		sidesStr = rest[:modOffset]
		modStr = rest[modOffset:]
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", raw)
	}

	modifier := 0
	if modStr != "" {
		modifier, err = strconv.Atoi(modStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
	}

	return Expression{
		Raw:      raw,
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
	}, nil
}

// ParseRange returns the smallest and largest totals formula can produce,
// which is either a flat integer or a dice expression. Negative totals are
// floored at 0.
//
// Postcondition: ok is false and lo == hi == 0 when formula is malformed.
func ParseRange(formula string) (lo, hi int, ok bool) {
	s := strings.TrimSpace(formula)
	if n, err := strconv.Atoi(s); err == nil {
		n = max(n, 0)
		return n, n, true
	}
	e, err := Parse(s)
	if err != nil {
		return 0, 0, false
	}
	return max(e.Min(), 0), max(e.Max(), 0), true
}

// ParseAverage returns the expected value of formula, which is either a flat
// integer ("3") or a dice expression ("D6", "2D6+1").
//
// Malformed input returns 0 rather than an error: callers treat 0 as "no
// attacks" or "no damage".
//
// Postcondition: Returns >= 0.
func ParseAverage(formula string) float64 {
	s := strings.TrimSpace(formula)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0
		}
		return float64(n)
	}
	e, err := Parse(s)
	if err != nil {
		return 0
	}
	if avg := e.Average(); avg > 0 {
		return avg
	}
	return 0
}
