// Package dice provides dice-notation parsing and the roll-target probability
// primitives used by the damage calculator.
//
// Nothing in this package rolls dice. Every function returns a closed-form
// expectation or probability.
package dice

import "fmt"

// Faces is the number of faces on the die every hit, wound, save, and
// Feel No Pain roll is made with.
const Faces = 6

// Expression is a parsed dice expression of the form [N]D[F][±M].
//
// Invariant: Count >= 1 and Sides >= 2 after a successful Parse.
type Expression struct {
	Raw      string // original input string
	Count    int    // number of dice
	Sides    int    // faces per die
	Modifier int    // flat modifier (may be negative)
}

// Average returns the expected total of the expression: Count*(Sides+1)/2 + Modifier.
//
// Postcondition: return value == Count*(Sides+1)/2 + Modifier.
func (e Expression) Average() float64 {
	return float64(e.Count)*float64(e.Sides+1)/2 + float64(e.Modifier)
}

// Min returns the smallest total the expression can produce.
func (e Expression) Min() int {
	return e.Count + e.Modifier
}

// Max returns the largest total the expression can produce.
func (e Expression) Max() int {
	return e.Count*e.Sides + e.Modifier
}

// String returns the canonical form of the expression, e.g. "2D6+1".
func (e Expression) String() string {
	s := fmt.Sprintf("%dD%d", e.Count, e.Sides)
	if e.Modifier != 0 {
		s += fmt.Sprintf("%+d", e.Modifier)
	}
	return s
}
