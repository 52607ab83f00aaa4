package mathhammer

import (
	"math"

	"github.com/cory-johannsen/mathhammer/internal/game/dice"
)

// maxRollModifier is the largest net modifier a hit or wound roll may receive.
const maxRollModifier = 1

// netModifier sums contributions and caps the result to ±maxRollModifier.
//
// Postcondition: -1 <= return value <= 1.
func netModifier(contributions ...int) int {
	sum := 0
	for _, c := range contributions {
		sum += c
	}
	return min(max(sum, -maxRollModifier), maxRollModifier)
}

// modifiedTarget applies the capped net modifier to a base roll target and
// clamps the result to [2,6]. A +1 modifier lowers the target.
// The hit and wound resolvers both go through this function.
//
// Postcondition: 2 <= return value <= 6.
func modifiedTarget(base int, contributions ...int) int {
	return dice.ClampTarget(base - netModifier(contributions...))
}

// naturalChance returns the chance of an unmodified roll of at least threshold.
func naturalChance(threshold int) float64 {
	return dice.TargetProbability(threshold)
}

// rerolled applies a reroll policy to a success chance p.
//
// Postcondition: p <= return value <= 1 for p in [0,1].
func rerolled(p float64, policy RerollPolicy) float64 {
	switch policy {
	case RerollAll:
		return p + (1-p)*p
	case RerollOnes:
		return p + p/dice.Faces
	default:
		return p
	}
}

// critRate returns the rate of natural rolls at or above the critical
// threshold, including rerolled dice that land on one. Which dice get
// rerolled depends on success, so the overall success chance is needed too.
//
// Precondition: pCrit <= pSuccess.
func critRate(pCrit, pSuccess float64, policy RerollPolicy) float64 {
	switch policy {
	case RerollAll:
		return pCrit + (1-pSuccess)*pCrit
	case RerollOnes:
		return pCrit + pCrit/dice.Faces
	default:
		return pCrit
	}
}

// finite coerces NaN and ±Inf to 0.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// probability coerces x into [0,1], mapping NaN to 0.
func probability(x float64) float64 {
	return min(max(finite(x), 0), 1)
}

// safeDiv returns a/b, or 0 when the quotient is not finite.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return finite(a / b)
}
