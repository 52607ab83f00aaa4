package mathhammer

import (
	"github.com/cory-johannsen/mathhammer/internal/game/dice"
)

// coverSaveCap is the best armour save that still benefits from cover
// against AP 0 attacks.
const coverSaveCap = 3

// SaveTarget returns the final saving throw target for d against a. The
// result is above 6 when no save is possible.
//
// Postcondition: Returns >= 2.
func SaveTarget(a AttackerProfile, d DefenderProfile, m Modifiers) int {
	f := effectiveFlags(a, d, m)
	return saveTarget(a, d, m, f)
}

func saveTarget(a AttackerProfile, d DefenderProfile, m Modifiers, f flags) int {
	noSave := dice.MaxTarget + 1

	armour := noSave
	if sv, err := dice.ParseTarget(d.Save); err == nil {
		ap := abs(a.AP) + max(m.APReduction, 0)
		armour = sv + ap
		if m.Cover && !f.ignoresCover && !(sv <= coverSaveCap && ap == 0) {
			armour--
		}
		armour = max(armour, dice.MinTarget)
	}

	if inv, err := dice.ParseTarget(d.Invulnerable); err == nil && inv > 0 {
		// Invulnerable saves ignore AP and cover.
		armour = min(armour, max(inv, dice.MinTarget))
	}
	return armour
}

// attackDamage returns the damage of one attack after Melta and damage
// reduction. Reduction is taken from the average damage, not per die face:
// D6 with reduction 1 gives 2.5 where the exact mean is 2.667.
func attackDamage(a AttackerProfile, d DefenderProfile, f flags) float64 {
	dmg := max(finite(a.Damage), 0) + float64(f.meltaBonus)
	if d.DamageReduction > 0 {
		reduced := dmg - float64(d.DamageReduction)
		if reduced < 1 {
			reduced = min(dmg, 1)
		}
		dmg = reduced
	}
	return dmg
}

// feelNoPainChance returns the chance of ignoring one point of damage.
func feelNoPainChance(d DefenderProfile) float64 {
	if d.FeelNoPain <= 0 {
		return 0
	}
	return dice.TargetProbability(d.FeelNoPain)
}

// damageOutcome is the Save and Damage phase output.
type damageOutcome struct {
	saveRate float64
	unsaved  float64
	damage   float64
	killed   float64
}

// resolveDamage runs the Save and Damage phases.
//
// Shot damage does not spill between models: each unsaved wound can remove at
// most one model's wounds. Mortal wound damage does spill.
func resolveDamage(d DefenderProfile, wounds woundOutcome, saveTarget int, dmg float64) damageOutcome {
	saveRate := probability(dice.TargetProbability(saveTarget))
	unsaved := finite(wounds.normal * (1 - saveRate))

	fnp := feelNoPainChance(d)
	through := 1 - fnp

	damage := finite((unsaved*dmg + wounds.mortal) * through)

	perShot := min(dmg, d.Wounds)
	killed := safeDiv(unsaved*perShot, d.Wounds) + safeDiv(wounds.mortal, d.Wounds)
	killed = finite(killed * through)
	if d.ModelCount > 0 {
		killed = min(killed, float64(d.ModelCount))
	}

	return damageOutcome{
		saveRate: saveRate,
		unsaved:  unsaved,
		damage:   max(damage, 0),
		killed:   max(killed, 0),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
