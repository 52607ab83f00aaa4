package mathhammer

import (
	"github.com/cory-johannsen/mathhammer/internal/game/dice"
)

// woundOutcome is the Wound phase output consumed by the Save phase.
type woundOutcome struct {
	// normal wounds proceed to saving throws.
	normal float64
	// critical is the number of critical wounds converted by Devastating Wounds.
	critical float64
	// mortal is the damage from critical, which bypasses saves.
	mortal float64
	total  float64
	target int
	chance float64
	crit   float64
}

// WoundTarget returns the unmodified roll needed to wound for strength s
// against toughness t.
//
// Postcondition: Returns 2..6, or 7 when either characteristic is not positive.
func WoundTarget(s, t int) int {
	switch {
	case s <= 0 || t <= 0:
		return dice.MaxTarget + 1
	case s >= 2*t:
		return 2
	case s > t:
		return 3
	case s == t:
		return 4
	case 2*s <= t:
		return 6
	default:
		return 5
	}
}

// resolveWounds runs the Wound phase. damage is the per-attack damage used to
// convert critical wounds into mortal wounds.
func resolveWounds(a AttackerProfile, d DefenderProfile, hits hitOutcome, m Modifiers, f flags, damage float64) woundOutcome {
	base := WoundTarget(a.Strength, d.Toughness)
	if base > dice.MaxTarget {
		// Malformed characteristics: lethal hits still wound.
		return woundOutcome{normal: hits.lethal, total: hits.lethal, target: base}
	}

	policy := m.RerollWounds
	if f.twinLinked {
		policy = RerollAll
	}

	target := modifiedTarget(base, f.woundModifiers...)
	pCrit := naturalChance(f.critWoundOn)
	// Critical wounds always wound.
	p := max(dice.TargetProbability(target), pCrit)
	chance := probability(rerolled(p, policy))
	crit := probability(critRate(pCrit, p, policy))

	rolled := hits.regular * chance
	out := woundOutcome{
		target: target,
		chance: chance,
		crit:   crit,
		total:  finite(rolled + hits.lethal),
	}
	if f.devastating {
		out.critical = finite(hits.regular * crit)
		out.mortal = finite(out.critical * damage)
		rolled -= out.critical
	}
	// Lethal hits skip the wound roll but are not critical wounds.
	out.normal = finite(rolled + hits.lethal)
	return out
}
