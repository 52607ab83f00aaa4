package mathhammer

import (
	"github.com/cory-johannsen/mathhammer/internal/game/dice"
)

// hitOutcome is the Hit phase output consumed by the Wound phase.
type hitOutcome struct {
	// regular hits roll to wound.
	regular float64
	// lethal hits wound automatically.
	lethal float64
	// sustained is the number of extra hits from Sustained Hits, already
	// included in regular.
	sustained float64
	chance    float64
	crit      float64
}

func (h hitOutcome) total() float64 { return h.regular + h.lethal }

// resolveHits runs the Hit phase for attacks dice.
//
// Under HitOn6Only only unmodified 6s hit, but the hit reroll policy still
// applies to that 1/6 chance (reroll all gives 1/6 + 5/6*1/6). Torrent
// overrides HitOn6Only.
//
// Postcondition: chance and crit are in [0,1]; lethal == attacks*crit when
// Lethal Hits is active, independent of Sustained Hits.
func resolveHits(a AttackerProfile, attacks float64, m Modifiers, f flags) hitOutcome {
	var chance, crit float64
	switch {
	case f.torrent:
		// No hit roll is made, so nothing can be a critical hit.
		chance, crit = 1, 0
	case m.HitOn6Only:
		six := naturalChance(dice.MaxTarget)
		chance = rerolled(six, m.RerollHits)
		crit = critRate(six, six, m.RerollHits)
	default:
		skill, err := dice.ParseTarget(a.Skill)
		if err != nil {
			return hitOutcome{}
		}
		target := modifiedTarget(skill, f.hitModifiers...)
		pCrit := naturalChance(f.critHitOn)
		// Critical hits always hit.
		p := max(dice.TargetProbability(target), pCrit)
		chance = rerolled(p, m.RerollHits)
		crit = critRate(pCrit, p, m.RerollHits)
	}
	chance, crit = probability(chance), probability(crit)

	base := attacks * chance
	out := hitOutcome{chance: chance, crit: crit}
	out.sustained = attacks * crit * float64(f.sustained)
	if f.lethal {
		// Only the critical hits rolled by the original attacks; sustained
		// extras never become lethal.
		out.lethal = attacks * crit
	}
	out.regular = finite(base + out.sustained - out.lethal)
	out.lethal = finite(out.lethal)
	out.sustained = finite(out.sustained)
	return out
}
