package mathhammer

import (
	"github.com/cory-johannsen/mathhammer/internal/game/ability"
	"github.com/cory-johannsen/mathhammer/internal/game/dice"
)

// flags is the merged view of weapon abilities, defender traits, and
// modifiers that every phase reads. It is computed once per calculation so an
// effect granted both by an ability and by a modifier is applied once.
type flags struct {
	torrent      bool
	lethal       bool
	devastating  bool
	twinLinked   bool
	ignoresCover bool
	sustained    int
	meltaBonus   int
	blastBonus   int

	hitModifiers   []int
	woundModifiers []int

	critHitOn   int
	critWoundOn int
	antiOn      int
}

func effectiveFlags(a AttackerProfile, d DefenderProfile, m Modifiers) flags {
	abilities := a.Abilities

	f := flags{
		torrent:      abilities.Has(ability.TorrentKind),
		lethal:       m.LethalHits || abilities.Has(ability.LethalHitsKind),
		devastating:  m.DevastatingWounds || abilities.Has(ability.DevastatingWoundsKind),
		twinLinked:   abilities.Has(ability.TwinLinkedKind),
		ignoresCover: abilities.Has(ability.IgnoresCoverKind),
		sustained:    abilities.Value(ability.SustainedHitsKind),
		critHitOn:    dice.MaxTarget,
		critWoundOn:  dice.MaxTarget,
	}
	if m.SustainedHits > 0 {
		f.sustained = m.SustainedHits
	}
	if m.HalfRange {
		f.meltaBonus = abilities.Value(ability.MeltaKind)
	}
	if abilities.Has(ability.BlastKind) && d.ModelCount > 0 {
		f.blastBonus = (d.ModelCount / 5) * max(a.Models, 1)
	}

	heavy := abilities.Has(ability.HeavyKind) && !m.Moved
	f.hitModifiers = []int{m.PlusToHit, boolMod(m.Stealth, -1), boolMod(heavy, 1)}

	lance := m.Lance || (abilities.Has(ability.LanceKind) && m.Charged)
	f.woundModifiers = []int{m.PlusToWound, boolMod(lance, 1)}

	if validThreshold(m.CritHitOn) {
		f.critHitOn = min(f.critHitOn, m.CritHitOn)
	}

	f.antiOn = abilities.AntiThreshold(d.Keywords)
	if m.AntiKeywordActive {
		if best := abilities.BestAnti(); best > 0 && (f.antiOn == 0 || best < f.antiOn) {
			f.antiOn = best
		}
	}
	if validThreshold(m.CritWoundOn) {
		f.critWoundOn = min(f.critWoundOn, m.CritWoundOn)
	}
	if f.antiOn > 0 {
		f.critWoundOn = min(f.critWoundOn, f.antiOn)
	}
	return f
}

func boolMod(on bool, v int) int {
	if on {
		return v
	}
	return 0
}

func validThreshold(t int) bool {
	return t >= dice.MinTarget && t <= dice.MaxTarget
}
