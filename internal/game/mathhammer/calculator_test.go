package mathhammer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/mathhammer/internal/game/ability"
	"github.com/cory-johannsen/mathhammer/internal/game/mathhammer"
	"github.com/cory-johannsen/mathhammer/internal/testutil"
)

const eps = 1e-9

func TestWoundTarget_Bands(t *testing.T) {
	cases := []struct{ s, t, want int }{
		{8, 4, 2},
		{10, 5, 2},
		{5, 4, 3},
		{4, 4, 4},
		{3, 4, 5},
		{3, 5, 5},
		{2, 4, 6},
		{4, 8, 6},
		{0, 4, 7},
		{4, 0, 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mathhammer.WoundTarget(tc.s, tc.t), "S%d vs T%d", tc.s, tc.t)
	}
}

// TestCalculateDamage_StrengthEightAPThree walks the S8 AP3 D2 scenario
// through every phase and compares it with AP 0.
func TestCalculateDamage_StrengthEightAPThree(t *testing.T) {
	a := mathhammer.AttackerProfile{Skill: "3+", Strength: 8, AP: 3, Damage: 2, Attacks: 10}
	d := mathhammer.DefenderProfile{Toughness: 4, Save: "3+", Wounds: 2}

	res := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.Equal(t, 2, res.WoundTarget)
	assert.Equal(t, 6, res.SaveTarget)
	assert.InDelta(t, 4.0/6, res.HitRate, eps)
	assert.InDelta(t, 5.0/6, res.WoundRate, eps)
	assert.InDelta(t, 1.0/6, res.SaveRate, eps)
	assert.InDelta(t, 10*(4.0/6), res.ExpectedHits, eps)
	unsaved := 10 * (4.0 / 6) * (5.0 / 6) * (5.0 / 6)
	assert.InDelta(t, unsaved, res.ExpectedUnsaved, eps)
	assert.InDelta(t, unsaved*2, res.ExpectedDamage, eps)
	assert.InDelta(t, unsaved, res.ModelsKilled, eps)

	a.AP = 0
	noAP := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.Greater(t, res.ExpectedDamage, noAP.ExpectedDamage)
}

// TestCalculateDamage_LethalAndSustained checks that sustained extras are
// regular hits and lethal hits come only from the original attacks.
func TestCalculateDamage_LethalAndSustained(t *testing.T) {
	a := mathhammer.AttackerProfile{
		Skill: "4+", Strength: 4, Damage: 1, Attacks: 12,
		Abilities: ability.Set{ability.LethalHits(), ability.SustainedHits(1)},
	}
	d := mathhammer.DefenderProfile{Toughness: 4, Save: "4+", Wounds: 1}

	res := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.InDelta(t, 12*0.5+12.0/6, res.ExpectedHits, eps)
	assert.InDelta(t, 12.0/6, res.LethalHits, eps)
	assert.InDelta(t, 12.0/6, res.SustainedHits, eps)
	// Regular hits (6) wound on 4+, lethal hits (2) wound automatically.
	assert.InDelta(t, 6*0.5+2, res.ExpectedWounds, eps)
}

func TestCalculateDamage_SustainedNeverChangesLethal(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := testutil.GenAttacker(rt)
		a.Abilities = append(a.Abilities, ability.LethalHits())
		d := testutil.GenDefender(rt, true)
		m := testutil.GenModifiers(rt)

		m.SustainedHits = 0
		base := mathhammer.CalculateDamage(a, d, m)
		m.SustainedHits = rapid.IntRange(1, 6).Draw(rt, "sustained")
		withSustained := mathhammer.CalculateDamage(a, d, m)

		assert.InDelta(rt, base.LethalHits, withSustained.LethalHits, eps)
	})
}

func TestCalculateDamage_HitOnSixOnly(t *testing.T) {
	a := mathhammer.AttackerProfile{
		Skill: "3+", Strength: 4, Damage: 1, Attacks: 12,
		Abilities: ability.Set{ability.LethalHits()},
	}
	d := mathhammer.DefenderProfile{Toughness: 4, Save: "4+", Wounds: 1}
	res := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{HitOn6Only: true, PlusToHit: 1})
	assert.InDelta(t, 1.0/6, res.HitRate, eps, "modifiers do not apply to overwatch")
	assert.InDelta(t, 2.0, res.ExpectedHits, eps)
	assert.InDelta(t, 2.0, res.LethalHits, eps, "every overwatch hit is a critical hit")
}

func TestCalculateDamage_HitOnSixOnly_Rerolled(t *testing.T) {
	a := mathhammer.AttackerProfile{Skill: "3+", Strength: 4, Damage: 1, Attacks: 12}
	d := mathhammer.DefenderProfile{Toughness: 4, Save: "4+", Wounds: 1}
	all := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{HitOn6Only: true, RerollHits: mathhammer.RerollAll})
	assert.InDelta(t, 11.0/36, all.HitRate, eps)
	ones := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{HitOn6Only: true, RerollHits: mathhammer.RerollOnes})
	assert.InDelta(t, 7.0/36, ones.HitRate, eps)

	a.Abilities = ability.Set{ability.Torrent()}
	torrent := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{HitOn6Only: true})
	assert.Equal(t, 1.0, torrent.HitRate, "torrent overrides overwatch")
}

func TestCalculateDamage_Torrent(t *testing.T) {
	a := mathhammer.AttackerProfile{
		Skill: "6+", Strength: 4, Damage: 1, Attacks: 6,
		Abilities: ability.Set{ability.Torrent(), ability.LethalHits(), ability.SustainedHits(2)},
	}
	res := mathhammer.CalculateDamage(a, testutil.Horde(), mathhammer.Modifiers{})
	assert.Equal(t, 1.0, res.HitRate)
	assert.Zero(t, res.CritHitChance)
	assert.InDelta(t, 6.0, res.ExpectedHits, eps)
	assert.Zero(t, res.LethalHits)
}

func TestCalculateDamage_HitModifiers(t *testing.T) {
	d := testutil.Infantry()

	a := mathhammer.AttackerProfile{Skill: "3+", Strength: 4, Damage: 1, Attacks: 10}
	res := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{Stealth: true})
	assert.InDelta(t, 0.5, res.HitRate, eps, "stealth worsens 3+ to 4+")

	res = mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{RerollHits: mathhammer.RerollOnes})
	assert.InDelta(t, 4.0/6+4.0/36, res.HitRate, eps)

	res = mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{RerollHits: mathhammer.RerollAll})
	assert.InDelta(t, 4.0/6+(2.0/6)*(4.0/6), res.HitRate, eps)

	heavy := mathhammer.AttackerProfile{Skill: "4+", Strength: 4, Damage: 1, Attacks: 10, Abilities: ability.Set{ability.Heavy()}}
	res = mathhammer.CalculateDamage(heavy, d, mathhammer.Modifiers{PlusToHit: 1})
	assert.InDelta(t, 4.0/6, res.HitRate, eps, "heavy and +1 to hit cap at +1")

	res = mathhammer.CalculateDamage(heavy, d, mathhammer.Modifiers{Moved: true})
	assert.InDelta(t, 0.5, res.HitRate, eps)

	res = mathhammer.CalculateDamage(heavy, d, mathhammer.Modifiers{Stealth: true})
	assert.InDelta(t, 0.5, res.HitRate, eps, "heavy cancels stealth")
}

func TestCalculateDamage_CritHitOnFive(t *testing.T) {
	a := mathhammer.AttackerProfile{
		Skill: "3+", Strength: 4, Damage: 1, Attacks: 6,
		Abilities: ability.Set{ability.SustainedHits(1)},
	}
	res := mathhammer.CalculateDamage(a, testutil.Infantry(), mathhammer.Modifiers{CritHitOn: 5})
	assert.InDelta(t, 2.0/6, res.CritHitChance, eps)
	assert.InDelta(t, 6*(4.0/6)+2, res.ExpectedHits, eps)
}

func TestCalculateDamage_WoundModifiers(t *testing.T) {
	d := mathhammer.DefenderProfile{Toughness: 4, Save: "3+", Wounds: 2}
	a := mathhammer.AttackerProfile{Skill: "3+", Strength: 4, Damage: 1, Attacks: 10}

	res := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.InDelta(t, 0.5, res.WoundRate, eps)

	twin := a
	twin.Abilities = ability.Set{ability.TwinLinked()}
	res = mathhammer.CalculateDamage(twin, d, mathhammer.Modifiers{RerollWounds: mathhammer.RerollOnes})
	assert.InDelta(t, 0.75, res.WoundRate, eps, "twin-linked forces reroll all")

	lance := a
	lance.Abilities = ability.Set{ability.Lance()}
	res = mathhammer.CalculateDamage(lance, d, mathhammer.Modifiers{})
	assert.InDelta(t, 0.5, res.WoundRate, eps, "lance needs a charge")

	res = mathhammer.CalculateDamage(lance, d, mathhammer.Modifiers{Charged: true})
	assert.Equal(t, 3, res.WoundTarget)

	res = mathhammer.CalculateDamage(lance, d, mathhammer.Modifiers{Charged: true, Lance: true, PlusToWound: 1})
	assert.Equal(t, 3, res.WoundTarget, "wound modifiers cap at +1")

	res = mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{PlusToWound: -2})
	assert.Equal(t, 5, res.WoundTarget)
}

func TestCalculateDamage_AntiMatching(t *testing.T) {
	a := mathhammer.AttackerProfile{
		Skill: "3+", Strength: 4, Damage: 1, Attacks: 10,
		Abilities: ability.Set{ability.Anti("infantry", 4), ability.DevastatingWounds()},
	}
	d := mathhammer.DefenderProfile{Toughness: 8, Save: "2+", Wounds: 3, Keywords: []string{"Infantry"}}

	res := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.Equal(t, 6, res.WoundTarget, "anti does not change the wound target")
	assert.InDelta(t, 0.5, res.CritWoundChance, eps)
	assert.InDelta(t, 0.5, res.WoundRate, eps, "critical wounds always wound")
	assert.InDelta(t, 10*(4.0/6)*0.5, res.MortalWounds, eps)
}

// TestCalculateDamage_AntiWithoutKeyword verifies an Anti ability whose
// keyword the defender lacks changes neither the wound rate nor the
// critical-wound chance.
func TestCalculateDamage_AntiWithoutKeyword(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := testutil.GenAttacker(rt)
		var kept ability.Set
		for _, ab := range a.Abilities {
			if ab.Kind() != ability.AntiKind {
				kept = append(kept, ab)
			}
		}
		a.Abilities = kept
		d := testutil.GenDefender(rt, true)
		d.Keywords = []string{"Monster"}
		m := testutil.GenModifiers(rt)
		m.AntiKeywordActive = false

		without := mathhammer.CalculateDamage(a, d, m)
		a.Abilities = append(a.Abilities, ability.Anti("infantry", rapid.IntRange(2, 6).Draw(rt, "anti")))
		with := mathhammer.CalculateDamage(a, d, m)

		assert.InDelta(rt, without.WoundRate, with.WoundRate, eps)
		assert.InDelta(rt, without.CritWoundChance, with.CritWoundChance, eps)
	})
}

// TestCalculateDamage_MortalWoundsIgnoreSaveModifiers verifies Devastating
// Wounds output does not depend on AP, cover, or the defender's saves.
func TestCalculateDamage_MortalWoundsIgnoreSaveModifiers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := testutil.GenAttacker(rt)
		a.Abilities = append(a.Abilities, ability.DevastatingWounds())
		d := testutil.GenDefender(rt, true)
		m := testutil.GenModifiers(rt)

		base := mathhammer.CalculateDamage(a, d, m)

		a.AP += rapid.IntRange(1, 4).Draw(rt, "extra_ap")
		m.APReduction += rapid.IntRange(0, 2).Draw(rt, "extra_reduction")
		m.Cover = !m.Cover
		d.Save = "2+"
		d.Invulnerable = ""
		more := mathhammer.CalculateDamage(a, d, m)

		assert.InDelta(rt, base.MortalWounds, more.MortalWounds, eps)
	})
}

func TestCalculateDamage_DamageSpill(t *testing.T) {
	a := mathhammer.AttackerProfile{Skill: "2+", Strength: 10, Damage: 3, Attacks: 6}
	d := mathhammer.DefenderProfile{Toughness: 5, Wounds: 2}

	res := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.Equal(t, 7, res.SaveTarget, "no armour save")
	assert.Zero(t, res.SaveRate)
	unsaved := 5 * (5.0 / 6)
	assert.InDelta(t, unsaved, res.ExpectedUnsaved, eps)
	assert.InDelta(t, unsaved*3, res.ExpectedDamage, eps)
	assert.InDelta(t, unsaved, res.ModelsKilled, eps, "excess shot damage is lost")

	a.Abilities = ability.Set{ability.DevastatingWounds()}
	d.Save = "2+"
	res = mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	critical := 5 * (1.0 / 6)
	mortal := critical * 3
	shots := (5*(5.0/6) - critical) * (1.0 / 6)
	assert.InDelta(t, mortal, res.MortalWounds, eps)
	assert.InDelta(t, shots*3+mortal, res.ExpectedDamage, eps)
	assert.InDelta(t, shots+mortal/2, res.ModelsKilled, eps, "mortal damage spills over")
}

// TestCalculateDamage_FeelNoPainSixScalesByFiveSixths verifies FNP 6+
// removes exactly one sixth of damage and kills from every source.
func TestCalculateDamage_FeelNoPainSixScalesByFiveSixths(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := testutil.GenAttacker(rt)
		d := testutil.GenDefender(rt, false)
		m := testutil.GenModifiers(rt)

		d.FeelNoPain = 0
		plain := mathhammer.CalculateDamage(a, d, m)
		d.FeelNoPain = 6
		fnp := mathhammer.CalculateDamage(a, d, m)

		assert.InDelta(rt, plain.ExpectedDamage*5/6, fnp.ExpectedDamage, 1e-9*(1+plain.ExpectedDamage))
		assert.InDelta(rt, plain.ModelsKilled*5/6, fnp.ModelsKilled, 1e-9*(1+plain.ModelsKilled))
		assert.InDelta(rt, plain.MortalWounds, fnp.MortalWounds, eps)
	})
}

func TestCalculateDamage_Melta(t *testing.T) {
	a := mathhammer.AttackerProfile{
		Skill: "3+", Strength: 9, AP: 4, Damage: 3, Attacks: 2,
		Abilities: ability.Set{ability.Melta(2)},
	}
	d := testutil.Vehicle()
	far := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	near := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{HalfRange: true})
	require.Greater(t, far.ExpectedDamage, 0.0)
	assert.InDelta(t, far.ExpectedDamage*5/3, near.ExpectedDamage, eps)
}

func TestCalculateDamage_DamageReduction(t *testing.T) {
	a := mathhammer.AttackerProfile{Skill: "3+", Strength: 8, Damage: 2, Attacks: 4}
	d := testutil.Vehicle()
	plain := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	d.DamageReduction = 1
	reduced := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.InDelta(t, plain.ExpectedDamage/2, reduced.ExpectedDamage, eps)

	a.Damage = 1
	one := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	d.DamageReduction = 0
	assert.InDelta(t, mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{}).ExpectedDamage, one.ExpectedDamage, eps,
		"damage never drops below 1")
}

func TestCalculateDamage_DamageReductionUsesAverageDamage(t *testing.T) {
	a := mathhammer.AttackerProfile{Skill: "3+", Strength: 8, Damage: 3.5, Attacks: 4}
	d := testutil.Vehicle()
	plain := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	d.DamageReduction = 1
	reduced := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.InDelta(t, plain.ExpectedDamage*2.5/3.5, reduced.ExpectedDamage, eps)
}

func TestCalculateDamage_Blast(t *testing.T) {
	a := mathhammer.AttackerProfile{
		Skill: "2+", Strength: 4, Damage: 1, Attacks: 1, Models: 1,
		Abilities: ability.Set{ability.Blast()},
	}
	d := testutil.Horde()
	d.ModelCount = 10
	res := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.InDelta(t, 3*(5.0/6), res.ExpectedHits, eps)
}

func TestCalculateDamage_KillsCappedByModelCount(t *testing.T) {
	a := mathhammer.AttackerProfile{Skill: "2+", Strength: 10, AP: 3, Damage: 2, Attacks: 200}
	res := mathhammer.CalculateDamage(a, testutil.Horde(), mathhammer.Modifiers{})
	assert.Equal(t, 20.0, res.ModelsKilled)
}

func TestCalculateDamage_MalformedInputDegradesToZero(t *testing.T) {
	d := testutil.Infantry()

	res := mathhammer.CalculateDamage(mathhammer.AttackerProfile{Skill: "garbage", Strength: 4, Damage: 1, Attacks: 10}, d, mathhammer.Modifiers{})
	assert.Zero(t, res.ExpectedHits)
	assert.Zero(t, res.ExpectedDamage)

	a := mathhammer.AttackerProfile{Skill: "3+", Strength: 4, Damage: math.NaN(), Attacks: math.Inf(1)}
	res = mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{})
	assert.False(t, math.IsNaN(res.ExpectedDamage))
	assert.Zero(t, res.ExpectedDamage)

	zero := d
	zero.Wounds = 0
	res = mathhammer.CalculateDamage(testutil.BoltRifle(), zero, mathhammer.Modifiers{})
	assert.Zero(t, res.ModelsKilled)
	assert.False(t, math.IsNaN(res.ModelsKilled))

	res = mathhammer.CalculateDamageWithProbabilities(testutil.BoltRifle(), zero, mathhammer.Modifiers{})
	assert.Zero(t, res.ModelsKilled)
	require.NotNil(t, res.Distribution)
	require.NotNil(t, res.ProbabilityToKill)
	assert.Zero(t, res.Distribution.Expected)
	assert.Zero(t, res.ProbabilityToKill.AtLeast1)
	assert.InDelta(t, 1.0, res.Distribution.Probabilities[0], eps)

	nanWounds := d
	nanWounds.Wounds = math.NaN()
	res = mathhammer.CalculateDamageWithProbabilities(testutil.BoltRifle(), nanWounds, mathhammer.Modifiers{})
	assert.Zero(t, res.ModelsKilled)
	assert.Zero(t, res.ProbabilityToKill.AtLeast1)
}

func TestSaveTarget(t *testing.T) {
	ap := func(n int) mathhammer.AttackerProfile { return mathhammer.AttackerProfile{AP: n} }
	sv := func(save, inv string) mathhammer.DefenderProfile {
		return mathhammer.DefenderProfile{Save: save, Invulnerable: inv}
	}
	cover := mathhammer.Modifiers{Cover: true}

	assert.Equal(t, 3, mathhammer.SaveTarget(ap(0), sv("3+", ""), cover), "3+ gets no cover against AP 0")
	assert.Equal(t, 3, mathhammer.SaveTarget(ap(0), sv("4+", ""), cover))
	assert.Equal(t, 3, mathhammer.SaveTarget(ap(1), sv("3+", ""), cover))
	assert.Equal(t, 2, mathhammer.SaveTarget(ap(0), sv("2+", ""), mathhammer.Modifiers{}))
	// Cover is only withheld from 3+ or better saves against AP 0; with AP it
	// restores a 2+ save.
	assert.Equal(t, 3, mathhammer.SaveTarget(ap(1), sv("2+", ""), mathhammer.Modifiers{}))
	assert.Equal(t, 2, mathhammer.SaveTarget(ap(1), sv("2+", ""), cover), "2+ in cover against AP 1")

	ignores := mathhammer.AttackerProfile{AP: 1, Abilities: ability.Set{ability.IgnoresCover()}}
	assert.Equal(t, 4, mathhammer.SaveTarget(ignores, sv("3+", ""), cover))

	assert.Equal(t, 4, mathhammer.SaveTarget(ap(3), sv("3+", "4+"), mathhammer.Modifiers{}), "invulnerable ignores AP")
	assert.Equal(t, 5, mathhammer.SaveTarget(ap(-2), sv("3+", ""), mathhammer.Modifiers{}), "AP is a magnitude")
	assert.Equal(t, 7, mathhammer.SaveTarget(ap(1), sv("5+", ""), mathhammer.Modifiers{APReduction: 1}))
	assert.Equal(t, 5, mathhammer.SaveTarget(ap(0), sv("-", "5+"), mathhammer.Modifiers{}))
}

func TestCalculateDamage_SaveImpossible(t *testing.T) {
	a := mathhammer.AttackerProfile{Skill: "3+", Strength: 4, AP: 1, Damage: 1, Attacks: 6}
	d := mathhammer.DefenderProfile{Toughness: 4, Save: "5+", Wounds: 1}
	res := mathhammer.CalculateDamage(a, d, mathhammer.Modifiers{APReduction: 1})
	assert.Zero(t, res.SaveRate)
	assert.InDelta(t, res.ExpectedWounds, res.ExpectedUnsaved, eps)
}

// TestCalculateDamage_RatesInUnitInterval verifies every probability field is
// in [0,1] and every quantity is finite and non-negative.
func TestCalculateDamage_RatesInUnitInterval(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := testutil.GenAttacker(rt)
		d := testutil.GenDefender(rt, rapid.Bool().Draw(rt, "with_models"))
		m := testutil.GenModifiers(rt)
		res := mathhammer.CalculateDamageWithProbabilities(a, d, m)

		for name, p := range map[string]float64{
			"hit_rate":          res.HitRate,
			"wound_rate":        res.WoundRate,
			"save_rate":         res.SaveRate,
			"crit_hit_chance":   res.CritHitChance,
			"crit_wound_chance": res.CritWoundChance,
			"at_least_1":        res.ProbabilityToKill.AtLeast1,
		} {
			assert.GreaterOrEqual(rt, p, 0.0, name)
			assert.LessOrEqual(rt, p, 1.0, name)
		}
		assert.LessOrEqual(rt, res.CritHitChance, res.HitRate+eps)
		assert.LessOrEqual(rt, res.CritWoundChance, res.WoundRate+eps)

		for name, q := range map[string]float64{
			"hits":    res.ExpectedHits,
			"wounds":  res.ExpectedWounds,
			"unsaved": res.ExpectedUnsaved,
			"damage":  res.ExpectedDamage,
			"killed":  res.ModelsKilled,
			"mortals": res.MortalWounds,
		} {
			assert.False(rt, math.IsNaN(q) || math.IsInf(q, 0), name)
			assert.GreaterOrEqual(rt, q, 0.0, name)
		}
		for _, p := range res.Distribution.Probabilities {
			assert.GreaterOrEqual(rt, p, 0.0)
			assert.LessOrEqual(rt, p, 1.0)
		}
	})
}
