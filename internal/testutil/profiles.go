// Package testutil provides shared fixtures and property-test generators.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"

	"github.com/cory-johannsen/mathhammer/internal/game/ability"
	"github.com/cory-johannsen/mathhammer/internal/game/mathhammer"
)

// BoltRifle returns a ten-model squad's bolt rifles: 20 attacks, BS 3+, S4 AP1 D1.
func BoltRifle() mathhammer.AttackerProfile {
	return mathhammer.AttackerProfile{
		Skill:    "3+",
		Strength: 4,
		AP:       1,
		Damage:   1,
		Attacks:  20,
		Models:   10,
	}
}

// Lascannon returns a single lascannon: 1 attack, BS 3+, S12 AP3 D(D6+1).
func Lascannon() mathhammer.AttackerProfile {
	return mathhammer.AttackerProfile{
		Skill:    "3+",
		Strength: 12,
		AP:       3,
		Damage:   4.5,
		Attacks:  1,
		Models:   1,
	}
}

// Infantry returns ten T4 Sv3+ W2 infantry models.
func Infantry() mathhammer.DefenderProfile {
	return mathhammer.DefenderProfile{
		Toughness:  4,
		Save:       "3+",
		Wounds:     2,
		ModelCount: 10,
		Keywords:   []string{"Infantry"},
	}
}

// Horde returns twenty T3 Sv6+ W1 models.
func Horde() mathhammer.DefenderProfile {
	return mathhammer.DefenderProfile{
		Toughness:  3,
		Save:       "6+",
		Wounds:     1,
		ModelCount: 20,
		Keywords:   []string{"Infantry"},
	}
}

// Vehicle returns a T10 Sv3+ W12 vehicle with a 5+ invulnerable save.
func Vehicle() mathhammer.DefenderProfile {
	return mathhammer.DefenderProfile{
		Toughness:    10,
		Save:         "3+",
		Invulnerable: "5+",
		Wounds:       12,
		ModelCount:   1,
		Keywords:     []string{"Vehicle"},
	}
}

// WriteFile writes content to name under dir and fails the test on error.
//
// Postcondition: Returns the full path of the written file.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func genTarget(t *rapid.T, label string) string {
	return rapid.SampledFrom([]string{"2+", "3+", "4+", "5+", "6+"}).Draw(t, label)
}

// GenAbilities draws an ability set from every kind.
func GenAbilities(t *rapid.T) ability.Set {
	pool := []ability.Ability{
		ability.LethalHits(),
		ability.SustainedHits(rapid.IntRange(1, 3).Draw(t, "sustained")),
		ability.DevastatingWounds(),
		ability.TwinLinked(),
		ability.IgnoresCover(),
		ability.Anti("infantry", rapid.IntRange(2, 6).Draw(t, "anti")),
		ability.Melta(rapid.IntRange(1, 4).Draw(t, "melta")),
		ability.Heavy(),
		ability.Lance(),
		ability.Torrent(),
		ability.Blast(),
	}
	var out ability.Set
	for i, a := range pool {
		if rapid.Bool().Draw(t, "has_"+a.Kind().String()) {
			out = append(out, pool[i])
		}
	}
	return out
}

// GenAttacker draws an attacker profile over realistic characteristic ranges.
func GenAttacker(t *rapid.T) mathhammer.AttackerProfile {
	return mathhammer.AttackerProfile{
		Skill:     genTarget(t, "skill"),
		Strength:  rapid.IntRange(1, 20).Draw(t, "strength"),
		AP:        rapid.IntRange(0, 5).Draw(t, "ap"),
		Damage:    rapid.Float64Range(1, 12).Draw(t, "damage"),
		Attacks:   rapid.Float64Range(0, 60).Draw(t, "attacks"),
		Models:    rapid.IntRange(0, 10).Draw(t, "models"),
		Abilities: GenAbilities(t),
	}
}

// GenDefender draws a defender profile. When withModels is false ModelCount
// is 0, which disables the model-count cap on kills.
func GenDefender(t *rapid.T, withModels bool) mathhammer.DefenderProfile {
	d := mathhammer.DefenderProfile{
		Toughness:       rapid.IntRange(1, 14).Draw(t, "toughness"),
		Save:            genTarget(t, "save"),
		Wounds:          float64(rapid.IntRange(1, 24).Draw(t, "wounds")),
		DamageReduction: rapid.IntRange(0, 1).Draw(t, "damage_reduction"),
		Keywords:        []string{rapid.SampledFrom([]string{"Infantry", "Vehicle", "Monster"}).Draw(t, "keyword")},
	}
	if rapid.Bool().Draw(t, "has_invuln") {
		d.Invulnerable = rapid.SampledFrom([]string{"4+", "5+", "6+"}).Draw(t, "invuln")
	}
	if withModels {
		d.ModelCount = rapid.IntRange(1, 20).Draw(t, "model_count")
	}
	return d
}

// GenModifiers draws an arbitrary modifier set.
func GenModifiers(t *rapid.T) mathhammer.Modifiers {
	policy := func(label string) mathhammer.RerollPolicy {
		return rapid.SampledFrom([]mathhammer.RerollPolicy{
			mathhammer.RerollNone, mathhammer.RerollOnes, mathhammer.RerollAll,
		}).Draw(t, label)
	}
	return mathhammer.Modifiers{
		RerollHits:        policy("reroll_hits"),
		RerollWounds:      policy("reroll_wounds"),
		PlusToHit:         rapid.IntRange(-3, 3).Draw(t, "plus_to_hit"),
		PlusToWound:       rapid.IntRange(-3, 3).Draw(t, "plus_to_wound"),
		Cover:             rapid.Bool().Draw(t, "cover"),
		Stealth:           rapid.Bool().Draw(t, "stealth"),
		SustainedHits:     rapid.IntRange(0, 2).Draw(t, "sustained_override"),
		LethalHits:        rapid.Bool().Draw(t, "lethal_override"),
		DevastatingWounds: rapid.Bool().Draw(t, "devastating_override"),
		Lance:             rapid.Bool().Draw(t, "lance"),
		HitOn6Only:        rapid.Bool().Draw(t, "hit_on_6_only"),
		APReduction:       rapid.IntRange(0, 2).Draw(t, "ap_reduction"),
		CritHitOn:         rapid.IntRange(0, 6).Draw(t, "crit_hit_on"),
		CritWoundOn:       rapid.IntRange(0, 6).Draw(t, "crit_wound_on"),
		AntiKeywordActive: rapid.Bool().Draw(t, "anti_active"),
		Moved:             rapid.Bool().Draw(t, "moved"),
		Charged:           rapid.Bool().Draw(t, "charged"),
		HalfRange:         rapid.Bool().Draw(t, "half_range"),
	}
}
