// Package mathhammer computes the expected outcome of an attack sequence:
// hits, wounds, unsaved wounds, damage, and models killed, optionally with an
// exact or approximate kill distribution.
//
// Every function in this package is pure. Inputs are value objects, results
// are built fresh per call, and nothing is shared between calls, so any
// number of calculations may run concurrently.
package mathhammer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/mathhammer/internal/game/ability"
)

// AttackerProfile is the weapon profile making the attack.
type AttackerProfile struct {
	// Skill is the Ballistic/Weapon Skill roll target, e.g. "3+".
	Skill string `yaml:"skill"`
	// Strength is compared against the defender's Toughness.
	Strength int `yaml:"strength"`
	// AP is the armour penetration magnitude; 3 means -3 to the save.
	AP int `yaml:"ap"`
	// Damage is the expected damage per unsaved wound.
	Damage float64 `yaml:"damage"`
	// Attacks is the expected number of attacks.
	Attacks float64 `yaml:"attacks"`
	// Models is the number of models firing the weapon. Only Blast reads it;
	// 0 is treated as 1.
	Models int `yaml:"models"`
	// Abilities is the weapon's ability list.
	Abilities ability.Set `yaml:"abilities"`
}

// DefenderProfile is the statline of the target.
type DefenderProfile struct {
	Toughness int `yaml:"toughness"`
	// Save is the armour save roll target, e.g. "3+".
	Save string `yaml:"save"`
	// Invulnerable is the invulnerable save roll target; empty for none.
	Invulnerable string `yaml:"invulnerable"`
	// Wounds is the wounds characteristic of each model.
	Wounds float64 `yaml:"wounds"`
	// FeelNoPain is the Feel No Pain threshold (6 means 6+); 0 for none.
	FeelNoPain int `yaml:"feel_no_pain"`
	// ModelCount is the number of models in the unit; 0 when unknown.
	ModelCount int `yaml:"model_count"`
	// Keywords are matched against Anti abilities.
	Keywords []string `yaml:"keywords"`
	// DamageReduction reduces the damage of each attack, to a minimum of 1.
	DamageReduction int `yaml:"damage_reduction"`
}

// RerollPolicy selects which failed rolls are re-rolled.
type RerollPolicy int

const (
	RerollNone RerollPolicy = iota
	RerollOnes
	RerollAll
)

// String returns "none", "ones", or "all".
func (r RerollPolicy) String() string {
	switch r {
	case RerollOnes:
		return "ones"
	case RerollAll:
		return "all"
	default:
		return "none"
	}
}

// ParseRerollPolicy parses "none", "ones", or "all" (case-insensitive). The
// empty string is RerollNone.
func ParseRerollPolicy(s string) (RerollPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RerollNone, nil
	case "ones", "1s":
		return RerollOnes, nil
	case "all", "failed":
		return RerollAll, nil
	default:
		return RerollNone, fmt.Errorf("mathhammer: unknown reroll policy %q", s)
	}
}

// UnmarshalYAML decodes a reroll policy name.
func (r *RerollPolicy) UnmarshalYAML(node *yaml.Node) error {
	p, err := ParseRerollPolicy(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = p
	return nil
}

// MarshalYAML encodes the policy name.
func (r RerollPolicy) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// Modifiers are the situational adjustments for one attack. The zero value
// applies nothing.
//
// Several fields duplicate effects a weapon ability can also grant. They are
// merged with the abilities once per calculation and never stack.
type Modifiers struct {
	RerollHits   RerollPolicy `yaml:"reroll_hits"`
	RerollWounds RerollPolicy `yaml:"reroll_wounds"`
	PlusToHit    int          `yaml:"plus_to_hit"`
	PlusToWound  int          `yaml:"plus_to_wound"`
	Cover        bool         `yaml:"cover"`
	Stealth      bool         `yaml:"stealth"`
	// SustainedHits overrides the weapon's Sustained Hits value when > 0.
	SustainedHits     int  `yaml:"sustained_hits"`
	LethalHits        bool `yaml:"lethal_hits"`
	DevastatingWounds bool `yaml:"devastating_wounds"`
	// Lance grants +1 to wound regardless of the weapon's abilities.
	Lance bool `yaml:"lance"`
	// HitOn6Only restricts hits to unmodified 6s (overwatch).
	HitOn6Only bool `yaml:"hit_on_6_only"`
	// APReduction worsens the save by this much on top of the weapon's AP.
	APReduction int `yaml:"ap_reduction"`
	// CritHitOn and CritWoundOn lower the critical threshold; 0 keeps 6+.
	CritHitOn   int `yaml:"crit_hit_on"`
	CritWoundOn int `yaml:"crit_wound_on"`
	// AntiKeywordActive forces the weapon's Anti abilities to apply.
	AntiKeywordActive bool `yaml:"anti_keyword_active"`
	// Moved disables Heavy.
	Moved bool `yaml:"moved"`
	// Charged enables Lance abilities.
	Charged bool `yaml:"charged"`
	// HalfRange enables Melta.
	HalfRange bool `yaml:"half_range"`
}
