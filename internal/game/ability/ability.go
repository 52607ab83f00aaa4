// Package ability defines the closed set of weapon abilities the damage
// calculator understands.
//
// An Ability can only be built through its constructors, New, or YAML
// decoding, all of which reject unknown kinds and malformed payloads.
package ability

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/mathhammer/internal/game/dice"
)

// Kind identifies a weapon ability.
type Kind int

const (
	// LethalHitsKind: critical hits automatically wound.
	LethalHitsKind Kind = iota + 1
	// SustainedHitsKind: critical hits score Value additional hits.
	SustainedHitsKind
	// DevastatingWoundsKind: critical wounds become mortal wounds.
	DevastatingWoundsKind
	// TwinLinkedKind: wound rolls may be re-rolled.
	TwinLinkedKind
	// IgnoresCoverKind: the target never benefits from cover.
	IgnoresCoverKind
	// AntiKind: critical wounds on Threshold+ against Keyword targets.
	AntiKind
	// MeltaKind: +Value damage at half range.
	MeltaKind
	// HeavyKind: +1 to hit when the attacker remained stationary.
	HeavyKind
	// LanceKind: +1 to wound on the charge.
	LanceKind
	// TorrentKind: attacks hit automatically.
	TorrentKind
	// BlastKind: +1 attack per five models in the target unit.
	BlastKind
)

var kindNames = map[Kind]string{
	LethalHitsKind:        "LETHAL_HITS",
	SustainedHitsKind:     "SUSTAINED_HITS",
	DevastatingWoundsKind: "DEVASTATING_WOUNDS",
	TwinLinkedKind:        "TWIN_LINKED",
	IgnoresCoverKind:      "IGNORES_COVER",
	AntiKind:              "ANTI",
	MeltaKind:             "MELTA",
	HeavyKind:             "HEAVY",
	LanceKind:             "LANCE",
	TorrentKind:           "TORRENT",
	BlastKind:             "BLAST",
}

// String returns the canonical upper-snake name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a kind name. Matching is case-insensitive and treats
// spaces, hyphens and underscores alike, so "Lethal Hits", "lethal-hits" and
// "LETHAL_HITS" are equivalent.
//
// Postcondition: Returns a valid Kind or a non-nil error.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for k, n := range kindNames {
		if n == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("ability: unknown kind %q", s)
}

// Ability is one weapon ability with its per-kind payload.
//
// Invariant: Kind().Valid() for every Ability built by this package.
type Ability struct {
	kind      Kind
	value     int
	threshold int
	keyword   string
}

// Kind returns the ability kind.
func (a Ability) Kind() Kind { return a.kind }

// Value returns the numeric payload (Sustained Hits X, Melta X); 0 otherwise.
func (a Ability) Value() int { return a.value }

// Threshold returns the Anti critical-wound threshold; 0 for other kinds.
func (a Ability) Threshold() int { return a.threshold }

// Keyword returns the Anti target keyword; empty for other kinds.
func (a Ability) Keyword() string { return a.keyword }

// String renders the ability the way it is printed on a datasheet,
// e.g. "SUSTAINED_HITS 2" or "ANTI-VEHICLE 4+".
func (a Ability) String() string {
	switch a.kind {
	case SustainedHitsKind, MeltaKind:
		return fmt.Sprintf("%s %d", a.kind, a.value)
	case AntiKind:
		return fmt.Sprintf("ANTI-%s %d+", strings.ToUpper(a.keyword), a.threshold)
	default:
		return a.kind.String()
	}
}

// LethalHits returns the Lethal Hits ability.
func LethalHits() Ability { return Ability{kind: LethalHitsKind} }

// SustainedHits returns Sustained Hits x.
//
// Precondition: x >= 1.
func SustainedHits(x int) Ability { return Ability{kind: SustainedHitsKind, value: x} }

// DevastatingWounds returns the Devastating Wounds ability.
func DevastatingWounds() Ability { return Ability{kind: DevastatingWoundsKind} }

// TwinLinked returns the Twin-linked ability.
func TwinLinked() Ability { return Ability{kind: TwinLinkedKind} }

// IgnoresCover returns the Ignores Cover ability.
func IgnoresCover() Ability { return Ability{kind: IgnoresCoverKind} }

// Anti returns Anti-keyword threshold+.
//
// Precondition: keyword non-empty; 2 <= threshold <= 6.
func Anti(keyword string, threshold int) Ability {
	return Ability{kind: AntiKind, keyword: keyword, threshold: threshold}
}

// Melta returns Melta x.
//
// Precondition: x >= 1.
func Melta(x int) Ability { return Ability{kind: MeltaKind, value: x} }

// Heavy returns the Heavy ability.
func Heavy() Ability { return Ability{kind: HeavyKind} }

// Lance returns the Lance ability.
func Lance() Ability { return Ability{kind: LanceKind} }

// Torrent returns the Torrent ability.
func Torrent() Ability { return Ability{kind: TorrentKind} }

// Blast returns the Blast ability.
func Blast() Ability { return Ability{kind: BlastKind} }

// New builds an Ability from its parts, validating the payload each kind
// requires. condition is a roll target ("4+") and is only read for Anti.
//
// Postcondition: Returns a valid Ability or a descriptive error.
func New(kind Kind, value int, condition, keyword string) (Ability, error) {
	switch kind {
	case SustainedHitsKind, MeltaKind:
		if value < 1 {
			return Ability{}, fmt.Errorf("ability: %s requires a value >= 1, got %d", kind, value)
		}
		return Ability{kind: kind, value: value}, nil
	case AntiKind:
		kw := strings.TrimSpace(keyword)
		if kw == "" {
			return Ability{}, fmt.Errorf("ability: %s requires a target keyword", kind)
		}
		t, err := dice.ParseTarget(condition)
		if err != nil {
			return Ability{}, fmt.Errorf("ability: %s condition: %w", kind, err)
		}
		if t < dice.MinTarget || t > dice.MaxTarget {
			return Ability{}, fmt.Errorf("ability: %s threshold must be 2+ to 6+, got %q", kind, condition)
		}
		return Anti(kw, t), nil
	default:
		if !kind.Valid() {
			return Ability{}, fmt.Errorf("ability: unknown kind %s", kind)
		}
		return Ability{kind: kind}, nil
	}
}
