// Package analysis resolves scenario files against the catalog and scores
// the resulting matchups concurrently.
package analysis

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/mathhammer/internal/game/catalog"
	"github.com/cory-johannsen/mathhammer/internal/game/mathhammer"
)

// baseHypothesis names the matchup's own modifiers when no hypotheses are listed.
const baseHypothesis = "base"

// Scenario is a batch of matchups loaded from YAML.
type Scenario struct {
	Name     string       `yaml:"name"`
	Matchups []MatchupDef `yaml:"matchups"`
}

// MatchupDef pits an attacking unit's weapons against a defending unit.
type MatchupDef struct {
	Name     string `yaml:"name"`
	Attacker string `yaml:"attacker"`
	// AttackerModels overrides the attacker's datasheet size when > 0.
	AttackerModels int `yaml:"attacker_models"`
	// Weapons restricts the attacker's weapons; empty means all of them.
	Weapons  []string `yaml:"weapons"`
	Defender string   `yaml:"defender"`
	// DefenderModels overrides the defender's datasheet size when > 0.
	DefenderModels int `yaml:"defender_models"`
	// Modifiers is used only when Hypotheses is empty.
	Modifiers mathhammer.Modifiers `yaml:"modifiers"`
	// Hypotheses are alternative modifier sets scored alongside each other.
	Hypotheses []Hypothesis `yaml:"hypotheses"`
}

// Hypothesis is a named modifier set, e.g. "in cover" or "after charging".
type Hypothesis struct {
	Name      string               `yaml:"name"`
	Modifiers mathhammer.Modifiers `yaml:"modifiers"`
}

// Matchup is one weapon profile against one defender under one modifier set.
type Matchup struct {
	Name       string
	Hypothesis string
	Weapon     string
	Attacker   mathhammer.AttackerProfile
	Defender   mathhammer.DefenderProfile
	Modifiers  mathhammer.Modifiers
}

// Validate checks that the scenario is structurally complete.
//
// Postcondition: returns nil iff every matchup names both units and every
// hypothesis is named.
func (s *Scenario) Validate() error {
	var errs []error
	if len(s.Matchups) == 0 {
		errs = append(errs, errors.New("scenario has no matchups"))
	}
	for i, m := range s.Matchups {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("matchup %d: name must not be empty", i))
		}
		if m.Attacker == "" || m.Defender == "" {
			errs = append(errs, fmt.Errorf("matchup %q: attacker and defender are required", m.Name))
		}
		for j, h := range m.Hypotheses {
			if h.Name == "" {
				errs = append(errs, fmt.Errorf("matchup %q: hypothesis %d: name must not be empty", m.Name, j))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("scenario validation failed: %v", errs)
	}
	return nil
}

// LoadScenario reads and validates a scenario file.
//
// Postcondition: returns a valid Scenario or a non-nil error.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("analysis: cannot read scenario %q: %w", path, err)
	}
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("analysis: cannot parse scenario %q: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("analysis: invalid scenario %q: %w", path, err)
	}
	return &s, nil
}

// Resolve expands the scenario into concrete matchups using reg.
// The order is scenario order, then hypothesis order, then weapon order.
//
// Postcondition: returns an error naming the first unknown unit or weapon.
func (s *Scenario) Resolve(reg *catalog.Registry) ([]Matchup, error) {
	var out []Matchup
	for _, def := range s.Matchups {
		expanded, err := def.resolve(reg)
		if err != nil {
			return nil, fmt.Errorf("analysis: matchup %q: %w", def.Name, err)
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func (def MatchupDef) resolve(reg *catalog.Registry) ([]Matchup, error) {
	attacker, ok := reg.Unit(def.Attacker)
	if !ok {
		return nil, fmt.Errorf("unknown attacker %q", def.Attacker)
	}
	defender, ok := reg.Unit(def.Defender)
	if !ok {
		return nil, fmt.Errorf("unknown defender %q", def.Defender)
	}

	weapons, err := reg.UnitWeapons(attacker.ID)
	if err != nil {
		return nil, err
	}
	if len(def.Weapons) > 0 {
		weapons = weapons[:0:0]
		for _, id := range def.Weapons {
			w, ok := reg.Weapon(id)
			if !ok {
				return nil, fmt.Errorf("unknown weapon %q", id)
			}
			weapons = append(weapons, w)
		}
	}
	if len(weapons) == 0 {
		return nil, fmt.Errorf("attacker %q has no weapons", attacker.ID)
	}

	models := def.AttackerModels
	if models <= 0 {
		models = attacker.Models
	}
	hypotheses := def.Hypotheses
	if len(hypotheses) == 0 {
		hypotheses = []Hypothesis{{Name: baseHypothesis, Modifiers: def.Modifiers}}
	}

	defProfile := defender.Profile(def.DefenderModels)
	out := make([]Matchup, 0, len(hypotheses)*len(weapons))
	for _, h := range hypotheses {
		for _, w := range weapons {
			out = append(out, Matchup{
				Name:       def.Name,
				Hypothesis: h.Name,
				Weapon:     w.Name,
				Attacker:   w.Profile(models),
				Defender:   defProfile,
				Modifiers:  h.Modifiers,
			})
		}
	}
	return out, nil
}
