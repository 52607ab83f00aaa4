package catalog

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/mathhammer/internal/game/dice"
	"github.com/cory-johannsen/mathhammer/internal/game/mathhammer"
)

// UnitDef defines one unit datasheet loaded from YAML.
type UnitDef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// Models is the default unit size.
	Models          int      `yaml:"models"`
	Toughness       int      `yaml:"toughness"`
	Save            string   `yaml:"save"`
	Invulnerable    string   `yaml:"invulnerable"`
	Wounds          int      `yaml:"wounds"`
	FeelNoPain      int      `yaml:"feel_no_pain"`
	DamageReduction int      `yaml:"damage_reduction"`
	Keywords        []string `yaml:"keywords"`
	// Weapons lists WeaponDef IDs carried by every model.
	Weapons []string `yaml:"weapons"`
}

// Validate checks that the UnitDef satisfies its invariants.
// Precondition: u is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (u *UnitDef) Validate() error {
	var errs []error
	if u.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if u.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if u.Models < 1 {
		errs = append(errs, fmt.Errorf("Models must be >= 1, got %d", u.Models))
	}
	if u.Toughness < 1 {
		errs = append(errs, fmt.Errorf("Toughness must be >= 1, got %d", u.Toughness))
	}
	if u.Wounds < 1 {
		errs = append(errs, fmt.Errorf("Wounds must be >= 1, got %d", u.Wounds))
	}
	if !validTarget(u.Save, true) {
		errs = append(errs, fmt.Errorf("Save %q must be 2+ to 7+, or \"-\" for none", u.Save))
	}
	if u.Invulnerable != "" && !validTarget(u.Invulnerable, false) {
		errs = append(errs, fmt.Errorf("Invulnerable %q must be 2+ to 6+", u.Invulnerable))
	}
	if u.FeelNoPain != 0 && (u.FeelNoPain < dice.MinTarget || u.FeelNoPain > dice.MaxTarget) {
		errs = append(errs, fmt.Errorf("FeelNoPain must be 0 or 2..6, got %d", u.FeelNoPain))
	}
	if u.DamageReduction < 0 {
		errs = append(errs, fmt.Errorf("DamageReduction must be >= 0, got %d", u.DamageReduction))
	}
	if len(errs) > 0 {
		return fmt.Errorf("unit validation failed: %v", errs)
	}
	return nil
}

func validTarget(s string, allowNone bool) bool {
	if allowNone && s == "-" {
		return true
	}
	t, err := dice.ParseTarget(s)
	if err != nil {
		return false
	}
	hi := dice.MaxTarget
	if allowNone {
		hi++
	}
	return t >= dice.MinTarget && t <= hi
}

// Profile converts the unit into a defender profile of the given size.
// models <= 0 uses the datasheet's default size.
//
// Postcondition: ModelCount >= 1.
func (u *UnitDef) Profile(models int) mathhammer.DefenderProfile {
	if models <= 0 {
		models = u.Models
	}
	return mathhammer.DefenderProfile{
		Toughness:       u.Toughness,
		Save:            u.Save,
		Invulnerable:    u.Invulnerable,
		Wounds:          float64(u.Wounds),
		FeelNoPain:      u.FeelNoPain,
		ModelCount:      models,
		Keywords:        append([]string(nil), u.Keywords...),
		DamageReduction: u.DamageReduction,
	}
}

// LoadUnits reads all *.yaml files from dir, parses each as a UnitDef,
// validates it, and returns the collected slice.
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid UnitDefs or the first encountered error.
func LoadUnits(dir string) ([]*UnitDef, error) {
	var units []*UnitDef
	err := eachYAML(dir, func(path string, data []byte) error {
		var u UnitDef
		if err := decodeStrict(data, &u); err != nil {
			return fmt.Errorf("LoadUnits: cannot parse file %q: %w", path, err)
		}
		if err := u.Validate(); err != nil {
			return fmt.Errorf("LoadUnits: invalid unit in %q: %w", path, err)
		}
		units = append(units, &u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}

// decodeStrict decodes a single YAML document, rejecting unknown fields.
func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
