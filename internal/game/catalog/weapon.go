// Package catalog provides datasheet definitions for weapons and units,
// loaded from YAML, and converts them into calculator profiles.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cory-johannsen/mathhammer/internal/game/ability"
	"github.com/cory-johannsen/mathhammer/internal/game/dice"
	"github.com/cory-johannsen/mathhammer/internal/game/mathhammer"
)

// WeaponType distinguishes shooting from close combat profiles.
type WeaponType string

const (
	WeaponTypeRanged WeaponType = "ranged"
	WeaponTypeMelee  WeaponType = "melee"
)

// WeaponDef defines one weapon profile loaded from YAML.
type WeaponDef struct {
	ID   string     `yaml:"id"`
	Name string     `yaml:"name"`
	Type WeaponType `yaml:"type"`
	// Attacks is per model: a flat number or dice expression.
	Attacks string `yaml:"attacks"`
	// Skill is the BS or WS roll target, e.g. "3+".
	Skill    string `yaml:"skill"`
	Strength int    `yaml:"strength"`
	// AP is written either as the printed value (-2) or its magnitude (2).
	AP int `yaml:"ap"`
	// Damage is a flat number or dice expression.
	Damage    string      `yaml:"damage"`
	Abilities ability.Set `yaml:"abilities"`
}

// IsMelee reports whether the weapon is a close combat weapon.
func (w *WeaponDef) IsMelee() bool {
	return w.Type == WeaponTypeMelee
}

// Validate checks that the WeaponDef satisfies its invariants.
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (w *WeaponDef) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if w.Type != WeaponTypeRanged && w.Type != WeaponTypeMelee {
		errs = append(errs, fmt.Errorf("Type must be ranged or melee, got %q", w.Type))
	}
	if dice.ParseAverage(w.Attacks) <= 0 {
		errs = append(errs, fmt.Errorf("Attacks %q must be a positive number or dice expression", w.Attacks))
	}
	if t, err := dice.ParseTarget(w.Skill); err != nil || t < dice.MinTarget || t > dice.MaxTarget {
		errs = append(errs, fmt.Errorf("Skill %q must be 2+ to 6+", w.Skill))
	}
	if w.Strength <= 0 {
		errs = append(errs, fmt.Errorf("Strength must be > 0, got %d", w.Strength))
	}
	if dice.ParseAverage(w.Damage) <= 0 {
		errs = append(errs, fmt.Errorf("Damage %q must be a positive number or dice expression", w.Damage))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// Profile converts the weapon into an attacker profile for models firing it.
//
// Precondition: models >= 1.
// Postcondition: Attacks == average(w.Attacks) * models; AP >= 0.
func (w *WeaponDef) Profile(models int) mathhammer.AttackerProfile {
	models = max(models, 1)
	ap := w.AP
	if ap < 0 {
		ap = -ap
	}
	return mathhammer.AttackerProfile{
		Skill:     w.Skill,
		Strength:  w.Strength,
		AP:        ap,
		Damage:    dice.ParseAverage(w.Damage),
		Attacks:   dice.ParseAverage(w.Attacks) * float64(models),
		Models:    models,
		Abilities: append(ability.Set(nil), w.Abilities...),
	}
}

// LoadWeapons reads all *.yaml files from dir, parses each as a WeaponDef,
// validates it, and returns the collected slice.
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid WeaponDefs or the first encountered error.
func LoadWeapons(dir string) ([]*WeaponDef, error) {
	var weapons []*WeaponDef
	err := eachYAML(dir, func(path string, data []byte) error {
		var w WeaponDef
		if err := decodeStrict(data, &w); err != nil {
			return fmt.Errorf("LoadWeapons: cannot parse file %q: %w", path, err)
		}
		if err := w.Validate(); err != nil {
			return fmt.Errorf("LoadWeapons: invalid weapon in %q: %w", path, err)
		}
		weapons = append(weapons, &w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return weapons, nil
}

// eachYAML calls fn with the contents of every *.yaml file in dir, in
// lexicographic order.
func eachYAML(dir string, fn func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("catalog: cannot read directory %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("catalog: cannot read file %q: %w", path, err)
		}
		if err := fn(path, data); err != nil {
			return err
		}
	}
	return nil
}
