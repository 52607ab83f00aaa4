package catalog

import (
	"fmt"
	"sort"
)

// Registry holds all loaded weapon and unit definitions indexed by ID.
type Registry struct {
	weapons map[string]*WeaponDef
	units   map[string]*UnitDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		weapons: make(map[string]*WeaponDef),
		units:   make(map[string]*UnitDef),
	}
}

// RegisterWeapon adds w to the registry.
//
// Precondition:  w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w.ID already registered.
func (r *Registry) RegisterWeapon(w *WeaponDef) error {
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterWeapon: weapon ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// RegisterUnit adds u to the registry.
//
// Precondition:  u must not be nil.
// Postcondition: Unit(u.ID) returns u; returns error if u.ID already registered.
func (r *Registry) RegisterUnit(u *UnitDef) error {
	if _, exists := r.units[u.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterUnit: unit ID %q already registered", u.ID)
	}
	r.units[u.ID] = u
	return nil
}

// Weapon returns the WeaponDef for the given id and whether it was found.
func (r *Registry) Weapon(id string) (*WeaponDef, bool) {
	w, ok := r.weapons[id]
	return w, ok
}

// Unit returns the UnitDef for the given id and whether it was found.
func (r *Registry) Unit(id string) (*UnitDef, bool) {
	u, ok := r.units[id]
	return u, ok
}

// AllWeapons returns all registered WeaponDefs sorted by ID.
//
// Postcondition: len(result) == number of registered weapons.
func (r *Registry) AllWeapons() []*WeaponDef {
	out := make([]*WeaponDef, 0, len(r.weapons))
	for _, w := range r.weapons {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllUnits returns all registered UnitDefs sorted by ID.
//
// Postcondition: len(result) == number of registered units.
func (r *Registry) AllUnits() []*UnitDef {
	out := make([]*UnitDef, 0, len(r.units))
	for _, u := range r.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UnitWeapons resolves the weapons carried by the unit with the given id.
//
// Postcondition: returns an error if the unit or any referenced weapon is unknown.
func (r *Registry) UnitWeapons(id string) ([]*WeaponDef, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown unit %q", id)
	}
	out := make([]*WeaponDef, 0, len(u.Weapons))
	for _, wid := range u.Weapons {
		w, ok := r.weapons[wid]
		if !ok {
			return nil, fmt.Errorf("catalog: unit %q references unknown weapon %q", id, wid)
		}
		out = append(out, w)
	}
	return out, nil
}

// Load builds a Registry from the weapon and unit directories. An empty
// directory path is skipped.
//
// Postcondition: every unit's weapon references resolve, or an error is returned.
func Load(weaponsDir, unitsDir string) (*Registry, error) {
	r := NewRegistry()
	if weaponsDir != "" {
		weapons, err := LoadWeapons(weaponsDir)
		if err != nil {
			return nil, err
		}
		for _, w := range weapons {
			if err := r.RegisterWeapon(w); err != nil {
				return nil, err
			}
		}
	}
	if unitsDir != "" {
		units, err := LoadUnits(unitsDir)
		if err != nil {
			return nil, err
		}
		for _, u := range units {
			if err := r.RegisterUnit(u); err != nil {
				return nil, err
			}
		}
	}
	for _, u := range r.units {
		if _, err := r.UnitWeapons(u.ID); err != nil {
			return nil, err
		}
	}
	return r, nil
}
