package enumeration

import (
	"dimgrid/internal/errors"
)

// EndUseMeta is the surface required of end-use enumerations that carry
// fuel and unit metadata. Unit conversion only applies to these.
type EndUseMeta interface {
	View

	// Units returns the measurement unit an id's values are recorded in
	Units(id ID) (string, bool)
}

// FuelSet is the fuel sub-enumeration attached to a multi-fuel end-use.
// Each fuel carries the measurement unit its values are recorded in.
type FuelSet struct {
	*Set
	units []string
}

// NewFuelSet creates a validated fuel enumeration
func NewFuelSet(name string, ids []ID, names, units []string) (*FuelSet, error) {
	if len(units) != len(ids) {
		return nil, errors.Configf("fuel enumeration %s: %d ids but %d units", name, len(ids), len(units))
	}
	set, err := NewSet(name, Fuel, ids, names)
	if err != nil {
		return nil, err
	}
	return &FuelSet{Set: set, units: units}, nil
}

// Units returns the unit label for a fuel id
func (f *FuelSet) Units(fuelID ID) (string, bool) {
	i, ok := f.IndexOf(fuelID)
	if !ok {
		return "", false
	}
	return f.units[i], true
}

// FuelName returns the display name for a fuel id
func (f *FuelSet) FuelName(fuelID ID) (string, bool) {
	return f.NameOf(fuelID)
}

// AllUnits returns the unit labels parallel to IDs. Callers must not mutate.
func (f *FuelSet) AllUnits() []string { return f.units }

// HasUnit reports whether any fuel is recorded in the given unit
func (f *FuelSet) HasUnit(unit string) bool {
	for _, u := range f.units {
		if u == unit {
			return true
		}
	}
	return false
}

// SingleFuelEndUse is an end-use enumeration whose values are all recorded
// against one fuel, in one unit.
type SingleFuelEndUse struct {
	*Set
	fuel  string
	units string
}

// NewSingleFuelEndUse creates a validated single-fuel end-use enumeration
func NewSingleFuelEndUse(name string, ids []ID, names []string, fuel, units string) (*SingleFuelEndUse, error) {
	set, err := NewSet(name, EndUse, ids, names)
	if err != nil {
		return nil, err
	}
	if units == "" {
		return nil, errors.Configf("end-use enumeration %s: units must not be empty", name)
	}
	return &SingleFuelEndUse{Set: set, fuel: fuel, units: units}, nil
}

// Units returns the enumeration's single unit label for any member id
func (e *SingleFuelEndUse) Units(id ID) (string, bool) {
	if !e.Contains(id) {
		return "", false
	}
	return e.units, true
}

// Fuel returns the fuel display name
func (e *SingleFuelEndUse) Fuel() string { return e.fuel }

// Unit returns the single unit label
func (e *SingleFuelEndUse) Unit() string { return e.units }

// MultiFuelEndUse is an end-use enumeration whose ids pair an end-use code
// with the fuel it is recorded against. Units come from the fuel enumeration.
type MultiFuelEndUse struct {
	*Set
	fuels *FuelSet
}

// NewMultiFuelEndUse creates a validated multi-fuel end-use enumeration.
// Every id's fuel must be a member of the fuel enumeration.
func NewMultiFuelEndUse(name string, ids []ID, names []string, fuels *FuelSet) (*MultiFuelEndUse, error) {
	if fuels == nil {
		return nil, errors.Configf("end-use enumeration %s: fuel enumeration is required", name)
	}
	set, err := NewSet(name, EndUse, ids, names)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if !fuels.Contains(NewID(id.Fuel)) {
			return nil, errors.Configf("end-use enumeration %s: id %s references fuel %q not in %s",
				name, id, id.Fuel, fuels.Name())
		}
	}
	return &MultiFuelEndUse{Set: set, fuels: fuels}, nil
}

// Units resolves an id's unit through its fuel
func (e *MultiFuelEndUse) Units(id ID) (string, bool) {
	if !e.Contains(id) {
		return "", false
	}
	return e.fuels.Units(NewID(id.Fuel))
}

// Fuels returns the fuel sub-enumeration
func (e *MultiFuelEndUse) Fuels() *FuelSet { return e.fuels }
