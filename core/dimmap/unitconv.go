package dimmap

import (
	"strings"

	"dimgrid/core/enumeration"
	"dimgrid/core/units"
	"dimgrid/internal/errors"
)

// UnitConversion rescales the values of an end-use enumeration into new
// units. Ids are never reclassified: MapID is always identity, and the
// target is a derived enumeration whose unit metadata reflects the
// converted units.
type UnitConversion struct {
	base
	scalar float64
	perID  map[enumeration.ID]float64
}

// NewUnitConversion converts fromUnits to toUnits (parallel lists) over an
// end-use enumeration, deriving conversion factors from the ratio table.
//
// For a single-fuel enumeration fromUnits must be exactly the enumeration's
// unit and one scalar factor applies to every id. For a multi-fuel
// enumeration every fromUnit must appear among the fuel enumeration's
// units; ids whose unit is not being converted keep factor 1.0.
func NewUnitConversion(from enumeration.EndUseMeta, fromUnits, toUnits []string, ratios *units.RatioTable) (*UnitConversion, error) {
	if len(fromUnits) != len(toUnits) {
		return nil, errors.Configf("cannot convert %v to %v since they are of a different number", fromUnits, toUnits)
	}
	if len(fromUnits) == 0 {
		return nil, errors.Config("from_units is empty, nothing to convert")
	}
	if ratios == nil {
		ratios = units.DefaultRatios()
	}

	switch e := from.(type) {
	case *enumeration.SingleFuelEndUse:
		return newSingleFuelConversion(e, fromUnits, toUnits, ratios)
	case *enumeration.MultiFuelEndUse:
		return newMultiFuelConversion(e, fromUnits, toUnits, ratios)
	default:
		return nil, errors.Configf("unit conversion does not apply to enumeration %s", from.Name())
	}
}

func newSingleFuelConversion(from *enumeration.SingleFuelEndUse, fromUnits, toUnits []string, ratios *units.RatioTable) (*UnitConversion, error) {
	if len(fromUnits) != 1 {
		return nil, errors.Configf("single-fuel enumeration %s has one unit, got %d from_units", from.Name(), len(fromUnits))
	}
	if fromUnits[0] != from.Unit() {
		return nil, errors.Configf("enumeration %s is recorded in %s, not %s", from.Name(), from.Unit(), fromUnits[0])
	}

	factor, err := ratios.Factor(fromUnits[0], toUnits[0])
	if err != nil {
		return nil, err
	}

	toName := strings.ReplaceAll(from.Name(), fromUnits[0], toUnits[0])
	toName = strings.ReplaceAll(toName, strings.ToLower(fromUnits[0]), strings.ToLower(toUnits[0]))
	to, err := enumeration.NewSingleFuelEndUse(toName, from.IDs(), from.Names(), from.Fuel(), toUnits[0])
	if err != nil {
		return nil, err
	}

	return &UnitConversion{
		base:   base{from: from, to: to},
		scalar: factor,
	}, nil
}

func newMultiFuelConversion(from *enumeration.MultiFuelEndUse, fromUnits, toUnits []string, ratios *units.RatioTable) (*UnitConversion, error) {
	fuels := from.Fuels()
	target := make(map[string]string, len(fromUnits))
	for i, u := range fromUnits {
		if !fuels.HasUnit(u) {
			return nil, errors.Configf("%s is not a unit in %s", u, fuels.Name())
		}
		target[u] = toUnits[i]
	}

	toFuelUnits := make([]string, fuels.Len())
	for i, u := range fuels.AllUnits() {
		if converted, ok := target[u]; ok {
			toFuelUnits[i] = converted
		} else {
			toFuelUnits[i] = u
		}
	}
	toFuels, err := enumeration.NewFuelSet(fuels.Name(), fuels.IDs(), fuels.Names(), toFuelUnits)
	if err != nil {
		return nil, err
	}
	to, err := enumeration.NewMultiFuelEndUse(from.Name(), from.IDs(), from.Names(), toFuels)
	if err != nil {
		return nil, err
	}

	perID := make(map[enumeration.ID]float64)
	for _, id := range from.IDs() {
		u, _ := from.Units(id)
		converted, ok := target[u]
		if !ok {
			continue
		}
		factor, err := ratios.Factor(u, converted)
		if err != nil {
			return nil, err
		}
		perID[id] = factor
	}

	return &UnitConversion{
		base:  base{from: from, to: to},
		perID: perID,
	}, nil
}

// MapID is always identity: unit conversion scales values, never
// reclassifies them
func (m *UnitConversion) MapID(fromID enumeration.ID) (enumeration.ID, bool) {
	return fromID, true
}

// ScaleFactor returns the conversion factor for an id; ids whose units are
// not being converted keep 1.0
func (m *UnitConversion) ScaleFactor(fromID enumeration.ID) float64 {
	if m.perID == nil {
		return m.scalar
	}
	if factor, ok := m.perID[fromID]; ok {
		return factor
	}
	return 1.0
}
