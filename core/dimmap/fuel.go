package dimmap

import (
	"fmt"

	"dimgrid/core/enumeration"
	"dimgrid/internal/errors"
)

// FilterToSingleFuel narrows a multi-fuel end-use enumeration to the codes
// recorded against one fuel, producing plain (code-only) ids. The target is
// a derived single-fuel enumeration carrying that fuel's name and unit.
type FilterToSingleFuel struct {
	base
	results map[enumeration.ID]enumeration.ID
	keep    map[enumeration.ID]bool
}

// NewFilterToSingleFuel creates the filter. fuelToKeep must be a fuel id of
// from's fuel enumeration. The id-to-result table covers every id of from
// and is computed once here.
func NewFilterToSingleFuel(from *enumeration.MultiFuelEndUse, fuelToKeep enumeration.ID) (*FilterToSingleFuel, error) {
	fuels := from.Fuels()
	fuelName, ok := fuels.FuelName(fuelToKeep)
	if !ok {
		return nil, errors.Configf("%s is not a fuel id in %s", fuelToKeep, fuels.Name())
	}
	fuelUnits, _ := fuels.Units(fuelToKeep)

	var toIDs []enumeration.ID
	var toNames []string
	results := make(map[enumeration.ID]enumeration.ID, from.Len())
	keep := make(map[enumeration.ID]bool, from.Len())
	for i, id := range from.IDs() {
		if id.Fuel == fuelToKeep.Code {
			code := enumeration.NewID(id.Code)
			toIDs = append(toIDs, code)
			toNames = append(toNames, from.Names()[i])
			results[id] = code
			keep[id] = true
		} else {
			keep[id] = false
		}
	}

	toName := fmt.Sprintf("%s (%s)", from.Name(), fuelName)
	to, err := enumeration.NewSingleFuelEndUse(toName, toIDs, toNames, fuelName, fuelUnits)
	if err != nil {
		return nil, err
	}

	return &FilterToSingleFuel{
		base:    base{from: from, to: to},
		results: results,
		keep:    keep,
	}, nil
}

// MapID returns the plain code for ids recorded against the kept fuel,
// a miss for everything else
func (m *FilterToSingleFuel) MapID(fromID enumeration.ID) (enumeration.ID, bool) {
	if !m.keep[fromID] {
		return enumeration.ID{}, false
	}
	return m.results[fromID], true
}
