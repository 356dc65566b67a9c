package dimmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dimgrid/core/enumeration"
	"dimgrid/internal/errors"
)

func multiFuelEnduses(t *testing.T) *enumeration.MultiFuelEndUse {
	t.Helper()
	fuels, err := enumeration.NewFuelSet("fuels",
		ids("elec", "gas"),
		[]string{"Electricity", "Natural Gas"},
		[]string{"MWh", "therm"})
	require.NoError(t, err)

	e, err := enumeration.NewMultiFuelEndUse("enduses",
		[]enumeration.ID{
			enumeration.NewFuelID("heating", "elec"),
			enumeration.NewFuelID("heating", "gas"),
			enumeration.NewFuelID("cooling", "elec"),
		},
		[]string{"Space Heating", "Space Heating", "Space Cooling"},
		fuels)
	require.NoError(t, err)
	return e
}

func TestFilterToSingleFuel(t *testing.T) {
	from := multiFuelEnduses(t)

	m, err := NewFilterToSingleFuel(from, enumeration.NewID("elec"))
	require.NoError(t, err)

	to, ok := m.To().(*enumeration.SingleFuelEndUse)
	require.True(t, ok)
	assert.Equal(t, "enduses (Electricity)", to.Name())
	assert.Equal(t, "MWh", to.Unit())
	assert.Equal(t, ids("heating", "cooling"), to.IDs())

	got, ok := m.MapID(enumeration.NewFuelID("heating", "elec"))
	require.True(t, ok)
	assert.Equal(t, enumeration.NewID("heating"), got)

	_, ok = m.MapID(enumeration.NewFuelID("heating", "gas"))
	assert.False(t, ok)

	got, ok = m.MapID(enumeration.NewFuelID("cooling", "elec"))
	require.True(t, ok)
	assert.Equal(t, enumeration.NewID("cooling"), got)
}

func TestFilterToSingleFuelUnknownFuel(t *testing.T) {
	from := multiFuelEnduses(t)

	_, err := NewFilterToSingleFuel(from, enumeration.NewID("coal"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
	assert.Contains(t, err.Error(), "coal")
}
