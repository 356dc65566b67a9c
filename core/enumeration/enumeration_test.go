package enumeration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dimgrid/internal/errors"
)

func ids(codes ...string) []ID {
	result := make([]ID, len(codes))
	for i, c := range codes {
		result[i] = NewID(c)
	}
	return result
}

func TestNewSetValidation(t *testing.T) {
	_, err := NewSet("", Geography, ids("a"), []string{"A"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	_, err = NewSet("geo", Geography, ids("a", "b"), []string{"A"})
	require.Error(t, err)

	_, err = NewSet("geo", Geography, ids("a", "a"), []string{"A", "A again"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestSetMembership(t *testing.T) {
	s, err := NewSet("states", Geography, ids("CA", "OR", "WA"), []string{"California", "Oregon", "Washington"})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(NewID("OR")))
	assert.False(t, s.Contains(NewID("TX")))

	name, ok := s.NameOf(NewID("WA"))
	require.True(t, ok)
	assert.Equal(t, "Washington", name)

	_, ok = s.NameOf(NewID("TX"))
	assert.False(t, ok)
}

func TestSetEqualAndSubset(t *testing.T) {
	a := MustNewSet("states", Geography, ids("CA", "OR"), []string{"California", "Oregon"})
	b := MustNewSet("states", Geography, ids("CA", "OR"), []string{"California", "Oregon"})
	c := MustNewSet("states", Geography, ids("OR", "CA"), []string{"Oregon", "California"})
	d := MustNewSet("west", Geography, ids("CA", "OR"), []string{"California", "Oregon"})
	super := MustNewSet("all-states", Geography, ids("CA", "OR", "WA"), []string{"California", "Oregon", "Washington"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "member order is part of identity")
	assert.False(t, a.Equal(d), "name is part of identity")

	assert.True(t, a.IsSubset(super))
	assert.False(t, super.IsSubset(a))
	assert.True(t, a.IsSubset(b))
}

func TestMultiFuelEndUseValidatesFuels(t *testing.T) {
	fuels, err := NewFuelSet("fuels", ids("elec", "gas"), []string{"Electricity", "Natural Gas"}, []string{"MWh", "therm"})
	require.NoError(t, err)

	valid := []ID{NewFuelID("heating", "elec"), NewFuelID("heating", "gas"), NewFuelID("cooling", "elec")}
	names := []string{"Space Heating", "Space Heating", "Space Cooling"}

	e, err := NewMultiFuelEndUse("enduses", valid, names, fuels)
	require.NoError(t, err)

	u, ok := e.Units(NewFuelID("heating", "gas"))
	require.True(t, ok)
	assert.Equal(t, "therm", u)

	u, ok = e.Units(NewFuelID("cooling", "elec"))
	require.True(t, ok)
	assert.Equal(t, "MWh", u)

	_, err = NewMultiFuelEndUse("enduses", []ID{NewFuelID("heating", "coal")}, []string{"Space Heating"}, fuels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coal")
}

func TestSingleFuelEndUseUnits(t *testing.T) {
	e, err := NewSingleFuelEndUse("electric enduses (MWh)", ids("heating", "cooling"),
		[]string{"Space Heating", "Space Cooling"}, "Electricity", "MWh")
	require.NoError(t, err)

	u, ok := e.Units(NewID("heating"))
	require.True(t, ok)
	assert.Equal(t, "MWh", u)

	_, ok = e.Units(NewID("lighting"))
	assert.False(t, ok)
}

func TestLoadSet(t *testing.T) {
	csv := "id,name\nCA,California\nOR,Oregon\n"
	gotIDs, gotNames, err := readIDNameRows(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, ids("CA", "OR"), gotIDs)
	assert.Equal(t, []string{"California", "Oregon"}, gotNames)

	_, _, err = readIDNameRows(strings.NewReader("code,label\nCA,California\n"))
	require.Error(t, err)
}
