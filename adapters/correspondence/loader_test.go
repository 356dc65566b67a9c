package correspondence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dimgrid/core/dimmap"
	"dimgrid/core/enumeration"
	"dimgrid/internal/errors"
)

func TestReadPlainPairs(t *testing.T) {
	csv := "from_id,to_id\n08001,08\n08003,08\n56001,56\n"
	pairs, err := Read(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, pairs, 3)
	assert.Equal(t, dimmap.Pair{
		From: enumeration.NewID("08001"),
		To:   enumeration.NewID("08"),
	}, pairs[0])
	assert.Equal(t, enumeration.NewID("56"), pairs[2].To)
}

func TestReadFuelQualifiedPairs(t *testing.T) {
	csv := "from_id,from_fuel_id,to_id\nheating,elec,electric_heating\nheating,gas,gas_heating\n"
	pairs, err := Read(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, pairs, 2)
	assert.Equal(t, enumeration.NewFuelID("heating", "elec"), pairs[0].From)
	assert.Equal(t, enumeration.NewID("electric_heating"), pairs[0].To)
	assert.Equal(t, enumeration.NewFuelID("heating", "gas"), pairs[1].From)
}

func TestReadMissingColumns(t *testing.T) {
	_, err := Read(strings.NewReader("source,target\na,b\n"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	_, err = Read(strings.NewReader("from_id\na\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to_id")

	_, err = Read(strings.NewReader(""))
	require.Error(t, err)
}

func TestToIDs(t *testing.T) {
	csv := "from_id,to_id\na,x\nb,y\nc,x\n"
	pairs, err := Read(strings.NewReader(csv))
	require.NoError(t, err)

	got := ToIDs(pairs)
	assert.Equal(t, []enumeration.ID{enumeration.NewID("x"), enumeration.NewID("y")}, got)
}
