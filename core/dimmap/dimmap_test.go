package dimmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dimgrid/core/enumeration"
	"dimgrid/internal/errors"
)

func ids(codes ...string) []enumeration.ID {
	result := make([]enumeration.ID, len(codes))
	for i, c := range codes {
		result[i] = enumeration.NewID(c)
	}
	return result
}

func blankNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "name"
	}
	return names
}

func mustSet(t *testing.T, name string, axis enumeration.Axis, codes ...string) *enumeration.Set {
	t.Helper()
	s, err := enumeration.NewSet(name, axis, ids(codes...), blankNames(len(codes)))
	require.NoError(t, err)
	return s
}

func TestTautology(t *testing.T) {
	e := mustSet(t, "states", enumeration.Geography, "CA", "OR")
	m := NewTautology(e)

	for _, id := range e.IDs() {
		got, ok := m.MapID(id)
		require.True(t, ok)
		assert.Equal(t, id, got)
		assert.Equal(t, 1.0, m.ScaleFactor(id))
	}
	assert.Equal(t, e.Name(), m.From().Name())
	assert.Equal(t, e.Name(), m.To().Name())
}

func TestFullAggregation(t *testing.T) {
	from := mustSet(t, "states", enumeration.Geography, "CA", "OR", "AK", "HI")
	to := mustSet(t, "conus", enumeration.Geography, "conus")
	exclude := ids("AK", "HI")

	m, err := NewFullAggregation(from, to, exclude)
	require.NoError(t, err)

	for _, id := range exclude {
		_, ok := m.MapID(id)
		assert.False(t, ok, "excluded id %s must be dropped", id)
	}
	for _, code := range []string{"CA", "OR"} {
		got, ok := m.MapID(enumeration.NewID(code))
		require.True(t, ok)
		assert.Equal(t, to.IDs()[0], got)
	}
	assert.Equal(t, 1.0, m.ScaleFactor(enumeration.NewID("CA")))
}

func TestFullAggregationConstructionFailures(t *testing.T) {
	from := mustSet(t, "states", enumeration.Geography, "CA", "OR")
	wide := mustSet(t, "regions", enumeration.Geography, "west", "east")
	one := mustSet(t, "conus", enumeration.Geography, "conus")

	_, err := NewFullAggregation(from, wide, nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	_, err = NewFullAggregation(from, one, ids("TX"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TX")
}

func TestFilterToSubset(t *testing.T) {
	from := mustSet(t, "states", enumeration.Geography, "CA", "OR", "AK")
	to := mustSet(t, "conus_states", enumeration.Geography, "CA", "OR")

	m, err := NewFilterToSubset(from, to)
	require.NoError(t, err)

	for _, id := range to.IDs() {
		got, ok := m.MapID(id)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
	_, ok := m.MapID(enumeration.NewID("AK"))
	assert.False(t, ok)
}

func TestFilterToSubsetRequiresSubset(t *testing.T) {
	from := mustSet(t, "states", enumeration.Geography, "CA", "OR")
	to := mustSet(t, "other", enumeration.Geography, "CA", "TX")

	_, err := NewFilterToSubset(from, to)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
	assert.Contains(t, err.Error(), "TX")
}
