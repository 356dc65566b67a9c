package datatable

import (
	"testing"

	"github.com/shopspring/decimal"
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

func mustSet(t *testing.T, name string, axis enumeration.Axis, codes ...string) *enumeration.Set {
	t.Helper()
	names := make([]string, len(codes))
	copy(names, codes)
	s, err := enumeration.NewSet(name, axis, ids(codes...), names)
	require.NoError(t, err)
	return s
}

func testAxes(t *testing.T) (sector, geo, enduse, timeEnum *enumeration.Set) {
	t.Helper()
	sector = mustSet(t, "sectors", enumeration.Sector, "res", "com")
	geo = mustSet(t, "counties", enumeration.Geography, "c1", "c2")
	enduse = mustSet(t, "enduses", enumeration.EndUse, "heating", "cooling")
	timeEnum = mustSet(t, "annual", enumeration.Time, "2012")
	return
}

func key(sector, geo, enduse, time string) Key {
	return Key{
		Sector:    enumeration.NewID(sector),
		Geography: enumeration.NewID(geo),
		EndUse:    enumeration.NewID(enduse),
		Time:      enumeration.NewID(time),
	}
}

func TestBuilderValidatesKeys(t *testing.T) {
	sector, geo, enduse, timeEnum := testAxes(t)
	b := NewBuilder(sector, geo, enduse, timeEnum)

	require.NoError(t, b.SetFloat(key("res", "c1", "heating", "2012"), 1.5))

	err := b.SetFloat(key("ind", "c1", "heating", "2012"), 1.0)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
	assert.Contains(t, err.Error(), "ind")

	err = b.SetFloat(key("res", "c9", "heating", "2012"), 1.0)
	require.Error(t, err)

	table := b.Freeze()
	assert.Equal(t, 1, table.Len())

	err = b.SetFloat(key("res", "c2", "heating", "2012"), 1.0)
	require.Error(t, err, "frozen builder rejects writes")
}

func TestContains(t *testing.T) {
	sector, geo, enduse, timeEnum := testAxes(t)
	table := NewBuilder(sector, geo, enduse, timeEnum).Freeze()

	sameGeo := mustSet(t, "counties", enumeration.Geography, "c1", "c2")
	otherGeo := mustSet(t, "states", enumeration.Geography, "s1")

	assert.True(t, table.Contains(sameGeo))
	assert.True(t, table.Contains(sector))
	assert.False(t, table.Contains(otherGeo))
}

func TestSumBy(t *testing.T) {
	sector, geo, enduse, timeEnum := testAxes(t)
	b := NewBuilder(sector, geo, enduse, timeEnum)

	require.NoError(t, b.SetFloat(key("res", "c1", "heating", "2012"), 1.0))
	require.NoError(t, b.SetFloat(key("com", "c1", "cooling", "2012"), 2.0))
	require.NoError(t, b.SetFloat(key("res", "c2", "heating", "2012"), 4.0))
	table := b.Freeze()

	sums := table.SumBy(enumeration.Geography, ids("c1", "c2"))
	assert.True(t, sums[enumeration.NewID("c1")].Equal(decimal.NewFromFloat(3.0)))
	assert.True(t, sums[enumeration.NewID("c2")].Equal(decimal.NewFromFloat(4.0)))

	// Restriction: ids outside the requested set are not grouped.
	sums = table.SumBy(enumeration.Geography, ids("c2"))
	assert.Len(t, sums, 1)

	// Ids with no cells sum to zero.
	sums = table.SumBy(enumeration.Sector, ids("res", "com"))
	assert.True(t, sums[enumeration.NewID("res")].Equal(decimal.NewFromFloat(5.0)))
	assert.True(t, sums[enumeration.NewID("com")].Equal(decimal.NewFromFloat(2.0)))
}

func TestTableSource(t *testing.T) {
	sector, geo, enduse, timeEnum := testAxes(t)
	table := NewBuilder(sector, geo, enduse, timeEnum).Freeze()

	source := NewTableSource(table)
	assert.True(t, source.Contains(geo))

	resolved, err := source.Resolve()
	require.NoError(t, err)
	assert.Same(t, table, resolved)
}
