// Package datatable - Four-axis in-memory data table
// A Table is frozen after construction: a builder validates every key
// against the four axis enumerations, then hands out a read-only view.
// The mapping core uses tables only to pull disaggregation scaling weights.
package datatable

import (
	"github.com/shopspring/decimal"

	"dimgrid/core/enumeration"
	"dimgrid/internal/errors"
)

// Key addresses one cell of a table
type Key struct {
	Sector    enumeration.ID
	Geography enumeration.ID
	EndUse    enumeration.ID
	Time      enumeration.ID
}

// axisID returns the key component for an axis
func (k Key) axisID(axis enumeration.Axis) enumeration.ID {
	switch axis {
	case enumeration.Sector:
		return k.Sector
	case enumeration.Geography:
		return k.Geography
	case enumeration.EndUse:
		return k.EndUse
	case enumeration.Time:
		return k.Time
	default:
		panic("datatable: key has no component for axis " + axis.String())
	}
}

// Table is a frozen four-axis value store
type Table struct {
	sector enumeration.View
	geo    enumeration.View
	enduse enumeration.View
	time   enumeration.View
	values map[Key]decimal.Decimal
}

// Builder accumulates cells for a table before freezing
type Builder struct {
	table  *Table
	frozen bool
}

// NewBuilder creates a builder over the four axis enumerations
func NewBuilder(sector, geo, enduse, time enumeration.View) *Builder {
	return &Builder{
		table: &Table{
			sector: sector,
			geo:    geo,
			enduse: enduse,
			time:   time,
			values: make(map[Key]decimal.Decimal),
		},
	}
}

// Set stores one cell, validating the key against each axis enumeration
func (b *Builder) Set(key Key, value decimal.Decimal) error {
	if b.frozen {
		return errors.Config("datatable builder already frozen")
	}
	if !b.table.sector.Contains(key.Sector) {
		return errors.Configf("sector id %s is not in %s", key.Sector, b.table.sector.Name())
	}
	if !b.table.geo.Contains(key.Geography) {
		return errors.Configf("geography id %s is not in %s", key.Geography, b.table.geo.Name())
	}
	if !b.table.enduse.Contains(key.EndUse) {
		return errors.Configf("enduse id %s is not in %s", key.EndUse, b.table.enduse.Name())
	}
	if !b.table.time.Contains(key.Time) {
		return errors.Configf("time id %s is not in %s", key.Time, b.table.time.Name())
	}
	b.table.values[key] = value
	return nil
}

// SetFloat stores one cell from a float64 value
func (b *Builder) SetFloat(key Key, value float64) error {
	return b.Set(key, decimal.NewFromFloat(value))
}

// Freeze returns the read-only table and invalidates the builder
func (b *Builder) Freeze() *Table {
	b.frozen = true
	return b.table
}

// AxisEnum returns the enumeration a table axis is expressed against
func (t *Table) AxisEnum(axis enumeration.Axis) enumeration.View {
	switch axis {
	case enumeration.Sector:
		return t.sector
	case enumeration.Geography:
		return t.geo
	case enumeration.EndUse:
		return t.enduse
	case enumeration.Time:
		return t.time
	default:
		return nil
	}
}

// SectorEnum returns the sector axis enumeration
func (t *Table) SectorEnum() enumeration.View { return t.sector }

// GeographyEnum returns the geography axis enumeration
func (t *Table) GeographyEnum() enumeration.View { return t.geo }

// EndUseEnum returns the end-use axis enumeration
func (t *Table) EndUseEnum() enumeration.View { return t.enduse }

// TimeEnum returns the time axis enumeration
func (t *Table) TimeEnum() enumeration.View { return t.time }

// Contains reports whether the table is expressed against the given
// enumeration on any of its four axes
func (t *Table) Contains(view enumeration.View) bool {
	for _, e := range []enumeration.View{t.sector, t.geo, t.enduse, t.time} {
		if e.Equal(view) {
			return true
		}
	}
	return false
}

// Value returns one cell
func (t *Table) Value(key Key) (decimal.Decimal, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of stored cells
func (t *Table) Len() int { return len(t.values) }

// SumBy restricts the table to the given ids along one axis, groups by that
// axis, and sums. Ids with no stored cells sum to zero.
func (t *Table) SumBy(axis enumeration.Axis, ids []enumeration.ID) map[enumeration.ID]decimal.Decimal {
	keep := make(map[enumeration.ID]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	sums := make(map[enumeration.ID]decimal.Decimal, len(ids))
	for _, id := range ids {
		sums[id] = decimal.Zero
	}
	for key, value := range t.values {
		id := key.axisID(axis)
		if _, ok := keep[id]; ok {
			sums[id] = sums[id].Add(value)
		}
	}
	return sums
}
