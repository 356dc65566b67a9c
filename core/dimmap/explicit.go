package dimmap

import (
	"sync"

	"gonum.org/v1/gonum/floats"

	"dimgrid/core/datatable"
	"dimgrid/core/enumeration"
	"dimgrid/internal/errors"
)

// ExplicitAggregation maps each from id to a single to id through a finite
// correspondence table. Ids absent from the table are dropped, never errors.
type ExplicitAggregation struct {
	base
	table map[enumeration.ID]enumeration.ID
}

// NewExplicitAggregation creates the mapping, validating every referenced id
// against its enumeration. A from id appearing twice keeps its last entry.
func NewExplicitAggregation(from, to enumeration.View, pairs []Pair) (*ExplicitAggregation, error) {
	table := make(map[enumeration.ID]enumeration.ID, len(pairs))
	for _, p := range pairs {
		if !from.Contains(p.From) {
			return nil, errors.Configf("id %s is not in from_enum %s", p.From, from.Name())
		}
		if !to.Contains(p.To) {
			return nil, errors.Configf("id %s is not in to_enum %s", p.To, to.Name())
		}
		table[p.From] = p.To
	}
	return &ExplicitAggregation{
		base:  base{from: from, to: to},
		table: table,
	}, nil
}

// MapID is a table lookup; absence is a miss
func (m *ExplicitAggregation) MapID(fromID enumeration.ID) (enumeration.ID, bool) {
	toID, ok := m.table[fromID]
	return toID, ok
}

// ExplicitDisaggregation fans each from id out to an ordered list of to ids.
// The fan-out order determines the order of returned scaling weights.
type ExplicitDisaggregation struct {
	base
	table map[enumeration.ID][]enumeration.ID

	source datatable.ScalingSource

	resolveOnce sync.Once
	scalingTbl  *datatable.Table
	resolveErr  error
}

// NewExplicitDisaggregation creates the mapping. Every referenced id is
// validated eagerly. source may be nil, in which case every weight defaults
// to 1.0; a non-nil source must be expressed against to on one of its axes.
func NewExplicitDisaggregation(from, to enumeration.View, pairs []Pair, source datatable.ScalingSource) (*ExplicitDisaggregation, error) {
	table := make(map[enumeration.ID][]enumeration.ID)
	for _, p := range pairs {
		if !from.Contains(p.From) {
			return nil, errors.Configf("id %s is not in from_enum %s", p.From, from.Name())
		}
		if !to.Contains(p.To) {
			return nil, errors.Configf("id %s is not in to_enum %s", p.To, to.Name())
		}
		table[p.From] = append(table[p.From], p.To)
	}

	if source != nil && !source.Contains(to) {
		return nil, errors.Configf(
			"scaling source cannot weight this map because it is not expressed against to_enum %s",
			to.Name())
	}

	return &ExplicitDisaggregation{
		base:   base{from: from, to: to},
		table:  table,
		source: source,
	}, nil
}

// MapID returns the first id of the fan-out; FanOut exposes the full list
func (m *ExplicitDisaggregation) MapID(fromID enumeration.ID) (enumeration.ID, bool) {
	toIDs, ok := m.table[fromID]
	if !ok || len(toIDs) == 0 {
		return enumeration.ID{}, false
	}
	return toIDs[0], true
}

// FanOut returns the ordered to ids one from id disaggregates into
func (m *ExplicitDisaggregation) FanOut(fromID enumeration.ID) ([]enumeration.ID, bool) {
	toIDs, ok := m.table[fromID]
	return toIDs, ok
}

// DefaultScaling reports whether the mapping was built without a scaling
// source, in which case every weight is 1.0
func (m *ExplicitDisaggregation) DefaultScaling() bool {
	return m.source == nil
}

// ScalingTable returns the resolved scaling table, loading it on first use.
// Calling it on a default-scaling mapping is a precondition violation.
func (m *ExplicitDisaggregation) ScalingTable() (*datatable.Table, error) {
	if m.DefaultScaling() {
		panic("dimmap: ScalingTable called on a default-scaling disaggregation")
	}
	m.resolveOnce.Do(func() {
		m.scalingTbl, m.resolveErr = m.source.Resolve()
	})
	return m.scalingTbl, m.resolveErr
}

// GetScalings returns one weight per requested to id. The caller passes the
// ids of a single from id's fan-out, in fan-out order.
//
// Without a scaling source every weight is 1.0, unnormalized. With a source,
// each weight is the id's group-sum over the relevant axis divided by the
// sum across the requested ids only, not the full to enumeration; a partial
// query therefore does not reflect global shares.
func (m *ExplicitDisaggregation) GetScalings(toIDs []enumeration.ID) ([]float64, error) {
	weights := make([]float64, len(toIDs))
	if m.DefaultScaling() {
		for i := range weights {
			weights[i] = 1.0
		}
		return weights, nil
	}

	table, err := m.ScalingTable()
	if err != nil {
		return nil, errors.Wrap(errors.TypeInternal, "resolve scaling table", err)
	}

	axis := m.to.Axis()
	switch axis {
	case enumeration.Sector, enumeration.Geography, enumeration.EndUse, enumeration.Time:
	default:
		panic("dimmap: disaggregation target has no dataset axis: " + axis.String())
	}

	sums := table.SumBy(axis, toIDs)
	for i, id := range toIDs {
		weights[i], _ = sums[id].Float64()
	}
	if total := floats.Sum(weights); total != 0 {
		floats.Scale(1.0/total, weights)
	}
	return weights, nil
}
