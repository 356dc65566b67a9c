package dimmap

import (
	"dimgrid/core/enumeration"
	"dimgrid/internal/errors"
)

// FullAggregation collapses every id of from onto the single id of to,
// except ids on the exclude list, which are dropped. Aggregation here means
// counted in versus excluded, not weighted blending.
type FullAggregation struct {
	base
	toID    enumeration.ID
	exclude map[enumeration.ID]struct{}
}

// NewFullAggregation creates a full aggregation. to must contain exactly one
// id; every exclude entry must be a member of from.
func NewFullAggregation(from, to enumeration.View, exclude []enumeration.ID) (*FullAggregation, error) {
	if to.Len() != 1 {
		return nil, errors.Configf(
			"full aggregations collapse everything onto one id, but to_enum %s contains %d",
			to.Name(), to.Len())
	}

	excludeSet := make(map[enumeration.ID]struct{}, len(exclude))
	for _, id := range exclude {
		if !from.Contains(id) {
			return nil, errors.Configf("exclude list id %s is not in from_enum %s", id, from.Name())
		}
		excludeSet[id] = struct{}{}
	}

	return &FullAggregation{
		base:    base{from: from, to: to},
		toID:    to.IDs()[0],
		exclude: excludeSet,
	}, nil
}

// MapID returns the aggregate id, or a miss for excluded ids
func (m *FullAggregation) MapID(fromID enumeration.ID) (enumeration.ID, bool) {
	if _, dropped := m.exclude[fromID]; dropped {
		return enumeration.ID{}, false
	}
	return m.toID, true
}

// FilterToSubset keeps ids that are members of to and drops the rest.
type FilterToSubset struct {
	base
}

// NewFilterToSubset creates a subset filter. Every id of to must be a
// member of from.
func NewFilterToSubset(from, to enumeration.View) (*FilterToSubset, error) {
	for _, id := range to.IDs() {
		if !from.Contains(id) {
			return nil, errors.Configf("to_enum %s is not a subset of from_enum %s: id %s",
				to.Name(), from.Name(), id)
		}
	}
	return &FilterToSubset{base{from: from, to: to}}, nil
}

// MapID is identity on members of to, a miss elsewhere
func (m *FilterToSubset) MapID(fromID enumeration.ID) (enumeration.ID, bool) {
	if m.to.Contains(fromID) {
		return fromID, true
	}
	return enumeration.ID{}, false
}
