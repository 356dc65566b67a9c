// Package dimmap - Dimension mapping strategies
// A dimension map translates ids from one enumeration to another and carries
// a per-id scale factor. Construction validates eagerly; a constructed map is
// internally consistent and MapID/ScaleFactor never fail for in-domain ids.
package dimmap

import (
	"dimgrid/core/enumeration"
)

// Map translates ids between two enumerations.
// MapID returns (zero, false) for ids that are dropped by the mapping.
// Ids outside From().IDs() are a caller error; implementations return a
// miss rather than corrupting state.
type Map interface {
	// From is the enumeration mapped from
	From() enumeration.View

	// To is the enumeration mapped to
	To() enumeration.View

	// MapID translates one id; false means the id is dropped
	MapID(fromID enumeration.ID) (enumeration.ID, bool)

	// ScaleFactor is the multiplier applied to values carried by fromID
	ScaleFactor(fromID enumeration.ID) float64
}

// Pair is one entry of an explicit correspondence table
type Pair struct {
	From enumeration.ID
	To   enumeration.ID
}

// base carries the from/to enumerations and the default scale factor
type base struct {
	from enumeration.View
	to   enumeration.View
}

func (b base) From() enumeration.View { return b.from }

func (b base) To() enumeration.View { return b.to }

// ScaleFactor defaults to 1.0; only unit conversion and disaggregation
// weighting scale values
func (b base) ScaleFactor(enumeration.ID) float64 { return 1.0 }

// Tautology is the identity mapping, used when two enumerations are the
// same scheme or when the source is provably a subset of the target. In the
// subset case it is a relabeling: values pass through unchanged.
type Tautology struct {
	base
}

// NewTautology creates an identity mapping onto the given enumeration
func NewTautology(fromTo enumeration.View) *Tautology {
	return &Tautology{base{from: fromTo, to: fromTo}}
}

// MapID returns the id unchanged
func (m *Tautology) MapID(fromID enumeration.ID) (enumeration.ID, bool) {
	return fromID, true
}
