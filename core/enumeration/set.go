package enumeration

import (
	"dimgrid/internal/errors"
)

// View is the read surface shared by every enumeration kind.
// The registry and the mapping hierarchy only depend on this.
type View interface {
	// Name is the stable string identity used as a registry key
	Name() string

	// Axis is the dataset dimension this enumeration describes
	Axis() Axis

	// Len returns the number of members
	Len() int

	// IDs returns the ordered member ids. Callers must not mutate.
	IDs() []ID

	// Names returns display labels parallel to IDs. Callers must not mutate.
	Names() []string

	// Contains reports membership
	Contains(id ID) bool

	// NameOf returns the display label for an id
	NameOf(id ID) (string, bool)

	// Equal reports whether both enumerations have the same name and members
	Equal(other View) bool

	// IsSubset reports whether every member id is also a member of other
	IsSubset(other View) bool
}

// Set is the basic enumeration: a named, ordered, immutable id list.
type Set struct {
	name  string
	axis  Axis
	ids   []ID
	names []string
	index map[ID]int
}

// NewSet creates a validated enumeration
func NewSet(name string, axis Axis, ids []ID, names []string) (*Set, error) {
	if name == "" {
		return nil, errors.Config("enumeration name must not be empty")
	}
	if len(ids) != len(names) {
		return nil, errors.Configf("enumeration %s: %d ids but %d names", name, len(ids), len(names))
	}

	index := make(map[ID]int, len(ids))
	for i, id := range ids {
		if _, exists := index[id]; exists {
			return nil, errors.Configf("enumeration %s: duplicate id %s", name, id)
		}
		index[id] = i
	}

	return &Set{
		name:  name,
		axis:  axis,
		ids:   ids,
		names: names,
		index: index,
	}, nil
}

// MustNewSet creates an enumeration and panics on invalid input.
// Intended for literal enumerations fixed at startup.
func MustNewSet(name string, axis Axis, ids []ID, names []string) *Set {
	s, err := NewSet(name, axis, ids, names)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the stable string identity
func (s *Set) Name() string { return s.name }

// Axis returns the dataset dimension
func (s *Set) Axis() Axis { return s.axis }

// Len returns the number of members
func (s *Set) Len() int { return len(s.ids) }

// IDs returns the ordered member ids
func (s *Set) IDs() []ID { return s.ids }

// Names returns display labels parallel to IDs
func (s *Set) Names() []string { return s.names }

// Contains reports membership
func (s *Set) Contains(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// IndexOf returns the position of an id
func (s *Set) IndexOf(id ID) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// NameOf returns the display label for an id
func (s *Set) NameOf(id ID) (string, bool) {
	i, ok := s.index[id]
	if !ok {
		return "", false
	}
	return s.names[i], true
}

// Equal reports whether both enumerations have the same name and members,
// in the same order. Two enumerations are the same dimension scheme iff
// names and members match.
func (s *Set) Equal(other View) bool {
	if other == nil || s.name != other.Name() || s.Len() != other.Len() {
		return false
	}
	otherIDs := other.IDs()
	for i, id := range s.ids {
		if otherIDs[i] != id {
			return false
		}
	}
	return true
}

// IsSubset reports whether every member id is also a member of other
func (s *Set) IsSubset(other View) bool {
	if other == nil {
		return false
	}
	for _, id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
