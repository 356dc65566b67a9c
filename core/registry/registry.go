// Package registry - Mapping registry and resolution
// Stores dimension maps keyed by (from-enum-name, to-enum-name) and resolves
// a requested mapping via exact match, tautology detection, or a
// subset-compatible fallback scanned in insertion order.
package registry

import (
	"sync"

	"go.uber.org/zap"

	"dimgrid/core/dimmap"
	"dimgrid/core/enumeration"
	"dimgrid/internal/errors"
	"dimgrid/internal/logging"
)

// Dataset reports the four enumerations a dataset is expressed against
type Dataset interface {
	SectorEnum() enumeration.View
	GeographyEnum() enumeration.View
	EndUseEnum() enumeration.View
	TimeEnum() enumeration.View
}

type key struct {
	from string
	to   string
}

// Registry holds dimension maps. It is populated at startup, frozen, and
// read-only afterwards; concurrent readers are safe.
type Registry struct {
	mu       sync.RWMutex
	mappings map[key]dimmap.Map
	order    []key
	frozen   bool
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		mappings: make(map[key]dimmap.Map),
	}
}

// Add inserts a mapping under (from name, to name). Last write wins on key
// collision. Adding to a frozen registry is a configuration error.
func (r *Registry) Add(m dimmap.Map) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.Configf("registry is frozen; cannot add mapping %s -> %s",
			m.From().Name(), m.To().Name())
	}

	k := key{from: m.From().Name(), to: m.To().Name()}
	if _, exists := r.mappings[k]; !exists {
		r.order = append(r.order, k)
	}
	r.mappings[k] = m
	return nil
}

// Freeze marks the registry read-only
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Len returns the number of stored mappings
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mappings)
}

// Get resolves a mapping that re-expresses dataset's axis matching toEnum's
// kind against toEnum. A (nil, false, nil) result means no mapping is
// available, which is a normal outcome the caller must branch on.
func (r *Registry) Get(dataset Dataset, toEnum enumeration.View) (dimmap.Map, bool, error) {
	var fromEnum enumeration.View
	switch toEnum.Axis() {
	case enumeration.Sector:
		fromEnum = dataset.SectorEnum()
	case enumeration.Geography:
		fromEnum = dataset.GeographyEnum()
	case enumeration.EndUse:
		fromEnum = dataset.EndUseEnum()
	case enumeration.Time:
		fromEnum = dataset.TimeEnum()
	default:
		return nil, false, errors.Configf("to_enum %s has unrecognized axis %s", toEnum.Name(), toEnum.Axis())
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if m, ok := r.mappings[key{from: fromEnum.Name(), to: toEnum.Name()}]; ok {
		return m, true, nil
	}

	// No stored match. Is the requested mapping a tautology?
	if fromEnum.Equal(toEnum) {
		return dimmap.NewTautology(toEnum), true, nil
	}
	if fromEnum.IsSubset(toEnum) {
		return dimmap.NewTautology(toEnum), true, nil
	}

	// Fall back to any stored mapping onto toEnum whose source covers every
	// id of fromEnum. First match in insertion order wins.
	for _, k := range r.order {
		if k.to != toEnum.Name() {
			continue
		}
		candidate := r.mappings[k]
		if fromEnum.IsSubset(candidate.From()) {
			logging.Debug("resolved mapping through superset fallback",
				zap.String("from", fromEnum.Name()),
				zap.String("via", candidate.From().Name()),
				zap.String("to", toEnum.Name()))
			return candidate, true, nil
		}
	}

	return nil, false, nil
}
