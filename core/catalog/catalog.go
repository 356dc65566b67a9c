// Package catalog - Built-in enumeration and mapping catalog
// The catalog is declared in an HCL file and built once at startup into a
// frozen registry handle passed explicitly to consumers. Nothing here runs
// as an import-time side effect.
package catalog

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"dimgrid/adapters/correspondence"
	"dimgrid/core/dimmap"
	"dimgrid/core/enumeration"
	"dimgrid/core/registry"
	"dimgrid/internal/config"
	"dimgrid/internal/errors"
	"dimgrid/internal/logging"
)

// Mapping kinds accepted in mapping blocks
const (
	KindExplicitAggregation    = "explicit_aggregation"
	KindExplicitDisaggregation = "explicit_disaggregation"
	KindFullAggregation        = "full_aggregation"
	KindFilterToSubset         = "filter_to_subset"
)

type catalogFile struct {
	Enumerations []enumBlock    `hcl:"enumeration,block"`
	Mappings     []mappingBlock `hcl:"mapping,block"`
}

type enumBlock struct {
	Name string `hcl:"name,label"`
	Axis string `hcl:"axis"`
	CSV  string `hcl:"csv"`
}

type mappingBlock struct {
	Kind string `hcl:"kind"`
	From string `hcl:"from"`
	To   string `hcl:"to"`

	// CSV names the correspondence file for explicit mappings
	CSV *string `hcl:"csv"`

	// KeepCSV names a correspondence file whose to_id column lists the from
	// ids a full aggregation keeps; the exclude list is the complement
	KeepCSV *string `hcl:"keep_csv"`

	// Exclude lists from ids a full aggregation drops
	Exclude *[]string `hcl:"exclude"`
}

// Store resolves catalog enumerations by name
type Store struct {
	byName map[string]enumeration.View
	names  []string
}

// Get returns an enumeration by name
func (s *Store) Get(name string) (enumeration.View, bool) {
	e, ok := s.byName[name]
	return e, ok
}

// Names returns the declared enumeration names in catalog order
func (s *Store) Names() []string { return s.names }

// Len returns the number of enumerations
func (s *Store) Len() int { return len(s.names) }

// Build loads the catalog file, constructs every declared enumeration and
// mapping in file order, and returns a frozen registry plus the enumeration
// store. Any reference to an unknown enumeration or unreadable file fails
// the whole build.
func Build(cfg config.CatalogConfig) (*registry.Registry, *Store, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(cfg.CatalogFile)
	if diags.HasErrors() {
		return nil, nil, errors.Parsing("parse catalog file "+cfg.CatalogFile, diags)
	}

	var decoded catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, nil, errors.Parsing("decode catalog file "+cfg.CatalogFile, diags)
	}

	store := &Store{byName: make(map[string]enumeration.View, len(decoded.Enumerations))}
	for _, block := range decoded.Enumerations {
		axis, ok := enumeration.ParseAxis(block.Axis)
		if !ok {
			return nil, nil, errors.Configf("enumeration %s: unknown axis %q", block.Name, block.Axis)
		}
		set, err := enumeration.LoadSet(filepath.Join(cfg.DataDir, block.CSV), block.Name, axis)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := store.byName[block.Name]; dup {
			return nil, nil, errors.Configf("enumeration %s declared twice", block.Name)
		}
		store.byName[block.Name] = set
		store.names = append(store.names, block.Name)
	}

	reg := registry.New()
	for _, block := range decoded.Mappings {
		m, err := buildMapping(cfg, store, block)
		if err != nil {
			return nil, nil, err
		}
		if err := reg.Add(m); err != nil {
			return nil, nil, err
		}
	}
	reg.Freeze()

	logging.Debug("catalog built",
		zap.Int("enumerations", store.Len()),
		zap.Int("mappings", reg.Len()))
	return reg, store, nil
}

func buildMapping(cfg config.CatalogConfig, store *Store, block mappingBlock) (dimmap.Map, error) {
	from, ok := store.Get(block.From)
	if !ok {
		return nil, errors.Configf("mapping %s -> %s references unknown enumeration %s", block.From, block.To, block.From)
	}
	to, ok := store.Get(block.To)
	if !ok {
		return nil, errors.Configf("mapping %s -> %s references unknown enumeration %s", block.From, block.To, block.To)
	}

	switch block.Kind {
	case KindExplicitAggregation:
		pairs, err := loadPairs(cfg, block)
		if err != nil {
			return nil, err
		}
		return dimmap.NewExplicitAggregation(from, to, pairs)

	case KindExplicitDisaggregation:
		pairs, err := loadPairs(cfg, block)
		if err != nil {
			return nil, err
		}
		return dimmap.NewExplicitDisaggregation(from, to, pairs, nil)

	case KindFullAggregation:
		exclude, err := excludeList(cfg, from, block)
		if err != nil {
			return nil, err
		}
		return dimmap.NewFullAggregation(from, to, exclude)

	case KindFilterToSubset:
		return dimmap.NewFilterToSubset(from, to)

	default:
		return nil, errors.Configf("mapping %s -> %s has unknown kind %q", block.From, block.To, block.Kind)
	}
}

func loadPairs(cfg config.CatalogConfig, block mappingBlock) ([]dimmap.Pair, error) {
	if block.CSV == nil {
		return nil, errors.Configf("mapping %s -> %s requires a csv attribute", block.From, block.To)
	}
	return correspondence.Load(filepath.Join(cfg.DataDir, *block.CSV))
}

// excludeList computes the ids a full aggregation drops: either the literal
// exclude attribute, or the complement of the keep_csv to_id column.
func excludeList(cfg config.CatalogConfig, from enumeration.View, block mappingBlock) ([]enumeration.ID, error) {
	if block.Exclude != nil && block.KeepCSV != nil {
		return nil, errors.Configf("mapping %s -> %s declares both exclude and keep_csv", block.From, block.To)
	}

	if block.Exclude != nil {
		ids := make([]enumeration.ID, 0, len(*block.Exclude))
		for _, code := range *block.Exclude {
			ids = append(ids, enumeration.NewID(code))
		}
		return ids, nil
	}

	if block.KeepCSV != nil {
		pairs, err := correspondence.Load(filepath.Join(cfg.DataDir, *block.KeepCSV))
		if err != nil {
			return nil, err
		}
		keep := make(map[enumeration.ID]struct{})
		for _, id := range correspondence.ToIDs(pairs) {
			keep[id] = struct{}{}
		}
		var exclude []enumeration.ID
		for _, id := range from.IDs() {
			if _, ok := keep[id]; !ok {
				exclude = append(exclude, id)
			}
		}
		return exclude, nil
	}

	return nil, nil
}
