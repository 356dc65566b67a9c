// Package correspondence loads explicit id correspondence tables from CSV.
// A correspondence file pairs from_id with to_id, one row per pair, with
// optional from_fuel_id/to_fuel_id columns producing compound ids.
package correspondence

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"dimgrid/core/dimmap"
	"dimgrid/core/enumeration"
	"dimgrid/internal/errors"
)

// Load reads an ordered correspondence from a CSV file
func Load(path string) ([]dimmap.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Parsing("open correspondence file "+path, err)
	}
	defer f.Close()

	pairs, err := Read(f)
	if err != nil {
		return nil, errors.Parsing("read correspondence file "+path, err)
	}
	return pairs, nil
}

// Read reads an ordered correspondence from a CSV stream
func Read(r io.Reader) ([]dimmap.Pair, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.Config("correspondence table is empty")
		}
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	fromCol, ok := cols["from_id"]
	if !ok {
		return nil, errors.Config("correspondence table is missing a from_id column")
	}
	toCol, ok := cols["to_id"]
	if !ok {
		return nil, errors.Config("correspondence table is missing a to_id column")
	}
	fromFuelCol, fromFuel := cols["from_fuel_id"]
	toFuelCol, toFuel := cols["to_fuel_id"]

	var pairs []dimmap.Pair
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		pair := dimmap.Pair{
			From: enumeration.NewID(record[fromCol]),
			To:   enumeration.NewID(record[toCol]),
		}
		if fromFuel {
			pair.From = enumeration.NewFuelID(record[fromCol], record[fromFuelCol])
		}
		if toFuel {
			pair.To = enumeration.NewFuelID(record[toCol], record[toFuelCol])
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// ToIDs returns the distinct to ids of a correspondence, in first-seen order
func ToIDs(pairs []dimmap.Pair) []enumeration.ID {
	seen := make(map[enumeration.ID]struct{}, len(pairs))
	var ids []enumeration.ID
	for _, p := range pairs {
		if _, ok := seen[p.To]; ok {
			continue
		}
		seen[p.To] = struct{}{}
		ids = append(ids, p.To)
	}
	return ids
}
