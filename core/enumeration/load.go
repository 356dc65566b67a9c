package enumeration

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"dimgrid/internal/errors"
)

// LoadSet reads an enumeration from a two-column CSV file with an
// "id","name" header. Row order defines member order.
func LoadSet(path, name string, axis Axis) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Parsing("open enumeration file "+path, err)
	}
	defer f.Close()

	ids, names, err := readIDNameRows(f)
	if err != nil {
		return nil, errors.Parsing("read enumeration file "+path, err)
	}
	return NewSet(name, axis, ids, names)
}

func readIDNameRows(r io.Reader) ([]ID, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}
	idCol, nameCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id":
			idCol = i
		case "name":
			nameCol = i
		}
	}
	if idCol < 0 || nameCol < 0 {
		return nil, nil, errors.Config("enumeration file must have id and name columns")
	}

	var ids []ID
	var names []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		ids = append(ids, NewID(record[idCol]))
		names = append(names, record[nameCol])
	}
	return ids, names, nil
}
