package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/dairyreg/core"
)

// LoadCSV parses a CSV catalog. The first row is a header naming the columns;
// names are matched case-insensitively and unknown columns are ignored. The
// regNo and name columns are required.
func LoadCSV(r io.Reader) ([]core.Establishment, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}

	columns := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for i, name := range header {
		columns[i] = canonicalKey(name)
		present[columns[i]] = true
	}
	for _, required := range []string{keyRegNo, keyName} {
		if !present[required] {
			return nil, fmt.Errorf("%w: missing %q column", ErrMalformedCatalog, required)
		}
	}

	var records []core.Establishment
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
		}

		var e core.Establishment
		for i, value := range row {
			if i < len(columns) {
				setField(&e, columns[i], value)
			}
		}
		records = append(records, e)
	}

	return records, nil
}

// canonicalKey maps a header cell onto a field name, ignoring case,
// surrounding whitespace and a leading byte order mark.
func canonicalKey(name string) string {
	name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	for _, key := range fieldKeys {
		if strings.EqualFold(name, key) {
			return key
		}
	}
	return name
}
