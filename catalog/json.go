package catalog

import (
	"fmt"
	"io"

	"github.com/poiesic/dairyreg/core"
	"github.com/tidwall/gjson"
)

// LoadJSON parses a JSON catalog. Null or missing fields load as empty
// strings; numeric values such as a regNo of 1234 load as their decimal text.
func LoadJSON(r io.Reader) ([]core.Establishment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedCatalog)
	}

	root := gjson.ParseBytes(data)
	if root.IsObject() {
		root = root.Get("establishments")
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of establishments", ErrMalformedCatalog)
	}

	var records []core.Establishment
	var parseErr error
	root.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			parseErr = fmt.Errorf("%w: entry %d is not an object", ErrMalformedCatalog, len(records))
			return false
		}
		var e core.Establishment
		for _, key := range fieldKeys {
			v := entry.Get(key)
			switch v.Type {
			case gjson.String, gjson.Number:
				setField(&e, key, v.String())
			case gjson.Null:
			default:
				parseErr = fmt.Errorf("%w: entry %d: %s must be a string or number", ErrMalformedCatalog, len(records), key)
				return false
			}
		}
		records = append(records, e)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return records, nil
}
