package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/dairyreg/core"
)

// Format identifies a catalog file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// Field names shared by every format.
const (
	keyRegNo      = "regNo"
	keyName       = "name"
	keyADBA       = "adba"
	keyStreetAddr = "streetAddr"
	keyCity       = "city"
	keyProvince   = "province"
	keyPostalCode = "postalCode"
	keyTelephone  = "telephone"
)

var fieldKeys = []string{
	keyRegNo, keyName, keyADBA, keyStreetAddr,
	keyCity, keyProvince, keyPostalCode, keyTelephone,
}

// FormatFromPath infers the catalog format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads a catalog file, choosing the parser from its extension.
func LoadFile(path string) ([]core.Establishment, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Load parses a catalog in the given format.
func Load(r io.Reader, format Format) ([]core.Establishment, error) {
	switch format {
	case FormatJSON:
		return LoadJSON(r)
	case FormatYAML:
		return LoadYAML(r)
	case FormatCSV:
		return LoadCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// setField assigns value to the establishment field named key.
// Unknown keys are ignored.
func setField(e *core.Establishment, key, value string) {
	switch key {
	case keyRegNo:
		e.RegNo = value
	case keyName:
		e.Name = value
	case keyADBA:
		e.ADBA = value
	case keyStreetAddr:
		e.StreetAddr = value
	case keyCity:
		e.City = value
	case keyProvince:
		e.Province = value
	case keyPostalCode:
		e.PostalCode = value
	case keyTelephone:
		e.Telephone = value
	}
}
