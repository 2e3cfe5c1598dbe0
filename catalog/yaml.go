package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/poiesic/dairyreg/core"
	"gopkg.in/yaml.v3"
)

// scalar accepts any YAML scalar, so regNo: 1234 and regNo: "1234" load alike.
type scalar string

func (s *scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = scalar(value.Value)
	return nil
}

type yamlEstablishment struct {
	RegNo      scalar `yaml:"regNo"`
	Name       scalar `yaml:"name"`
	ADBA       scalar `yaml:"adba"`
	StreetAddr scalar `yaml:"streetAddr"`
	City       scalar `yaml:"city"`
	Province   scalar `yaml:"province"`
	PostalCode scalar `yaml:"postalCode"`
	Telephone  scalar `yaml:"telephone"`
}

// LoadYAML parses a YAML catalog: a sequence of establishment mappings.
func LoadYAML(r io.Reader) ([]core.Establishment, error) {
	var entries []yamlEstablishment
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}

	records := make([]core.Establishment, len(entries))
	for i, e := range entries {
		records[i] = core.Establishment{
			RegNo:      string(e.RegNo),
			Name:       string(e.Name),
			ADBA:       string(e.ADBA),
			StreetAddr: string(e.StreetAddr),
			City:       string(e.City),
			Province:   string(e.Province),
			PostalCode: string(e.PostalCode),
			Telephone:  string(e.Telephone),
		}
	}
	return records, nil
}
