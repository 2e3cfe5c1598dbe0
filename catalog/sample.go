package catalog

import (
	"bytes"
	_ "embed"

	"github.com/poiesic/dairyreg/core"
)

// SampleSource names the embedded sample catalog in CatalogInfo.Source.
const SampleSource = "embedded:sample.json"

//go:embed sample.json
var sampleJSON []byte

// Sample returns the embedded sample catalog, a fresh copy on every call.
func Sample() []core.Establishment {
	records, err := LoadJSON(bytes.NewReader(sampleJSON))
	if err != nil {
		panic("catalog: embedded sample is malformed: " + err.Error())
	}
	return records
}
