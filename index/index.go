package index

import (
	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/match"
)

// PreparedRecord is an establishment together with the prepared
// representation of each of its searchable fields.
type PreparedRecord struct {
	Record   *core.Establishment
	Position int // Position in the catalog, used to break score ties

	fields [len(core.SearchableFields)]*match.PreparedField
}

// Field returns the prepared representation of f, or nil when the record has
// no value for it (an absent adba).
func (p *PreparedRecord) Field(f core.Field) *match.PreparedField {
	for i, sf := range core.SearchableFields {
		if sf == f {
			return p.fields[i]
		}
	}
	return nil
}

// Index is the read-only table of prepared records, in catalog order.
type Index struct {
	records []PreparedRecord
	byRegNo map[string]int
	digest  core.Digest
}

// Prepare validates the catalog and builds an Index over it.
// The establishments are copied, so later changes to the slice do not leak
// into the index. Returns a *core.DataIntegrityError on a missing or
// duplicated regNo or an empty name.
func Prepare(records []core.Establishment) (*Index, error) {
	if err := core.ValidateCatalog(records); err != nil {
		return nil, err
	}

	idx := &Index{
		records: make([]PreparedRecord, len(records)),
		byRegNo: make(map[string]int, len(records)),
		digest:  core.CatalogDigest(records),
	}

	for i := range records {
		record := records[i]
		record.RegNo = core.NormalizeRegNo(record.RegNo)

		prepared := &idx.records[i]
		prepared.Record = &record
		prepared.Position = i
		for fi, f := range core.SearchableFields {
			if value, ok := record.FieldValue(f); ok {
				prepared.fields[fi] = match.PrepareField(value)
			}
		}

		idx.byRegNo[record.RegNo] = i
	}

	return idx, nil
}

// Len returns the number of records in the index.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Record returns the prepared record at catalog position i.
func (idx *Index) Record(i int) *PreparedRecord {
	return &idx.records[i]
}

// Records returns the prepared records in catalog order.
// Callers must not modify the returned slice.
func (idx *Index) Records() []PreparedRecord {
	return idx.records
}

// Lookup finds a record by its registration number.
func (idx *Index) Lookup(regNo string) (*PreparedRecord, bool) {
	i, ok := idx.byRegNo[core.NormalizeRegNo(regNo)]
	if !ok {
		return nil, false
	}
	return &idx.records[i], true
}

// Digest returns the content digest of the catalog the index was built from.
func (idx *Index) Digest() core.Digest {
	return idx.digest
}
