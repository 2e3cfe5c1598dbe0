package core

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Field names one of the searchable fields of an establishment.
type Field int

const (
	// FieldNone is the zero value and never explains a match.
	FieldNone Field = iota
	// FieldRegNo is the registration number, stringified.
	FieldRegNo
	// FieldName is the legal name.
	FieldName
	// FieldADBA is the "also doing business as" name.
	FieldADBA
	// FieldCityProv is the city and province joined by CityProvSeparator.
	FieldCityProv
)

// SearchableFields lists the searchable fields in declaration order.
var SearchableFields = [...]Field{FieldRegNo, FieldName, FieldADBA, FieldCityProv}

// CityProvSeparator joins city and province into the cityProv field.
const CityProvSeparator = " "

func (f Field) String() string {
	switch f {
	case FieldRegNo:
		return "regNo"
	case FieldName:
		return "name"
	case FieldADBA:
		return "adba"
	case FieldCityProv:
		return "cityProv"
	default:
		return "none"
	}
}

// Establishment is one registered dairy establishment in the catalog.
// Only RegNo, Name, ADBA, City and Province take part in matching; the
// remaining fields are carried for display.
type Establishment struct {
	RegNo      string
	Name       string
	ADBA       string // Optional, empty when the establishment has no other trade name
	StreetAddr string
	City       string
	Province   string
	PostalCode string
	Telephone  string
}

// HasADBA reports whether the establishment trades under another name.
func (e *Establishment) HasADBA() bool {
	return e.ADBA != ""
}

// CityProv returns the derived cityProv search field.
func (e *Establishment) CityProv() string {
	return e.City + CityProvSeparator + e.Province
}

// FieldValue returns the raw text of a searchable field.
// The second result is false for FieldADBA when the establishment has none.
func (e *Establishment) FieldValue(f Field) (string, bool) {
	switch f {
	case FieldRegNo:
		return e.RegNo, true
	case FieldName:
		return e.Name, true
	case FieldADBA:
		return e.ADBA, e.HasADBA()
	case FieldCityProv:
		return e.CityProv(), true
	default:
		return "", false
	}
}

// SearchResult is a ranked establishment along with the score that placed it
// and the field that produced that score.
type SearchResult struct {
	Record  *Establishment
	Score   float64
	Field   Field
	Matches []int // Rune positions of the query in the explaining field
}

// Digest is a content hash of a catalog.
type Digest uint64

// CatalogDigest computes a deterministic BLAKE2b digest over a catalog.
// Identical catalogs in identical order produce identical digests.
// Registration numbers are hashed in normalized form.
func CatalogDigest(records []Establishment) Digest {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	for i := range records {
		r := &records[i]
		for _, s := range []string{NormalizeRegNo(r.RegNo), r.Name, r.ADBA, r.StreetAddr, r.City, r.Province, r.PostalCode, r.Telephone} {
			h.Write([]byte(s))
			h.Write([]byte{0})
		}
		h.Write([]byte{'\n'})
	}
	sum := h.Sum(nil)
	return Digest(binary.LittleEndian.Uint64(sum))
}

// String renders the digest as 16 hex digits.
func (d Digest) String() string {
	return fmt.Sprintf("%016x", uint64(d))
}

// CatalogInfo describes the catalog currently held by a repository.
type CatalogInfo struct {
	Digest     Digest
	Count      int
	Source     string    // Where the catalog was imported from
	ImportedAt time.Time // When the import finished
}

// NormalizeRegNo trims surrounding whitespace from a registration number.
func NormalizeRegNo(regNo string) string {
	return strings.TrimSpace(regNo)
}
