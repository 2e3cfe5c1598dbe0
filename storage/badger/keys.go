package badger

import (
	"github.com/poiesic/dairyreg/storage"
)

// Key prefixes for different data types
const (
	establishmentPrefix      = "estpos:"
	establishmentRegNoPrefix = "estreg:"
	establishmentPositionSeq = "seq:estpos"
	catalogInfoKey           = "catinfo"
)

// makeEstablishmentKey generates a key for an establishment by catalog position.
// Format: prefix + big-endian position, so keys iterate in catalog order.
func makeEstablishmentKey(pos uint64) []byte {
	buf := make([]byte, 0, len(establishmentPrefix)+8)
	buf = append(buf, establishmentPrefix...)
	return append(buf, storage.MarshalPosition(pos)...)
}

// makeRegNoKey generates a key for the registration number index.
// Format: prefix:regNo
func makeRegNoKey(regNo string) []byte {
	buf := make([]byte, 0, len(establishmentRegNoPrefix)+len(regNo))
	buf = append(buf, establishmentRegNoPrefix...)
	return append(buf, regNo...)
}
