package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// EstablishmentMUS is the MUS serializer for Establishment.
// Fields are encoded in declaration order as length-prefixed strings.
var EstablishmentMUS = establishmentMUS{}

type establishmentMUS struct{}

func (s establishmentMUS) fields(v *Establishment) [8]*string {
	return [8]*string{
		&v.RegNo, &v.Name, &v.ADBA, &v.StreetAddr,
		&v.City, &v.Province, &v.PostalCode, &v.Telephone,
	}
}

func (s establishmentMUS) Marshal(v Establishment, bs []byte) (n int) {
	for _, f := range s.fields(&v) {
		n += ord.String.Marshal(*f, bs[n:])
	}
	return
}

func (s establishmentMUS) Unmarshal(bs []byte) (v Establishment, n int, err error) {
	var n1 int
	for _, f := range s.fields(&v) {
		*f, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

func (s establishmentMUS) Size(v Establishment) (size int) {
	for _, f := range s.fields(&v) {
		size += ord.String.Size(*f)
	}
	return
}

func (s establishmentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for range 8 {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

// CatalogInfoMUS is the MUS serializer for CatalogInfo.
// ImportedAt is stored as Unix microseconds in UTC.
var CatalogInfoMUS = catalogInfoMUS{}

type catalogInfoMUS struct{}

func (s catalogInfoMUS) Marshal(v CatalogInfo, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(v.Digest), bs)
	n += varint.Int64.Marshal(int64(v.Count), bs[n:])
	n += ord.String.Marshal(v.Source, bs[n:])
	n += varint.Int64.Marshal(v.ImportedAt.UnixMicro(), bs[n:])
	return
}

func (s catalogInfoMUS) Unmarshal(bs []byte) (v CatalogInfo, n int, err error) {
	var (
		n1     int
		digest uint64
		count  int64
		micros int64
	)
	digest, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Digest = Digest(digest)
	count, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Count = int(count)
	v.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ImportedAt = time.UnixMicro(micros).UTC()
	return
}

func (s catalogInfoMUS) Size(v CatalogInfo) (size int) {
	size = varint.Uint64.Size(uint64(v.Digest))
	size += varint.Int64.Size(int64(v.Count))
	size += ord.String.Size(v.Source)
	return size + varint.Int64.Size(v.ImportedAt.UnixMicro())
}
