package storage

import (
	"math"
	"testing"
	"time"

	"github.com/poiesic/dairyreg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalPosition(t *testing.T) {
	tests := []struct {
		name string
		pos  uint64
	}{
		{"zero position", 0},
		{"small position", 42},
		{"large position", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalPosition(tt.pos)
			require.Len(t, data, 8)

			decoded, err := UnmarshalPosition(data)
			require.NoError(t, err)
			assert.Equal(t, tt.pos, decoded)
		})
	}
}

func TestMarshalPosition_SortsInOrder(t *testing.T) {
	a := MarshalPosition(255)
	b := MarshalPosition(256)
	assert.Less(t, string(a), string(b))
}

func TestUnmarshalPosition_Invalid(t *testing.T) {
	_, err := UnmarshalPosition([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTruncatedData)
}

func TestMarshalUnmarshalEstablishment(t *testing.T) {
	tests := []struct {
		name   string
		record *core.Establishment
	}{
		{
			name:   "minimal establishment",
			record: &core.Establishment{RegNo: "1234", Name: "Acme Dairy"},
		},
		{
			name: "full establishment",
			record: &core.Establishment{
				RegNo:      "77",
				Name:       "Laiterie Chalifoux",
				ADBA:       "Fromagerie Riviera",
				StreetAddr: "493 boul. Fiset",
				City:       "Sorel-Tracy",
				Province:   "QC",
				PostalCode: "J3P 6J9",
				Telephone:  "450-743-4439",
			},
		},
		{
			name:   "unicode content",
			record: &core.Establishment{RegNo: "9", Name: "Fromagerie de l'Île-aux-Grues"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalEstablishment(tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalEstablishment(data)
			require.NoError(t, err)
			assert.Equal(t, tt.record, decoded)
		})
	}
}

func TestUnmarshalEstablishment_Invalid(t *testing.T) {
	data := MarshalEstablishment(&core.Establishment{RegNo: "1234", Name: "Acme Dairy"})

	_, err := UnmarshalEstablishment(data[:len(data)-3])
	assert.ErrorIs(t, err, ErrSerializationFailed)

	_, err = UnmarshalEstablishment([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestMarshalUnmarshalCatalogInfo(t *testing.T) {
	info := &core.CatalogInfo{
		Digest:     core.Digest(0xfeedface),
		Count:      277,
		Source:     "establishments.yaml",
		ImportedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	data := MarshalCatalogInfo(info)
	decoded, err := UnmarshalCatalogInfo(data)
	require.NoError(t, err)
	assert.Equal(t, info.Digest, decoded.Digest)
	assert.Equal(t, info.Count, decoded.Count)
	assert.Equal(t, info.Source, decoded.Source)
	assert.True(t, info.ImportedAt.Equal(decoded.ImportedAt))
}
