// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/dairyreg/core"
)

// MarshalPosition serializes a catalog position to bytes.
// The big-endian encoding sorts in position order.
func MarshalPosition(pos uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, pos)
	return buf
}

// UnmarshalPosition deserializes a catalog position from bytes.
func UnmarshalPosition(data []byte) (uint64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: position is %d bytes", ErrTruncatedData, len(data))
	}
	return binary.BigEndian.Uint64(data), nil
}

// MarshalEstablishment serializes an Establishment to bytes.
func MarshalEstablishment(record *core.Establishment) []byte {
	buf := make([]byte, core.EstablishmentMUS.Size(*record))
	core.EstablishmentMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalEstablishment deserializes an Establishment from bytes.
func UnmarshalEstablishment(data []byte) (*core.Establishment, error) {
	record, _, err := core.EstablishmentMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}

// MarshalCatalogInfo serializes a CatalogInfo to bytes.
func MarshalCatalogInfo(info *core.CatalogInfo) []byte {
	buf := make([]byte, core.CatalogInfoMUS.Size(*info))
	core.CatalogInfoMUS.Marshal(*info, buf)
	return buf
}

// UnmarshalCatalogInfo deserializes a CatalogInfo from bytes.
func UnmarshalCatalogInfo(data []byte) (*core.CatalogInfo, error) {
	info, _, err := core.CatalogInfoMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &info, nil
}
