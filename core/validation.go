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

package core

import "strings"

// ValidateEstablishment validates a single establishment according to catalog rules.
//
// Validation rules:
//   - RegNo must not be empty after trimming
//   - Name must not be empty after trimming
//
// Uniqueness of RegNo is a catalog-level rule and is checked by the index.
// position is only used to annotate the returned error.
func ValidateEstablishment(record *Establishment, position int) error {
	if record == nil {
		return &DataIntegrityError{Position: position, Err: ErrMissingRegNo}
	}

	regNo := NormalizeRegNo(record.RegNo)
	if regNo == "" {
		return &DataIntegrityError{Position: position, Err: ErrMissingRegNo}
	}

	if strings.TrimSpace(record.Name) == "" {
		return &DataIntegrityError{Position: position, RegNo: regNo, Err: ErrEmptyName}
	}

	return nil
}

// ValidateCatalog validates every establishment and checks that registration
// numbers are unique. It stops at the first violation.
func ValidateCatalog(records []Establishment) error {
	seen := make(map[string]int, len(records))
	for i := range records {
		if err := ValidateEstablishment(&records[i], i); err != nil {
			return err
		}
		regNo := NormalizeRegNo(records[i].RegNo)
		if _, dup := seen[regNo]; dup {
			return &DataIntegrityError{Position: i, RegNo: regNo, Err: ErrDuplicateRegNo}
		}
		seen[regNo] = i
	}
	return nil
}
