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

import (
	"errors"
	"fmt"
)

// Catalog integrity errors
var (
	// ErrDataIntegrity matches every DataIntegrityError.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrMissingRegNo indicates an establishment without a registration number.
	ErrMissingRegNo = errors.New("registration number is missing")

	// ErrDuplicateRegNo indicates two establishments share a registration number.
	ErrDuplicateRegNo = errors.New("registration number is duplicated")

	// ErrEmptyName indicates an establishment with an empty name.
	ErrEmptyName = errors.New("name cannot be empty")
)

// DataIntegrityError reports a catalog entry that cannot be indexed.
// Position is the zero-based position of the offending entry in the catalog.
type DataIntegrityError struct {
	Position int
	RegNo    string
	Err      error
}

func (e *DataIntegrityError) Error() string {
	if e.RegNo == "" {
		return fmt.Sprintf("%s: entry %d: %s", ErrDataIntegrity, e.Position, e.Err)
	}
	return fmt.Sprintf("%s: entry %d (regNo %q): %s", ErrDataIntegrity, e.Position, e.RegNo, e.Err)
}

func (e *DataIntegrityError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDataIntegrity) match any DataIntegrityError.
func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}
