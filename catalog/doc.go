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

// Package catalog loads establishment catalogs from files and other sources.
//
// Supported formats are JSON (an array of objects, or an object holding that
// array under "establishments"), YAML (a sequence of mappings) and CSV (a
// header row followed by one establishment per row). Every format uses the
// same field names: regNo, name, adba, streetAddr, city, province,
// postalCode and telephone. regNo may be a number or a string.
//
// Loaders only check the format. Catalog rules such as unique registration
// numbers are enforced when the index is prepared.
package catalog
