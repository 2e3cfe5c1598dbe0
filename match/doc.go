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

// Package match implements the fuzzy scoring primitive used by the ranker.
//
// A query matches a field when every rune of the case-folded query appears in
// the case-folded field in the same relative order. Matches are scored on a
// closed 0..1 scale from three signals:
//   - contiguity: adjacent query runes found adjacent in the field
//   - alignment: runs of matched runes that begin at the start of the field
//     or right after a separator
//   - coverage: the share of the field consumed by the query
//
// An exact case-insensitive match always scores 1 and nothing else does.
//
// Fields are prepared once with PrepareField so that folding, boundary
// detection and the rune presence mask are not recomputed per query.
package match
