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

// Package search ranks catalog establishments against a free-text fragment.
//
// Every searchable field of a record is scored with the match package; the
// record's relevance is the best of its field scores. Records at or above the
// configured threshold are ordered by descending relevance, ties kept in
// catalog order, and the list is cut to the configured limit.
//
// Search is a pure function of (query, index, threshold, limit). The Searcher
// type adds logging, monitoring hooks and a worker pool that splits the
// scoring pass across goroutines for large catalogs without changing results.
package search
