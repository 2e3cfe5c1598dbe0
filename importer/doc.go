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

// Package importer loads a catalog into a storage repository.
//
// The catalog is validated in full before anything is written. An import
// replaces whatever catalog the repository held: existing establishments are
// cleared, the new ones are written in batches, and the catalog metadata is
// saved last. Until that metadata is saved the repository reports no catalog,
// so a failed import never leaves a partial catalog that looks complete.
//
// Importing a catalog whose digest matches the stored one is a no-op unless
// Config.Force is set.
package importer
