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

// Package index builds the immutable search index over an establishment catalog.
//
// Prepare validates the whole catalog and precomputes one PreparedRecord per
// establishment. It either returns a complete Index or an error, never a
// partially built one. An Index is never written after Prepare returns and
// may be shared by any number of concurrent searches without locking.
package index
