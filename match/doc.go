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


// Package match implements tiered term matching over a term store.
//
// The Matcher resolves a free-text query through an ordered cascade:
//   - exact tier: the whole query against labels, exact synonyms and the
//     case-folded broad-synonym index
//   - decomposition tier: contiguous word sub-phrases of the query, longest
//     word count first, through the same three-way lookup
//
// The first tier (and, within the decomposition tier, the first word-count
// group) that produces any hit wins; shorter sub-phrases are never
// consulted once a longer one has matched. All qualifying hits of the
// winning stage are returned, so a query may legitimately resolve to
// several concepts.
//
// Before the first query, the Normalizer must run once against the store:
// it materializes case-folded broad-synonym entries for every label and
// exact synonym, which is what lets the case-sensitive store primitive
// answer case-insensitive lookups.
package match
