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


// Package obo parses OBO flat-file vocabularies into core.Concept values.
//
// Only the subset of the format the matcher consumes is recognized: [Term]
// stanzas with id, name, namespace, def, synonym (EXACT, BROAD, RELATED and
// NARROW scopes), xref and is_a tags. Obsolete terms are skipped. Other
// stanza types, such as [Typedef], are ignored.
package obo
