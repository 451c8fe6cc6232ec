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


// Package storage provides the Term Store abstraction for ontomatch.
//
// This package defines the TermStore interface that decouples the matching
// engine from the storage implementation. It allows different storage
// backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # The attribute lookup primitive
//
// The matching engine consumes the store through a single narrow primitive:
//
//	FindByAttribute(ctx, attribute, value, extra...)
//
// which returns every concept whose named attribute channel contains the
// value under exact, case-sensitive string equality. Case-insensitive
// matching is layered on top by the match package, which populates the
// hasBroadSynonym channel with case-folded entries and queries it with
// folded keys; the store itself never folds anything.
//
// Extra Filter constraints are additional attribute equalities that every
// returned concept must also satisfy. They replace ad-hoc merging of lookup
// conditions with one structured argument.
//
// # Constructor Return Type Pattern
//
// Public constructors return the TermStore interface rather than backend
// concrete types:
//
//	store, err := badger.NewStore(backend)  // returns storage.TermStore
//
// so consumers cannot accidentally couple to BadgerDB specifics and tests
// can substitute other implementations.
//
// # Thread Safety
//
// TermStore implementations must be safe for concurrent use: the ingestion
// pipeline loads concepts from a worker pool, and query-time access is
// read-only after normalization completes.
package storage
