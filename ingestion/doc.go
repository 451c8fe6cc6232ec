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


// Package ingestion loads parsed vocabulary concepts into a term store.
//
// The Pipeline batches concepts and writes the batches from a worker pool.
// Run blocks until every batch has landed, so callers get a clean barrier:
// once Run returns, the store holds the full vocabulary and synonym
// normalization can begin.
package ingestion
