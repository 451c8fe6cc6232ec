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


package storage

import "errors"

var (
	// ErrNotFound indicates that the requested concept was not found.
	ErrNotFound = errors.New("concept not found")

	// ErrDuplicateTermID indicates two concepts carry the same term identifier.
	ErrDuplicateTermID = errors.New("duplicate term identifier")

	// ErrUndeclaredAttribute indicates a lookup against an attribute channel
	// the store schema does not define.
	ErrUndeclaredAttribute = errors.New("undeclared attribute channel")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")
)
