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


package core

import "fmt"

// ValidateConcept validates a Concept according to domain rules.
//
// Validation rules:
//   - TermID must not be empty
//   - synonym entries must not be empty strings
//
// NOT validated:
//   - Labels (a concept without a label falls back to its TermID)
//   - Id (0 is valid before storage assigns the content hash)
func ValidateConcept(concept *Concept) error {
	if concept == nil {
		return fmt.Errorf("%w: concept is nil", ErrInvalidConcept)
	}

	if concept.TermID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrEmptyTermID)
	}

	for _, group := range [][]string{concept.ExactSynonyms, concept.BroadSynonyms, concept.RelatedSynonyms} {
		for _, syn := range group {
			if syn == "" {
				return fmt.Errorf("%w: %w (term %s)", ErrInvalidConcept, ErrEmptySynonym, concept.TermID)
			}
		}
	}

	return nil
}
