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


package ontomatch

import (
	"context"
	"log/slog"

	"github.com/poiesic/ontomatch/ingestion"
	"github.com/poiesic/ontomatch/match"
	"github.com/poiesic/ontomatch/obo"
	"github.com/poiesic/ontomatch/storage"
	"github.com/poiesic/ontomatch/storage/badger"
)

// Vocabulary bundles a term store with the loading and matching machinery.
// LoadVocabulary is the one-call path from an OBO file to a queryable
// store; callers needing finer control can assemble the pieces themselves.
type Vocabulary struct {
	backend *badger.Backend
	store   storage.TermStore
	logger  *slog.Logger
}

// VocabularyOption configures vocabulary loading.
type VocabularyOption func(*vocabularyOptions)

type vocabularyOptions struct {
	dbPath    string
	inMemory  bool
	ingestion []ingestion.Option
	logger    *slog.Logger
}

// WithStorePath persists the term store at path instead of holding it in
// memory. Reopening the same path skips re-normalization.
func WithStorePath(path string) VocabularyOption {
	return func(o *vocabularyOptions) {
		o.dbPath = path
		o.inMemory = false
	}
}

// WithIngestionOptions forwards options to the loading pipeline.
func WithIngestionOptions(opts ...ingestion.Option) VocabularyOption {
	return func(o *vocabularyOptions) {
		o.ingestion = append(o.ingestion, opts...)
	}
}

// WithVocabularyLogger sets the logger for loading and normalization.
func WithVocabularyLogger(logger *slog.Logger) VocabularyOption {
	return func(o *vocabularyOptions) {
		o.logger = logger
	}
}

// LoadVocabulary parses the OBO file at vocabPath, ingests its concepts
// and normalizes the store. The returned Vocabulary is ready for
// NewMatcher calls.
func LoadVocabulary(ctx context.Context, vocabPath string, opts ...VocabularyOption) (*Vocabulary, error) {
	options := &vocabularyOptions{
		inMemory: true,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(options.dbPath, options.inMemory)
	if err != nil {
		return nil, err
	}

	store, err := badger.NewStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	v := &Vocabulary{
		backend: backend,
		store:   store,
		logger:  options.logger,
	}

	if err := v.load(ctx, vocabPath, options); err != nil {
		v.Close()
		return nil, err
	}
	return v, nil
}

func (v *Vocabulary) load(ctx context.Context, vocabPath string, options *vocabularyOptions) error {
	count, err := v.store.Count(ctx)
	if err != nil {
		return err
	}

	// A persisted store that already holds concepts is reused as is; the
	// normalizer detects its own flag and returns immediately.
	if count == 0 {
		concepts, err := obo.ParseFile(vocabPath)
		if err != nil {
			return err
		}

		pipeline, err := ingestion.NewPipeline(v.store, options.ingestion...)
		if err != nil {
			return err
		}
		defer pipeline.Release()

		if err := pipeline.Run(ctx, concepts); err != nil {
			return err
		}
	} else {
		v.logger.Info("reusing existing term store", "concepts", count)
	}

	normalizer, err := match.NewNormalizer(v.store,
		match.WithNormalizerLogger(v.logger))
	if err != nil {
		return err
	}
	return normalizer.Run(ctx)
}

// Store exposes the underlying term store.
func (v *Vocabulary) Store() storage.TermStore {
	return v.store
}

// NewMatcher creates a matcher over the loaded store.
func (v *Vocabulary) NewMatcher(opts ...match.Option) (*match.Matcher, error) {
	return match.NewMatcher(v.store, opts...)
}

// Count reports how many concepts the store holds.
func (v *Vocabulary) Count(ctx context.Context) (int, error) {
	return v.store.Count(ctx)
}

func (v *Vocabulary) Close() error {
	if err := v.store.Close(); err != nil {
		v.logger.Error("error closing term store", "err", err)
		return err
	}
	if err := v.backend.Close(); err != nil {
		v.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
