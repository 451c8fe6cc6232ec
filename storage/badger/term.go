package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/ontomatch/core"
	"github.com/poiesic/ontomatch/storage"
)

// Store implements storage.TermStore on top of a BadgerDB backend.
//
// Every attribute channel is indexed at write time under
// (attribute, value, id) composite keys, which gives FindByAttribute its
// exact-equality semantics without scanning the whole vocabulary per query.
type Store struct {
	backend *Backend
}

var _ storage.TermStore = (*Store)(nil)

// Channels the schema defines out of the box. Additional channels are
// declared at runtime via DeclareAttribute.
var builtinAttributes = map[string]bool{
	core.AttrLabel:          true,
	core.AttrExactSynonym:   true,
	core.AttrBroadSynonym:   true,
	core.AttrRelatedSynonym: true,
	core.AttrXref:           true,
	core.AttrNamespace:      true,
	core.AttrParent:         true,
}

// indexedAttributes lists the channels indexed when a concept is written.
var indexedAttributes = []string{
	core.AttrLabel,
	core.AttrExactSynonym,
	core.AttrBroadSynonym,
	core.AttrRelatedSynonym,
	core.AttrXref,
	core.AttrNamespace,
	core.AttrParent,
}

// NewStore creates a TermStore backed by the given backend.
func NewStore(backend *Backend) (storage.TermStore, error) {
	return &Store{backend: backend}, nil
}

// Close releases resources. The backend is closed separately by its owner.
func (s *Store) Close() error {
	return nil
}

// AddConcepts adds one or more concepts to storage and indexes their
// attribute channels.
func (s *Store) AddConcepts(ctx context.Context, concepts ...*core.Concept) ([]*core.Concept, error) {
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, concept := range concepts {
			if err := core.ValidateConcept(concept); err != nil {
				return err
			}

			// Use content-based ID if not set
			if concept.Id == 0 {
				concept.Id = core.IDFromContent(concept.TermID)
			}

			// Reject a second concept under the same term identifier
			idKey := makeTermIDKey(concept.TermID)
			if _, err := tx.Get(idKey); err == nil {
				return storage.ErrDuplicateTermID
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			// Store primary record
			key := makeTermKey(concept.Id)
			value := storage.MarshalConcept(concept)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store term-identifier index
			if err := tx.Set(idKey, storage.MarshalID(concept.Id)); err != nil {
				return err
			}

			// Store attribute-value index entries
			if err := indexConcept(tx, concept); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return concepts, err
}

// GetConcept retrieves a single concept by ID.
func (s *Store) GetConcept(ctx context.Context, id core.ID) (*core.Concept, error) {
	var result *core.Concept
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readConcept(tx, makeTermKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetConceptByTermID retrieves a single concept by its term identifier.
func (s *Store) GetConceptByTermID(ctx context.Context, termID string) (*core.Concept, error) {
	var result *core.Concept
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeTermIDKey(termID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = readConcept(tx, makeTermKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// AllConcepts retrieves every concept in storage, in ID order.
func (s *Store) AllConcepts(ctx context.Context) ([]*core.Concept, error) {
	var results []*core.Concept
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(termRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var concept *core.Concept
			err := iter.Item().Value(func(val []byte) error {
				var err error
				concept, err = storage.UnmarshalConcept(val)
				return err
			})
			if err != nil {
				return err
			}
			if concept != nil {
				results = append(results, concept)
			}
		}
		return nil
	}, false)

	return results, err
}

// FindByAttribute returns all concepts whose attribute channel contains
// value, case-sensitively, restricted by the extra filters.
func (s *Store) FindByAttribute(ctx context.Context, attribute, value string, extra ...storage.Filter) ([]*core.Concept, error) {
	declared, err := s.AttributeDeclared(ctx, attribute)
	if err != nil {
		return nil, err
	}
	if !declared {
		return nil, storage.ErrUndeclaredAttribute
	}

	var results []*core.Concept
	err = s.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makeAttrPrefix(attribute, value)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var ids []core.ID
		for iter.Rewind(); iter.Valid(); iter.Next() {
			ids = append(ids, attrKeyID(iter.Item().Key()))
		}
		iter.Close()

		for _, id := range ids {
			concept, err := readConcept(tx, makeTermKey(id))
			if err != nil {
				return err
			}
			if concept == nil {
				continue
			}
			if matchesFilters(concept, extra) {
				results = append(results, concept)
			}
		}
		return nil
	}, false)

	return results, err
}

// AppendBroadSynonyms appends broad-synonym entries to a concept and
// indexes them. Entries already present case-insensitively are skipped.
func (s *Store) AppendBroadSynonyms(ctx context.Context, id core.ID, synonyms ...string) error {
	if len(synonyms) == 0 {
		return nil
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeTermKey(id)
		concept, err := readConcept(tx, key)
		if err != nil {
			return err
		}
		if concept == nil {
			return storage.ErrNotFound
		}

		existing := make(map[string]bool, len(concept.BroadSynonyms))
		for _, syn := range concept.BroadSynonyms {
			existing[core.Fold(syn)] = true
		}

		var added []string
		for _, syn := range synonyms {
			if syn == "" {
				continue
			}
			folded := core.Fold(syn)
			if existing[folded] {
				continue
			}
			existing[folded] = true
			added = append(added, syn)
		}
		if len(added) == 0 {
			return nil
		}

		concept.BroadSynonyms = append(concept.BroadSynonyms, added...)
		if err := tx.Set(key, storage.MarshalConcept(concept)); err != nil {
			return err
		}
		for _, syn := range added {
			if err := tx.Set(makeAttrKey(core.AttrBroadSynonym, syn, id), storage.MarshalID(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// DeclareAttribute registers a new attribute channel on the store schema.
func (s *Store) DeclareAttribute(ctx context.Context, attribute string) error {
	if builtinAttributes[attribute] {
		return nil
	}
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSchemaKey(attribute), []byte{1}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// AttributeDeclared reports whether the channel is part of the schema.
func (s *Store) AttributeDeclared(ctx context.Context, attribute string) (bool, error) {
	if builtinAttributes[attribute] {
		return true, nil
	}
	var declared bool
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeSchemaKey(attribute))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		declared = true
		return nil
	}, false)
	return declared, err
}

// SetFlag durably records a named store-level marker.
func (s *Store) SetFlag(ctx context.Context, name string) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeFlagKey(name), []byte{1}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// HasFlag reports whether the named marker has been set.
func (s *Store) HasFlag(ctx context.Context, name string) (bool, error) {
	var set bool
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeFlagKey(name))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		set = true
		return nil
	}, false)
	return set, err
}

// Count returns the number of stored concepts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(termRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Helper methods

// indexConcept writes attribute index entries for every indexed channel.
func indexConcept(tx *badger.Txn, concept *core.Concept) error {
	idValue := storage.MarshalID(concept.Id)
	for _, attribute := range indexedAttributes {
		for _, value := range concept.AttributeValues(attribute) {
			if err := tx.Set(makeAttrKey(attribute, value, concept.Id), idValue); err != nil {
				return err
			}
		}
	}
	return nil
}

// matchesFilters reports whether the concept satisfies every extra
// attribute equality, case-sensitively.
func matchesFilters(concept *core.Concept, filters []storage.Filter) bool {
	for _, f := range filters {
		found := false
		for _, value := range concept.AttributeValues(f.Attribute) {
			if value == f.Value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// readConcept reads a concept from the transaction.
func readConcept(tx *badger.Txn, key []byte) (*core.Concept, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var concept *core.Concept
	err = item.Value(func(val []byte) error {
		var err error
		concept, err = storage.UnmarshalConcept(val)
		return err
	})
	return concept, err
}
