package storage

import (
	"context"

	"github.com/poiesic/ontomatch/core"
)

// Filter is one extra equality constraint applied alongside an attribute
// lookup: the concept's named attribute channel must contain exactly Value.
type Filter struct {
	Attribute string
	Value     string
}

// TermStore provides access to the loaded vocabulary.
// Implementations must be thread-safe.
type TermStore interface {
	// AddConcepts adds one or more concepts to storage and indexes every
	// declared attribute channel. For concepts with Id=0, derives the ID
	// from the TermID content hash. Returns the concepts with IDs populated.
	AddConcepts(ctx context.Context, concepts ...*core.Concept) ([]*core.Concept, error)

	// GetConcept retrieves a single concept by ID.
	// Returns ErrNotFound if the concept doesn't exist.
	GetConcept(ctx context.Context, id core.ID) (*core.Concept, error)

	// GetConceptByTermID retrieves a single concept by its term identifier.
	// Returns ErrNotFound if the concept doesn't exist.
	GetConceptByTermID(ctx context.Context, termID string) (*core.Concept, error)

	// AllConcepts retrieves every concept in storage, in ID order.
	AllConcepts(ctx context.Context) ([]*core.Concept, error)

	// FindByAttribute returns all concepts whose attribute channel contains
	// value under exact case-sensitive string equality, restricted to
	// concepts that also satisfy every extra filter. Results come back in
	// ID order. An unknown attribute yields ErrUndeclaredAttribute; a known
	// attribute with no matches yields an empty slice, not an error.
	FindByAttribute(ctx context.Context, attribute, value string, extra ...Filter) ([]*core.Concept, error)

	// AppendBroadSynonyms appends entries to the concept's broad-synonym
	// collection and indexes them. Entries that are already present
	// case-insensitively among the broad synonyms are skipped, so the
	// index never holds duplicates. This is the only concept mutation the
	// store exposes.
	AppendBroadSynonyms(ctx context.Context, id core.ID, synonyms ...string) error

	// DeclareAttribute registers a new attribute channel on the store
	// schema. Declaring an already-known channel is a no-op.
	DeclareAttribute(ctx context.Context, attribute string) error

	// AttributeDeclared reports whether the channel is part of the schema.
	AttributeDeclared(ctx context.Context, attribute string) (bool, error)

	// SetFlag durably records a named store-level marker.
	SetFlag(ctx context.Context, name string) error

	// HasFlag reports whether the named marker has been set.
	HasFlag(ctx context.Context, name string) (bool, error)

	// Count returns the number of stored concepts.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the store. The underlying backend
	// is closed separately by whoever opened it.
	Close() error
}
