package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored concepts.
// It is derived from the concept's stable term identifier by content hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Attribute channel names, following the oboInOwl annotation properties the
// vocabulary files use. FindByAttribute only accepts declared channels.
const (
	AttrLabel          = "label"
	AttrExactSynonym   = "hasExactSynonym"
	AttrBroadSynonym   = "hasBroadSynonym"
	AttrRelatedSynonym = "hasRelatedSynonym"
	AttrXref           = "hasDbXref"
	AttrNamespace      = "hasOBONamespace"
	AttrParent         = "subClassOf"
)

// Concept represents a single entry in the controlled vocabulary.
// An absent collection is an empty slice, never a missing field, so call
// sites do not need existence checks.
type Concept struct {
	Id              ID
	TermID          string   // stable curie-style identifier, e.g. "DOID:1612"
	Labels          []string // display names; the first entry is canonical
	ExactSynonyms   []string // alternate exact names, matched case-sensitively
	BroadSynonyms   []string // case-folded index entries plus authored loose synonyms
	RelatedSynonyms []string
	Xrefs           []string // cross-references, e.g. "NCBI_TaxID:9606"
	Namespace       string
	Definition      string
	Parents         []string // TermIDs of is_a parents
}

// Label returns the canonical display label, falling back to the term
// identifier when the vocabulary carries no label.
func (c *Concept) Label() string {
	if len(c.Labels) > 0 {
		return c.Labels[0]
	}
	return c.TermID
}

// AttributeValues returns the values of the named attribute channel.
// Unknown channels yield nil.
func (c *Concept) AttributeValues(name string) []string {
	switch name {
	case AttrLabel:
		return c.Labels
	case AttrExactSynonym:
		return c.ExactSynonyms
	case AttrBroadSynonym:
		return c.BroadSynonyms
	case AttrRelatedSynonym:
		return c.RelatedSynonyms
	case AttrXref:
		return c.Xrefs
	case AttrNamespace:
		if c.Namespace == "" {
			return nil
		}
		return []string{c.Namespace}
	case AttrParent:
		return c.Parents
	}
	return nil
}

// MatchKind identifies which concept field produced a hit.
type MatchKind int

const (
	// MatchLabel indicates the query matched a concept label.
	MatchLabel MatchKind = iota + 1
	// MatchExactSynonym indicates the query matched an exact synonym.
	MatchExactSynonym
)

// String returns the wire name of the match kind as it appears in the
// MatchType output column.
func (k MatchKind) String() string {
	switch k {
	case MatchLabel:
		return AttrLabel
	case MatchExactSynonym:
		return AttrExactSynonym
	}
	return "unknown"
}

// Hit is a single match produced for a query. MatchedPart is the literal
// text that produced the hit: the full query, or a decomposed sub-phrase.
// MatchedSynonym carries the authored synonym text and is empty for label
// hits. Hits are ephemeral; they are never stored.
type Hit struct {
	Concept        *Concept
	Kind           MatchKind
	MatchedPart    string
	MatchedSynonym string
}
