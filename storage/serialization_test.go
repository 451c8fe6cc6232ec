package storage

import (
	"testing"

	"github.com/poiesic/ontomatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	id := core.IDFromContent("DOID:1612")

	data := MarshalID(id)
	got, err := UnmarshalID(data)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestMarshalUnmarshalConcept(t *testing.T) {
	concept := &core.Concept{
		Id:              core.IDFromContent("DOID:1612"),
		TermID:          "DOID:1612",
		Labels:          []string{"breast cancer", "cancer of breast"},
		ExactSynonyms:   []string{"mammary cancer"},
		BroadSynonyms:   []string{"breast cancer", "mammary cancer"},
		RelatedSynonyms: []string{"breast carcinoma"},
		Xrefs:           []string{"NCBI_TaxID:9606", "MESH:D001943"},
		Namespace:       "disease_ontology",
		Definition:      "A thoracic cancer that originates in the mammary gland.",
		Parents:         []string{"DOID:162"},
	}

	data := MarshalConcept(concept)
	got, err := UnmarshalConcept(data)
	require.NoError(t, err)
	assert.Equal(t, concept, got)
}

func TestUnmarshalConcept_Truncated(t *testing.T) {
	concept := &core.Concept{TermID: "DOID:1612", Labels: []string{"breast cancer"}}
	data := MarshalConcept(concept)

	_, err := UnmarshalConcept(data[:len(data)/2])
	assert.Error(t, err)
}

func TestUnmarshalConcept_EmptyCollections(t *testing.T) {
	concept := &core.Concept{TermID: "DOID:4"}
	data := MarshalConcept(concept)

	got, err := UnmarshalConcept(data)
	require.NoError(t, err)
	assert.Equal(t, "DOID:4", got.TermID)
	assert.Empty(t, got.Labels)
	assert.Empty(t, got.ExactSynonyms)
	assert.Empty(t, got.BroadSynonyms)
}
