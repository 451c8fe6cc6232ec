package ontomatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/ontomatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOBO = `format-version: 1.2
ontology: doid

[Term]
id: DOID:162
name: cancer
namespace: disease_ontology
def: "A disease of cellular proliferation." [url:http\://example.org]
synonym: "malignant tumor" EXACT []
xref: NCBI_TaxID:9606

[Term]
id: DOID:1612
name: breast cancer
namespace: disease_ontology
synonym: "mammary cancer" EXACT []
is_a: DOID:162 ! cancer
`

func writeSampleVocab(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.obo")
	require.NoError(t, os.WriteFile(path, []byte(sampleOBO), 0644))
	return path
}

func TestLoadVocabulary(t *testing.T) {
	ctx := context.Background()
	vocab, err := LoadVocabulary(ctx, writeSampleVocab(t))
	require.NoError(t, err)
	defer vocab.Close()

	count, err := vocab.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	m, err := vocab.NewMatcher()
	require.NoError(t, err)

	t.Run("exact label", func(t *testing.T) {
		hits, err := m.Match(ctx, "breast cancer")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "DOID:1612", hits[0].Concept.TermID)
		assert.Equal(t, core.MatchLabel, hits[0].Kind)
	})

	t.Run("case-insensitive via normalization", func(t *testing.T) {
		hits, err := m.Match(ctx, "Breast Cancer")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "DOID:1612", hits[0].Concept.TermID)
	})

	t.Run("decomposed sub-phrase", func(t *testing.T) {
		hits, err := m.Match(ctx, "suspected mammary cancer")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, core.MatchExactSynonym, hits[0].Kind)
		assert.Equal(t, "mammary cancer", hits[0].MatchedSynonym)
	})
}

func TestLoadVocabulary_MissingFile(t *testing.T) {
	_, err := LoadVocabulary(context.Background(), filepath.Join(t.TempDir(), "absent.obo"))
	assert.Error(t, err)
}

func TestLoadVocabulary_PersistentReuse(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "store")
	vocabPath := writeSampleVocab(t)

	vocab, err := LoadVocabulary(ctx, vocabPath, WithStorePath(dbPath))
	require.NoError(t, err)
	require.NoError(t, vocab.Close())

	// Second open reuses the persisted store without re-ingesting.
	vocab, err = LoadVocabulary(ctx, vocabPath, WithStorePath(dbPath))
	require.NoError(t, err)
	defer vocab.Close()

	count, err := vocab.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
