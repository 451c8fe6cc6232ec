package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Run(t *testing.T) {
	store := newNormalizedStore(t)
	ctx := context.Background()

	done, err := store.HasFlag(ctx, NormalizedFlag)
	require.NoError(t, err)
	assert.True(t, done)

	got, err := store.GetConceptByTermID(ctx, "DOID:660")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"neoplasm", "tumour"}, got.BroadSynonyms)

	// The folded label joins the broad set when no exact synonym already
	// spells it that way.
	got, err = store.GetConceptByTermID(ctx, "DOID:3963")
	require.NoError(t, err)
	assert.Equal(t, []string{"tumor"}, got.BroadSynonyms)

	// Lower-case exact synonyms are their own folded forms and are not
	// re-added.
	got, err = store.GetConceptByTermID(ctx, "DOID:162")
	require.NoError(t, err)
	assert.Equal(t, []string{"cancer"}, got.BroadSynonyms)
}

func TestNormalizer_RunTwiceIsNoop(t *testing.T) {
	store := newNormalizedStore(t)
	ctx := context.Background()

	norm, err := NewNormalizer(store)
	require.NoError(t, err)
	require.NoError(t, norm.Run(ctx))

	got, err := store.GetConceptByTermID(ctx, "DOID:660")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"neoplasm", "tumour"}, got.BroadSynonyms)
}

func TestNewNormalizer_NilStore(t *testing.T) {
	_, err := NewNormalizer(nil)
	assert.Equal(t, ErrStoreRequired, err)
}
