package report

import (
	"strings"
	"testing"

	"github.com/poiesic/ontomatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	concept := &core.Concept{
		TermID:        "DOID:1612",
		Labels:        []string{"breast cancer"},
		ExactSynonyms: []string{"mammary cancer"},
	}

	t.Run("header", func(t *testing.T) {
		var buf strings.Builder
		w := NewWriter(&buf)
		require.NoError(t, w.WriteHeader())
		require.NoError(t, w.Flush())
		assert.Equal(t, Header+"\n", buf.String())
	})

	t.Run("label hit leaves synonym column empty", func(t *testing.T) {
		var buf strings.Builder
		w := NewWriter(&buf)
		hits := []*core.Hit{{
			Concept:     concept,
			Kind:        core.MatchLabel,
			MatchedPart: "breast cancer",
		}}
		require.NoError(t, w.WriteResult("Advanced breast cancer", hits))
		require.NoError(t, w.Flush())
		assert.Equal(t,
			"Advanced breast cancer\tbreast cancer\tDOID:1612\tlabel\tbreast cancer\t\n",
			buf.String())
	})

	t.Run("synonym hit carries the matched synonym", func(t *testing.T) {
		var buf strings.Builder
		w := NewWriter(&buf)
		hits := []*core.Hit{{
			Concept:        concept,
			Kind:           core.MatchExactSynonym,
			MatchedPart:    "mammary cancer",
			MatchedSynonym: "mammary cancer",
		}}
		require.NoError(t, w.WriteResult("mammary cancer", hits))
		require.NoError(t, w.Flush())
		assert.Equal(t,
			"mammary cancer\tmammary cancer\tDOID:1612\thasExactSynonym\tbreast cancer\tmammary cancer\n",
			buf.String())
	})

	t.Run("no hits writes query with empty columns", func(t *testing.T) {
		var buf strings.Builder
		w := NewWriter(&buf)
		require.NoError(t, w.WriteResult("unmatched query", nil))
		require.NoError(t, w.Flush())
		assert.Equal(t, "unmatched query\t\t\t\t\t\n", buf.String())
	})

	t.Run("multiple hits produce one row each", func(t *testing.T) {
		var buf strings.Builder
		w := NewWriter(&buf)
		other := &core.Concept{TermID: "MONDO:0004992", Labels: []string{"cancer"}}
		hits := []*core.Hit{
			{Concept: concept, Kind: core.MatchLabel, MatchedPart: "breast cancer"},
			{Concept: other, Kind: core.MatchLabel, MatchedPart: "cancer"},
		}
		require.NoError(t, w.WriteResult("q", hits))
		require.NoError(t, w.Flush())
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		assert.Len(t, lines, 2)
	})
}
