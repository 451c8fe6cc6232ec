package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	t.Run("three words longest first", func(t *testing.T) {
		got := Decompose("advanced breast cancer")
		want := []string{
			"advanced breast cancer",
			"advanced breast",
			"breast cancer",
			"advanced",
			"breast",
			"cancer",
		}
		assert.Equal(t, want, got)
	})

	t.Run("mixed separators collapse to spaces", func(t *testing.T) {
		got := Decompose("breast_cancer-stage.II")
		assert.Equal(t, "breast cancer stage II", got[0])
		assert.Len(t, got, 10)
	})

	t.Run("single word", func(t *testing.T) {
		assert.Equal(t, []string{"cancer"}, Decompose("cancer"))
	})

	t.Run("count is n(n+1)/2", func(t *testing.T) {
		got := Decompose("a b c d e")
		assert.Len(t, got, 15)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Decompose(""))
		assert.Empty(t, Decompose("  __--.. "))
	})
}

func TestDecomposeGroups(t *testing.T) {
	groups := decomposeGroups("breast cancer")
	assert.Equal(t, [][]string{
		{"breast cancer"},
		{"breast", "cancer"},
	}, groups)
}
