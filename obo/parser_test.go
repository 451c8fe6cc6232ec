package obo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVocabulary = `format-version: 1.2
ontology: doid

[Term]
id: DOID:162
name: cancer
namespace: disease_ontology
def: "A disease of cellular proliferation." [url:http\://example.org]
synonym: "malignant tumor" EXACT []
synonym: "malignancy" RELATED []
xref: MESH:D009369

[Term]
id: DOID:1612
name: breast cancer
namespace: disease_ontology
synonym: "mammary cancer" EXACT []
synonym: "breast tumor" BROAD []
xref: NCBI_TaxID:9606
is_a: DOID:162 ! cancer

[Term]
id: DOID:9999
name: retired disease
is_obsolete: true

[Typedef]
id: part_of
name: part of
`

func TestParse(t *testing.T) {
	concepts, err := Parse(strings.NewReader(sampleVocabulary))
	require.NoError(t, err)
	require.Len(t, concepts, 2, "obsolete terms and typedefs are skipped")

	cancer := concepts[0]
	assert.Equal(t, "DOID:162", cancer.TermID)
	assert.Equal(t, []string{"cancer"}, cancer.Labels)
	assert.Equal(t, "disease_ontology", cancer.Namespace)
	assert.Equal(t, "A disease of cellular proliferation.", cancer.Definition)
	assert.Equal(t, []string{"malignant tumor"}, cancer.ExactSynonyms)
	assert.Equal(t, []string{"malignancy"}, cancer.RelatedSynonyms)
	assert.Equal(t, []string{"MESH:D009369"}, cancer.Xrefs)

	breast := concepts[1]
	assert.Equal(t, "DOID:1612", breast.TermID)
	assert.Equal(t, []string{"mammary cancer"}, breast.ExactSynonyms)
	assert.Equal(t, []string{"breast tumor"}, breast.BroadSynonyms)
	assert.Equal(t, []string{"NCBI_TaxID:9606"}, breast.Xrefs)
	assert.Equal(t, []string{"DOID:162"}, breast.Parents, "is_a comment is stripped")
}

func TestParse_MissingID(t *testing.T) {
	input := "[Term]\nname: nameless disease\n"

	_, err := Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrMissingTermID)
}

func TestParse_MalformedSynonym(t *testing.T) {
	input := "[Term]\nid: DOID:1\nsynonym: not quoted EXACT []\n"

	_, err := Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrMalformedSynonym)
}

func TestParse_EscapedQuote(t *testing.T) {
	input := "[Term]\nid: DOID:1\nname: x\nsynonym: \"the \\\"special\\\" case\" EXACT []\n"

	concepts, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, concepts, 1)
	assert.Equal(t, []string{`the "special" case`}, concepts[0].ExactSynonyms)
}

func TestParse_SynonymScopeDefaultsToRelated(t *testing.T) {
	input := "[Term]\nid: DOID:1\nname: x\nsynonym: \"loose name\"\n"

	concepts, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, concepts, 1)
	assert.Equal(t, []string{"loose name"}, concepts[0].RelatedSynonyms)
	assert.Empty(t, concepts[0].ExactSynonyms)
}

func TestParse_Empty(t *testing.T) {
	concepts, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, concepts)
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile("/nonexistent/vocabulary.obo")
	assert.Error(t, err)
}
