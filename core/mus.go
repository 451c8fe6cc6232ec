package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the stored record types. The teacher format is the
// MUS binary encoding; every field is written in declaration order.
var (
	IDMUS      = idMUS{}
	ConceptMUS = conceptMUS{}

	stringSliceMUS = ord.NewSliceSer[string](ord.String)
)

var (
	_ mus.Serializer[ID]      = IDMUS
	_ mus.Serializer[Concept] = ConceptMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type conceptMUS struct{}

func (conceptMUS) Marshal(c Concept, bs []byte) (n int) {
	n = IDMUS.Marshal(c.Id, bs)
	n += ord.String.Marshal(c.TermID, bs[n:])
	n += stringSliceMUS.Marshal(c.Labels, bs[n:])
	n += stringSliceMUS.Marshal(c.ExactSynonyms, bs[n:])
	n += stringSliceMUS.Marshal(c.BroadSynonyms, bs[n:])
	n += stringSliceMUS.Marshal(c.RelatedSynonyms, bs[n:])
	n += stringSliceMUS.Marshal(c.Xrefs, bs[n:])
	n += ord.String.Marshal(c.Namespace, bs[n:])
	n += ord.String.Marshal(c.Definition, bs[n:])
	n += stringSliceMUS.Marshal(c.Parents, bs[n:])
	return n
}

func (conceptMUS) Unmarshal(bs []byte) (c Concept, n int, err error) {
	var n1 int
	if c.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if c.TermID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Labels, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.ExactSynonyms, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.BroadSynonyms, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.RelatedSynonyms, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Xrefs, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Namespace, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Definition, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Parents, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	return c, n, nil
}

func (conceptMUS) Size(c Concept) (size int) {
	size = IDMUS.Size(c.Id)
	size += ord.String.Size(c.TermID)
	size += stringSliceMUS.Size(c.Labels)
	size += stringSliceMUS.Size(c.ExactSynonyms)
	size += stringSliceMUS.Size(c.BroadSynonyms)
	size += stringSliceMUS.Size(c.RelatedSynonyms)
	size += stringSliceMUS.Size(c.Xrefs)
	size += ord.String.Size(c.Namespace)
	size += ord.String.Size(c.Definition)
	size += stringSliceMUS.Size(c.Parents)
	return size
}

func (conceptMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	skippers := []func([]byte) (int, error){
		ord.String.Skip,     // TermID
		stringSliceMUS.Skip, // Labels
		stringSliceMUS.Skip, // ExactSynonyms
		stringSliceMUS.Skip, // BroadSynonyms
		stringSliceMUS.Skip, // RelatedSynonyms
		stringSliceMUS.Skip, // Xrefs
		ord.String.Skip,     // Namespace
		ord.String.Skip,     // Definition
		stringSliceMUS.Skip, // Parents
	}
	for _, skip := range skippers {
		if n1, err = skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}
