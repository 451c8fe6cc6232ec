package badger

import (
	"encoding/binary"

	"github.com/poiesic/ontomatch/core"
)

// Key prefixes for different data types
const (
	termRecordPrefix = "trmrec"
	termIDPrefix     = "trmid"
	attrIndexPrefix  = "trmattr"
	schemaPrefix     = "trmschema"
	flagPrefix       = "trmflag"
)

// Attribute names and values are joined with a NUL separator; vocabulary
// text is line-based and never contains NUL, so key boundaries are exact.
const keySep = "\x00"

// makeTermKey generates a key for a concept record by ID.
// The ID suffix is big-endian so lexicographic iteration is ID order.
func makeTermKey(id core.ID) []byte {
	prefix := termRecordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeTermIDKey generates a key for the term-identifier index.
// Format: prefix:termID
func makeTermIDKey(termID string) []byte {
	return []byte(termIDPrefix + ":" + termID)
}

// makeAttrKey generates a composite key for the attribute-value index.
// Format: prefix:attribute NUL value NUL id
func makeAttrKey(attribute, value string, id core.ID) []byte {
	prefix := makeAttrPrefix(attribute, value)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeAttrPrefix generates the scan prefix for all concepts whose attribute
// channel contains value.
// Format: prefix:attribute NUL value NUL
func makeAttrPrefix(attribute, value string) []byte {
	return []byte(attrIndexPrefix + ":" + attribute + keySep + value + keySep)
}

// attrKeyID extracts the concept ID from an attribute index key.
func attrKeyID(key []byte) core.ID {
	return core.ID(binary.BigEndian.Uint64(key[len(key)-8:]))
}

// makeSchemaKey generates a key for a declared attribute channel.
func makeSchemaKey(attribute string) []byte {
	return []byte(schemaPrefix + ":" + attribute)
}

// makeFlagKey generates a key for a store-level flag.
func makeFlagKey(name string) []byte {
	return []byte(flagPrefix + ":" + name)
}
