package match

import (
	"fmt"
	"strings"

	"github.com/poiesic/ontomatch/storage"
)

// Condition is one extra attribute equality applied alongside every lookup
// in every tier, e.g. restricting hits to concepts carrying a given taxon
// cross-reference. It is parsed once and reused for all queries.
type Condition struct {
	Attribute string
	Value     string
}

// ParseCondition parses a condition of the form "attribute:value" or
// "attribute:part1:part2". Only the first colon separates the attribute
// from the value; any further colons belong to the value, so
// "hasDbXref:NCBI_TaxID:9606" constrains hasDbXref to "NCBI_TaxID:9606".
func ParseCondition(s string) (*Condition, error) {
	attribute, value, ok := strings.Cut(s, ":")
	if !ok || attribute == "" || value == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCondition, s)
	}
	return &Condition{Attribute: attribute, Value: value}, nil
}

// filter converts the condition to the store's filter form.
func (c *Condition) filter() storage.Filter {
	return storage.Filter{Attribute: c.Attribute, Value: c.Value}
}
