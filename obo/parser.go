package obo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/ontomatch/core"
)

var (
	// ErrMissingTermID indicates a [Term] stanza without an id tag.
	ErrMissingTermID = errors.New("term stanza missing id tag")

	// ErrMalformedSynonym indicates a synonym tag without a quoted text.
	ErrMalformedSynonym = errors.New("malformed synonym tag")
)

// ParseFile reads an OBO vocabulary file from disk.
func ParseFile(path string) ([]*core.Concept, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	concepts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return concepts, nil
}

// Parse reads an OBO vocabulary from r. Terms come back in file order;
// obsolete terms are dropped.
func Parse(r io.Reader) ([]*core.Concept, error) {
	var (
		concepts []*core.Concept
		current  *termStanza
		inTerm   bool
		lineNo   int
	)

	flush := func() error {
		if !inTerm || current == nil {
			return nil
		}
		concept, err := current.concept()
		if err != nil {
			return err
		}
		if concept != nil {
			concepts = append(concepts, concept)
		}
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if err := flush(); err != nil {
				return nil, err
			}
			inTerm = line == "[Term]"
			if inTerm {
				current = &termStanza{}
			}
			continue
		}
		if !inTerm {
			continue
		}

		tag, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if err := current.add(strings.TrimSpace(tag), strings.TrimSpace(value)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return concepts, nil
}

// termStanza accumulates the tags of one [Term] stanza.
type termStanza struct {
	id              string
	name            string
	namespace       string
	definition      string
	exactSynonyms   []string
	broadSynonyms   []string
	relatedSynonyms []string
	xrefs           []string
	parents         []string
	obsolete        bool
}

func (t *termStanza) add(tag, value string) error {
	switch tag {
	case "id":
		t.id = value
	case "name":
		t.name = value
	case "namespace":
		t.namespace = value
	case "def":
		text, _, err := parseQuoted(value)
		if err != nil {
			// Definitions are informational; an unquoted def is kept whole.
			t.definition = value
			return nil
		}
		t.definition = text
	case "synonym":
		text, rest, err := parseQuoted(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedSynonym, value)
		}
		scope := strings.Fields(rest)
		if len(scope) == 0 {
			// Scope defaults to RELATED in the OBO spec.
			t.relatedSynonyms = append(t.relatedSynonyms, text)
			return nil
		}
		switch scope[0] {
		case "EXACT":
			t.exactSynonyms = append(t.exactSynonyms, text)
		case "BROAD":
			t.broadSynonyms = append(t.broadSynonyms, text)
		default:
			t.relatedSynonyms = append(t.relatedSynonyms, text)
		}
	case "xref":
		t.xrefs = append(t.xrefs, stripComment(value))
	case "is_a":
		t.parents = append(t.parents, stripComment(value))
	case "is_obsolete":
		t.obsolete = value == "true"
	}
	return nil
}

// concept finalizes the stanza. Obsolete terms yield nil.
func (t *termStanza) concept() (*core.Concept, error) {
	if t.obsolete {
		return nil, nil
	}
	if t.id == "" {
		return nil, ErrMissingTermID
	}

	concept := &core.Concept{
		TermID:          t.id,
		ExactSynonyms:   t.exactSynonyms,
		BroadSynonyms:   t.broadSynonyms,
		RelatedSynonyms: t.relatedSynonyms,
		Xrefs:           t.xrefs,
		Namespace:       t.namespace,
		Definition:      t.definition,
		Parents:         t.parents,
	}
	if t.name != "" {
		concept.Labels = []string{t.name}
	}
	return concept, nil
}

// parseQuoted extracts a leading double-quoted string, handling backslash
// escapes, and returns the text plus everything after the closing quote.
func parseQuoted(s string) (text, rest string, err error) {
	if !strings.HasPrefix(s, `"`) {
		return "", "", fmt.Errorf("expected quoted string: %s", s)
	}
	var b strings.Builder
	escaped := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			return b.String(), strings.TrimSpace(s[i+1:]), nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated quoted string: %s", s)
}

// stripComment removes an OBO trailing comment ("value ! comment").
func stripComment(s string) string {
	if idx := strings.Index(s, " !"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
