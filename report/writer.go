package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/poiesic/ontomatch/core"
)

// Header is the column row preceding all results.
const Header = "Query\tMatchedPart\tTermID\tMatchType\tTermLabel\tMatchedSynonym"

// Writer streams match results as TSV rows. Rows are buffered; call Flush
// once after the last result.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w for TSV output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteHeader emits the column header row.
func (w *Writer) WriteHeader() error {
	_, err := fmt.Fprintln(w.bw, Header)
	return err
}

// WriteResult emits one row per hit for the query, in hit order. A query
// with no hits still produces one row, carrying the query and five empty
// columns, so every query appears in the output.
func (w *Writer) WriteResult(query string, hits []*core.Hit) error {
	if len(hits) == 0 {
		_, err := fmt.Fprintf(w.bw, "%s\t\t\t\t\t\n", query)
		return err
	}
	for _, h := range hits {
		_, err := fmt.Fprintf(w.bw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			query,
			h.MatchedPart,
			h.Concept.TermID,
			h.Kind.String(),
			h.Concept.Label(),
			h.MatchedSynonym)
		if err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
