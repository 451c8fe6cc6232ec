package match

import "github.com/poiesic/ontomatch/core"

// MatchMonitor observes the progress of a single match operation. Monitors
// allow callers to trace which tier resolved a query without coupling the
// matcher to any particular logging or metrics facility.
type MatchMonitor interface {
	// Start is called once before any lookup runs.
	Start(query string)

	// AfterExactLookup is called after the whole-query tier with the hits
	// it produced, which may be empty.
	AfterExactLookup(hits []*core.Hit)

	// AfterGroupLookup is called after each word-count group of the
	// decomposition tier, with the group's word count and its hits.
	AfterGroupLookup(wordCount int, hits []*core.Hit)

	// Finish is called once with the final hits, nil when nothing matched.
	Finish(hits []*core.Hit)
}

type noopMonitor struct{}

func (noopMonitor) Start(string)                      {}
func (noopMonitor) AfterExactLookup([]*core.Hit)      {}
func (noopMonitor) AfterGroupLookup(int, []*core.Hit) {}
func (noopMonitor) Finish([]*core.Hit)                {}
